package repository

import (
	"context"

	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// RegistroRepository define o porto de persistência para o livro de
// movimentações. O livro é append-only: não há update nem delete.
type RegistroRepository interface {
	Create(ctx context.Context, registro *entity.Registro) error
	// List retorna todos os registros ordenados por data decrescente
	// (id decrescente como desempate). A ordenação é contrato consumido
	// pelo relatório e deve ser exata.
	List(ctx context.Context) ([]*entity.Registro, error)
}
