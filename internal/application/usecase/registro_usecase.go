package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

// RegistroUseCase encapsula o livro de movimentações. Não contém regra de
// negócio além da delegação: quem correlaciona registros com mutações de
// produto é o ProdutoUseCase. A criação direta existe como entrada
// secundária para testes e operação, sem garantia de correlação.
type RegistroUseCase struct {
	registros repository.RegistroRepository
}

// NewRegistroUseCase constrói o caso de uso.
func NewRegistroUseCase(registros repository.RegistroRepository) *RegistroUseCase {
	return &RegistroUseCase{registros: registros}
}

// Create apensa um registro ao livro. Data vazia assume o instante atual.
func (uc *RegistroUseCase) Create(ctx context.Context, registro *entity.Registro) (*entity.Registro, error) {
	if registro.ProdutoID <= 0 {
		return nil, fmt.Errorf("%w: produtoId é obrigatório", domain.ErrInvalidInput)
	}
	if !registro.Movimentacao.Valido() {
		return nil, fmt.Errorf("%w: movimentação %q desconhecida", domain.ErrInvalidInput, registro.Movimentacao)
	}
	if !registro.Status.Valido() {
		return nil, fmt.Errorf("%w: status %q desconhecido", domain.ErrInvalidInput, registro.Status)
	}
	if registro.Data.IsZero() {
		registro.Data = time.Now()
	}
	if err := uc.registros.Create(ctx, registro); err != nil {
		return nil, err
	}
	return registro, nil
}

// List retorna o livro completo, do registro mais recente para o mais antigo.
func (uc *RegistroUseCase) List(ctx context.Context) ([]*entity.Registro, error) {
	return uc.registros.List(ctx)
}
