package repository

import (
	"context"

	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// CategoriaRepository define o porto de persistência para Categoria (DIP).
// Todas as leituras consideram apenas linhas ativas (soft delete).
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entity.Categoria) error
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	Update(ctx context.Context, id int64, categoria *entity.Categoria) error
	// Delete marca a categoria como inativa. A desativação em cascata dos
	// produtos fica a cargo do caso de uso, na mesma transação.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Categoria, error)
}
