package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência para Produto (DIP).
// GetByID e List retornam apenas produtos ativos; Delete é lógico.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	GetByID(ctx context.Context, id int64) (*entity.Produto, error)
	Update(ctx context.Context, id int64, produto *entity.Produto) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Produto, error)
	// AdjustPrices multiplica o preço de todos os produtos ativos pelo
	// fator informado (ex.: 1.10 para +10%).
	AdjustPrices(ctx context.Context, fator decimal.Decimal) error
	// DeactivateByCategoria desativa todos os produtos de uma categoria,
	// usado pela exclusão em cascata de categoria.
	DeactivateByCategoria(ctx context.Context, categoriaID int64) error
}
