package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementa o porto ProdutoRepository sobre SQLite
// (usável com *sqlx.DB ou *sqlx.Tx).
type ProdutoRepo struct {
	ext sqlx.ExtContext
}

// NewProdutoRepository constrói o adaptador.
func NewProdutoRepository(ext sqlx.ExtContext) *ProdutoRepo {
	return &ProdutoRepo{ext: ext}
}

const produtoCols = `id, nome, preco_unitario, unidade, categoria_id,
	quantidade, quantidade_minima, quantidade_maxima, ativo`

// Create insere um produto e preenche o ID gerado.
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	res, err := r.ext.ExecContext(ctx, `
		INSERT INTO produto (nome, preco_unitario, unidade, categoria_id,
			quantidade, quantidade_minima, quantidade_maxima, ativo)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		produto.Nome, produto.Preco, produto.Unidade, produto.CategoriaID,
		produto.Quantidade, produto.QuantidadeMinima, produto.QuantidadeMaxima)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	produto.ID = id
	produto.Ativo = true
	return nil
}

// GetByID busca um produto ativo por ID. Retorna nil sem erro se não existir.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	var p entity.Produto
	err := sqlx.GetContext(ctx, r.ext, &p,
		`SELECT `+produtoCols+` FROM produto WHERE id = ? AND ativo = 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza um produto ativo. Retorna domain.ErrNotFound se nenhuma
// linha for afetada.
func (r *ProdutoRepo) Update(ctx context.Context, id int64, produto *entity.Produto) error {
	res, err := r.ext.ExecContext(ctx, `
		UPDATE produto SET nome = ?, preco_unitario = ?, unidade = ?,
			categoria_id = ?, quantidade = ?, quantidade_minima = ?,
			quantidade_maxima = ?
		WHERE id = ? AND ativo = 1`,
		produto.Nome, produto.Preco, produto.Unidade, produto.CategoriaID,
		produto.Quantidade, produto.QuantidadeMinima, produto.QuantidadeMaxima, id)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("produto %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete marca o produto como inativo (soft delete).
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.ext.ExecContext(ctx,
		`UPDATE produto SET ativo = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// List retorna todos os produtos ativos.
func (r *ProdutoRepo) List(ctx context.Context) ([]*entity.Produto, error) {
	var list []*entity.Produto
	err := sqlx.SelectContext(ctx, r.ext, &list,
		`SELECT `+produtoCols+` FROM produto WHERE ativo = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	return list, nil
}

// AdjustPrices multiplica o preço de todos os produtos ativos pelo fator.
// O fator entra como string para não perder precisão na conversão do driver.
func (r *ProdutoRepo) AdjustPrices(ctx context.Context, fator decimal.Decimal) error {
	_, err := r.ext.ExecContext(ctx,
		`UPDATE produto SET preco_unitario = preco_unitario * CAST(? AS REAL) WHERE ativo = 1`,
		fator.String())
	if err != nil {
		return fmt.Errorf("ajustar preços: %w", err)
	}
	return nil
}

// DeactivateByCategoria desativa todos os produtos da categoria informada.
func (r *ProdutoRepo) DeactivateByCategoria(ctx context.Context, categoriaID int64) error {
	_, err := r.ext.ExecContext(ctx,
		`UPDATE produto SET ativo = 0 WHERE categoria_id = ?`, categoriaID)
	if err != nil {
		return fmt.Errorf("desativar produtos da categoria: %w", err)
	}
	return nil
}
