package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementa o porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoCols = `id, nome, preco_unitario, unidade, categoria_id,
	quantidade, quantidade_minima, quantidade_maxima, ativo`

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(&p.ID, &p.Nome, &p.Preco, &p.Unidade, &p.CategoriaID,
		&p.Quantidade, &p.QuantidadeMinima, &p.QuantidadeMaxima, &p.Ativo)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create insere um produto e preenche o ID gerado.
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	query := `
		INSERT INTO produto (nome, preco_unitario, unidade, categoria_id,
			quantidade, quantidade_minima, quantidade_maxima, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		produto.Nome, produto.Preco, produto.Unidade, produto.CategoriaID,
		produto.Quantidade, produto.QuantidadeMinima, produto.QuantidadeMaxima,
	).Scan(&produto.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	produto.Ativo = true
	return nil
}

// GetByID busca um produto ativo por ID. Retorna nil sem erro se não existir.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produto WHERE id = $1 AND ativo`
	p, err := scanProduto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// Update atualiza um produto ativo. Retorna domain.ErrNotFound se nenhuma
// linha for afetada.
func (r *ProdutoRepo) Update(ctx context.Context, id int64, produto *entity.Produto) error {
	query := `
		UPDATE produto SET nome = $2, preco_unitario = $3, unidade = $4,
			categoria_id = $5, quantidade = $6, quantidade_minima = $7,
			quantidade_maxima = $8
		WHERE id = $1 AND ativo`
	cmd, err := r.q.Exec(ctx, query,
		id, produto.Nome, produto.Preco, produto.Unidade, produto.CategoriaID,
		produto.Quantidade, produto.QuantidadeMinima, produto.QuantidadeMaxima,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("produto %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete marca o produto como inativo (soft delete).
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE produto SET ativo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// List retorna todos os produtos ativos.
func (r *ProdutoRepo) List(ctx context.Context) ([]*entity.Produto, error) {
	rows, err := r.q.Query(ctx, `SELECT `+produtoCols+` FROM produto WHERE ativo ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// AdjustPrices multiplica o preço de todos os produtos ativos pelo fator.
func (r *ProdutoRepo) AdjustPrices(ctx context.Context, fator decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE produto SET preco_unitario = preco_unitario * $1 WHERE ativo`, fator)
	if err != nil {
		return fmt.Errorf("ajustar preços: %w", err)
	}
	return nil
}

// DeactivateByCategoria desativa todos os produtos da categoria informada.
func (r *ProdutoRepo) DeactivateByCategoria(ctx context.Context, categoriaID int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE produto SET ativo = FALSE WHERE categoria_id = $1`, categoriaID)
	if err != nil {
		return fmt.Errorf("desativar produtos da categoria: %w", err)
	}
	return nil
}
