package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementa o porto CategoriaRepository sobre PostgreSQL
// (usável com pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create insere uma categoria e preenche o ID gerado.
func (r *CategoriaRepo) Create(ctx context.Context, categoria *entity.Categoria) error {
	query := `
		INSERT INTO categoria (nome, tamanho, embalagem, ativo)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		categoria.Nome, categoria.Tamanho, categoria.Embalagem,
	).Scan(&categoria.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	categoria.Ativo = true
	return nil
}

// GetByID busca uma categoria ativa por ID. Retorna nil sem erro se não existir.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	query := `
		SELECT id, nome, tamanho, embalagem, ativo
		FROM categoria WHERE id = $1 AND ativo`
	var c entity.Categoria
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nome, &c.Tamanho, &c.Embalagem, &c.Ativo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update atualiza uma categoria ativa. Retorna domain.ErrNotFound se
// nenhuma linha for afetada.
func (r *CategoriaRepo) Update(ctx context.Context, id int64, categoria *entity.Categoria) error {
	query := `
		UPDATE categoria SET nome = $2, tamanho = $3, embalagem = $4
		WHERE id = $1 AND ativo`
	cmd, err := r.q.Exec(ctx, query, id, categoria.Nome, categoria.Tamanho, categoria.Embalagem)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("categoria %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete marca a categoria como inativa (soft delete).
func (r *CategoriaRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE categoria SET ativo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}

// List retorna todas as categorias ativas.
func (r *CategoriaRepo) List(ctx context.Context) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nome, tamanho, embalagem, ativo
		FROM categoria WHERE ativo ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Tamanho, &c.Embalagem, &c.Ativo); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
