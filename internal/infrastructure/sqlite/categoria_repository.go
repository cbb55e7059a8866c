package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementa o porto CategoriaRepository sobre SQLite
// (usável com *sqlx.DB ou *sqlx.Tx).
type CategoriaRepo struct {
	ext sqlx.ExtContext
}

// NewCategoriaRepository constrói o adaptador.
func NewCategoriaRepository(ext sqlx.ExtContext) *CategoriaRepo {
	return &CategoriaRepo{ext: ext}
}

// Create insere uma categoria e preenche o ID gerado.
func (r *CategoriaRepo) Create(ctx context.Context, categoria *entity.Categoria) error {
	res, err := r.ext.ExecContext(ctx,
		`INSERT INTO categoria (nome, tamanho, embalagem, ativo) VALUES (?, ?, ?, 1)`,
		categoria.Nome, categoria.Tamanho, categoria.Embalagem)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	categoria.ID = id
	categoria.Ativo = true
	return nil
}

// GetByID busca uma categoria ativa por ID. Retorna nil sem erro se não existir.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := sqlx.GetContext(ctx, r.ext, &c,
		`SELECT id, nome, tamanho, embalagem, ativo FROM categoria WHERE id = ? AND ativo = 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update atualiza uma categoria ativa. Retorna domain.ErrNotFound se
// nenhuma linha for afetada.
func (r *CategoriaRepo) Update(ctx context.Context, id int64, categoria *entity.Categoria) error {
	res, err := r.ext.ExecContext(ctx,
		`UPDATE categoria SET nome = ?, tamanho = ?, embalagem = ? WHERE id = ? AND ativo = 1`,
		categoria.Nome, categoria.Tamanho, categoria.Embalagem, id)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("categoria %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete marca a categoria como inativa (soft delete).
func (r *CategoriaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.ext.ExecContext(ctx,
		`UPDATE categoria SET ativo = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}

// List retorna todas as categorias ativas.
func (r *CategoriaRepo) List(ctx context.Context) ([]*entity.Categoria, error) {
	var list []*entity.Categoria
	err := sqlx.SelectContext(ctx, r.ext, &list,
		`SELECT id, nome, tamanho, embalagem, ativo FROM categoria WHERE ativo = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	return list, nil
}
