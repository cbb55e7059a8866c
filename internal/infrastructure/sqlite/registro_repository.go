package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo implementa o porto append-only do livro de movimentações
// sobre SQLite.
type RegistroRepo struct {
	ext sqlx.ExtContext
}

// NewRegistroRepository constrói o adaptador.
func NewRegistroRepository(ext sqlx.ExtContext) *RegistroRepo {
	return &RegistroRepo{ext: ext}
}

// Create apensa um registro e preenche o ID gerado. A data é normalizada
// para UTC para que a ordenação textual do SQLite seja cronológica.
func (r *RegistroRepo) Create(ctx context.Context, registro *entity.Registro) error {
	registro.Data = registro.Data.UTC()
	res, err := r.ext.ExecContext(ctx, `
		INSERT INTO registro (data, produto_id, quantidade, movimentacao, status)
		VALUES (?, ?, ?, ?, ?)`,
		registro.Data, registro.ProdutoID, registro.Quantidade,
		registro.Movimentacao, registro.Status)
	if err != nil {
		return fmt.Errorf("insert registro: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert registro: %w", err)
	}
	registro.ID = id
	return nil
}

// List retorna todos os registros, data decrescente (id como desempate).
func (r *RegistroRepo) List(ctx context.Context) ([]*entity.Registro, error) {
	var list []*entity.Registro
	err := sqlx.SelectContext(ctx, r.ext, &list, `
		SELECT id, data, produto_id, quantidade, movimentacao, status
		FROM registro ORDER BY data DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registros: %w", err)
	}
	return list, nil
}
