package postgres

import (
	"context"
	"fmt"

	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo implementa o porto append-only do livro de movimentações
// sobre PostgreSQL (usável com pool ou tx).
type RegistroRepo struct {
	q Querier
}

// NewRegistroRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRegistroRepository(q Querier) *RegistroRepo {
	return &RegistroRepo{q: q}
}

// Create apensa um registro e preenche o ID gerado.
func (r *RegistroRepo) Create(ctx context.Context, registro *entity.Registro) error {
	query := `
		INSERT INTO registro (data, produto_id, quantidade, movimentacao, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		registro.Data, registro.ProdutoID, registro.Quantidade,
		registro.Movimentacao, registro.Status,
	).Scan(&registro.ID)
	if err != nil {
		return fmt.Errorf("insert registro: %w", err)
	}
	return nil
}

// List retorna todos os registros, data decrescente (id como desempate).
func (r *RegistroRepo) List(ctx context.Context) ([]*entity.Registro, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, data, produto_id, quantidade, movimentacao, status
		FROM registro ORDER BY data DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registros: %w", err)
	}
	defer rows.Close()
	var list []*entity.Registro
	for rows.Next() {
		var reg entity.Registro
		if err := rows.Scan(&reg.ID, &reg.Data, &reg.ProdutoID, &reg.Quantidade,
			&reg.Movimentacao, &reg.Status); err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}
