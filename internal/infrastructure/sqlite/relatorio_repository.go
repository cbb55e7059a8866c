package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo implementa a projeção de relatório sobre SQLite. A junção
// alcança produtos inativos: o histórico sobrevive ao soft delete.
type RelatorioRepo struct {
	ext sqlx.ExtContext
}

// NewRelatorioRepository constrói o adaptador.
func NewRelatorioRepository(ext sqlx.ExtContext) *RelatorioRepo {
	return &RelatorioRepo{ext: ext}
}

// List retorna as linhas do relatório, data decrescente.
func (r *RelatorioRepo) List(ctx context.Context) ([]*entity.Relatorio, error) {
	var list []*entity.Relatorio
	err := sqlx.SelectContext(ctx, r.ext, &list, `
		SELECT r.id, r.produto_id, p.nome AS nome_produto, r.quantidade,
			r.movimentacao, r.status, r.data
		FROM registro r
		INNER JOIN produto p ON r.produto_id = p.id
		ORDER BY r.data DESC, r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list relatório: %w", err)
	}
	return list, nil
}
