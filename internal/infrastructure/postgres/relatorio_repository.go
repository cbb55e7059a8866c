package postgres

import (
	"context"
	"fmt"

	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo implementa a projeção de relatório sobre PostgreSQL.
// A junção alcança produtos inativos de propósito: o histórico de um
// produto removido continua aparecendo no relatório.
type RelatorioRepo struct {
	q Querier
}

// NewRelatorioRepository constrói o adaptador.
func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// List retorna as linhas do relatório, data decrescente.
func (r *RelatorioRepo) List(ctx context.Context) ([]*entity.Relatorio, error) {
	rows, err := r.q.Query(ctx, `
		SELECT r.id, r.produto_id, p.nome AS nome_produto, r.quantidade,
			r.movimentacao, r.status, r.data
		FROM registro r
		INNER JOIN produto p ON r.produto_id = p.id
		ORDER BY r.data DESC, r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list relatório: %w", err)
	}
	defer rows.Close()
	var list []*entity.Relatorio
	for rows.Next() {
		var rel entity.Relatorio
		if err := rows.Scan(&rel.ID, &rel.ProdutoID, &rel.NomeProduto, &rel.Quantidade,
			&rel.Movimentacao, &rel.Status, &rel.Data); err != nil {
			return nil, fmt.Errorf("scan relatório: %w", err)
		}
		list = append(list, &rel)
	}
	return list, rows.Err()
}
