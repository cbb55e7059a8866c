package repository

import (
	"context"

	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// RelatorioRepository define o porto de leitura do relatório de
// movimentações (junção registro × produto, data decrescente).
type RelatorioRepository interface {
	List(ctx context.Context) ([]*entity.Relatorio, error)
}
