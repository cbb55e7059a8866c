package usecase

import (
	"context"

	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

// RelatorioUseCase é uma passagem direta para a projeção de relatório.
type RelatorioUseCase struct {
	relatorios repository.RelatorioRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(relatorios repository.RelatorioRepository) *RelatorioUseCase {
	return &RelatorioUseCase{relatorios: relatorios}
}

// List retorna as linhas do relatório, da mais recente para a mais antiga.
func (uc *RelatorioUseCase) List(ctx context.Context) ([]*entity.Relatorio, error) {
	return uc.relatorios.List(ctx)
}
