package tcp

import (
	"context"
	"encoding/json"

	"github.com/lorendev/estoque-api/internal/application/usecase"
)

// relatorioHandler expõe a única ação do relatório: listar a projeção.
type relatorioHandler struct {
	uc *usecase.RelatorioUseCase
}

func (h *relatorioHandler) acoes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"list": h.listar, "listar": h.listar,
	}
}

func (h *relatorioHandler) listar(ctx context.Context, _ json.RawMessage) (*Resposta, error) {
	linhas, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return sucesso("Lista do relatório", linhas), nil
}
