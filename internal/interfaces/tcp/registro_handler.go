package tcp

import (
	"context"
	"encoding/json"

	"github.com/lorendev/estoque-api/internal/application/usecase"
	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// registroHandler agrupa as ações do livro de movimentações. A criação
// direta é uma entrada secundária para testes e operação: não passa pela
// correlação com mutações de produto.
type registroHandler struct {
	uc *usecase.RegistroUseCase
}

func (h *registroHandler) acoes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"create": h.criar, "criar": h.criar,
		"list": h.listar, "listar": h.listar,
	}
}

func (h *registroHandler) criar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	registro, err := decodeDados[entity.Registro](dados)
	if err != nil {
		return nil, err
	}
	criado, err := h.uc.Create(ctx, &registro)
	if err != nil {
		return nil, err
	}
	return sucesso("Registro criado com sucesso", criado), nil
}

func (h *registroHandler) listar(ctx context.Context, _ json.RawMessage) (*Resposta, error) {
	registros, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return sucesso("Lista de registros", registros), nil
}
