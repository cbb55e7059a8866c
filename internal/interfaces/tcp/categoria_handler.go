package tcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lorendev/estoque-api/internal/application/usecase"
	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// categoriaHandler agrupa as ações da entidade categoria.
type categoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

func (h *categoriaHandler) acoes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"create": h.criar, "criar": h.criar,
		"find": h.encontrar, "encontrar": h.encontrar,
		"update": h.atualizar, "atualizar": h.atualizar,
		"delete": h.deletar, "deletar": h.deletar,
		"list": h.listar, "listar": h.listar,
	}
}

func (h *categoriaHandler) criar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	categoria, err := decodeDados[entity.Categoria](dados)
	if err != nil {
		return nil, err
	}
	criada, err := h.uc.Create(ctx, &categoria)
	if err != nil {
		return nil, err
	}
	return sucesso("Categoria criada", criada), nil
}

func (h *categoriaHandler) encontrar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	payload, err := decodeDados[idPayload](dados)
	if err != nil {
		return nil, err
	}
	encontrada, err := h.uc.GetByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}
	if encontrada == nil {
		return erro("Categoria não encontrada"), nil
	}
	return sucesso("Categoria encontrada", encontrada), nil
}

func (h *categoriaHandler) atualizar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	categoria, err := decodeDados[entity.Categoria](dados)
	if err != nil {
		return nil, err
	}
	atualizada, err := h.uc.Update(ctx, categoria.ID, &categoria)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return erro("Categoria não encontrada"), nil
		}
		return nil, err
	}
	return sucesso("Categoria atualizada", atualizada), nil
}

func (h *categoriaHandler) deletar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	payload, err := decodeDados[idPayload](dados)
	if err != nil {
		return nil, err
	}
	excluida, err := h.uc.Delete(ctx, payload.ID)
	if err != nil {
		return nil, err
	}
	if !excluida {
		return erro("Categoria não encontrada"), nil
	}
	return sucesso("Categoria deletada", nil), nil
}

func (h *categoriaHandler) listar(ctx context.Context, _ json.RawMessage) (*Resposta, error) {
	categorias, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return sucesso("Lista de categorias", categorias), nil
}
