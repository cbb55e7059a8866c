package tcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/application/usecase"
	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// produtoHandler agrupa as ações da entidade produto, incluindo os dois
// ajustes de preço em massa que só existem aqui.
type produtoHandler struct {
	uc *usecase.ProdutoUseCase
}

func (h *produtoHandler) acoes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"create": h.criar, "criar": h.criar,
		"find": h.encontrar, "encontrar": h.encontrar,
		"update": h.atualizar, "atualizar": h.atualizar,
		"delete": h.deletar, "deletar": h.deletar,
		"list": h.listar, "listar": h.listar,
		"increase": h.aumentar, "aumentar": h.aumentar,
		"decrease": h.diminuir, "diminuir": h.diminuir,
	}
}

func (h *produtoHandler) criar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	produto, err := decodeDados[entity.Produto](dados)
	if err != nil {
		return nil, err
	}
	criado, err := h.uc.Create(ctx, &produto)
	if err != nil {
		return nil, err
	}
	return sucesso("Produto criado", criado), nil
}

func (h *produtoHandler) encontrar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	payload, err := decodeDados[idPayload](dados)
	if err != nil {
		return nil, err
	}
	encontrado, err := h.uc.GetByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}
	if encontrado == nil {
		return erro("Produto não encontrado"), nil
	}
	return sucesso("Produto encontrado", encontrado), nil
}

func (h *produtoHandler) atualizar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	produto, err := decodeDados[entity.Produto](dados)
	if err != nil {
		return nil, err
	}
	atualizado, err := h.uc.Update(ctx, produto.ID, &produto)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return erro("Produto não encontrado"), nil
		}
		return nil, err
	}
	return sucesso("Produto atualizado", atualizado), nil
}

func (h *produtoHandler) deletar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	payload, err := decodeDados[idPayload](dados)
	if err != nil {
		return nil, err
	}
	excluido, err := h.uc.Delete(ctx, payload.ID)
	if err != nil {
		return nil, err
	}
	if !excluido {
		return erro("Produto não encontrado"), nil
	}
	return sucesso("Produto deletado", nil), nil
}

func (h *produtoHandler) listar(ctx context.Context, _ json.RawMessage) (*Resposta, error) {
	produtos, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return sucesso("Lista de produtos", produtos), nil
}

func (h *produtoHandler) aumentar(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	percentual, err := decodeDados[decimal.Decimal](dados)
	if err != nil {
		return nil, err
	}
	if err := h.uc.IncreasePrices(ctx, percentual); err != nil {
		return nil, err
	}
	return sucesso("Preços aumentados com sucesso", nil), nil
}

func (h *produtoHandler) diminuir(ctx context.Context, dados json.RawMessage) (*Resposta, error) {
	percentual, err := decodeDados[decimal.Decimal](dados)
	if err != nil {
		return nil, err
	}
	if err := h.uc.DecreasePrices(ctx, percentual); err != nil {
		return nil, err
	}
	return sucesso("Preços reduzidos com sucesso", nil), nil
}
