package tcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lorendev/estoque-api/internal/application/usecase"
	"github.com/lorendev/estoque-api/pkg/logger"
)

// handlerFunc é a unidade de lógica por (entidade, ação): decodifica o
// payload, chama exatamente um método de caso de uso e embrulha o resultado.
type handlerFunc func(ctx context.Context, dados json.RawMessage) (*Resposta, error)

// Dispatcher roteia requisições por (entidade, ação) sobre uma tabela
// imutável construída uma única vez no start. É a fronteira obrigatória de
// captura de erros: toda requisição rende exatamente um envelope de
// resposta, nunca uma falha propagada ao worker de conexão.
type Dispatcher struct {
	entidades map[string]map[string]handlerFunc
	log       *logger.Logger
}

// NewDispatcher monta a tabela de rotas. Os nomes canônicos de entidade e
// ação são os do protocolo atual; os nomes legados em português continuam
// aceitos como apelidos para clientes antigos.
func NewDispatcher(
	log *logger.Logger,
	categorias *usecase.CategoriaUseCase,
	produtos *usecase.ProdutoUseCase,
	registros *usecase.RegistroUseCase,
	relatorios *usecase.RelatorioUseCase,
) *Dispatcher {
	d := &Dispatcher{
		entidades: make(map[string]map[string]handlerFunc),
		log:       log,
	}

	registrar := func(acoes map[string]handlerFunc, nomes ...string) {
		for _, nome := range nomes {
			d.entidades[nome] = acoes
		}
	}
	registrar((&categoriaHandler{uc: categorias}).acoes(), "category", "categoria")
	registrar((&produtoHandler{uc: produtos}).acoes(), "product", "produto")
	registrar((&registroHandler{uc: registros}).acoes(), "movement", "registro")
	registrar((&relatorioHandler{uc: relatorios}).acoes(), "report", "relatorio")

	return d
}

// Dispatch processa uma linha de requisição e devolve uma linha de
// resposta serializada. Nunca retorna vazio nem propaga pânico.
func (d *Dispatcher) Dispatch(ctx context.Context, linha []byte) (saida []byte) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Any("panic", r).Msg("pânico ao processar requisição")
			saida = encode(erro(fmt.Sprintf("erro interno: %v", r)))
		}
	}()

	var req Requisicao
	if err := json.Unmarshal(linha, &req); err != nil {
		return encode(erro("Requisição inválida: " + err.Error()))
	}

	entidade := strings.ToLower(strings.TrimSpace(req.Entidade))
	acao := strings.ToLower(strings.TrimSpace(req.Acao))

	acoes, ok := d.entidades[entidade]
	if !ok {
		return encode(erro(fmt.Sprintf("Entidade desconhecida: %s", req.Entidade)))
	}
	handler, ok := acoes[acao]
	if !ok {
		return encode(erro(fmt.Sprintf("Ação desconhecida: %s", req.Acao)))
	}

	resposta, err := handler(ctx, req.Dados)
	if err != nil {
		d.log.Warn().Err(err).
			Str("entidade", entidade).
			Str("acao", acao).
			Msg("requisição falhou")
		return encode(erro(err.Error()))
	}

	d.log.Debug().
		Str("entidade", entidade).
		Str("acao", acao).
		Str("status", resposta.Status).
		Msg("requisição processada")
	return encode(resposta)
}

func encode(r *Resposta) []byte {
	out, err := json.Marshal(r)
	if err != nil {
		// Resposta sem Dados nunca falha ao serializar.
		out, _ = json.Marshal(erro("erro ao serializar resposta: " + err.Error()))
	}
	return out
}
