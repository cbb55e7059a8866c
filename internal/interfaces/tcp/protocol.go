package tcp

import (
	"encoding/json"
	"fmt"
)

// Status possíveis de uma resposta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Requisicao é o envelope de entrada do protocolo: uma linha JSON nomeando
// a entidade alvo, a ação desejada e um payload opaco interpretado pelo
// handler correspondente.
type Requisicao struct {
	Acao     string          `json:"acao"`
	Entidade string          `json:"entidade"`
	Dados    json.RawMessage `json:"dados"`
}

// Resposta é o envelope de saída. Dados é presente em caso de sucesso,
// exceto em operações sem payload natural (delete, ajustes de preço).
type Resposta struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
	Dados    any    `json:"dados"`
}

func sucesso(mensagem string, dados any) *Resposta {
	return &Resposta{Status: StatusSuccess, Mensagem: mensagem, Dados: dados}
}

func erro(mensagem string) *Resposta {
	return &Resposta{Status: StatusError, Mensagem: mensagem}
}

// idPayload é o formato aceito pelas ações find e delete.
type idPayload struct {
	ID int64 `json:"id"`
}

// decodeDados converte o payload opaco da requisição no formato esperado
// pelo handler. Payloads malformados viram erro descritivo, nunca pânico.
func decodeDados[T any](dados json.RawMessage) (T, error) {
	var v T
	if len(dados) == 0 {
		return v, fmt.Errorf("dados ausentes na requisição")
	}
	if err := json.Unmarshal(dados, &v); err != nil {
		return v, fmt.Errorf("dados inválidos: %w", err)
	}
	return v, nil
}
