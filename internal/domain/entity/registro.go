package entity

import "time"

// Movimentacao indica a direção física de um registro de estoque.
type Movimentacao string

const (
	// MovimentacaoNenhum cobre alterações sem impacto de quantidade
	// (ex.: renomear um produto).
	MovimentacaoNenhum  Movimentacao = "NENHUM"
	MovimentacaoEntrada Movimentacao = "ENTRADA"
	MovimentacaoSaida   Movimentacao = "SAIDA"
)

// Valido informa se o valor corresponde a uma direção conhecida.
func (m Movimentacao) Valido() bool {
	switch m {
	case MovimentacaoNenhum, MovimentacaoEntrada, MovimentacaoSaida:
		return true
	}
	return false
}

// StatusRegistro descreve o resultado da operação que gerou o registro.
type StatusRegistro string

const (
	StatusAcima        StatusRegistro = "ACIMA"
	StatusAbaixo       StatusRegistro = "ABAIXO"
	StatusDentro       StatusRegistro = "DENTRO"
	StatusAdicionado   StatusRegistro = "ADICIONADO"
	StatusNomeAlterado StatusRegistro = "NOMEALTERADO"
	StatusDeletado     StatusRegistro = "DELETADO"
	StatusNenhum       StatusRegistro = "NENHUM"
)

// Valido informa se o valor corresponde a um status conhecido.
func (s StatusRegistro) Valido() bool {
	switch s {
	case StatusAcima, StatusAbaixo, StatusDentro, StatusAdicionado,
		StatusNomeAlterado, StatusDeletado, StatusNenhum:
		return true
	}
	return false
}

// Registro é uma entrada do livro de movimentações do estoque.
//
// O livro é append-only: registros nunca são atualizados nem excluídos, e
// toda mutação de produto gera exatamente um registro descrevendo o que
// mudou, em qual direção e com qual status.
type Registro struct {
	ID           int64          `json:"id" db:"id"`
	Data         time.Time      `json:"data" db:"data"`
	ProdutoID    int64          `json:"produtoId" db:"produto_id"`
	Quantidade   int64          `json:"quantidade" db:"quantidade"`
	Movimentacao Movimentacao   `json:"movimentacao" db:"movimentacao"`
	Status       StatusRegistro `json:"status" db:"status"`
}
