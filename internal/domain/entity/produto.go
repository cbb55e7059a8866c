package entity

import "github.com/shopspring/decimal"

func init() {
	// O protocolo serializa preços como número JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Produto representa um item do estoque.
//
// Preco usa decimal para evitar erros de arredondamento nos ajustes
// percentuais em massa. CategoriaID é uma referência fraca: a categoria é
// consultada por id e nunca removida a partir do produto.
type Produto struct {
	ID               int64           `json:"id" db:"id"`
	Nome             string          `json:"nome" db:"nome"`
	Preco            decimal.Decimal `json:"preco" db:"preco_unitario"`
	Unidade          string          `json:"unidade" db:"unidade"`
	CategoriaID      int64           `json:"categoriaId" db:"categoria_id"`
	Quantidade       int64           `json:"quantidade" db:"quantidade"`
	QuantidadeMinima int64           `json:"quantidadeMinima" db:"quantidade_minima"`
	QuantidadeMaxima int64           `json:"quantidadeMaxima" db:"quantidade_maxima"`
	Ativo            bool            `json:"-" db:"ativo"`
}
