package entity

import "time"

// Relatorio é uma projeção de leitura que junta um registro de movimentação
// com o nome atual do produto. Não corresponde a uma tabela própria e nunca
// é persistida.
type Relatorio struct {
	ID           int64     `json:"id" db:"id"`
	ProdutoID    int64     `json:"produtoId" db:"produto_id"`
	NomeProduto  string    `json:"nomeProduto" db:"nome_produto"`
	Quantidade   int64     `json:"quantidade" db:"quantidade"`
	Movimentacao string    `json:"movimentacao" db:"movimentacao"`
	Status       string    `json:"status" db:"status"`
	Data         time.Time `json:"data" db:"data"`
}
