package entity

// Tamanho classifica o porte dos produtos de uma categoria.
type Tamanho string

const (
	TamanhoPequeno Tamanho = "PEQUENO"
	TamanhoMedio   Tamanho = "MEDIO"
	TamanhoGrande  Tamanho = "GRANDE"
)

// Valido informa se o valor corresponde a um porte conhecido.
func (t Tamanho) Valido() bool {
	switch t {
	case TamanhoPequeno, TamanhoMedio, TamanhoGrande:
		return true
	}
	return false
}

// Embalagem classifica a forma física predominante dos produtos da categoria.
type Embalagem string

const (
	EmbalagemLata     Embalagem = "LATA"
	EmbalagemVidro    Embalagem = "VIDRO"
	EmbalagemPlastico Embalagem = "PLASTICO"
)

// Valido informa se o valor corresponde a uma embalagem conhecida.
func (e Embalagem) Valido() bool {
	switch e {
	case EmbalagemLata, EmbalagemVidro, EmbalagemPlastico:
		return true
	}
	return false
}

// Categoria agrupa produtos com características comuns (porte e embalagem).
// A exclusão é lógica: o campo Ativo sai de circulação mas a linha permanece
// para que o histórico de movimentações continue íntegro.
type Categoria struct {
	ID        int64     `json:"id" db:"id"`
	Nome      string    `json:"nome" db:"nome"`
	Tamanho   Tamanho   `json:"tamanho" db:"tamanho"`
	Embalagem Embalagem `json:"embalagem" db:"embalagem"`
	Ativo     bool      `json:"-" db:"ativo"`
}
