package usecase

import (
	"context"

	"github.com/lorendev/estoque-api/internal/domain/repository"
)

// TxRepos agrupa os repositórios atados a uma mesma transação.
type TxRepos struct {
	Categorias repository.CategoriaRepository
	Produtos   repository.ProdutoRepository
	Registros  repository.RegistroRepository
}

// TxRunner executa uma função dentro de uma transação do banco, passando
// repositórios atados a essa transação. Garante que a mutação da entidade e
// o apêndice no livro de movimentações formem uma unidade atômica: se o
// apêndice falhar, a mutação é desfeita.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
