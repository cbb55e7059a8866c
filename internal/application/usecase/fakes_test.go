package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// Fakes em memória compartilhados pelos testes do pacote. Implementam os
// portos de repositório com o mesmo comportamento de soft delete dos
// adaptadores reais.

type fakeCategoriaRepo struct {
	seq   int64
	itens map[int64]*entity.Categoria
}

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{itens: make(map[int64]*entity.Categoria)}
}

func (f *fakeCategoriaRepo) Create(_ context.Context, c *entity.Categoria) error {
	f.seq++
	c.ID = f.seq
	copia := *c
	f.itens[c.ID] = &copia
	return nil
}

func (f *fakeCategoriaRepo) GetByID(_ context.Context, id int64) (*entity.Categoria, error) {
	c, ok := f.itens[id]
	if !ok || !c.Ativo {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeCategoriaRepo) Update(_ context.Context, id int64, c *entity.Categoria) error {
	atual, ok := f.itens[id]
	if !ok || !atual.Ativo {
		return domain.ErrNotFound
	}
	atual.Nome = c.Nome
	atual.Tamanho = c.Tamanho
	atual.Embalagem = c.Embalagem
	return nil
}

func (f *fakeCategoriaRepo) Delete(_ context.Context, id int64) error {
	if c, ok := f.itens[id]; ok {
		c.Ativo = false
	}
	return nil
}

func (f *fakeCategoriaRepo) List(_ context.Context) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range f.itens {
		if c.Ativo {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

type fakeProdutoRepo struct {
	seq   int64
	itens map[int64]*entity.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{itens: make(map[int64]*entity.Produto)}
}

func (f *fakeProdutoRepo) Create(_ context.Context, p *entity.Produto) error {
	f.seq++
	p.ID = f.seq
	copia := *p
	f.itens[p.ID] = &copia
	return nil
}

func (f *fakeProdutoRepo) GetByID(_ context.Context, id int64) (*entity.Produto, error) {
	p, ok := f.itens[id]
	if !ok || !p.Ativo {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProdutoRepo) Update(_ context.Context, id int64, p *entity.Produto) error {
	atual, ok := f.itens[id]
	if !ok || !atual.Ativo {
		return domain.ErrNotFound
	}
	atual.Nome = p.Nome
	atual.Preco = p.Preco
	atual.Unidade = p.Unidade
	atual.CategoriaID = p.CategoriaID
	atual.Quantidade = p.Quantidade
	atual.QuantidadeMinima = p.QuantidadeMinima
	atual.QuantidadeMaxima = p.QuantidadeMaxima
	return nil
}

func (f *fakeProdutoRepo) Delete(_ context.Context, id int64) error {
	if p, ok := f.itens[id]; ok {
		p.Ativo = false
	}
	return nil
}

func (f *fakeProdutoRepo) List(_ context.Context) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.itens {
		if p.Ativo {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) AdjustPrices(_ context.Context, fator decimal.Decimal) error {
	for _, p := range f.itens {
		if p.Ativo {
			p.Preco = p.Preco.Mul(fator)
		}
	}
	return nil
}

func (f *fakeProdutoRepo) DeactivateByCategoria(_ context.Context, categoriaID int64) error {
	for _, p := range f.itens {
		if p.CategoriaID == categoriaID {
			p.Ativo = false
		}
	}
	return nil
}

type fakeRegistroRepo struct {
	seq   int64
	itens []*entity.Registro
	// failErr, quando definido, faz Create falhar. Usado para exercitar o
	// rollback da transação de mutação + apêndice.
	failErr error
}

func newFakeRegistroRepo() *fakeRegistroRepo { return &fakeRegistroRepo{} }

func (f *fakeRegistroRepo) Create(_ context.Context, r *entity.Registro) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.seq++
	r.ID = f.seq
	copia := *r
	f.itens = append(f.itens, &copia)
	return nil
}

func (f *fakeRegistroRepo) List(_ context.Context) ([]*entity.Registro, error) {
	// Mais recente primeiro, como no adaptador real.
	out := make([]*entity.Registro, 0, len(f.itens))
	for i := len(f.itens) - 1; i >= 0; i-- {
		copia := *f.itens[i]
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeRegistroRepo) ultimo() *entity.Registro {
	if len(f.itens) == 0 {
		return nil
	}
	return f.itens[len(f.itens)-1]
}

// fakeTxRunner executa a função diretamente sobre os fakes. Quando a função
// retorna erro, desfaz o estado dos produtos e registros para simular o
// rollback do banco.
type fakeTxRunner struct {
	repos TxRepos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r TxRepos) error) error {
	produtos := f.repos.Produtos.(*fakeProdutoRepo)
	registros := f.repos.Registros.(*fakeRegistroRepo)

	produtosAntes := make(map[int64]entity.Produto, len(produtos.itens))
	for id, p := range produtos.itens {
		produtosAntes[id] = *p
	}
	seqAntes := produtos.seq
	registrosAntes := len(registros.itens)

	if err := fn(f.repos); err != nil {
		produtos.itens = make(map[int64]*entity.Produto, len(produtosAntes))
		for id := range produtosAntes {
			copia := produtosAntes[id]
			produtos.itens[id] = &copia
		}
		produtos.seq = seqAntes
		registros.itens = registros.itens[:registrosAntes]
		return err
	}
	return nil
}

var errBanco = errors.New("banco indisponível")
