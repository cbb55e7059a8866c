package tcp

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/application/usecase"
	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
)

// Repositórios em memória para exercitar o dispatcher e o servidor de ponta
// a ponta sem banco. Reproduzem o soft delete e a ordenação do livro dos
// adaptadores reais.

type repositoriosMemoria struct {
	categorias *memCategorias
	produtos   *memProdutos
	registros  *memRegistros
	relatorios *memRelatorios
	tx         usecase.TxRunner
}

func novosRepositoriosMemoria() *repositoriosMemoria {
	categorias := &memCategorias{itens: make(map[int64]*entity.Categoria)}
	produtos := &memProdutos{itens: make(map[int64]*entity.Produto)}
	registros := &memRegistros{}
	r := &repositoriosMemoria{
		categorias: categorias,
		produtos:   produtos,
		registros:  registros,
		relatorios: &memRelatorios{produtos: produtos, registros: registros},
	}
	r.tx = &memTxRunner{repos: usecase.TxRepos{
		Categorias: categorias,
		Produtos:   produtos,
		Registros:  registros,
	}}
	return r
}

// memTxRunner executa a função direto sobre os repositórios. Os testes de
// rollback vivem no pacote de casos de uso; aqui a transação é transparente.
type memTxRunner struct {
	repos usecase.TxRepos
}

func (m *memTxRunner) Run(_ context.Context, fn func(r usecase.TxRepos) error) error {
	return fn(m.repos)
}

type memCategorias struct {
	seq   int64
	itens map[int64]*entity.Categoria
}

func (m *memCategorias) Create(_ context.Context, c *entity.Categoria) error {
	m.seq++
	c.ID = m.seq
	copia := *c
	m.itens[c.ID] = &copia
	return nil
}

func (m *memCategorias) GetByID(_ context.Context, id int64) (*entity.Categoria, error) {
	c, ok := m.itens[id]
	if !ok || !c.Ativo {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (m *memCategorias) Update(_ context.Context, id int64, c *entity.Categoria) error {
	atual, ok := m.itens[id]
	if !ok || !atual.Ativo {
		return domain.ErrNotFound
	}
	atual.Nome = c.Nome
	atual.Tamanho = c.Tamanho
	atual.Embalagem = c.Embalagem
	return nil
}

func (m *memCategorias) Delete(_ context.Context, id int64) error {
	if c, ok := m.itens[id]; ok {
		c.Ativo = false
	}
	return nil
}

func (m *memCategorias) List(_ context.Context) ([]*entity.Categoria, error) {
	out := make([]*entity.Categoria, 0, len(m.itens))
	for _, c := range m.itens {
		if c.Ativo {
			copia := *c
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memProdutos struct {
	seq   int64
	itens map[int64]*entity.Produto
}

func (m *memProdutos) Create(_ context.Context, p *entity.Produto) error {
	m.seq++
	p.ID = m.seq
	copia := *p
	m.itens[p.ID] = &copia
	return nil
}

func (m *memProdutos) GetByID(_ context.Context, id int64) (*entity.Produto, error) {
	p, ok := m.itens[id]
	if !ok || !p.Ativo {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (m *memProdutos) Update(_ context.Context, id int64, p *entity.Produto) error {
	atual, ok := m.itens[id]
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

func (m *memProdutos) Delete(_ context.Context, id int64) error {
	if p, ok := m.itens[id]; ok {
		p.Ativo = false
	}
	return nil
}

func (m *memProdutos) List(_ context.Context) ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(m.itens))
	for _, p := range m.itens {
		if p.Ativo {
			copia := *p
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProdutos) AdjustPrices(_ context.Context, fator decimal.Decimal) error {
	for _, p := range m.itens {
		if p.Ativo {
			p.Preco = p.Preco.Mul(fator)
		}
	}
	return nil
}

func (m *memProdutos) DeactivateByCategoria(_ context.Context, categoriaID int64) error {
	for _, p := range m.itens {
		if p.CategoriaID == categoriaID {
			p.Ativo = false
		}
	}
	return nil
}

type memRegistros struct {
	seq   int64
	itens []*entity.Registro
}

func (m *memRegistros) Create(_ context.Context, r *entity.Registro) error {
	m.seq++
	r.ID = m.seq
	copia := *r
	m.itens = append(m.itens, &copia)
	return nil
}

func (m *memRegistros) List(_ context.Context) ([]*entity.Registro, error) {
	out := make([]*entity.Registro, 0, len(m.itens))
	for _, r := range m.itens {
		copia := *r
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Data.Equal(out[j].Data) {
			return out[i].Data.After(out[j].Data)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// memRelatorios projeta o livro sobre os produtos, inclusive os já
// desativados, espelhando a junção do adaptador real.
type memRelatorios struct {
	produtos  *memProdutos
	registros *memRegistros
}

func (m *memRelatorios) List(ctx context.Context) ([]*entity.Relatorio, error) {
	registros, err := m.registros.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Relatorio
	for _, r := range registros {
		p, ok := m.produtos.itens[r.ProdutoID]
		if !ok {
			continue
		}
		out = append(out, &entity.Relatorio{
			ID:           r.ID,
			ProdutoID:    r.ProdutoID,
			NomeProduto:  p.Nome,
			Quantidade:   r.Quantidade,
			Movimentacao: string(r.Movimentacao),
			Status:       string(r.Status),
			Data:         r.Data,
		})
	}
	return out, nil
}
