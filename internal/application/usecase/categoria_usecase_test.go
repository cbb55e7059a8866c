package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
)

func novoAmbienteCategoria() (*CategoriaUseCase, *fakeCategoriaRepo, *fakeProdutoRepo) {
	categorias := newFakeCategoriaRepo()
	produtos := newFakeProdutoRepo()
	tx := &fakeTxRunner{repos: TxRepos{
		Categorias: categorias,
		Produtos:   produtos,
		Registros:  newFakeRegistroRepo(),
	}}
	return NewCategoriaUseCase(categorias, tx), categorias, produtos
}

func categoriaExemplo() *entity.Categoria {
	return &entity.Categoria{
		Nome:      "Bebidas",
		Tamanho:   entity.TamanhoMedio,
		Embalagem: entity.EmbalagemVidro,
	}
}

func TestCategoriaCreate(t *testing.T) {
	uc, _, _ := novoAmbienteCategoria()

	criada, err := uc.Create(context.Background(), categoriaExemplo())
	require.NoError(t, err)
	assert.Equal(t, int64(1), criada.ID)
	assert.True(t, criada.Ativo)
}

func TestCategoriaCreateValidacao(t *testing.T) {
	uc, _, _ := novoAmbienteCategoria()
	ctx := context.Background()

	casos := []struct {
		nome    string
		mutacao func(c *entity.Categoria)
	}{
		{"sem nome", func(c *entity.Categoria) { c.Nome = "" }},
		{"tamanho inválido", func(c *entity.Categoria) { c.Tamanho = "GIGANTE" }},
		{"embalagem inválida", func(c *entity.Categoria) { c.Embalagem = "PAPEL" }},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			c := categoriaExemplo()
			caso.mutacao(c)
			_, err := uc.Create(ctx, c)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCategoriaUpdate(t *testing.T) {
	uc, _, _ := novoAmbienteCategoria()
	ctx := context.Background()

	criada, err := uc.Create(ctx, categoriaExemplo())
	require.NoError(t, err)

	nova := categoriaExemplo()
	nova.Nome = "Laticínios"
	nova.Embalagem = entity.EmbalagemPlastico

	atualizada, err := uc.Update(ctx, criada.ID, nova)
	require.NoError(t, err)
	assert.Equal(t, "Laticínios", atualizada.Nome)
	assert.Equal(t, entity.EmbalagemPlastico, atualizada.Embalagem)
}

func TestCategoriaUpdateInexistente(t *testing.T) {
	uc, _, _ := novoAmbienteCategoria()

	_, err := uc.Update(context.Background(), 42, categoriaExemplo())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoriaDeleteCascataDesativaProdutos(t *testing.T) {
	uc, categorias, produtos := novoAmbienteCategoria()
	ctx := context.Background()

	criada, err := uc.Create(ctx, categoriaExemplo())
	require.NoError(t, err)

	// Dois produtos na categoria, um fora dela.
	dentro1 := &entity.Produto{Nome: "Suco", Preco: decimal.NewFromInt(5), CategoriaID: criada.ID, Ativo: true}
	dentro2 := &entity.Produto{Nome: "Água", Preco: decimal.NewFromInt(2), CategoriaID: criada.ID, Ativo: true}
	fora := &entity.Produto{Nome: "Queijo", Preco: decimal.NewFromInt(20), CategoriaID: criada.ID + 1, Ativo: true}
	for _, p := range []*entity.Produto{dentro1, dentro2, fora} {
		require.NoError(t, produtos.Create(ctx, p))
	}

	ok, err := uc.Delete(ctx, criada.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	lida, err := categorias.GetByID(ctx, criada.ID)
	require.NoError(t, err)
	assert.Nil(t, lida)

	assert.False(t, produtos.itens[dentro1.ID].Ativo)
	assert.False(t, produtos.itens[dentro2.ID].Ativo)
	assert.True(t, produtos.itens[fora.ID].Ativo)
}

func TestCategoriaDeleteInexistente(t *testing.T) {
	uc, _, _ := novoAmbienteCategoria()

	ok, err := uc.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
