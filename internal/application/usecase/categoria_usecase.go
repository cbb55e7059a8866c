package usecase

import (
	"context"
	"fmt"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

// CategoriaUseCase expõe o CRUD de categorias. Fora da exclusão em cascata,
// é uma passagem direta para o repositório.
type CategoriaUseCase struct {
	categorias repository.CategoriaRepository
	txRunner   TxRunner
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(categorias repository.CategoriaRepository, txRunner TxRunner) *CategoriaUseCase {
	return &CategoriaUseCase{categorias: categorias, txRunner: txRunner}
}

func validarCategoria(c *entity.Categoria) error {
	if c.Nome == "" {
		return fmt.Errorf("%w: nome da categoria é obrigatório", domain.ErrInvalidInput)
	}
	if !c.Tamanho.Valido() {
		return fmt.Errorf("%w: tamanho %q desconhecido", domain.ErrInvalidInput, c.Tamanho)
	}
	if !c.Embalagem.Valido() {
		return fmt.Errorf("%w: embalagem %q desconhecida", domain.ErrInvalidInput, c.Embalagem)
	}
	return nil
}

// Create persiste uma nova categoria; o banco atribui o id.
func (uc *CategoriaUseCase) Create(ctx context.Context, categoria *entity.Categoria) (*entity.Categoria, error) {
	if err := validarCategoria(categoria); err != nil {
		return nil, err
	}
	categoria.Ativo = true
	if err := uc.categorias.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// Update atualiza a categoria e retorna o estado persistido.
// Falha com domain.ErrNotFound se o id não existir.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int64, nova *entity.Categoria) (*entity.Categoria, error) {
	if err := validarCategoria(nova); err != nil {
		return nil, err
	}
	if err := uc.categorias.Update(ctx, id, nova); err != nil {
		return nil, err
	}
	return uc.categorias.GetByID(ctx, id)
}

// GetByID busca uma categoria ativa.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	return uc.categorias.GetByID(ctx, id)
}

// List retorna todas as categorias ativas.
func (uc *CategoriaUseCase) List(ctx context.Context) ([]*entity.Categoria, error) {
	return uc.categorias.List(ctx)
}

// Delete desativa a categoria e, em cascata na mesma transação, todos os
// produtos que a referenciam. Retorna false se a categoria não existir.
// A cascata não gera registros no livro de movimentações.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	existente, err := uc.categorias.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existente == nil {
		return false, nil
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Categorias.Delete(ctx, id); err != nil {
			return err
		}
		return r.Produtos.DeactivateByCategoria(ctx, id)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
