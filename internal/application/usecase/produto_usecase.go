package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lorendev/estoque-api/internal/domain"
	"github.com/lorendev/estoque-api/internal/domain/entity"
	"github.com/lorendev/estoque-api/internal/domain/repository"
)

var cem = decimal.NewFromInt(100)

// ProdutoUseCase concentra a única lógica de negócio com efeitos colaterais
// do sistema: toda operação que muda o estado de um produto gera, na mesma
// transação, exatamente um registro no livro de movimentações.
type ProdutoUseCase struct {
	produtos repository.ProdutoRepository
	txRunner TxRunner
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtos repository.ProdutoRepository, txRunner TxRunner) *ProdutoUseCase {
	return &ProdutoUseCase{produtos: produtos, txRunner: txRunner}
}

func validarProduto(p *entity.Produto) error {
	if p.Nome == "" {
		return fmt.Errorf("%w: nome do produto é obrigatório", domain.ErrInvalidInput)
	}
	if p.CategoriaID <= 0 {
		return fmt.Errorf("%w: categoriaId é obrigatório", domain.ErrInvalidInput)
	}
	if p.Preco.IsNegative() {
		return fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
	}
	if p.Quantidade < 0 || p.QuantidadeMinima < 0 || p.QuantidadeMaxima < 0 {
		return fmt.Errorf("%w: quantidades não podem ser negativas", domain.ErrInvalidInput)
	}
	return nil
}

// Create persiste o produto (o banco atribui o id) e apensa um registro
// ENTRADA/ADICIONADO com a quantidade criada, tudo em uma transação.
func (uc *ProdutoUseCase) Create(ctx context.Context, produto *entity.Produto) (*entity.Produto, error) {
	if err := validarProduto(produto); err != nil {
		return nil, err
	}
	produto.Ativo = true

	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Produtos.Create(ctx, produto); err != nil {
			return err
		}
		return r.Registros.Create(ctx, &entity.Registro{
			Data:         time.Now(),
			ProdutoID:    produto.ID,
			Quantidade:   produto.Quantidade,
			Movimentacao: entity.MovimentacaoEntrada,
			Status:       entity.StatusAdicionado,
		})
	})
	if err != nil {
		return nil, err
	}
	return produto, nil
}

// Update atualiza o produto, relê o estado persistido e apensa um registro
// NENHUM/NOMEALTERADO com a quantidade pós-atualização. Falha com
// domain.ErrNotFound se o id não existir.
func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, novo *entity.Produto) (*entity.Produto, error) {
	if err := validarProduto(novo); err != nil {
		return nil, err
	}

	var atualizado *entity.Produto
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Produtos.Update(ctx, id, novo); err != nil {
			return err
		}
		// Relê para registrar o estado final, não o payload recebido.
		p, err := r.Produtos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("produto %d: %w", id, domain.ErrNotFound)
		}
		atualizado = p
		return r.Registros.Create(ctx, &entity.Registro{
			Data:         time.Now(),
			ProdutoID:    p.ID,
			Quantidade:   p.Quantidade,
			Movimentacao: entity.MovimentacaoNenhum,
			Status:       entity.StatusNomeAlterado,
		})
	})
	if err != nil {
		return nil, err
	}
	return atualizado, nil
}

// Delete desativa o produto (soft delete) e apensa um registro
// SAIDA/DELETADO com a quantidade no momento da exclusão. Excluir um id
// inexistente retorna false sem gerar registro.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	existente, err := uc.produtos.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existente == nil {
		return false, nil
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Produtos.Delete(ctx, id); err != nil {
			return err
		}
		return r.Registros.Create(ctx, &entity.Registro{
			Data:         time.Now(),
			ProdutoID:    existente.ID,
			Quantidade:   existente.Quantidade,
			Movimentacao: entity.MovimentacaoSaida,
			Status:       entity.StatusDeletado,
		})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID busca um produto ativo. Leitura pura, sem efeito no livro.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	return uc.produtos.GetByID(ctx, id)
}

// List retorna todos os produtos ativos. Leitura pura, sem efeito no livro.
func (uc *ProdutoUseCase) List(ctx context.Context) ([]*entity.Produto, error) {
	return uc.produtos.List(ctx)
}

// IncreasePrices aumenta o preço de todos os produtos ativos em percentual%.
// O caminho em massa não gera registros individuais no livro.
func (uc *ProdutoUseCase) IncreasePrices(ctx context.Context, percentual decimal.Decimal) error {
	return uc.adjustPrices(ctx, percentual, true)
}

// DecreasePrices reduz o preço de todos os produtos ativos em percentual%.
func (uc *ProdutoUseCase) DecreasePrices(ctx context.Context, percentual decimal.Decimal) error {
	return uc.adjustPrices(ctx, percentual, false)
}

func (uc *ProdutoUseCase) adjustPrices(ctx context.Context, percentual decimal.Decimal, aumento bool) error {
	if percentual.IsNegative() {
		return fmt.Errorf("%w: percentual não pode ser negativo", domain.ErrInvalidInput)
	}
	delta := percentual.Div(cem)
	if !aumento {
		delta = delta.Neg()
	}
	return uc.produtos.AdjustPrices(ctx, decimal.NewFromInt(1).Add(delta))
}
