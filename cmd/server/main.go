package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lorendev/estoque-api/internal/application/usecase"
	"github.com/lorendev/estoque-api/internal/domain/repository"
	"github.com/lorendev/estoque-api/internal/infrastructure/postgres"
	"github.com/lorendev/estoque-api/internal/infrastructure/sqlite"
	"github.com/lorendev/estoque-api/internal/interfaces/tcp"
	"github.com/lorendev/estoque-api/pkg/config"
	"github.com/lorendev/estoque-api/pkg/logger"
)

// stores agrupa os adaptadores de persistência escolhidos pelo driver.
type stores struct {
	categorias repository.CategoriaRepository
	produtos   repository.ProdutoRepository
	registros  repository.RegistroRepository
	relatorios repository.RelatorioRepository
	txRunner   usecase.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicação")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao armazenamento")
	}
	defer st.close()

	categoriaUC := usecase.NewCategoriaUseCase(st.categorias, st.txRunner)
	produtoUC := usecase.NewProdutoUseCase(st.produtos, st.txRunner)
	registroUC := usecase.NewRegistroUseCase(st.registros)
	relatorioUC := usecase.NewRelatorioUseCase(st.relatorios)

	dispatcher := tcp.NewDispatcher(log, categoriaUC, produtoUC, registroUC, relatorioUC)
	server := tcp.NewServer(cfg.TCP.Addr(), cfg.TCP.IdleTimeout, dispatcher, log)

	// Listen bloqueia até o contexto ser cancelado (SIGINT/SIGTERM) e os
	// workers encerrarem; falha de bind é fatal.
	if err := server.Listen(ctx); err != nil {
		log.Fatal().Err(err).Msg("servidor TCP")
	}

	log.Info().Msg("aplicação encerrada")
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.DB.Driver == config.DriverPostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			categorias: postgres.NewCategoriaRepository(pool),
			produtos:   postgres.NewProdutoRepository(pool),
			registros:  postgres.NewRegistroRepository(pool),
			relatorios: postgres.NewRelatorioRepository(pool),
			txRunner:   postgres.NewTxRunner(pool),
			close:      pool.Close,
		}, nil
	}

	db, err := sqlite.Open(cfg.DB.SQLitePath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.DB.SQLitePath).Msg("usando SQLite embutido")
	return &stores{
		categorias: sqlite.NewCategoriaRepository(db),
		produtos:   sqlite.NewProdutoRepository(db),
		registros:  sqlite.NewRegistroRepository(db),
		relatorios: sqlite.NewRelatorioRepository(db),
		txRunner:   sqlite.NewTxRunner(db),
		close:      func() { _ = db.Close() },
	}, nil
}
