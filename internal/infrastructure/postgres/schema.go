package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS categoria (
	id        BIGSERIAL PRIMARY KEY,
	nome      TEXT NOT NULL,
	tamanho   TEXT NOT NULL,
	embalagem TEXT NOT NULL,
	ativo     BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS produto (
	id                 BIGSERIAL PRIMARY KEY,
	nome               TEXT NOT NULL,
	preco_unitario     NUMERIC(14,4) NOT NULL CHECK (preco_unitario >= 0),
	unidade            TEXT NOT NULL DEFAULT '',
	categoria_id       BIGINT NOT NULL REFERENCES categoria(id),
	quantidade         BIGINT NOT NULL CHECK (quantidade >= 0),
	quantidade_minima  BIGINT NOT NULL CHECK (quantidade_minima >= 0),
	quantidade_maxima  BIGINT NOT NULL CHECK (quantidade_maxima >= 0),
	ativo              BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS idx_produto_categoria ON produto(categoria_id);

CREATE TABLE IF NOT EXISTS registro (
	id           BIGSERIAL PRIMARY KEY,
	data         TIMESTAMPTZ NOT NULL,
	produto_id   BIGINT NOT NULL REFERENCES produto(id),
	quantidade   BIGINT NOT NULL,
	movimentacao TEXT NOT NULL,
	status       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_registro_data ON registro(data DESC, id DESC);
`

// EnsureSchema cria as tabelas do sistema caso ainda não existam.
// Idempotente; executado em todo start do processo.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("criar schema: %w", err)
	}
	return nil
}
