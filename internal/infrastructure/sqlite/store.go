// Package sqlite fornece adaptadores de persistência sobre SQLite embutido
// (driver puro-Go modernc.org/sqlite via sqlx). É o armazenamento usado em
// modo de desenvolvimento e nos testes de repositório; os portos são os
// mesmos do adaptador PostgreSQL.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS categoria (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	nome      TEXT NOT NULL,
	tamanho   TEXT NOT NULL,
	embalagem TEXT NOT NULL,
	ativo     INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS produto (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	nome               TEXT NOT NULL,
	preco_unitario     NUMERIC NOT NULL CHECK (preco_unitario >= 0),
	unidade            TEXT NOT NULL DEFAULT '',
	categoria_id       INTEGER NOT NULL REFERENCES categoria(id),
	quantidade         INTEGER NOT NULL CHECK (quantidade >= 0),
	quantidade_minima  INTEGER NOT NULL CHECK (quantidade_minima >= 0),
	quantidade_maxima  INTEGER NOT NULL CHECK (quantidade_maxima >= 0),
	ativo              INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_produto_categoria ON produto(categoria_id);

CREATE TABLE IF NOT EXISTS registro (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	data         DATETIME NOT NULL,
	produto_id   INTEGER NOT NULL REFERENCES produto(id),
	quantidade   INTEGER NOT NULL,
	movimentacao TEXT NOT NULL,
	status       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_registro_data ON registro(data DESC, id DESC);
`

// Open abre (ou cria) o banco SQLite no caminho informado e garante o
// schema. Usar ":memory:" para um banco volátil de teste.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	// O driver é serializado por conexão; uma única conexão evita
	// SQLITE_BUSY entre workers concorrentes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("criar schema: %w", err)
	}
	return db, nil
}
