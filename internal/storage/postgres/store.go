package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

// querier is the subset of pgx shared by pools and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements boss.Store on PostgreSQL.
type Store struct {
	db *pgxpool.Pool
}

var _ boss.Store = (*Store)(nil)

// NewStore creates a Store backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with migrations applied.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// InTx runs fn inside a READ COMMITTED transaction. Row locks taken through
// forUpdate reads are held until fn returns.
//
// Postcondition: Changes commit only when fn returns nil; fn's error is
// returned unchanged.
func (s *Store) InTx(ctx context.Context, fn func(tx boss.Tx) error) error {
	pgtx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = pgtx.Rollback(ctx) }()

	if err := fn(&Tx{q: pgtx}); err != nil {
		return err
	}
	if err := pgtx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Tx implements boss.Tx against a single pgx transaction.
type Tx struct {
	q querier
}

var _ boss.Tx = (*Tx)(nil)

// lockClause returns the row-lock suffix for a read, scoped to the given
// table alias when the query joins.
func lockClause(forUpdate bool, of string) string {
	switch {
	case !forUpdate:
		return ""
	case of == "":
		return " FOR UPDATE"
	}
	return " FOR UPDATE OF " + of
}
