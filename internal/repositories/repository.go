package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrReferenced        = errors.New("record is still referenced")
	ErrCouponAlreadyUsed = errors.New("coupon already used")
	ErrOutOfStock        = errors.New("no available license")
	ErrUnknownProducts   = errors.New("one or more products do not exist")
	ErrInvalidTransition = errors.New("order is not in the expected state")
)

// QueryTimeout bounds each statement, and each transaction as a whole.
const QueryTimeout = 5 * time.Second

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so statements can be shared
// between standalone calls and transactions.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// mapError translates driver errors into the package sentinels, keeping the
// original error in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrReferenced, err)
		}
	}

	return err
}

// expectAffected turns a zero-row update or delete into ErrNotFound.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout)
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	return nil
}
