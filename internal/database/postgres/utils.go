package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txWrapper adapts pgx.Tx to repository.Tx
type txWrapper struct {
	tx pgx.Tx
}

func (w *txWrapper) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

// Rollback returns pgx.ErrTxClosed after a commit, which SafeRollback ignores
func (w *txWrapper) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// extraInfoArg encodes extra info for a JSONB column. Empty maps are stored as NULL.
func extraInfoArg(info map[string]interface{}) ([]byte, error) {
	if len(info) == 0 {
		return nil, nil
	}
	return json.Marshal(info)
}

func decodeExtraInfo(raw []byte) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var info map[string]interface{}
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeExtraInfo, err)
	}
	return info, nil
}
