package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

// DB is the transactional capability the repository exposes. The state engine
// always runs inside WithTx where a transaction is required; there is no
// non-transactional fallback.
type DB interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DB
}

// TxExecute runs cb inside the transaction provider carried by ctx.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("no transaction provider in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

// Inject attaches the transaction provider to ctx. Connection admission uses
// it so websocket event handlers share the HTTP middleware's plumbing.
func Inject(ctx context.Context, repo DB) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
}

func TxMiddlewareHTTP(repo DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(Inject(r.Context(), repo)))
		})
	}
}
