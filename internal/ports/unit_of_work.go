package ports

import "context"

// Tx is an opaque transaction handle. The persistence layer decides the
// concrete type (for sqlite it is *gorm.DB); repositories unwrap it.
type Tx interface{}

// UnitOfWork groups repository calls into a single transaction. The
// callback's error decides the outcome: nil commits, anything else rolls
// back. Amendment deletes and the legacy import both run under one of these.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// WithTxContext attaches a transaction handle to the context so repositories
// called inside WithTx join the same transaction.
func WithTxContext(ctx context.Context, tx Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction handle, or nil outside WithTx.
func TxFromContext(ctx context.Context) Tx {
	return ctx.Value(txKey{})
}
