package uow

import (
	"context"
	"errors"
	e "onboarding/internal/core/domain/errors"
	uow "onboarding/internal/core/domain/unit_of_work"
	"onboarding/internal/core/domain/user"
	dbtoken "onboarding/internal/db/token"
	dbuser "onboarding/internal/db/user"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/samber/oops"
)

// txContext scopes the user and token stores to a single transaction.
type txContext struct {
	tx                 pgx.Tx
	users              *dbuser.PgxUserRepository
	confirmationTokens *dbtoken.PgxConfirmationTokenRepository
	resetTokens        *dbtoken.PgxResetTokenRepository
}

func (c *txContext) Commit(ctx context.Context) error {
	if err := c.tx.Commit(ctx); err != nil {
		return oops.In("unit_of_work").Wrapf(err, "could not commit transaction")
	}
	return nil
}

// Rollback is a no-op after Commit, so it can always be deferred.
func (c *txContext) Rollback(ctx context.Context) error {
	err := c.tx.Rollback(ctx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return oops.In("unit_of_work").Wrapf(err, "could not roll back transaction")
}

func (c *txContext) Users() user.UserRepository {
	return c.users
}

func (c *txContext) ConfirmationTokens() user.ConfirmationTokenRepository {
	return c.confirmationTokens
}

func (c *txContext) ResetTokens() user.ResetTokenRepository {
	return c.resetTokens
}

type PgxUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxUnitOfWork{pool: pool}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, oops.In("unit_of_work").Wrapf(err, "could not begin transaction")
	}
	return &txContext{
		tx:                 tx,
		users:              dbuser.NewPgxRepository(tx),
		confirmationTokens: dbtoken.NewPgxConfirmationTokenRepository(tx),
		resetTokens:        dbtoken.NewPgxResetTokenRepository(tx),
	}, nil
}
