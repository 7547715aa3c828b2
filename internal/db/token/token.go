package token

import (
	"context"
	"errors"

	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/db"

	"github.com/jackc/pgx/v4"
	"github.com/samber/oops"
)

type PgxConfirmationTokenRepository struct {
	db db.DBTX
}

func NewPgxConfirmationTokenRepository(dbtx db.DBTX) *PgxConfirmationTokenRepository {
	if dbtx == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxConfirmationTokenRepository{db: dbtx}
}

func (r *PgxConfirmationTokenRepository) Save(ctx context.Context, t user.ConfirmationToken) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO confirmation_token (user_id, token, expires_at) VALUES ($1, $2, $3)`,
		string(t.UserID),
		string(t.Token),
		t.ExpiresAt,
	)
	if err != nil {
		return oops.In("postgres").With("userId", t.UserID).Wrapf(err, "could not save confirmation token")
	}
	return nil
}

func (r *PgxConfirmationTokenRepository) GetByUserID(
	ctx context.Context,
	userID user.ID,
) ([]user.ConfirmationToken, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT token, expires_at FROM confirmation_token WHERE user_id = $1 ORDER BY id`,
		string(userID),
	)
	if err != nil {
		return nil, oops.In("postgres").With("userId", userID).Wrapf(err, "could not get confirmation tokens")
	}
	defer rows.Close()

	tokens := make([]user.ConfirmationToken, 0, 1)
	for rows.Next() {
		var value string
		t := user.ConfirmationToken{UserID: userID}
		if err := rows.Scan(&value, &t.ExpiresAt); err != nil {
			return nil, oops.In("postgres").With("userId", userID).Wrapf(err, "could not scan confirmation token")
		}
		t.Token = token.Value(value)
		t.ExpiresAt = t.ExpiresAt.UTC()
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.In("postgres").With("userId", userID).Wrapf(err, "could not read confirmation tokens")
	}
	return tokens, nil
}

type PgxResetTokenRepository struct {
	db db.DBTX
}

func NewPgxResetTokenRepository(dbtx db.DBTX) *PgxResetTokenRepository {
	if dbtx == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxResetTokenRepository{db: dbtx}
}

func (r *PgxResetTokenRepository) Save(ctx context.Context, t user.ResetToken) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO password_reset_token (user_id, token, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at`,
		string(t.UserID),
		string(t.Token),
		t.ExpiresAt,
	)
	if err != nil {
		return oops.In("postgres").With("userId", t.UserID).Wrapf(err, "could not save password reset token")
	}
	return nil
}

func (r *PgxResetTokenRepository) GetByUserID(ctx context.Context, userID user.ID) (t user.ResetToken, err error) {
	var value string
	err = r.db.QueryRow(
		ctx,
		`SELECT token, expires_at FROM password_reset_token WHERE user_id = $1`,
		string(userID),
	).Scan(&value, &t.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrTokenNotFoundOrExpired
	}
	if err != nil {
		return t, oops.In("postgres").With("userId", userID).Wrapf(err, "could not get password reset token")
	}
	t.UserID = userID
	t.Token = token.Value(value)
	t.ExpiresAt = t.ExpiresAt.UTC()
	return t, nil
}

func (r *PgxResetTokenRepository) Delete(ctx context.Context, userID user.ID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM password_reset_token WHERE user_id = $1`, string(userID))
	if err != nil {
		return oops.In("postgres").With("userId", userID).Wrapf(err, "could not delete password reset token")
	}
	return nil
}
