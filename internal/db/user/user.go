package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/db"

	"github.com/jackc/pgx/v4"
	"github.com/samber/oops"
)

const (
	EMAIL_CONSTRAINT_NAME = "user_email_idx"
	ID_CONSTRAINT_NAME    = "user_pkey"
)

const userColumns = "id, email, first_name, last_name, password_hash, email_confirmed, created_at"

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxUserRepository {
	if dbtx == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: dbtx}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (id, email, first_name, last_name, password_hash, email_confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		RETURNING `+userColumns,
		string(input.ID),
		string(input.Email),
		input.FirstName,
		input.LastName,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if db.IsUniqueViolation(err, EMAIL_CONSTRAINT_NAME) || db.IsUniqueViolation(err, ID_CONSTRAINT_NAME) {
		return u, user.ErrUserAlreadyExists.Wrap(err)
	}
	if err != nil {
		return u, oops.In("postgres").With("email", input.Email).Wrapf(err, "could not create user")
	}
	return u, nil
}

func (r *PgxUserRepository) Update(
	ctx context.Context,
	id user.ID,
	input user.UpdateUserInput,
) (u user.User, err error) {
	sets := make([]string, 0, 4)
	args := []interface{}{string(id)}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if input.FirstName.IsPresent {
		set("first_name", input.FirstName.Value)
	}
	if input.LastName.IsPresent {
		set("last_name", input.LastName.Value)
	}
	if input.PasswordHash.IsPresent {
		set("password_hash", string(input.PasswordHash.Value))
	}
	if input.EmailConfirmed.IsPresent {
		set("email_confirmed", input.EmailConfirmed.Value)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET `+strings.Join(sets, ", ")+` WHERE id = $1 RETURNING `+userColumns,
		args...,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserNotFound
	}
	if err != nil {
		return u, oops.In("postgres").With("userId", id).Wrapf(err, "could not update user")
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, string(id))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserNotFound
	}
	if err != nil {
		return u, oops.In("postgres").With("userId", id).Wrapf(err, "could not get user by id")
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserNotFound
	}
	if err != nil {
		return u, oops.In("postgres").With("email", email).Wrapf(err, "could not get user by email")
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var id, email, passwordHash string
	err = row.Scan(&id, &email, &u.FirstName, &u.LastName, &passwordHash, &u.EmailConfirmed, &u.CreatedAt)
	if err != nil {
		return user.User{}, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
