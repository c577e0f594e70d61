package passwordreset

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/db"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxRepository{db: dbtx}
}

func (r *PgxRepository) Replace(ctx context.Context, input passwordreset.ReplaceInput) (passwordreset.Token, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset_token (email, token_hash, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET token_hash = EXCLUDED.token_hash, created_at = EXCLUDED.created_at
		RETURNING email, token_hash, created_at`,
		string(input.Email),
		string(input.SecretHash),
		input.CreatedAt,
	)
	return scanToken(row)
}

func (r *PgxRepository) GetByEmail(ctx context.Context, email c.Email) (passwordreset.Token, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT email, token_hash, created_at FROM password_reset_token WHERE email = $1`,
		string(email),
	)
	return get(row)
}

func (r *PgxRepository) GetByEmailForUpdate(ctx context.Context, email c.Email) (passwordreset.Token, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT email, token_hash, created_at FROM password_reset_token WHERE email = $1 FOR UPDATE`,
		string(email),
	)
	return get(row)
}

func (r *PgxRepository) DeleteByEmail(ctx context.Context, email c.Email) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_token WHERE email = $1`, string(email))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxRepository) DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_token WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func get(row pgx.Row) (t passwordreset.Token, err error) {
	t, err = scanToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, passwordreset.ErrTokenDoesNotExist
	}
	return t, err
}

func scanToken(row pgx.Row) (t passwordreset.Token, err error) {
	var (
		email     string
		tokenHash string
		createdAt time.Time
	)
	if err := row.Scan(&email, &tokenHash, &createdAt); err != nil {
		return t, err
	}
	return passwordreset.Token{
		Email:      c.Email(email),
		SecretHash: passwordreset.SecretHash(tokenHash),
		CreatedAt:  createdAt.UTC(),
	}, nil
}
