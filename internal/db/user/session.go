package user

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.DBTX
}

func NewPgxSessionRepository(dbtx db.DBTX) *PgxSessionRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: dbtx}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, user_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetUserByToken(ctx context.Context, token user.SessionToken) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT u.id, u.name, u.email, u.password_hash, u.created_at
		FROM session s JOIN "user" u ON u.id = s.user_id
		WHERE s.token = $1`,
		string(token),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token user.SessionToken) (userID user.ID, err error) {
	var rawUserID int64
	err = r.db.QueryRow(ctx, `DELETE FROM session WHERE token = $1 RETURNING user_id`, string(token)).Scan(&rawUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(rawUserID), nil
}

func (r *PgxSessionRepository) DeleteByUserID(ctx context.Context, userID user.ID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session WHERE user_id = $1`, int64(userID))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
