package post

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/db"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const postColumns = `id, user_id, title, content, created_at, updated_at`

type PgxRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxRepository{db: dbtx}
}

func (r *PgxRepository) Create(ctx context.Context, input post.CreateInput) (post.Post, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO post (user_id, title, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+postColumns,
		int64(input.AuthorID),
		string(input.Title),
		string(input.Content),
		input.CreatedAt,
	)
	return scanPost(row)
}

func (r *PgxRepository) GetByID(ctx context.Context, id post.ID) (post.Post, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM post WHERE id = $1`, int64(id))
	return get(row)
}

func (r *PgxRepository) GetByIDForUpdate(ctx context.Context, id post.ID) (post.Post, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM post WHERE id = $1 FOR UPDATE`, int64(id))
	return get(row)
}

func (r *PgxRepository) Read(ctx context.Context, options post.ReadOptions) ([]post.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+` FROM post ORDER BY id DESC LIMIT $1 OFFSET $2`,
		int64(options.Limit),
		int64(options.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]post.Post, 0, options.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PgxRepository) Count(ctx context.Context) (uint, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM post`).Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxRepository) Update(ctx context.Context, input post.UpdateInput) (post.Post, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE post SET title = $2, content = $3, updated_at = $4
		WHERE id = $1
		RETURNING `+postColumns,
		int64(input.ID),
		string(input.Title),
		string(input.Content),
		input.UpdatedAt,
	)
	return get(row)
}

func (r *PgxRepository) Delete(ctx context.Context, id post.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM post WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostDoesNotExist
	}
	return nil
}

func get(row pgx.Row) (post.Post, error) {
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, post.ErrPostDoesNotExist
	}
	return p, err
}

func scanPost(row pgx.Row) (p post.Post, err error) {
	var (
		id        int64
		userID    int64
		title     string
		content   string
		createdAt time.Time
		updatedAt pgtype.Timestamptz
	)
	err = row.Scan(&id, &userID, &title, &content, &createdAt, &updatedAt)
	if err != nil {
		return p, err
	}
	return post.Post{
		ID:        post.ID(id),
		AuthorID:  user.ID(userID),
		Title:     post.Title(title),
		Content:   post.Content(content),
		CreatedAt: createdAt.UTC(),
		UpdatedAt: c.NewOptional(updatedAt.Time.UTC(), updatedAt.Status == pgtype.Present),
	}, nil
}
