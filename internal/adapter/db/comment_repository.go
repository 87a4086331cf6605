package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

// deletedAuthorName is displayed for comments whose registered author has
// been removed from the users table.
const deletedAuthorName = "Usuário removido"

type CommentRepository struct {
	db *sqlx.DB
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentRow struct {
	ID            uint64         `db:"id"`
	TaskID        uint64         `db:"task_id"`
	ParentID      sql.NullInt64  `db:"parent_id"`
	Author        sql.NullString `db:"author"`
	CreatedByID   sql.NullInt64  `db:"created_by_id"`
	CreatedByName sql.NullString `db:"created_by_name"`
	Text          string         `db:"text"`
	IsLiked       bool           `db:"is_liked"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

const selectCommentQuery = `
SELECT
  c.id, c.task_id, c.parent_id, c.author, c.created_by_id,
  u.name AS created_by_name,
  c.text, c.is_liked, c.created_at, c.updated_at
FROM comments c
LEFT JOIN users u ON u.id = c.created_by_id
`

func (r *CommentRepository) Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	var author sql.NullString
	var createdBy sql.NullInt64
	switch a := input.Author.(type) {
	case domain.AnonymousAuthor:
		author = sql.NullString{String: a.Name, Valid: true}
	case domain.RegisteredAuthor:
		createdBy = sql.NullInt64{Int64: int64(a.UserID), Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (task_id, parent_id, author, created_by_id, text) VALUES (?, ?, ?, ?, ?);`,
		input.TaskID, input.ParentID, author, createdBy, input.Text,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint64) (domain.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, selectCommentQuery+`WHERE c.id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return mapCommentRow(row), nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, id uint64, text string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE comments SET text = ? WHERE id = ?;`, text, id)
	return err
}

// Delete removes a comment; replies go with it through the parent_id
// foreign key cascade.
func (r *CommentRepository) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?;`, id)
	return err
}

func (r *CommentRepository) SetLiked(ctx context.Context, id uint64, liked bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE comments SET is_liked = ? WHERE id = ?;`, liked, id)
	return err
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	err := r.db.SelectContext(ctx, &rows,
		selectCommentQuery+`WHERE c.task_id = ? ORDER BY c.created_at ASC, c.id ASC;`, taskID)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRow(row))
	}
	return comments, nil
}

func mapCommentRow(row commentRow) domain.Comment {
	comment := domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Text:      row.Text,
		IsLiked:   row.IsLiked,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.ParentID.Valid {
		value := uint64(row.ParentID.Int64)
		comment.ParentID = &value
	}

	// Exactly one of author / created_by_id is set; the application writes
	// them that way and the mapper trusts it, preferring the registered
	// side if both ever appear. Both NULL means the registered author was
	// deleted and the FK zeroed created_by_id, so a tombstone name is shown.
	switch {
	case row.CreatedByID.Valid:
		comment.Author = domain.RegisteredAuthor{
			UserID: uint64(row.CreatedByID.Int64),
			Name:   row.CreatedByName.String,
		}
	case row.Author.Valid:
		comment.Author = domain.AnonymousAuthor{Name: row.Author.String}
	default:
		comment.Author = domain.AnonymousAuthor{Name: deletedAuthorName}
	}

	return comment
}
