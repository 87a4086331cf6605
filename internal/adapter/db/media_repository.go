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

type MediaRepository struct {
	db *sqlx.DB
}

var _ ports.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

type mediaRow struct {
	ID           uint64    `db:"id"`
	TaskID       uint64    `db:"task_id"`
	Path         string    `db:"path"`
	Type         string    `db:"type"`
	Order        int       `db:"order"`
	UploadedByID uint64    `db:"uploaded_by_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *MediaRepository) Create(ctx context.Context, input domain.CreateMediaInput, order int, uploadedBy uint64) (domain.Media, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO media (task_id, path, type, `order`, uploaded_by_id) VALUES (?, ?, ?, ?, ?);",
		input.TaskID, input.Path, input.Type, order, uploadedBy,
	)
	if err != nil {
		return domain.Media{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Media{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

func (r *MediaRepository) FindByID(ctx context.Context, id uint64) (domain.Media, error) {
	var row mediaRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM media WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Media{}, domain.ErrMediaNotFound
		}
		return domain.Media{}, err
	}
	return mapMediaRow(row), nil
}

func (r *MediaRepository) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?;`, id)
	return err
}

func (r *MediaRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Media, error) {
	var rows []mediaRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM media WHERE task_id = ? ORDER BY `order` ASC, id ASC;", taskID)
	if err != nil {
		return nil, err
	}

	media := make([]domain.Media, 0, len(rows))
	for _, row := range rows {
		media = append(media, mapMediaRow(row))
	}
	return media, nil
}

func (r *MediaRepository) UpdateOrder(ctx context.Context, id uint64, order int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE media SET `order` = ? WHERE id = ?;", order, id)
	return err
}

func mapMediaRow(row mediaRow) domain.Media {
	return domain.Media{
		ID:           row.ID,
		TaskID:       row.TaskID,
		Path:         row.Path,
		Type:         row.Type,
		Order:        row.Order,
		UploadedByID: row.UploadedByID,
		CreatedAt:    row.CreatedAt,
	}
}
