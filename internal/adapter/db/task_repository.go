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

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID          uint64         `db:"id"`
	CustomerID  uint64         `db:"customer_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Due         time.Time      `db:"due"`
	Responsible string         `db:"responsible"`
	Ratio       sql.NullString `db:"ratio"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	ArchivedAt  sql.NullTime   `db:"archived_at"`
	UpdatedByID sql.NullInt64  `db:"updated_by_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const insertTaskQuery = `
INSERT INTO tasks (customer_id, title, description, due, responsible, ratio, updated_by_id)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput, updatedBy uint64) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx, insertTaskQuery,
		input.CustomerID, input.Title, input.Description, input.Due,
		string(input.Responsible), input.Ratio, updatedBy,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, due = ?, responsible = ?, ratio = ?, updated_by_id = ?
WHERE id = ?;
`

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, updatedBy uint64) error {
	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		input.Title, input.Description, input.Due, string(input.Responsible), input.Ratio,
		updatedBy, id,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

const listTasksByCustomerQuery = `
SELECT * FROM tasks
WHERE customer_id = ? AND (? OR archived_at IS NULL)
ORDER BY due ASC, id ASC;
`

func (r *TaskRepository) ListByCustomer(ctx context.Context, customerID uint64, includeArchived bool) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByCustomerQuery, customerID, includeArchived); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id uint64, completedAt *time.Time, updatedBy *uint64) error {
	if updatedBy != nil {
		_, err := r.db.ExecContext(ctx,
			`UPDATE tasks SET completed_at = ?, updated_by_id = ? WHERE id = ?;`,
			completedAt, *updatedBy, id,
		)
		return err
	}

	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed_at = ? WHERE id = ?;`, completedAt, id)
	return err
}

func (r *TaskRepository) SetArchived(ctx context.Context, id uint64, archivedAt *time.Time, updatedBy uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET archived_at = ?, updated_by_id = ? WHERE id = ?;`,
		archivedAt, updatedBy, id,
	)
	return err
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		CustomerID:  row.CustomerID,
		Title:       row.Title,
		Due:         row.Due,
		Responsible: domain.TaskResponsible(row.Responsible),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.Ratio.Valid {
		value := row.Ratio.String
		task.Ratio = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	if row.ArchivedAt.Valid {
		value := row.ArchivedAt.Time
		task.ArchivedAt = &value
	}
	if row.UpdatedByID.Valid {
		value := uint64(row.UpdatedByID.Int64)
		task.UpdatedByID = &value
	}

	return task
}
