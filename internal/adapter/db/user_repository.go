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

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID         uint64       `db:"id"`
	Name       string       `db:"name"`
	Email      string       `db:"email"`
	Password   string       `db:"password"`
	Role       string       `db:"role"`
	ArchivedAt sql.NullTime `db:"archived_at"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput, passwordHash string) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?);`,
		input.Name, input.Email, passwordHash, string(input.Role),
	)
	if err != nil {
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) Update(ctx context.Context, id uint64, input domain.UpdateUserInput, passwordHash *string) error {
	if passwordHash != nil {
		_, err := r.db.ExecContext(ctx,
			`UPDATE users SET name = ?, email = ?, password = ?, role = ? WHERE id = ?;`,
			input.Name, input.Email, *passwordHash, string(input.Role), id,
		)
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, role = ? WHERE id = ?;`,
		input.Name, input.Email, string(input.Role), id,
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, id)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.findOne(ctx, `SELECT * FROM users WHERE id = ?;`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, `SELECT * FROM users WHERE email = ?;`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM users ORDER BY name ASC;`); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) SetArchived(ctx context.Context, id uint64, archivedAt *time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET archived_at = ? WHERE id = ?;`, archivedAt, id)
	return err
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Password:  row.Password,
		Role:      domain.UserRole(row.Role),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.ArchivedAt.Valid {
		value := row.ArchivedAt.Time
		user.ArchivedAt = &value
	}
	return user
}
