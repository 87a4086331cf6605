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

type CustomerRepository struct {
	db *sqlx.DB
}

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerRow struct {
	ID           uint64       `db:"id"`
	Name         string       `db:"name"`
	Slug         string       `db:"slug"`
	Presentation string       `db:"presentation"`
	WhatsappLink string       `db:"whatsapp_link"`
	ContractLink string       `db:"contract_link"`
	GalleryLink  string       `db:"gallery_link"`
	ScheduleLink string       `db:"schedule_link"`
	ArchivedAt   sql.NullTime `db:"archived_at"`
	UpdatedByID  uint64       `db:"updated_by_id"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

const insertCustomerQuery = `
INSERT INTO customers
  (name, slug, presentation, whatsapp_link, contract_link, gallery_link, schedule_link, updated_by_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

func (r *CustomerRepository) Create(ctx context.Context, input domain.CustomerInput, slug string, updatedBy uint64) (domain.Customer, error) {
	res, err := r.db.ExecContext(ctx, insertCustomerQuery,
		input.Name, slug, input.Presentation,
		input.WhatsappLink, input.ContractLink, input.GalleryLink, input.ScheduleLink,
		updatedBy,
	)
	if err != nil {
		return domain.Customer{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Customer{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

const updateCustomerQuery = `
UPDATE customers
SET name = ?, slug = ?, presentation = ?, whatsapp_link = ?, contract_link = ?,
    gallery_link = ?, schedule_link = ?, updated_by_id = ?
WHERE id = ?;
`

func (r *CustomerRepository) Update(ctx context.Context, id uint64, input domain.CustomerInput, slug string, updatedBy uint64) error {
	_, err := r.db.ExecContext(ctx, updateCustomerQuery,
		input.Name, slug, input.Presentation,
		input.WhatsappLink, input.ContractLink, input.GalleryLink, input.ScheduleLink,
		updatedBy, id,
	)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?;`, id)
	return err
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint64) (domain.Customer, error) {
	return r.findOne(ctx, `SELECT * FROM customers WHERE id = ?;`, id)
}

func (r *CustomerRepository) FindBySlug(ctx context.Context, slug string) (domain.Customer, error) {
	return r.findOne(ctx, `SELECT * FROM customers WHERE slug = ?;`, slug)
}

func (r *CustomerRepository) findOne(ctx context.Context, query string, arg any) (domain.Customer, error) {
	var row customerRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, err
	}
	return mapCustomerRow(row), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM customers ORDER BY name ASC;`); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, mapCustomerRow(row))
	}
	return customers, nil
}

// ListSlugs returns every slug equal to base or suffixed from it, the input
// the slug generator needs to pick an unused suffix.
func (r *CustomerRepository) ListSlugs(ctx context.Context, base string) ([]string, error) {
	var slugs []string
	err := r.db.SelectContext(ctx, &slugs,
		`SELECT slug FROM customers WHERE slug = ? OR slug LIKE CONCAT(?, '-%') ORDER BY slug DESC;`,
		base, base,
	)
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

func (r *CustomerRepository) SetArchived(ctx context.Context, id uint64, archivedAt *time.Time, updatedBy uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE customers SET archived_at = ?, updated_by_id = ? WHERE id = ?;`,
		archivedAt, updatedBy, id,
	)
	return err
}

func mapCustomerRow(row customerRow) domain.Customer {
	customer := domain.Customer{
		ID:           row.ID,
		Name:         row.Name,
		Slug:         row.Slug,
		Presentation: row.Presentation,
		WhatsappLink: row.WhatsappLink,
		ContractLink: row.ContractLink,
		GalleryLink:  row.GalleryLink,
		ScheduleLink: row.ScheduleLink,
		UpdatedByID:  row.UpdatedByID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.ArchivedAt.Valid {
		value := row.ArchivedAt.Time
		customer.ArchivedAt = &value
	}
	return customer
}
