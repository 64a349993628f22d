package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact/model"
)

const contactColumns = `id, name, email, message, read, created_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Read, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Message,
		contact.Read, contact.CreatedAt,
	)
	if err != nil {
		return model.NewContactStoreError(err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts ORDER BY created_at DESC`, contactColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE id = $1`, contactColumns)

	c, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `UPDATE contacts SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, model.NewContactStoreError(err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, model.NewContactStoreError(err)
	}
	return result.RowsAffected() > 0, nil
}
