package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/project/model"
)

const projectColumns = `id, name, description, contributions, stack, challenges,
	achievements, link, github_url, live_url, image, sort_order, featured,
	created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Contributions, pq.Array(&p.Stack),
		&p.Challenges, &p.Achievements, &p.Link, &p.GithubURL, &p.LiveURL,
		&p.Image, &p.Order, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, project *model.Project) error {
	query := `
		INSERT INTO projects (id, name, description, contributions, stack, challenges,
			achievements, link, github_url, live_url, image, sort_order, featured,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.Name, project.Description, project.Contributions,
		pq.Array(project.Stack), project.Challenges, project.Achievements,
		project.Link, project.GithubURL, project.LiveURL, project.Image,
		project.Order, project.Featured, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return model.NewProjectStoreError(err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, featured *bool) ([]*model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects`, projectColumns)
	args := []interface{}{}
	if featured != nil {
		query += ` WHERE featured = $1`
		args = append(args, *featured)
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, project *model.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = $2, contributions = $3, stack = $4,
			challenges = $5, achievements = $6, link = $7, github_url = $8,
			live_url = $9, image = $10, sort_order = $11, featured = $12,
			updated_at = NOW()
		WHERE id = $13
	`
	result, err := r.pool.Exec(ctx, query,
		project.Name, project.Description, project.Contributions,
		pq.Array(project.Stack), project.Challenges, project.Achievements,
		project.Link, project.GithubURL, project.LiveURL, project.Image,
		project.Order, project.Featured, project.ID,
	)
	if err != nil {
		return model.NewProjectStoreError(err)
	}
	if result.RowsAffected() == 0 {
		return model.NewProjectNotFound(project.ID.String())
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, model.NewProjectStoreError(err)
	}
	return result.RowsAffected() > 0, nil
}
