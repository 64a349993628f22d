package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill/model"
)

const skillColumns = `id, name, category, level, icon, sort_order, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanSkill(row pgx.Row) (*model.Skill, error) {
	var s model.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &s.Level, &s.Icon, &s.Order,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) Create(ctx context.Context, skill *model.Skill) error {
	query := `
		INSERT INTO skills (id, name, category, level, icon, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		skill.ID, skill.Name, skill.Category, skill.Level, skill.Icon,
		skill.Order, skill.CreatedAt, skill.UpdatedAt,
	)
	if err != nil {
		return model.NewSkillStoreError(err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, category string) ([]*model.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills`, skillColumns)
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	return skills, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1`, skillColumns)

	s, err := scanSkill(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill by id: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) Update(ctx context.Context, skill *model.Skill) error {
	query := `
		UPDATE skills
		SET name = $1, category = $2, level = $3, icon = $4, sort_order = $5,
			updated_at = NOW()
		WHERE id = $6
	`
	result, err := r.pool.Exec(ctx, query,
		skill.Name, skill.Category, skill.Level, skill.Icon, skill.Order, skill.ID,
	)
	if err != nil {
		return model.NewSkillStoreError(err)
	}
	if result.RowsAffected() == 0 {
		return model.NewSkillNotFound(skill.ID.String())
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return false, model.NewSkillStoreError(err)
	}
	return result.RowsAffected() > 0, nil
}
