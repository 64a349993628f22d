package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/blog/model"
)

const blogColumns = `id, title, slug, excerpt, content, cover_image, tags, author,
	published_at, views, read_time, published, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var b model.Blog
	err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.CoverImage,
		pq.Array(&b.Tags), &b.Author, &b.PublishedAt, &b.Views, &b.ReadTime,
		&b.Published, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, excerpt, content, cover_image, tags, author,
			published_at, views, read_time, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.CoverImage,
		pq.Array(blog.Tags), blog.Author, blog.PublishedAt, blog.Views, blog.ReadTime,
		blog.Published, blog.CreatedAt, blog.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return model.NewSlugAlreadyExists(blog.Slug)
		}
		return model.NewBlogStoreError(err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, published *bool) ([]*model.Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs`, blogColumns)
	args := []interface{}{}
	if published != nil {
		query += ` WHERE published = $1`
		args = append(args, *published)
	}
	query += ` ORDER BY published_at DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog row: %w", err)
		}
		blogs = append(blogs, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog rows: %w", err)
	}

	return blogs, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE id = $1`, blogColumns)

	b, err := scanBlog(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE slug = $1`, blogColumns)

	b, err := scanBlog(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, slug = $2, excerpt = $3, content = $4, cover_image = $5,
			tags = $6, author = $7, published_at = $8, read_time = $9,
			published = $10, updated_at = NOW()
		WHERE id = $11
	`
	result, err := r.pool.Exec(ctx, query,
		blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.CoverImage,
		pq.Array(blog.Tags), blog.Author, blog.PublishedAt, blog.ReadTime,
		blog.Published, blog.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return model.NewSlugAlreadyExists(blog.Slug)
		}
		return model.NewBlogStoreError(err)
	}
	if result.RowsAffected() == 0 {
		return model.NewBlogNotFound(blog.ID.String())
	}
	return nil
}

func (r *postgresRepository) UpdateViews(ctx context.Context, id uuid.UUID, views int) error {
	_, err := r.pool.Exec(ctx, `UPDATE blogs SET views = $1 WHERE id = $2`, views, id)
	if err != nil {
		return model.NewBlogStoreError(err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return false, model.NewBlogStoreError(err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*model.BlogStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE published),
			COALESCE(SUM(views), 0)
		FROM blogs
	`
	var stats model.BlogStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalBlogs, &stats.PublishedBlogs, &stats.TotalViews,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog stats: %w", err)
	}
	return &stats, nil
}
