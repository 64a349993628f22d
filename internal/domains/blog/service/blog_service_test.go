package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog/model"
)

type fakeBlogRepo struct {
	blogs      map[uuid.UUID]*model.Blog
	statsCalls int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[uuid.UUID]*model.Blog)}
}

func (f *fakeBlogRepo) Create(_ context.Context, blog *model.Blog) error {
	for _, b := range f.blogs {
		if b.Slug == blog.Slug {
			return model.NewSlugAlreadyExists(blog.Slug)
		}
	}
	clone := *blog
	f.blogs[blog.ID] = &clone
	return nil
}

func (f *fakeBlogRepo) List(_ context.Context, published *bool) ([]*model.Blog, error) {
	var out []*model.Blog
	for _, b := range f.blogs {
		if published != nil && b.Published != *published {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBlogRepo) GetBySlug(_ context.Context, slug string) (*model.Blog, error) {
	for _, b := range f.blogs {
		if b.Slug == slug {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, blog *model.Blog) error {
	if _, ok := f.blogs[blog.ID]; !ok {
		return model.NewBlogNotFound(blog.ID.String())
	}
	clone := *blog
	f.blogs[blog.ID] = &clone
	return nil
}

func (f *fakeBlogRepo) UpdateViews(_ context.Context, id uuid.UUID, views int) error {
	b, ok := f.blogs[id]
	if !ok {
		return model.NewBlogNotFound(id.String())
	}
	b.Views = views
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.blogs[id]; !ok {
		return false, nil
	}
	delete(f.blogs, id)
	return true, nil
}

func (f *fakeBlogRepo) Stats(_ context.Context) (*model.BlogStats, error) {
	f.statsCalls++
	stats := &model.BlogStats{}
	for _, b := range f.blogs {
		stats.TotalBlogs++
		if b.Published {
			stats.PublishedBlogs++
		}
		stats.TotalViews += b.Views
	}
	return stats, nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func (f *fakeCache) Increment(_ context.Context, key string) (int64, error) {
	var count int64
	if raw, ok := f.data[key]; ok {
		_ = json.Unmarshal(raw, &count)
	}
	count++
	raw, _ := json.Marshal(count)
	f.data[key] = raw
	return count, nil
}

func (f *fakeCache) Expire(context.Context, string, time.Duration) error { return nil }

func createRequest(title string) *model.CreateBlogRequest {
	return &model.CreateBlogRequest{
		Title:   title,
		Excerpt: "short summary",
		Content: "full content",
		Tags:    []string{"go"},
		Author:  "Jane",
	}
}

func TestCreateBlogDerivesSlugAndDefaults(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())

	blog, err := svc.Create(context.Background(), createRequest("Hello, World!"))
	require.NoError(t, err)

	assert.Equal(t, "hello-world", blog.Slug)
	assert.Equal(t, 5, blog.ReadTime)
	assert.True(t, blog.Published)
	assert.Zero(t, blog.Views)
}

func TestCreateBlogValidation(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())

	_, err := svc.Create(context.Background(), &model.CreateBlogRequest{
		Excerpt: "summary",
		Content: "content",
		Tags:    []string{},
		Author:  "Jane",
	})
	assert.Error(t, err)
}

func TestCreateBlogDuplicateSlug(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("Same Title"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("Same   Title"))
	require.Error(t, err)

	var be *model.BlogError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "BLOG_SLUG_EXISTS", be.Code)
}

func TestGetBySlugIncrementsViews(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("Counting Views"))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		blog, err := svc.GetBySlug(ctx, created.Slug)
		require.NoError(t, err)
		assert.Equal(t, i, blog.Views)
	}

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Views)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())

	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.True(t, model.IsBlogNotFound(err))
}

func TestUpdateBlogRecomputesSlugOnTitleChange(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("Original Title"))
	require.NoError(t, err)

	newTitle := "Brand New Title"
	updated, err := svc.Update(ctx, created.ID, &model.UpdateBlogRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)
}

func TestUpdateBlogKeepsSlugWhenTitleUnchanged(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("Stable Title"))
	require.NoError(t, err)

	sameTitle := created.Title
	newExcerpt := "revised summary"
	updated, err := svc.Update(ctx, created.ID, &model.UpdateBlogRequest{
		Title:   &sameTitle,
		Excerpt: &newExcerpt,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "revised summary", updated.Excerpt)
}

func TestDeleteBlogNotFound(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), newFakeCache())

	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, model.IsBlogNotFound(err))
}

func TestStatsUsesCacheUntilInvalidated(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("First Post"))
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalBlogs)
	assert.Equal(t, 1, repo.statsCalls)

	// Second read is served from cache.
	_, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.statsCalls)

	// A mutation drops the cached value.
	require.NoError(t, svc.Delete(ctx, created.ID))

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalBlogs)
	assert.Equal(t, 2, repo.statsCalls)
}

func TestStatsWithoutCache(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBlogs)
	assert.Zero(t, stats.PublishedBlogs)
	assert.Zero(t, stats.TotalViews)
}
