package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/skill/model"
)

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

type fakeSkillRepo struct {
	skills    map[uuid.UUID]*model.Skill
	listCalls int
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[uuid.UUID]*model.Skill)}
}

func (f *fakeSkillRepo) Create(_ context.Context, skill *model.Skill) error {
	clone := *skill
	f.skills[skill.ID] = &clone
	return nil
}

func (f *fakeSkillRepo) List(_ context.Context, category string) ([]*model.Skill, error) {
	f.listCalls++
	var out []*model.Skill
	for _, sk := range f.skills {
		if category != "" && sk.Category != category {
			continue
		}
		clone := *sk
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeSkillRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Skill, error) {
	sk, ok := f.skills[id]
	if !ok {
		return nil, nil
	}
	clone := *sk
	return &clone, nil
}

func (f *fakeSkillRepo) Update(_ context.Context, skill *model.Skill) error {
	if _, ok := f.skills[skill.ID]; !ok {
		return model.NewSkillNotFound(skill.ID.String())
	}
	clone := *skill
	f.skills[skill.ID] = &clone
	return nil
}

func (f *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.skills[id]; !ok {
		return false, nil
	}
	delete(f.skills, id)
	return true, nil
}

func createSkillRequest(name, category string) *model.CreateSkillRequest {
	return &model.CreateSkillRequest{Name: name, Category: category}
}

func TestCreateSkillDefaults(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), nil)

	skill, err := svc.Create(context.Background(), createSkillRequest("Go", model.CategoryBackend))
	require.NoError(t, err)

	assert.Equal(t, 50, skill.Level)
	assert.Equal(t, 0, skill.Order)
}

func TestCreateSkillRejectsUnknownCategory(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), nil)

	_, err := svc.Create(context.Background(), createSkillRequest("Figma", "design"))
	assert.Error(t, err)
}

func TestCreateSkillRejectsLevelOutOfRange(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), nil)

	req := createSkillRequest("Go", model.CategoryBackend)
	level := 101
	req.Level = &level

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestGroupByCategoryReturnsAllBuckets(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, createSkillRequest("Go", model.CategoryBackend))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createSkillRequest("PostgreSQL", model.CategoryDatabase))
	require.NoError(t, err)

	grouped, err := svc.GroupByCategory(ctx)
	require.NoError(t, err)

	require.Len(t, grouped.Backend, 1)
	require.Len(t, grouped.Database, 1)
	assert.NotNil(t, grouped.Frontend)
	assert.NotNil(t, grouped.Other)
	assert.Empty(t, grouped.Frontend)
	assert.Empty(t, grouped.Other)
}

func TestGroupByCategoryEmptyStore(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), nil)

	grouped, err := svc.GroupByCategory(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, grouped.Backend)
	assert.NotNil(t, grouped.Database)
	assert.NotNil(t, grouped.Frontend)
	assert.NotNil(t, grouped.Other)
}

func TestGroupByCategoryUsesCacheUntilInvalidated(t *testing.T) {
	repo := newFakeSkillRepo()
	svc := NewSkillService(repo, newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, createSkillRequest("Go", model.CategoryBackend))
	require.NoError(t, err)

	_, err = svc.GroupByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	_, err = svc.GroupByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	level := 90
	_, err = svc.Update(ctx, created.ID, &model.UpdateSkillRequest{Level: &level})
	require.NoError(t, err)

	grouped, err := svc.GroupByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	require.Len(t, grouped.Backend, 1)
	assert.Equal(t, 90, grouped.Backend[0].Level)
}

func TestDeleteSkillNotFound(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), nil)

	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, model.IsSkillNotFound(err))
}
