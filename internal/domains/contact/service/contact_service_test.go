package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact/model"
)

type fakeContactRepo struct {
	contacts map[uuid.UUID]*model.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uuid.UUID]*model.Contact)}
}

func (f *fakeContactRepo) Create(_ context.Context, contact *model.Contact) error {
	clone := *contact
	f.contacts[contact.ID] = &clone
	return nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]*model.Contact, error) {
	var out []*model.Contact
	for _, c := range f.contacts {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeContactRepo) MarkRead(_ context.Context, id uuid.UUID) (bool, error) {
	c, ok := f.contacts[id]
	if !ok {
		return false, nil
	}
	c.Read = true
	return true, nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.contacts[id]; !ok {
		return false, nil
	}
	delete(f.contacts, id)
	return true, nil
}

func TestCreateContactStartsUnread(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	contact, err := svc.Create(context.Background(), &model.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hi there",
	})
	require.NoError(t, err)

	assert.False(t, contact.Read)
	assert.NotEqual(t, uuid.Nil, contact.ID)
}

func TestCreateContactRejectsBadEmail(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, err := svc.Create(context.Background(), &model.CreateContactRequest{
		Name:    "Visitor",
		Email:   "not-an-email",
		Message: "Hi there",
	})
	assert.Error(t, err)
}

func TestMarkReadFlipsFlag(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hi there",
	})
	require.NoError(t, err)

	updated, err := svc.MarkRead(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)
}

func TestMarkReadNotFound(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, err := svc.MarkRead(context.Background(), uuid.New())
	assert.True(t, model.IsContactNotFound(err))
}

func TestDeleteContactNotFound(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, model.IsContactNotFound(err))
}
