package app

import (
	"context"
	"testing"
	"time"

	"codingevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEventRepo struct {
	listFn   func(ctx context.Context) ([]domain.Event, error)
	createFn func(ctx context.Context, name, description, contactEmail string, typ domain.EventType, createdAt time.Time) (*domain.Event, error)
	deleteFn func(ctx context.Context, id int64) error

	createCalls int
	deletedIDs  []int64
}

func (m *mockEventRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, name, description, contactEmail string, typ domain.EventType, createdAt time.Time) (*domain.Event, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, name, description, contactEmail, typ, createdAt)
	}
	return &domain.Event{ID: 1, Name: name, Description: description, ContactEmail: contactEmail, Type: typ, CreatedAt: createdAt}, nil
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestEventService_Create_Success(t *testing.T) {
	ctx := context.Background()
	repo := &mockEventRepo{}
	svc := NewEventService(repo)

	event, err := svc.Create(ctx, EventForm{
		Name:         "GopherCon",
		Description:  "A conference about Go",
		ContactEmail: "org@gophercon.com",
		Type:         domain.EventTypeConference,
	})

	require.NoError(t, err)
	assert.Equal(t, "GopherCon", event.Name)
	assert.Equal(t, 1, repo.createCalls)
}

func TestEventService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		form  EventForm
		field string
	}{
		{"short name", EventForm{Name: "Go", ContactEmail: "a@b.com", Type: domain.EventTypeMeetup}, "name"},
		{"missing email", EventForm{Name: "Go Meetup", Type: domain.EventTypeMeetup}, "contactEmail"},
		{"bad email", EventForm{Name: "Go Meetup", ContactEmail: "not-an-email", Type: domain.EventTypeMeetup}, "contactEmail"},
		{"bad type", EventForm{Name: "Go Meetup", ContactEmail: "a@b.com", Type: "party"}, "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockEventRepo{}
			svc := NewEventService(repo)
			_, err := svc.Create(ctx, tc.form)
			requireCode(t, err, tc.field, CodeStructural)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &mockEventRepo{}
	svc := NewEventService(repo)

	require.NoError(t, svc.Delete(ctx, []int64{3, 1, 2}))
	assert.Equal(t, []int64{3, 1, 2}, repo.deletedIDs)

	require.NoError(t, svc.Delete(ctx, nil))
	assert.Len(t, repo.deletedIDs, 3)
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	repo := &mockEventRepo{
		listFn: func(ctx context.Context) ([]domain.Event, error) {
			return []domain.Event{{ID: 1, Name: "Go Meetup"}}, nil
		},
	}
	svc := NewEventService(repo)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Go Meetup", events[0].Name)
}
