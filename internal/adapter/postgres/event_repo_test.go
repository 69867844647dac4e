package postgres

import (
	"context"
	"testing"
	"time"

	"codingevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "contact_email", "type", "created_at"})
}

func TestListEvents(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM events ORDER BY id").
		WillReturnRows(eventRows().
			AddRow(int64(1), "Go Meetup", "Monthly", "org@example.com", "meetup", time.Now()).
			AddRow(int64(2), "GopherCon", "", "info@gophercon.com", "conference", time.Now()))

	events, err := db.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Go Meetup", events[0].Name)
	assert.Equal(t, domain.EventTypeConference, events[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM events ORDER BY id").
		WillReturnRows(eventRows())

	events, err := db.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvent(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO events").
		WithArgs("Go Meetup", "Monthly", "org@example.com", domain.EventTypeMeetup, now).
		WillReturnRows(eventRows().
			AddRow(int64(1), "Go Meetup", "Monthly", "org@example.com", "meetup", now))

	event, err := db.CreateEvent(context.Background(), "Go Meetup", "Monthly", "org@example.com", domain.EventTypeMeetup, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, domain.EventTypeMeetup, event.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM events WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.DeleteEvent(context.Background(), 1))

	// Absent ids delete zero rows without error.
	mock.ExpectExec("DELETE FROM events WHERE id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.DeleteEvent(context.Background(), 999))
	assert.NoError(t, mock.ExpectationsWereMet())
}
