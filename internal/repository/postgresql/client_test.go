package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/client"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/database"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, database.NewFromPool(mock)
}

func clientRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "contact_name", "contact_email", "contact_phone",
		"vat_number", "address", "notes", "created_at", "updated_at",
	})
}

func TestClientRepository_GetByID(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewClientRepository(db)

	now := time.Now()
	contact := "Anna Bianchi"
	mock.ExpectQuery(`SELECT (.+) FROM clients`).
		WithArgs("client-1").
		WillReturnRows(clientRows().
			AddRow("client-1", "Acme Events", &contact, nil, nil, nil, nil, nil, now, now))

	found, err := repo.GetByID(context.Background(), "client-1")
	require.NoError(t, err)

	assert.Equal(t, "Acme Events", found.Name)
	require.NotNil(t, found.ContactName)
	assert.Equal(t, "Anna Bianchi", *found.ContactName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM clients`).
		WithArgs("missing").
		WillReturnRows(clientRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, client.ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_ExistsByName(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Acme Events").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByName(context.Background(), "Acme Events", nil)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_ExistsByName_Excluding(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewClientRepository(db)

	excludeID := "client-1"
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Acme Events", excludeID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByName(context.Background(), "Acme Events", &excludeID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_SoftDelete_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`UPDATE clients`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := repo.SoftDelete(context.Background(), "missing")
	assert.ErrorIs(t, err, client.ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_List(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewClientRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM clients`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT (.+) FROM clients`).
		WithArgs(20, 0).
		WillReturnRows(clientRows().
			AddRow("client-1", "Acme Events", nil, nil, nil, nil, nil, nil, now, now).
			AddRow("client-2", "Borealis", nil, nil, nil, nil, nil, nil, now, now))

	filter := client.ClientFilter{Page: 1, Limit: 20}
	clients, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, clients, 2)
	assert.Equal(t, "Borealis", clients[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
