package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplogue/triplogue-backend/store"
)

func TestGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	s := NewDocumentStore(mock)

	mock.ExpectQuery(`SELECT doc FROM documents WHERE key = \$1`).
		WithArgs("trip:1").
		WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":1}`)))

	doc, err := s.Get(context.Background(), "trip:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMapsNoRowsToNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	s := NewDocumentStore(mock)

	mock.ExpectQuery(`SELECT doc FROM documents WHERE key = \$1`).
		WithArgs("trip:404").
		WillReturnError(pgx.ErrNoRows)

	_, err = s.Get(context.Background(), "trip:404")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetUpserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	s := NewDocumentStore(mock)

	mock.ExpectExec(`INSERT INTO documents`).
		WithArgs("trip:1", []byte(`{"id":1}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.Set(context.Background(), "trip:1", []byte(`{"id":1}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	s := NewDocumentStore(mock)

	mock.ExpectExec(`DELETE FROM documents WHERE key = \$1`).
		WithArgs("trip:404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, s.Delete(context.Background(), "trip:404"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsesKeyRangeScan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	s := NewDocumentStore(mock)

	mock.ExpectQuery(`SELECT key FROM documents WHERE key >= \$1 AND key < \$2`).
		WithArgs("flight:1:", "flight:1:\uffff").
		WillReturnRows(pgxmock.NewRows([]string{"key"}).
			AddRow("flight:1:100").
			AddRow("flight:1:200"))

	keys, err := s.List(context.Background(), "flight:1:")
	require.NoError(t, err)
	assert.Equal(t, []string{"flight:1:100", "flight:1:200"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}
