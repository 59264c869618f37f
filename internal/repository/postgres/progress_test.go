package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProgressRepo_GetLearnedIDs(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedIDs   []string
		expectedError bool
	}{
		{
			name:        "ids found",
			userID:      123,
			mockRows:    sqlmock.NewRows([]string{"learned_ids"}).AddRow([]byte(`["a|b","c|d"]`)),
			expectedIDs: []string{"a|b", "c|d"},
		},
		{
			name:        "empty array",
			userID:      123,
			mockRows:    sqlmock.NewRows([]string{"learned_ids"}).AddRow([]byte(`[]`)),
			expectedIDs: []string{},
		},
		{
			name:        "no progress row yet",
			userID:      456,
			mockError:   sql.ErrNoRows,
			expectedIDs: nil,
		},
		{
			name:          "invalid json",
			userID:        123,
			mockRows:      sqlmock.NewRows([]string{"learned_ids"}).AddRow([]byte(`not-json`)),
			expectedError: true,
		},
		{
			name:          "database error",
			userID:        123,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewProgressRepo(db)

			query := "SELECT learned_ids FROM progress WHERE user_id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			ids, err := repo.GetLearnedIDs(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedIDs, ids)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepo_SaveLearnedIDs(t *testing.T) {
	tests := []struct {
		name         string
		userID       int64
		ids          []string
		expectedJSON string
	}{
		{
			name:         "two ids",
			userID:       123,
			ids:          []string{"a|b", "c|d"},
			expectedJSON: `["a|b","c|d"]`,
		},
		{
			name:         "nil list saved as empty array",
			userID:       123,
			ids:          nil,
			expectedJSON: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewProgressRepo(db)

			mock.ExpectExec("INSERT INTO progress").
				WithArgs(tt.userID, []byte(tt.expectedJSON)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err = repo.SaveLearnedIDs(tt.userID, tt.ids)

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepo_SaveLearnedIDs_DatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	mock.ExpectExec("INSERT INTO progress").
		WithArgs(int64(123), []byte(`["a|b"]`)).
		WillReturnError(fmt.Errorf("db error"))

	err = repo.SaveLearnedIDs(123, []string{"a|b"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)
	ids := []string{"a|b", "c|d"}

	mock.ExpectExec("INSERT INTO progress").
		WithArgs(int64(123), []byte(`["a|b","c|d"]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT learned_ids FROM progress").
		WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"learned_ids"}).AddRow([]byte(`["a|b","c|d"]`)))

	assert.NoError(t, repo.SaveLearnedIDs(123, ids))

	got, err := repo.GetLearnedIDs(123)
	assert.NoError(t, err)
	assert.ElementsMatch(t, ids, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}
