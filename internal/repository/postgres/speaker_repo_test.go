package postgres

import (
	"context"
	"database/sql"
	"math"
	"testing"
	"time"

	"speakerservice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	speakerCols = []string{"id", "first_name", "last_name", "bio", "company", "twitter", "avatar_url", "language", "created_at", "updated_at"}
	talkCols    = []string{"speaker_id", "talk_id", "title"}
	testTime    = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
)

func TestSpeakerRepository_Create(t *testing.T) {
	ctx := context.Background()

	newSpeaker := func() *domain.Speaker {
		return &domain.Speaker{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Bio:       "First programmer",
			AcceptedTalks: []*domain.AcceptedTalk{
				{ID: "t1", Title: "Engines"},
			},
			CreatedAt: testTime,
			UpdatedAt: testTime,
		}
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO speakers`).
					WithArgs("Ada", "Lovelace", "First programmer", "", "", "", "", testTime, testTime).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("spk-uuid-1"))
				mock.ExpectExec(`INSERT INTO accepted_talks`).
					WithArgs("spk-uuid-1", "t1", "Engines").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantID: "spk-uuid-1",
		},
		{
			name: "duplicate talk returns ErrInvalidSpeaker",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO speakers`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("spk-uuid-1"))
				mock.ExpectExec(`INSERT INTO accepted_talks`).
					WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key"})
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrInvalidSpeaker,
		},
		{
			name: "db error on speaker insert",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO speakers`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin fails",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSpeakerRepository(db, 10)
			s := newSpeaker()
			err = repo.Create(ctx, s)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				assert.Empty(t, s.ID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, s.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSpeakerRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		check   func(t *testing.T, s *domain.Speaker)
		wantErr bool
		errIs   error
	}{
		{
			name: "found with talks",
			id:   "spk-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM speakers WHERE id = \$1`).
					WithArgs("spk-1").
					WillReturnRows(sqlmock.NewRows(speakerCols).
						AddRow("spk-1", "Ada", "Lovelace", "bio", "", "", "", "en", testTime, testTime))
				mock.ExpectQuery(`FROM accepted_talks`).
					WithArgs(sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(talkCols).
						AddRow("spk-1", "t1", "Engines").
						AddRow("spk-1", "t2", "Notes"))
			},
			check: func(t *testing.T, s *domain.Speaker) {
				assert.Equal(t, "spk-1", s.ID)
				assert.Equal(t, "Ada", s.FirstName)
				assert.Equal(t, "en", s.Language)
				require.Len(t, s.AcceptedTalks, 2)
				assert.Equal(t, "t2", s.AcceptedTalks[1].ID)
			},
		},
		{
			name: "no rows returns ErrNotFound",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM speakers WHERE id = \$1`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "malformed uuid returns ErrNotFound",
			id:   "not-a-uuid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM speakers WHERE id = \$1`).
					WillReturnError(&pq.Error{Code: "22P02"})
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "talk query error",
			id:   "spk-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM speakers WHERE id = \$1`).
					WillReturnRows(sqlmock.NewRows(speakerCols).
						AddRow("spk-1", "Ada", "Lovelace", "", "", "", "", "", testTime, testTime))
				mock.ExpectQuery(`FROM accepted_talks`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSpeakerRepository(db, 10)
			s, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				tt.check(t, s)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSpeakerRepository_ListPage(t *testing.T) {
	ctx := context.Background()

	t.Run("second page uses offset and attaches talks", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM speakers ORDER BY created_at, id LIMIT \$1 OFFSET \$2`).
			WithArgs(2, 2).
			WillReturnRows(sqlmock.NewRows(speakerCols).
				AddRow("spk-3", "Grace", "Hopper", "", "", "", "", "", testTime, testTime).
				AddRow("spk-4", "Alan", "Turing", "", "", "", "", "", testTime, testTime))
		mock.ExpectQuery(`FROM accepted_talks`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(talkCols).AddRow("spk-4", "t9", "Machines"))

		repo := NewSpeakerRepository(db, 2)
		list, err := repo.ListPage(ctx, 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Nil(t, list[0].AcceptedTalks)
		require.Len(t, list[1].AcceptedTalks, 1)
		assert.Equal(t, "t9", list[1].AcceptedTalks[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("past the last page is empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM speakers ORDER BY`).
			WithArgs(10, 90).
			WillReturnRows(sqlmock.NewRows(speakerCols))

		repo := NewSpeakerRepository(db, 10)
		list, err := repo.ListPage(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("page whose offset overflows is empty without querying", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewSpeakerRepository(db, 10)
		list, err := repo.ListPage(ctx, math.MaxInt)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM speakers ORDER BY`).WillReturnError(sql.ErrConnDone)

		repo := NewSpeakerRepository(db, 10)
		_, err = repo.ListPage(ctx, 1)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSpeakerRepository_NumberOfPages(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		count    int
		want     int
	}{
		{"empty", 10, 0, 0},
		{"exact", 5, 10, 2},
		{"partial last page", 10, 21, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM speakers`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			repo := NewSpeakerRepository(db, tt.pageSize)
			got, err := repo.NumberOfPages(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSpeakerRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "existing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM speakers WHERE id = \$1`).
					WithArgs("spk-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown id is not an error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM speakers`).
					WithArgs("spk-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "malformed uuid is not an error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM speakers`).
					WillReturnError(&pq.Error{Code: "22P02"})
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM speakers`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSpeakerRepository(db, 10)
			err = repo.Delete(context.Background(), "spk-1")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
