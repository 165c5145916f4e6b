package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-video-vault/models"
)

func newTestVideoRepo(t *testing.T) (*videoRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := &videoRepository{db: db, ids: &sequenceIDs{}, clock: fixedClock}
	return repo, mock
}

func sampleVideo(owner, name string) models.Video {
	return models.Video{
		OriginalName: name,
		Filename:     "videos/" + name,
		URL:          "https://res.cloudinary.com/demo/video/upload/v1/videos/" + name,
		Size:         10485760,
		Format:       "mp4",
		UserID:       owner,
		PublicID:     "videos/" + name,
	}
}

func TestSaveVideos_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)
	first, second := sampleVideo("u1", "a.mp4"), sampleVideo("u1", "b.mp4")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO videos \(id,user_id,original_name,filename,url,size,format,public_id,upload_date\)`).
		WithArgs("id-1", "u1", "a.mp4", first.Filename, first.URL, first.Size, "mp4", first.PublicID, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO videos").
		WithArgs("id-2", "u1", "b.mp4", second.Filename, second.URL, second.Size, "mp4", second.PublicID, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.SaveVideos(context.Background(), []models.Video{first, second})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "id-1", saved[0].ID)
	assert.Equal(t, "a.mp4", saved[0].OriginalName)
	assert.Equal(t, "id-2", saved[1].ID)
	assert.Equal(t, fixedNow, saved[1].UploadDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVideos_KeepsExplicitUploadDate(t *testing.T) {
	repo, mock := newTestVideoRepo(t)
	video := sampleVideo("u1", "a.mp4")
	video.UploadDate = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO videos").
		WithArgs("id-1", "u1", "a.mp4", video.Filename, video.URL, video.Size, "mp4", video.PublicID, video.UploadDate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.SaveVideos(context.Background(), []models.Video{video})

	require.NoError(t, err)
	assert.Equal(t, video.UploadDate, saved[0].UploadDate)
}

func TestSaveVideos_InvalidRecordWritesNothing(t *testing.T) {
	repo, mock := newTestVideoRepo(t)
	bad := sampleVideo("u1", "b.mp4")
	bad.URL = ""

	_, err := repo.SaveVideos(context.Background(), []models.Video{sampleVideo("u1", "a.mp4"), bad})

	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.ErrorIs(t, err, models.ErrInvalidVideo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVideos_RollsBackOnInsertError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO videos").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO videos").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	saved, err := repo.SaveVideos(context.Background(), []models.Video{sampleVideo("u1", "a.mp4"), sampleVideo("u1", "b.mp4")})

	assert.Nil(t, saved)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVideos_BeginError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.SaveVideos(context.Background(), []models.Video{sampleVideo("u1", "a.mp4")})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSaveVideos_CommitError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO videos").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.SaveVideos(context.Background(), []models.Video{sampleVideo("u1", "a.mp4")})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestListVideosByOwner_NewestFirst(t *testing.T) {
	repo, mock := newTestVideoRepo(t)
	newer := fixedNow
	older := fixedNow.Add(-time.Hour)

	rows := sqlmock.NewRows(videoColumns).
		AddRow("v2", "u1", "b.mp4", "videos/b", "https://x/upload/b.mp4", int64(20), "mp4", "videos/b", newer).
		AddRow("v1", "u1", "a.mp4", "videos/a", "https://x/upload/a.mp4", int64(10), "mp4", "videos/a", older)
	mock.ExpectQuery(`SELECT (.+) FROM videos WHERE user_id = \$1 ORDER BY upload_date DESC, id DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	videos, err := repo.ListVideosByOwner(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "v2", videos[0].ID)
	assert.Equal(t, int64(20), videos[0].Size)
	assert.Equal(t, "v1", videos[1].ID)
}

func TestListVideosByOwner_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(videoColumns))

	videos, err := repo.ListVideosByOwner(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestListVideosByOwner_ScanError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("v1"))

	_, err := repo.ListVideosByOwner(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindVideo_ScopedByOwner(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	rows := sqlmock.NewRows(videoColumns).
		AddRow("v1", "u1", "a.mp4", "videos/a", "https://x/upload/a.mp4", int64(10), "mp4", "videos/a", fixedNow)
	mock.ExpectQuery(`SELECT (.+) FROM videos WHERE id = \$1 AND user_id = \$2 LIMIT 1`).
		WithArgs("v1", "u1").
		WillReturnRows(rows)

	video, err := repo.FindVideo(context.Background(), "u1", "v1")

	require.NoError(t, err)
	assert.Equal(t, "a.mp4", video.OriginalName)
	assert.Equal(t, "videos/a", video.PublicID)
}

func TestFindVideo_NotFound(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WithArgs("v1", "u2").
		WillReturnRows(sqlmock.NewRows(videoColumns))

	_, err := repo.FindVideo(context.Background(), "u2", "v1")

	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestDeleteVideo(t *testing.T) {
	tests := []struct {
		name     string
		result   func(*sqlmock.ExpectedExec)
		expected error
	}{
		{
			name:   "deleted",
			result: func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) },
		},
		{
			name:     "nothing matched",
			result:   func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) },
			expected: ErrVideoNotFound,
		},
		{
			name:     "driver error",
			result:   func(e *sqlmock.ExpectedExec) { e.WillReturnError(errors.New("boom")) },
			expected: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestVideoRepo(t)
			exec := mock.ExpectExec(`DELETE FROM videos WHERE id = \$1 AND user_id = \$2`).WithArgs("v1", "u1")
			tt.result(exec)

			err := repo.DeleteVideo(context.Background(), "u1", "v1")

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
