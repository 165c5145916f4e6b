package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-video-vault/models"
)

var (
	userColumns  = []string{"id", "email", "password_hash", "created_at"}
	videoColumns = []string{"id", "user_id", "original_name", "filename", "url", "size", "format", "public_id", "upload_date"}
)

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func (db *DB) selectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func (db *DB) insertVideoQuery(video models.Video) (string, []any, error) {
	return db.builder.
		Insert(video.TableName()).
		Columns(videoColumns...).
		Values(video.ID, video.UserID, video.OriginalName, video.Filename, video.URL,
			video.Size, video.Format, video.PublicID, video.UploadDate).
		ToSql()
}

func (db *DB) listVideosQuery(ownerID string) (string, []any, error) {
	return db.builder.
		Select(videoColumns...).
		From(models.Video{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("upload_date DESC", "id DESC").
		ToSql()
}

func (db *DB) findVideoQuery(ownerID, videoID string) (string, []any, error) {
	return db.builder.
		Select(videoColumns...).
		From(models.Video{}.TableName()).
		Where(sq.Eq{"id": videoID, "user_id": ownerID}).
		Limit(1).
		ToSql()
}

func (db *DB) deleteVideoQuery(ownerID, videoID string) (string, []any, error) {
	return db.builder.
		Delete(models.Video{}.TableName()).
		Where(sq.Eq{"id": videoID, "user_id": ownerID}).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

func scanVideo(row rowScanner) (models.Video, error) {
	var video models.Video
	err := row.Scan(&video.ID, &video.UserID, &video.OriginalName, &video.Filename, &video.URL,
		&video.Size, &video.Format, &video.PublicID, &video.UploadDate)
	return video, err
}
