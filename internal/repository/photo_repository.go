package repository

import (
	"context"

	"tindev/internal/database"
	"tindev/internal/domain/photo"

	"github.com/google/uuid"
)

type PhotoRepository interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (photo.Photo, error)
	FindDefault(ctx context.Context) (photo.Photo, error)
}

type PostgresPhotoRepository struct {
	db database.DB
}

func NewPostgresPhotoRepository(db database.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{db: db}
}

const photoColumns = `id, title, media_file_id, album_id, url_preview, url_thumbnail, description, is_deleted, is_default`

func (r *PostgresPhotoRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (photo.Photo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = $1 AND NOT is_deleted`, id)
	return scanPhoto(row)
}

func (r *PostgresPhotoRepository) FindDefault(ctx context.Context) (photo.Photo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE is_default AND NOT is_deleted LIMIT 1`)
	return scanPhoto(row)
}

func scanPhoto(row database.Row) (photo.Photo, error) {
	var p photo.Photo
	var albumID uuid.NullUUID

	err := row.Scan(
		&p.ID, &p.Title, &p.MediaFileID, &albumID, &p.URLPreview, &p.URLThumbnail,
		&p.Description, &p.IsDeleted, &p.IsDefault,
	)
	if err != nil {
		if isNoRows(err) {
			return photo.Photo{}, ErrNotFound
		}
		return photo.Photo{}, err
	}

	if albumID.Valid {
		id := albumID.UUID
		p.AlbumID = &id
	}
	return p, nil
}
