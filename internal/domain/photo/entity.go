package photo

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("photo not found")

// Photo references a file on the external media host. MediaFileID is the
// host-side identifier used to resolve a preview URL.
type Photo struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	MediaFileID  string     `json:"media_file_id"`
	AlbumID      *uuid.UUID `json:"album_id,omitempty"`
	URLPreview   string     `json:"url_preview,omitempty"`
	URLThumbnail string     `json:"url_thumbnail,omitempty"`
	Description  string     `json:"description,omitempty"`
	IsDeleted    bool       `json:"is_deleted"`
	IsDefault    bool       `json:"is_default"`
}
