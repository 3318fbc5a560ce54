package media

import (
	"database/sql"
	"time"

	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// SaveImage stores the image bytes under a fresh ID and a timestamped key.
func (r *Repository) SaveImage(filename, mediaType string, data []byte) (Image, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return Image{}, err
	}
	img := Image{
		ID:        id.String(),
		Key:       Key(filename, time.Now().UTC()),
		MediaType: mediaType,
		Bytes:     data,
		CreatedAt: time.Now().UTC(),
	}
	stmt := `INSERT INTO image (id, key, media_type, bytes, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(stmt, img.ID, img.Key, img.MediaType, img.Bytes, img.CreatedAt); err != nil {
		return Image{}, err
	}
	return img, nil
}

// ImageByID retrieves a stored image.
func (r *Repository) ImageByID(id string) (Image, error) {
	img := Image{}
	row := r.db.QueryRow(`SELECT id, key, media_type, bytes, created_at FROM image WHERE id = $1`, id)
	if err := row.Scan(&img.ID, &img.Key, &img.MediaType, &img.Bytes, &img.CreatedAt); err != nil {
		return img, err
	}
	return img, nil
}
