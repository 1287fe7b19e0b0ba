// internal/storage/storage.go
package storage

import (
	"context"
	"errors"

	"songcatalog/internal/models"
)

var (
	ErrSongNotFound = errors.New("song not found")
	ErrInvalidID    = errors.New("invalid song id")
)

// Grouping fields accepted by GroupCount and CountDistinct.
const (
	FieldGenre  = "genre"
	FieldArtist = "artist"
	FieldAlbum  = "album"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mock_storage

type SongStorage interface {
	Create(ctx context.Context, song *models.Song) (*models.Song, error)
	GetByID(ctx context.Context, id string) (*models.Song, error)
	List(ctx context.Context) ([]models.Song, error)
	// Update returns (nil, nil) when no song has the id.
	Update(ctx context.Context, id string, input *models.SongInput) (*models.Song, error)
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	CountDistinct(ctx context.Context, field string) (int, error)
	// GroupCount groups the whole collection by field, sorted by key ascending.
	GroupCount(ctx context.Context, field string) ([]models.GroupCount, error)
	AlbumsByArtist(ctx context.Context) ([]models.ArtistAlbums, error)
}
