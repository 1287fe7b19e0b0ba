// internal/models/song.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genres offered by the client forms. The store accepts any value.
var Genres = []string{"Rock", "Pop", "Jazz", "Classical", "Hip-hop", "Country", "Electronic", "Reggae", "Other"}

type Song struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Artist    string             `json:"artist" bson:"artist"`
	Album     string             `json:"album" bson:"album"`
	Genre     string             `json:"genre" bson:"genre"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// SongInput is the create/update payload. Update replaces all four fields.
type SongInput struct {
	Title  string `json:"title" validate:"required"`
	Artist string `json:"artist" validate:"required"`
	Album  string `json:"album"`
	Genre  string `json:"genre"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

// IsValidID reports whether id is a well-formed store identifier.
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
