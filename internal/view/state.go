// internal/view/state.go
package view

import (
	"fmt"
	"strings"

	"songcatalog/internal/models"
)

// State is everything the song list and detail screens render from.
type State struct {
	Songs   []models.Song
	Song    *models.Song
	Stats   *models.StatisticsSnapshot
	Loading bool
	Err     string
	Search  string
	Genre   string
	Page    int
}

func NewState() State {
	return State{Page: 1}
}

// Filtered returns the songs matching Genre and Search in reverse arrival
// order.
func (s State) Filtered() []models.Song {
	search := strings.ToLower(s.Search)
	out := make([]models.Song, 0, len(s.Songs))
	for i := len(s.Songs) - 1; i >= 0; i-- {
		song := s.Songs[i]
		if s.Genre != "" && song.Genre != s.Genre {
			continue
		}
		if search != "" && !matches(song, search) {
			continue
		}
		out = append(out, song)
	}
	return out
}

func matches(song models.Song, search string) bool {
	return strings.Contains(strings.ToLower(song.Title), search) ||
		strings.Contains(strings.ToLower(song.Artist), search) ||
		strings.Contains(strings.ToLower(song.Album), search)
}

func (s State) pagination() *models.Pagination {
	return models.NewPagination(s.Page, models.DefaultPageSize)
}

func (s State) PageCount() int {
	return s.pagination().PageCount(len(s.Filtered()))
}

// CurrentPage returns the visible slice of Filtered.
func (s State) CurrentPage() []models.Song {
	filtered := s.Filtered()
	start, end := s.pagination().Bounds(len(filtered))
	return filtered[start:end]
}

func (s State) PageInfo() string {
	return fmt.Sprintf("Page %d of %d", s.Page, s.PageCount())
}
