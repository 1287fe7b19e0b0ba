// internal/models/stats.go
package models

import "fmt"

// GroupCount is one row of a group-by-count table. Key is nil for songs
// where the grouped field is missing or null.
type GroupCount struct {
	Key   *string `json:"key" bson:"_id"`
	Count int     `json:"count" bson:"count"`
}

type ArtistAlbums struct {
	Key         *string  `json:"key" bson:"_id"`
	Albums      []string `json:"albums" bson:"albums"`
	TotalAlbums int      `json:"totalAlbums" bson:"totalAlbums"`
}

type StatisticsSnapshot struct {
	TotalSongs     int64          `json:"totalSongs"`
	TotalArtists   int            `json:"totalArtists"`
	TotalAlbums    int            `json:"totalAlbums"`
	TotalGenres    int            `json:"totalGenres"`
	SongsByGenre   []GroupCount   `json:"songsByGenre"`
	SongsByArtist  []GroupCount   `json:"songsByArtist"`
	SongsByAlbum   []GroupCount   `json:"songsByAlbum"`
	AlbumsByArtist []ArtistAlbums `json:"albumsByArtist"`
}

// Validate checks the structure of a snapshot received over the wire:
// totals are non-negative and every group holds at least one song.
// Group sums may differ from TotalSongs when writes land between the
// queries that build the snapshot.
func (s *StatisticsSnapshot) Validate() error {
	if s.TotalSongs < 0 || s.TotalArtists < 0 || s.TotalAlbums < 0 || s.TotalGenres < 0 {
		return fmt.Errorf("negative total in statistics snapshot")
	}
	for _, t := range s.tables() {
		for _, g := range t.groups {
			if g.Count <= 0 {
				return fmt.Errorf("%s: non-positive count %d", t.name, g.Count)
			}
		}
	}
	for _, a := range s.AlbumsByArtist {
		if a.TotalAlbums < 0 {
			return fmt.Errorf("albumsByArtist: negative totalAlbums %d", a.TotalAlbums)
		}
	}
	return nil
}

// Consistent reports whether every group table accounts for every song
// exactly once. It holds for a snapshot taken with no concurrent writes.
func (s *StatisticsSnapshot) Consistent() error {
	for _, t := range s.tables() {
		var sum int64
		for _, g := range t.groups {
			sum += int64(g.Count)
		}
		if sum != s.TotalSongs {
			return fmt.Errorf("%s: counts sum to %d, want %d", t.name, sum, s.TotalSongs)
		}
	}
	return nil
}

type namedGroups struct {
	name   string
	groups []GroupCount
}

func (s *StatisticsSnapshot) tables() []namedGroups {
	return []namedGroups{
		{"songsByGenre", s.SongsByGenre},
		{"songsByArtist", s.SongsByArtist},
		{"songsByAlbum", s.SongsByAlbum},
	}
}
