// internal/view/reducer.go
package view

import (
	"songcatalog/internal/models"
)

type ActionType int

const (
	FetchSongsStart ActionType = iota
	FetchSongsSuccess
	FetchSongsFailure
	FetchSongStart
	FetchSongSuccess
	FetchSongFailure
	AddSongStart
	AddSongSuccess
	AddSongFailure
	UpdateSongStart
	UpdateSongSuccess
	UpdateSongFailure
	DeleteSongStart
	DeleteSongSuccess
	DeleteSongFailure
	FetchStatsStart
	FetchStatsSuccess
	FetchStatsFailure
	SetSearch
	SetGenre
	NextPage
	PrevPage
)

var actionNames = map[ActionType]string{
	FetchSongsStart:   "FetchSongsStart",
	FetchSongsSuccess: "FetchSongsSuccess",
	FetchSongsFailure: "FetchSongsFailure",
	FetchSongStart:    "FetchSongStart",
	FetchSongSuccess:  "FetchSongSuccess",
	FetchSongFailure:  "FetchSongFailure",
	AddSongStart:      "AddSongStart",
	AddSongSuccess:    "AddSongSuccess",
	AddSongFailure:    "AddSongFailure",
	UpdateSongStart:   "UpdateSongStart",
	UpdateSongSuccess: "UpdateSongSuccess",
	UpdateSongFailure: "UpdateSongFailure",
	DeleteSongStart:   "DeleteSongStart",
	DeleteSongSuccess: "DeleteSongSuccess",
	DeleteSongFailure: "DeleteSongFailure",
	FetchStatsStart:   "FetchStatsStart",
	FetchStatsSuccess: "FetchStatsSuccess",
	FetchStatsFailure: "FetchStatsFailure",
	SetSearch:         "SetSearch",
	SetGenre:          "SetGenre",
	NextPage:          "NextPage",
	PrevPage:          "PrevPage",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Action carries the payload its Type needs; other fields are ignored.
type Action struct {
	Type  ActionType
	Songs []models.Song
	Song  *models.Song
	Stats *models.StatisticsSnapshot
	ID    string
	Text  string
	Err   string
}

// Reduce returns the state after a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a.Type {
	case FetchSongsStart, FetchSongStart, AddSongStart, UpdateSongStart, DeleteSongStart, FetchStatsStart:
		s.Loading = true
		s.Err = ""

	case FetchSongsFailure, FetchSongFailure, AddSongFailure, UpdateSongFailure, DeleteSongFailure, FetchStatsFailure:
		s.Loading = false
		s.Err = a.Err

	case FetchSongsSuccess:
		s.Loading = false
		s.Songs = a.Songs

	case FetchSongSuccess:
		s.Loading = false
		s.Song = a.Song

	case AddSongSuccess:
		s.Loading = false
		if a.Song != nil {
			songs := make([]models.Song, 0, len(s.Songs)+1)
			songs = append(songs, s.Songs...)
			s.Songs = append(songs, *a.Song)
		}

	case UpdateSongSuccess:
		s.Loading = false
		if a.Song != nil {
			songs := make([]models.Song, len(s.Songs))
			copy(songs, s.Songs)
			for i := range songs {
				if songs[i].ID == a.Song.ID {
					songs[i] = *a.Song
				}
			}
			s.Songs = songs
			s.Song = a.Song
		}

	case DeleteSongSuccess:
		s.Loading = false
		songs := make([]models.Song, 0, len(s.Songs))
		for _, song := range s.Songs {
			if song.ID.Hex() != a.ID {
				songs = append(songs, song)
			}
		}
		s.Songs = songs
		if s.Song != nil && s.Song.ID.Hex() == a.ID {
			s.Song = nil
		}

	case FetchStatsSuccess:
		s.Loading = false
		s.Stats = a.Stats

	case SetSearch:
		s.Search = a.Text
		s.Page = 1

	case SetGenre:
		s.Genre = a.Text
		s.Page = 1

	case NextPage:
		if s.Page < s.PageCount() {
			s.Page++
		}

	case PrevPage:
		if s.Page > 1 {
			s.Page--
		}
	}
	return s
}
