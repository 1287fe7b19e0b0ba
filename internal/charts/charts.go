// internal/charts/charts.go
package charts

import (
	"fmt"
	"io"
	"strings"

	"songcatalog/internal/models"
)

type Kind string

const (
	Doughnut Kind = "doughnut"
	Line     Kind = "line"
	Pie      Kind = "pie"
	Bar      Kind = "bar"
)

// UnknownLabel replaces a null or empty group key.
const UnknownLabel = "Unknown"

var (
	TotalsPalette = []string{"#ff6b6b", "#ff8787", "#ffc9c9", "#ffebeb"}
	GenrePalette  = []string{"#ff6b6b", "#ff8787", "#ffc9c9", "#ffebeb"}
	ArtistPalette = []string{"#6bc2ff", "#87a6ff", "#c9d4ff", "#ebe9ff"}
	AlbumPalette  = []string{"#6bffb8", "#87ffc9", "#c9ffeb", "#ebfff8"}
)

// Series is one chart: labels, counts and colors are parallel.
type Series struct {
	Title  string   `json:"title"`
	Kind   Kind     `json:"kind"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
	Colors []string `json:"colors"`
}

func Label(key *string) string {
	if key == nil || *key == "" {
		return UnknownLabel
	}
	return *key
}

// Color picks palette[i] cyclically.
func Color(palette []string, i int) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[i%len(palette)]
}

func FromGroups(title string, kind Kind, groups []models.GroupCount, palette []string) Series {
	s := Series{
		Title:  title,
		Kind:   kind,
		Labels: make([]string, 0, len(groups)),
		Counts: make([]int, 0, len(groups)),
		Colors: make([]string, 0, len(groups)),
	}
	for i, g := range groups {
		s.Labels = append(s.Labels, Label(g.Key))
		s.Counts = append(s.Counts, g.Count)
		s.Colors = append(s.Colors, Color(palette, i))
	}
	return s
}

func Totals(stats *models.StatisticsSnapshot) Series {
	labels := []string{"Total Songs", "Total Artists", "Total Albums", "Total Genres"}
	colors := make([]string, len(labels))
	for i := range labels {
		colors[i] = Color(TotalsPalette, i)
	}
	return Series{
		Title:  "Overall Totals",
		Kind:   Doughnut,
		Labels: labels,
		Counts: []int{int(stats.TotalSongs), stats.TotalArtists, stats.TotalAlbums, stats.TotalGenres},
		Colors: colors,
	}
}

// Build returns the four charts of the statistics page in display order.
func Build(stats *models.StatisticsSnapshot) []Series {
	return []Series{
		Totals(stats),
		FromGroups("Songs by Genre", Line, stats.SongsByGenre, GenrePalette),
		FromGroups("Songs by Artist", Pie, stats.SongsByArtist, ArtistPalette),
		FromGroups("Songs by Album", Bar, stats.SongsByAlbum, AlbumPalette),
	}
}

const barWidth = 30

// RenderText writes s as a horizontal bar chart scaled to the largest count.
func RenderText(w io.Writer, s Series) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", s.Title, s.Kind); err != nil {
		return err
	}
	if len(s.Labels) == 0 {
		_, err := fmt.Fprintln(w, "  no data")
		return err
	}

	maxCount, labelWidth := 0, 0
	for i, label := range s.Labels {
		if s.Counts[i] > maxCount {
			maxCount = s.Counts[i]
		}
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	for i, label := range s.Labels {
		n := 0
		if maxCount > 0 {
			n = s.Counts[i] * barWidth / maxCount
		}
		if _, err := fmt.Fprintf(w, "  %-*s %s %d\n", labelWidth, label, strings.Repeat("#", n), s.Counts[i]); err != nil {
			return err
		}
	}
	return nil
}
