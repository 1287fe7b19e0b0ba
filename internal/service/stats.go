package service

import (
	"context"
	"fmt"
	"strings"

	"songcatalog/internal/lib/apperr"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"
	"songcatalog/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// GetStats computes a fresh statistics snapshot over the whole collection.
func (s *SongService) GetStats(ctx context.Context) (*models.StatisticsSnapshot, error) {
	utils.Logger.Debug("SongService.GetStats")

	var (
		snapshot models.StatisticsSnapshot
		err      error
	)
	fail := func(step string, err error) (*models.StatisticsSnapshot, error) {
		utils.Logger.Error("SongService.GetStats - "+step+" failed", zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("SongService.GetStats - %s failed: %w", step, err))
	}

	if snapshot.TotalSongs, err = s.storage.Count(ctx); err != nil {
		return fail("storage.Count", err)
	}
	if snapshot.TotalArtists, err = s.storage.CountDistinct(ctx, storage.FieldArtist); err != nil {
		return fail("storage.CountDistinct(artist)", err)
	}
	if snapshot.TotalAlbums, err = s.storage.CountDistinct(ctx, storage.FieldAlbum); err != nil {
		return fail("storage.CountDistinct(album)", err)
	}
	if snapshot.TotalGenres, err = s.storage.CountDistinct(ctx, storage.FieldGenre); err != nil {
		return fail("storage.CountDistinct(genre)", err)
	}

	if snapshot.SongsByGenre, err = s.storage.GroupCount(ctx, storage.FieldGenre); err != nil {
		return fail("storage.GroupCount(genre)", err)
	}
	if snapshot.SongsByArtist, err = s.storage.GroupCount(ctx, storage.FieldArtist); err != nil {
		return fail("storage.GroupCount(artist)", err)
	}
	if snapshot.AlbumsByArtist, err = s.storage.AlbumsByArtist(ctx); err != nil {
		return fail("storage.AlbumsByArtist", err)
	}
	if snapshot.SongsByAlbum, err = s.storage.GroupCount(ctx, storage.FieldAlbum); err != nil {
		return fail("storage.GroupCount(album)", err)
	}

	sortGroups(snapshot.SongsByGenre)
	sortGroups(snapshot.SongsByArtist)
	sortGroups(snapshot.SongsByAlbum)
	slices.SortStableFunc(snapshot.AlbumsByArtist, func(a, b models.ArtistAlbums) int {
		return compareKeys(a.Key, b.Key)
	})
	for i := range snapshot.AlbumsByArtist {
		slices.Sort(snapshot.AlbumsByArtist[i].Albums)
	}

	utils.Logger.Debug("SongService.GetStats - snapshot computed", zap.Int64("total_songs", snapshot.TotalSongs))
	return &snapshot, nil
}

// sortGroups orders groups by key ascending with the null bucket first.
func sortGroups(groups []models.GroupCount) {
	slices.SortStableFunc(groups, func(a, b models.GroupCount) int {
		return compareKeys(a.Key, b.Key)
	})
}

func compareKeys(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return strings.Compare(*a, *b)
	}
}
