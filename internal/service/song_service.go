package service

import (
	"context"
	"errors"
	"fmt"

	"songcatalog/internal/lib/apperr"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"
	"songcatalog/internal/storage"

	"go.uber.org/zap"
)

const (
	msgMissingFields = "Please include all fields"
	msgInvalidID     = "Invalid ID"
	msgNotFound      = "Song not found"
	msgGetNotFound   = "Song Not Found"
	msgDeleted       = "Song Deleted Successfully"
)

type SongService struct {
	storage storage.SongStorage
}

func NewSongService(storage storage.SongStorage) *SongService {
	return &SongService{
		storage: storage,
	}
}

func (s *SongService) GetSongs(ctx context.Context) ([]models.Song, error) {
	utils.Logger.Debug("SongService.GetSongs")

	songs, err := s.storage.List(ctx)
	if err != nil {
		utils.Logger.Error("SongService.GetSongs - storage.List failed", zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("SongService.GetSongs - storage.List failed: %w", err))
	}
	return songs, nil
}

// GetSong looks a song up by id. A malformed id cannot match any song and
// is reported as not found.
func (s *SongService) GetSong(ctx context.Context, id string) (*models.Song, error) {
	utils.Logger.Debug("SongService.GetSong", zap.String("id", id))

	song, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) || errors.Is(err, storage.ErrInvalidID) {
			return nil, apperr.NotFound(msgGetNotFound)
		}
		utils.Logger.Error("SongService.GetSong - storage.GetByID failed", zap.Error(err), zap.String("id", id))
		return nil, apperr.Internal(fmt.Errorf("SongService.GetSong - storage.GetByID failed: %w", err))
	}
	return song, nil
}

// AddSong stores a new song. Only the presence of a payload is checked here;
// required fields are enforced by the client before submission.
func (s *SongService) AddSong(ctx context.Context, input *models.SongInput) (*models.Song, error) {
	if input == nil {
		return nil, apperr.Validation(msgMissingFields)
	}
	utils.Logger.Debug("SongService.AddSong", zap.String("title", input.Title), zap.String("artist", input.Artist))

	added, err := s.storage.Create(ctx, &models.Song{
		Title:  input.Title,
		Artist: input.Artist,
		Album:  input.Album,
		Genre:  input.Genre,
	})
	if err != nil {
		utils.Logger.Error("SongService.AddSong - storage.Create failed", zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("SongService.AddSong - storage.Create failed: %w", err))
	}

	utils.Logger.Info("SongService.AddSong - song added", zap.String("song_id", added.ID.Hex()), zap.String("title", added.Title), zap.String("artist", added.Artist))
	return added, nil
}

// UpdateSong replaces title, artist, album and genre. It returns (nil, nil)
// when no song matches id, malformed ids included.
func (s *SongService) UpdateSong(ctx context.Context, id string, input *models.SongInput) (*models.Song, error) {
	if input == nil {
		return nil, apperr.Validation(msgMissingFields)
	}
	utils.Logger.Debug("SongService.UpdateSong", zap.String("id", id), zap.String("title", input.Title), zap.String("artist", input.Artist))

	updated, err := s.storage.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidID) {
			return nil, nil
		}
		utils.Logger.Error("SongService.UpdateSong - storage.Update failed", zap.Error(err), zap.String("id", id))
		return nil, apperr.Internal(fmt.Errorf("SongService.UpdateSong - storage.Update failed: %w", err))
	}
	if updated == nil {
		utils.Logger.Info("SongService.UpdateSong - no song with id", zap.String("id", id))
		return nil, nil
	}
	utils.Logger.Info("SongService.UpdateSong - song updated", zap.String("song_id", id))
	return updated, nil
}

func (s *SongService) DeleteSong(ctx context.Context, id string) (*models.DeleteResponse, error) {
	utils.Logger.Debug("SongService.DeleteSong", zap.String("id", id))

	if !models.IsValidID(id) {
		return nil, apperr.Validation(msgInvalidID)
	}

	err := s.storage.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, apperr.NotFound(msgNotFound)
		}
		if errors.Is(err, storage.ErrInvalidID) {
			return nil, apperr.Validation(msgInvalidID)
		}
		utils.Logger.Error("SongService.DeleteSong - storage.Delete failed", zap.Error(err), zap.String("id", id))
		return nil, apperr.Internal(fmt.Errorf("SongService.DeleteSong - storage.Delete failed: %w", err))
	}
	utils.Logger.Info("SongService.DeleteSong - song deleted", zap.String("song_id", id))
	return &models.DeleteResponse{Message: msgDeleted}, nil
}
