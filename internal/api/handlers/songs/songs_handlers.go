// internal/api/handlers/songs/songs_handlers.go
package songs

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"songcatalog/internal/lib/apperr"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/lib/response"
	"songcatalog/internal/models"
	"songcatalog/internal/service"
)

type SongHandlers struct {
	songService *service.SongService
	exposeStack bool
}

// NewSongHandlers builds the handlers. exposeStack adds stack traces to
// error bodies and is only meant for development.
func NewSongHandlers(songService *service.SongService, exposeStack bool) *SongHandlers {
	return &SongHandlers{
		songService: songService,
		exposeStack: exposeStack,
	}
}

// @Summary List all songs
// @Description Returns every song in the catalog.
// @Tags songs
// @Produce json
// @Success 200 {array} models.Song
// @Failure 500 {object} response.ErrorBody
// @Router / [get]
func (h *SongHandlers) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongsHandler called")

	songs, err := h.songService.GetSongs(r.Context())
	if err != nil {
		utils.Logger.Error("GetSongsHandler - songService.GetSongs failed", zap.Error(err))
		response.Error(w, err, h.exposeStack)
		return
	}

	response.JSON(w, http.StatusOK, songs)
	utils.Logger.Debug("GetSongsHandler - songs retrieved", zap.Int("count", len(songs)))
}

// @Summary Get song by ID
// @Tags songs
// @Produce json
// @Param id path string true "Song ID"
// @Success 200 {object} models.Song
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /{id} [get]
func (h *SongHandlers) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongHandler called")
	id := mux.Vars(r)["id"]

	song, err := h.songService.GetSong(r.Context(), id)
	if err != nil {
		utils.Logger.Warn("GetSongHandler - songService.GetSong failed", zap.Error(err), zap.String("id", id))
		response.Error(w, err, h.exposeStack)
		return
	}

	response.JSON(w, http.StatusOK, song)
}

// @Summary Create a song
// @Description Stores a new song. Only the presence of a body is checked.
// @Tags songs
// @Accept json
// @Produce json
// @Param body body models.SongInput true "Song to create"
// @Success 201 {object} models.Song
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /create [post]
func (h *SongHandlers) AddSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("AddSongHandler called")

	input, err := decodeSongInput(r)
	if err != nil {
		utils.Logger.Warn("AddSongHandler - invalid request body", zap.Error(err))
		response.Error(w, err, h.exposeStack)
		return
	}

	addedSong, err := h.songService.AddSong(r.Context(), input)
	if err != nil {
		utils.Logger.Error("AddSongHandler - songService.AddSong failed", zap.Error(err))
		response.Error(w, err, h.exposeStack)
		return
	}

	response.JSON(w, http.StatusCreated, addedSong)
	utils.Logger.Info("AddSongHandler - song added successfully", zap.String("song_id", addedSong.ID.Hex()), zap.String("title", addedSong.Title), zap.String("artist", addedSong.Artist))
}

// @Summary Update song by ID
// @Description Replaces title, artist, album and genre. Responds with null when no song has the id.
// @Tags songs
// @Accept json
// @Produce json
// @Param id path string true "Song ID"
// @Param body body models.SongInput true "Song details"
// @Success 200 {object} models.Song
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /{id} [put]
func (h *SongHandlers) UpdateSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("UpdateSongHandler called")
	id := mux.Vars(r)["id"]

	input, err := decodeSongInput(r)
	if err != nil {
		utils.Logger.Warn("UpdateSongHandler - invalid request body", zap.Error(err), zap.String("id", id))
		response.Error(w, err, h.exposeStack)
		return
	}

	updatedSong, err := h.songService.UpdateSong(r.Context(), id, input)
	if err != nil {
		utils.Logger.Error("UpdateSongHandler - songService.UpdateSong failed", zap.Error(err), zap.String("id", id))
		response.Error(w, err, h.exposeStack)
		return
	}

	response.JSON(w, http.StatusOK, updatedSong)
	utils.Logger.Info("UpdateSongHandler - update finished", zap.String("song_id", id), zap.Bool("matched", updatedSong != nil))
}

// @Summary Delete song by ID
// @Tags songs
// @Produce json
// @Param id path string true "Song ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /{id} [delete]
func (h *SongHandlers) DeleteSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("DeleteSongHandler called")
	id := mux.Vars(r)["id"]

	resp, err := h.songService.DeleteSong(r.Context(), id)
	if err != nil {
		utils.Logger.Warn("DeleteSongHandler - songService.DeleteSong failed", zap.Error(err), zap.String("id", id))
		response.Error(w, err, h.exposeStack)
		return
	}

	response.JSON(w, http.StatusOK, resp)
	utils.Logger.Info("DeleteSongHandler - song deleted successfully", zap.String("song_id", id))
}

// @Summary Catalog statistics
// @Description Totals and group-by counts over the whole collection, recomputed per request.
// @Tags songs
// @Produce json
// @Success 200 {object} models.StatisticsSnapshot
// @Failure 500 {object} response.ErrorBody
// @Router /stats [get]
func (h *SongHandlers) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetStatsHandler called")

	stats, err := h.songService.GetStats(r.Context())
	if err != nil {
		utils.Logger.Error("GetStatsHandler - songService.GetStats failed", zap.Error(err))
		response.Error(w, err, h.exposeStack)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

func (h *SongHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// decodeSongInput returns nil input for an absent or empty body so the
// service can reject it; malformed JSON is a validation error.
func decodeSongInput(r *http.Request) (*models.SongInput, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, apperr.Validation("Invalid request body")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, apperr.Validation("Invalid request body")
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var input models.SongInput
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, apperr.Validation("Invalid request body")
	}
	return &input, nil
}
