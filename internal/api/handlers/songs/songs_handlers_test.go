package songs_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"songcatalog/internal/api/handlers/songs"
	"songcatalog/internal/models"
	"songcatalog/internal/service"
	"songcatalog/internal/storage"
	mock_storage "songcatalog/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	songID  = primitive.NewObjectID()
	zeroTS  = `"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"`
	songOne = models.Song{ID: songID, Title: "Test Song", Artist: "Test Artist", Album: "Test Album", Genre: "Rock"}
)

func songJSON(s models.Song) string {
	return `{"id":"` + s.ID.Hex() + `","title":"` + s.Title + `","artist":"` + s.Artist + `","album":"` + s.Album + `","genre":"` + s.Genre + `",` + zeroTS + `}`
}

func newHandlers(ctrl *gomock.Controller, mockFn func(s *mock_storage.MockSongStorage)) *songs.SongHandlers {
	mockStorage := mock_storage.NewMockSongStorage(ctrl)
	mockFn(mockStorage)
	return songs.NewSongHandlers(service.NewSongService(mockStorage), false)
}

func TestAddSongHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Valid request",
			requestBody: `{"title": "Test Song", "artist": "Test Artist", "album": "Test Album", "genre": "Rock"}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&songOne, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   songJSON(songOne),
		},
		{
			name:           "Empty body",
			requestBody:    ``,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"title":"Validation Failed","message":"Please include all fields"}`,
		},
		{
			name:           "Empty object",
			requestBody:    `{}`,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"title":"Validation Failed","message":"Please include all fields"}`,
		},
		{
			name:           "Invalid request body",
			requestBody:    `invalid json`,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"title":"Validation Failed","message":"Invalid request body"}`,
		},
		{
			name:        "Service error",
			requestBody: `{"title": "Test Song", "artist": "Test Artist"}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"title":"Server Error","message":"SongService.AddSong - storage.Create failed: service error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)

			req := httptest.NewRequest("POST", "/api/songs/create", bytes.NewBufferString(tc.requestBody))
			w := httptest.NewRecorder()

			handler.AddSongHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetSongsHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Songs listed",
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().List(gomock.Any()).Return([]models.Song{songOne}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[` + songJSON(songOne) + `]`,
		},
		{
			name: "Empty collection",
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().List(gomock.Any()).Return([]models.Song{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Service error",
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().List(gomock.Any()).Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"title":"Server Error","message":"SongService.GetSongs - storage.List failed: service error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)

			req := httptest.NewRequest("GET", "/api/songs/", nil)
			w := httptest.NewRecorder()

			handler.GetSongsHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetSongHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		songID         string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Valid request",
			songID: songID.Hex(),
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().GetByID(gomock.Any(), songID.Hex()).Return(&songOne, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   songJSON(songOne),
		},
		{
			name:   "Song not found",
			songID: songID.Hex(),
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().GetByID(gomock.Any(), songID.Hex()).Return(nil, storage.ErrSongNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"title":"Not Found","message":"Song Not Found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)
			req := httptest.NewRequest("GET", "/api/songs/"+tc.songID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.songID})
			w := httptest.NewRecorder()

			handler.GetSongHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestUpdateSongHandler_Unit(t *testing.T) {
	updated := models.Song{ID: songID, Title: "Updated Song", Artist: "Updated Artist"}
	testCases := []struct {
		name           string
		songID         string
		requestBody    string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Valid request",
			songID:      songID.Hex(),
			requestBody: `{"title": "Updated Song", "artist": "Updated Artist", "album": "", "genre": ""}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Update(gomock.Any(), songID.Hex(), &models.SongInput{Title: "Updated Song", Artist: "Updated Artist"}).Return(&updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   songJSON(updated),
		},
		{
			name:        "Unknown id responds null",
			songID:      songID.Hex(),
			requestBody: `{"title": "Updated Song", "artist": "Updated Artist"}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Update(gomock.Any(), songID.Hex(), gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `null`,
		},
		{
			name:           "Empty body",
			songID:         songID.Hex(),
			requestBody:    ``,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"title":"Validation Failed","message":"Please include all fields"}`,
		},
		{
			name:        "Service error",
			songID:      songID.Hex(),
			requestBody: `{"title": "Updated Song", "artist": "Updated Artist"}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Update(gomock.Any(), songID.Hex(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"title":"Server Error","message":"SongService.UpdateSong - storage.Update failed: service error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)
			req := httptest.NewRequest("PUT", "/api/songs/"+tc.songID, bytes.NewBufferString(tc.requestBody))
			req = mux.SetURLVars(req, map[string]string{"id": tc.songID})
			w := httptest.NewRecorder()

			handler.UpdateSongHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestDeleteSongHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		songID         string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Valid request",
			songID: songID.Hex(),
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Delete(gomock.Any(), songID.Hex()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Song Deleted Successfully"}`,
		},
		{
			name:           "Invalid song ID",
			songID:         "invalid",
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"title":"Validation Failed","message":"Invalid ID"}`,
		},
		{
			name:   "Song not found",
			songID: songID.Hex(),
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Delete(gomock.Any(), songID.Hex()).Return(storage.ErrSongNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"title":"Not Found","message":"Song not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)
			req := httptest.NewRequest("DELETE", "/api/songs/"+tc.songID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.songID})
			w := httptest.NewRecorder()

			handler.DeleteSongHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetStatsHandler_Unit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rock := "Rock"
	handler := newHandlers(ctrl, func(s *mock_storage.MockSongStorage) {
		s.EXPECT().Count(gomock.Any()).Return(int64(1), nil)
		s.EXPECT().CountDistinct(gomock.Any(), gomock.Any()).Return(1, nil).Times(3)
		s.EXPECT().GroupCount(gomock.Any(), gomock.Any()).Return([]models.GroupCount{{Key: &rock, Count: 1}}, nil).Times(3)
		s.EXPECT().AlbumsByArtist(gomock.Any()).Return([]models.ArtistAlbums{{Key: &rock, Albums: []string{"A"}, TotalAlbums: 1}}, nil)
	})

	req := httptest.NewRequest("GET", "/api/songs/stats", nil)
	w := httptest.NewRecorder()
	handler.GetStatsHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var stats models.StatisticsSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalSongs)
	assert.Equal(t, 1, stats.TotalGenres)
	assert.Len(t, stats.SongsByGenre, 1)
	assert.NoError(t, stats.Consistent())
}

func TestErrorBodyIncludesStackInDevelopment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock_storage.NewMockSongStorage(ctrl)
	handler := songs.NewSongHandlers(service.NewSongService(mockStorage), true)

	req := httptest.NewRequest("DELETE", "/api/songs/bad", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "bad"})
	w := httptest.NewRecorder()
	handler.DeleteSongHandler(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation Failed", body["title"])
	assert.Contains(t, body["stackTrace"], "Invalid ID")
}

func TestHealthCheckHandler_Unit(t *testing.T) {
	handler := songs.NewSongHandlers(nil, false)
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.HealthCheckHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
