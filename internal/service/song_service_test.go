package service_test

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"

	"songcatalog/internal/lib/apperr"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"
	"songcatalog/internal/service"
	"songcatalog/internal/storage"
	mock_storage "songcatalog/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	if err := utils.InitLogger(true); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	exitCode := m.Run()
	utils.Logger.Sync()
	os.Exit(exitCode)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Status
}

func TestSongService_AddSong(t *testing.T) {
	testCases := []struct {
		name          string
		input         *models.SongInput
		mockStorageFn func(m *mock_storage.MockSongStorage)
		expectStatus  int
	}{
		{
			name:  "Valid request",
			input: &models.SongInput{Title: "Test Song", Artist: "Test Artist", Album: "Test Album", Genre: "Rock"},
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Create(gomock.Any(), &models.Song{Title: "Test Song", Artist: "Test Artist", Album: "Test Album", Genre: "Rock"}).
					Return(&models.Song{ID: primitive.NewObjectID(), Title: "Test Song", Artist: "Test Artist"}, nil)
			},
		},
		{
			name:          "Missing payload",
			input:         nil,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {},
			expectStatus:  http.StatusBadRequest,
		},
		{
			name:  "Fields are not checked server side",
			input: &models.SongInput{Genre: "Jazz"},
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Song{ID: primitive.NewObjectID(), Genre: "Jazz"}, nil)
			},
		},
		{
			name:  "Storage error",
			input: &models.SongInput{Title: "Test Song", Artist: "Test Artist"},
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mock_storage.NewMockSongStorage(ctrl)
			tc.mockStorageFn(mockStorage)

			serviceInstance := service.NewSongService(mockStorage)
			song, err := serviceInstance.AddSong(context.Background(), tc.input)

			if tc.expectStatus != 0 {
				assert.Equal(t, tc.expectStatus, statusOf(t, err))
				assert.Nil(t, song)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, song)
			}
		})
	}
}

func TestSongService_GetSongs(t *testing.T) {
	t.Run("Returns every song", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := mock_storage.NewMockSongStorage(ctrl)
		mockStorage.EXPECT().List(gomock.Any()).Return([]models.Song{{Title: "A"}, {Title: "B"}}, nil)

		songs, err := service.NewSongService(mockStorage).GetSongs(context.Background())
		assert.NoError(t, err)
		assert.Len(t, songs, 2)
	})

	t.Run("Storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := mock_storage.NewMockSongStorage(ctrl)
		mockStorage.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := service.NewSongService(mockStorage).GetSongs(context.Background())
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})
}

func TestSongService_GetSong(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	testCases := []struct {
		name          string
		id            string
		mockStorageFn func(m *mock_storage.MockSongStorage)
		expectStatus  int
		expectMessage string
	}{
		{
			name: "Found",
			id:   id,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().GetByID(gomock.Any(), id).Return(&models.Song{Title: "Found"}, nil)
			},
		},
		{
			name: "Not found",
			id:   id,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().GetByID(gomock.Any(), id).Return(nil, storage.ErrSongNotFound)
			},
			expectStatus:  http.StatusNotFound,
			expectMessage: "Song Not Found",
		},
		{
			name: "Malformed id",
			id:   "not-an-id",
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().GetByID(gomock.Any(), "not-an-id").Return(nil, storage.ErrInvalidID)
			},
			expectStatus:  http.StatusNotFound,
			expectMessage: "Song Not Found",
		},
		{
			name: "Storage error",
			id:   id,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("storage error"))
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mock_storage.NewMockSongStorage(ctrl)
			tc.mockStorageFn(mockStorage)

			song, err := service.NewSongService(mockStorage).GetSong(context.Background(), tc.id)
			if tc.expectStatus != 0 {
				assert.Equal(t, tc.expectStatus, statusOf(t, err))
				if tc.expectMessage != "" {
					assert.EqualError(t, err, tc.expectMessage)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Found", song.Title)
			}
		})
	}
}

func TestSongService_UpdateSong(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	input := &models.SongInput{Title: "New", Artist: "Artist"}
	testCases := []struct {
		name          string
		id            string
		input         *models.SongInput
		mockStorageFn func(m *mock_storage.MockSongStorage)
		expectNil     bool
		expectStatus  int
	}{
		{
			name:  "Valid request",
			id:    id,
			input: input,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Update(gomock.Any(), id, input).Return(&models.Song{Title: "New", Artist: "Artist"}, nil)
			},
		},
		{
			name:  "Missing song returns nil without error",
			id:    id,
			input: input,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Update(gomock.Any(), id, input).Return(nil, nil)
			},
			expectNil: true,
		},
		{
			name:  "Malformed id returns nil without error",
			id:    "bogus",
			input: input,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Update(gomock.Any(), "bogus", input).Return(nil, storage.ErrInvalidID)
			},
			expectNil: true,
		},
		{
			name:          "Missing payload",
			id:            id,
			input:         nil,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {},
			expectStatus:  http.StatusBadRequest,
		},
		{
			name:  "Storage error",
			id:    id,
			input: input,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Update(gomock.Any(), id, input).Return(nil, errors.New("storage error"))
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mock_storage.NewMockSongStorage(ctrl)
			tc.mockStorageFn(mockStorage)

			song, err := service.NewSongService(mockStorage).UpdateSong(context.Background(), tc.id, tc.input)
			switch {
			case tc.expectStatus != 0:
				assert.Equal(t, tc.expectStatus, statusOf(t, err))
			case tc.expectNil:
				assert.NoError(t, err)
				assert.Nil(t, song)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "New", song.Title)
			}
		})
	}
}

func TestSongService_DeleteSong(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	testCases := []struct {
		name          string
		id            string
		mockStorageFn func(m *mock_storage.MockSongStorage)
		expectStatus  int
	}{
		{
			name: "Valid request",
			id:   id,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
		},
		{
			name:          "Malformed id is rejected before the store",
			id:            "123",
			mockStorageFn: func(m *mock_storage.MockSongStorage) {},
			expectStatus:  http.StatusBadRequest,
		},
		{
			name:          "Empty id",
			id:            "",
			mockStorageFn: func(m *mock_storage.MockSongStorage) {},
			expectStatus:  http.StatusBadRequest,
		},
		{
			name: "Song not found",
			id:   id,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Delete(gomock.Any(), id).Return(storage.ErrSongNotFound)
			},
			expectStatus: http.StatusNotFound,
		},
		{
			name: "Storage error",
			id:   id,
			mockStorageFn: func(m *mock_storage.MockSongStorage) {
				m.EXPECT().Delete(gomock.Any(), id).Return(errors.New("storage error"))
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mock_storage.NewMockSongStorage(ctrl)
			tc.mockStorageFn(mockStorage)

			resp, err := service.NewSongService(mockStorage).DeleteSong(context.Background(), tc.id)
			if tc.expectStatus != 0 {
				assert.Equal(t, tc.expectStatus, statusOf(t, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Song Deleted Successfully", resp.Message)
			}
		})
	}
}

func TestSongService_GetStats(t *testing.T) {
	rock, pop := "Rock", "Pop"

	t.Run("Assembles and sorts the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_storage.NewMockSongStorage(ctrl)
		m.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
		m.EXPECT().CountDistinct(gomock.Any(), storage.FieldArtist).Return(3, nil)
		m.EXPECT().CountDistinct(gomock.Any(), storage.FieldAlbum).Return(1, nil)
		m.EXPECT().CountDistinct(gomock.Any(), storage.FieldGenre).Return(2, nil)
		m.EXPECT().GroupCount(gomock.Any(), storage.FieldGenre).Return([]models.GroupCount{{Key: &rock, Count: 2}, {Key: &pop, Count: 1}}, nil)
		m.EXPECT().GroupCount(gomock.Any(), storage.FieldArtist).Return([]models.GroupCount{}, nil)
		m.EXPECT().GroupCount(gomock.Any(), storage.FieldAlbum).Return([]models.GroupCount{{Key: nil, Count: 3}}, nil)
		m.EXPECT().AlbumsByArtist(gomock.Any()).Return([]models.ArtistAlbums{}, nil)

		stats, err := service.NewSongService(m).GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalSongs)
		assert.Equal(t, 2, stats.TotalGenres)
		assert.Equal(t, []models.GroupCount{{Key: &pop, Count: 1}, {Key: &rock, Count: 2}}, stats.SongsByGenre)
		assert.Nil(t, stats.SongsByAlbum[0].Key)
	})

	t.Run("Storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_storage.NewMockSongStorage(ctrl)
		m.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := service.NewSongService(m).GetStats(context.Background())
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})
}
