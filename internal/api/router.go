package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"songcatalog/internal/api/handlers/songs"
	"songcatalog/internal/api/middleware"
)

// BasePath is where the song routes are mounted.
const BasePath = "/api/songs"

type RouterOptions struct {
	CORSOrigin  string
	ExposeStack bool
}

func NewRouter(songHandlers *songs.SongHandlers, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Recover(opts.ExposeStack), middleware.RequestLogger)

	router.HandleFunc("/health", songHandlers.HealthCheckHandler).Methods(http.MethodGet)

	// /stats and /create are registered before /{id} so they are not captured as ids.
	api := router.PathPrefix(BasePath).Subrouter()
	api.HandleFunc("/", songHandlers.GetSongsHandler).Methods(http.MethodGet)
	api.HandleFunc("", songHandlers.GetSongsHandler).Methods(http.MethodGet)
	api.HandleFunc("/create", songHandlers.AddSongHandler).Methods(http.MethodPost)
	api.HandleFunc("/stats", songHandlers.GetStatsHandler).Methods(http.MethodGet)
	api.HandleFunc("/{id}", songHandlers.GetSongHandler).Methods(http.MethodGet)
	api.HandleFunc("/{id}", songHandlers.UpdateSongHandler).Methods(http.MethodPut)
	api.HandleFunc("/{id}", songHandlers.DeleteSongHandler).Methods(http.MethodDelete)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	return middleware.CORS(origin)(router)
}
