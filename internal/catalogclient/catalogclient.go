// internal/catalogclient/catalogclient.go
package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"

	"go.uber.org/zap"
)

//go:generate mockgen -source=catalogclient.go -destination=mocks/mock_catalogclient.go -package=mock_catalogclient

// API is the song catalog as seen by the client.
type API interface {
	ListSongs(ctx context.Context) ([]models.Song, error)
	GetSong(ctx context.Context, id string) (*models.Song, error)
	CreateSong(ctx context.Context, input *models.SongInput) (*models.Song, error)
	UpdateSong(ctx context.Context, id string, input *models.SongInput) (*models.Song, error)
	DeleteSong(ctx context.Context, id string) (*models.DeleteResponse, error)
	GetStats(ctx context.Context) (*models.StatisticsSnapshot, error)
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Title      string
	Message    string
}

func (e *APIError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client for the API mounted at baseURL,
// e.g. http://localhost:5000/api/songs.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *Client) ListSongs(ctx context.Context) ([]models.Song, error) {
	var songs []models.Song
	if err := c.do(ctx, http.MethodGet, "/", nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (c *Client) GetSong(ctx context.Context, id string) (*models.Song, error) {
	var song models.Song
	if err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, &song); err != nil {
		return nil, err
	}
	return &song, nil
}

func (c *Client) CreateSong(ctx context.Context, input *models.SongInput) (*models.Song, error) {
	var song models.Song
	if err := c.do(ctx, http.MethodPost, "/create", input, &song); err != nil {
		return nil, err
	}
	return &song, nil
}

// UpdateSong returns (nil, nil) when the server reports no song with id.
func (c *Client) UpdateSong(ctx context.Context, id string, input *models.SongInput) (*models.Song, error) {
	var song *models.Song
	if err := c.do(ctx, http.MethodPut, "/"+url.PathEscape(id), input, &song); err != nil {
		return nil, err
	}
	return song, nil
}

func (c *Client) DeleteSong(ctx context.Context, id string) (*models.DeleteResponse, error) {
	var resp models.DeleteResponse
	if err := c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStats fetches the statistics snapshot and rejects one that is
// structurally broken.
func (c *Client) GetStats(ctx context.Context) (*models.StatisticsSnapshot, error) {
	var stats models.StatisticsSnapshot
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("malformed statistics response: %w", err)
	}
	if err := stats.Consistent(); err != nil {
		utils.Logger.Debug("Client.GetStats - snapshot taken during writes", zap.Error(err))
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("catalog API URL not configured")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	utils.Logger.Debug("Calling catalog API", zap.String("method", method), zap.String("url", req.URL.String()))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var errBody struct {
			Title   string `json:"title"`
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Message != "" {
			apiErr.Title = errBody.Title
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog API response: %w", err)
	}
	return nil
}
