// internal/view/controller.go
package view

import (
	"context"
	"errors"

	"songcatalog/internal/catalogclient"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrRequiredFields blocks create and update before any request is made.
var ErrRequiredFields = errors.New("Title and Artist are required")

type Dispatcher interface {
	Dispatch(ctx context.Context, a Action) (State, error)
}

// Controller runs each API call as start, then success or failure.
type Controller struct {
	api      catalogclient.API
	store    Dispatcher
	validate *validator.Validate
}

func NewController(api catalogclient.API, store Dispatcher) *Controller {
	return &Controller{
		api:      api,
		store:    store,
		validate: validator.New(),
	}
}

func (c *Controller) FetchSongs(ctx context.Context) error {
	return c.run(ctx, FetchSongsStart, FetchSongsFailure, func() (Action, error) {
		songs, err := c.api.ListSongs(ctx)
		return Action{Type: FetchSongsSuccess, Songs: songs}, err
	})
}

func (c *Controller) FetchSong(ctx context.Context, id string) error {
	return c.run(ctx, FetchSongStart, FetchSongFailure, func() (Action, error) {
		song, err := c.api.GetSong(ctx, id)
		return Action{Type: FetchSongSuccess, Song: song}, err
	})
}

func (c *Controller) AddSong(ctx context.Context, input *models.SongInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	return c.run(ctx, AddSongStart, AddSongFailure, func() (Action, error) {
		song, err := c.api.CreateSong(ctx, input)
		return Action{Type: AddSongSuccess, Song: song}, err
	})
}

func (c *Controller) UpdateSong(ctx context.Context, id string, input *models.SongInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	return c.run(ctx, UpdateSongStart, UpdateSongFailure, func() (Action, error) {
		song, err := c.api.UpdateSong(ctx, id, input)
		return Action{Type: UpdateSongSuccess, Song: song}, err
	})
}

func (c *Controller) DeleteSong(ctx context.Context, id string) error {
	return c.run(ctx, DeleteSongStart, DeleteSongFailure, func() (Action, error) {
		_, err := c.api.DeleteSong(ctx, id)
		return Action{Type: DeleteSongSuccess, ID: id}, err
	})
}

func (c *Controller) FetchStats(ctx context.Context) error {
	return c.run(ctx, FetchStatsStart, FetchStatsFailure, func() (Action, error) {
		stats, err := c.api.GetStats(ctx)
		return Action{Type: FetchStatsSuccess, Stats: stats}, err
	})
}

// SetSearch, SetGenre, NextPage and PrevPage only touch local state.
func (c *Controller) SetSearch(ctx context.Context, text string) error {
	_, err := c.store.Dispatch(ctx, Action{Type: SetSearch, Text: text})
	return err
}

func (c *Controller) SetGenre(ctx context.Context, genre string) error {
	_, err := c.store.Dispatch(ctx, Action{Type: SetGenre, Text: genre})
	return err
}

func (c *Controller) NextPage(ctx context.Context) error {
	_, err := c.store.Dispatch(ctx, Action{Type: NextPage})
	return err
}

func (c *Controller) PrevPage(ctx context.Context) error {
	_, err := c.store.Dispatch(ctx, Action{Type: PrevPage})
	return err
}

func (c *Controller) checkInput(input *models.SongInput) error {
	if input == nil {
		return ErrRequiredFields
	}
	if err := c.validate.Struct(input); err != nil {
		utils.Logger.Debug("Controller - input rejected", zap.Error(err))
		return ErrRequiredFields
	}
	return nil
}

func (c *Controller) run(ctx context.Context, start, failure ActionType, call func() (Action, error)) error {
	if _, err := c.store.Dispatch(ctx, Action{Type: start}); err != nil {
		return err
	}

	success, err := call()
	if err != nil {
		utils.Logger.Error("Controller - request failed", zap.Stringer("action", start), zap.Error(err))
		if _, dErr := c.store.Dispatch(ctx, Action{Type: failure, Err: err.Error()}); dErr != nil {
			return dErr
		}
		return err
	}

	_, err = c.store.Dispatch(ctx, success)
	return err
}
