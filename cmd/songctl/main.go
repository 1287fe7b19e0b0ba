// cmd/songctl/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"songcatalog/config"
	"songcatalog/internal/catalogclient"
	"songcatalog/internal/charts"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"
	"songcatalog/internal/view"
)

const usage = `Usage: songctl [--api URL] [--debug] <command> [flags]

Commands:
  list     [--search TEXT] [--genre GENRE] [--page N]
  get      <id>
  create   --title TITLE --artist ARTIST [--album ALBUM] [--genre GENRE]
  update   <id> --title TITLE --artist ARTIST [--album ALBUM] [--genre GENRE]
  delete   <id>
  stats
`

func main() {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, args []string, out io.Writer) error {
	global := pflag.NewFlagSet("songctl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(out)
	global.Usage = func() { fmt.Fprint(out, usage) }
	apiURL := global.String("api", cfg.APIURL, "catalog API base URL")
	debug := global.Bool("debug", false, "log requests to stderr")
	if err := global.Parse(args); err != nil {
		return err
	}

	if *debug {
		if err := utils.InitLogger(true); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer utils.Logger.Sync()
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errors.New("no command given")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	store := view.NewStore(view.NewState())
	go store.Run(ctx)

	cli := &cli{
		out:        out,
		store:      store,
		controller: view.NewController(catalogclient.NewClient(*apiURL), store),
	}

	utils.Logger.Debug("Running command", zap.String("command", rest[0]), zap.String("api", *apiURL))

	switch rest[0] {
	case "list":
		return cli.list(ctx, rest[1:])
	case "get":
		return cli.get(ctx, rest[1:])
	case "create":
		return cli.create(ctx, rest[1:])
	case "update":
		return cli.update(ctx, rest[1:])
	case "delete":
		return cli.delete(ctx, rest[1:])
	case "stats":
		return cli.stats(ctx)
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

type cli struct {
	out        io.Writer
	store      *view.Store
	controller *view.Controller
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetOutput(c.out)
	search := fs.String("search", "", "case-insensitive match on title, artist or album")
	genre := fs.String("genre", "", "one of "+strings.Join(models.Genres, ", "))
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.controller.FetchSongs(ctx); err != nil {
		return err
	}
	if err := c.controller.SetGenre(ctx, *genre); err != nil {
		return err
	}
	if err := c.controller.SetSearch(ctx, *search); err != nil {
		return err
	}
	for i := 1; i < *page; i++ {
		if err := c.controller.NextPage(ctx); err != nil {
			return err
		}
	}

	state := c.store.State()
	for _, song := range state.CurrentPage() {
		printSong(c.out, &song)
	}
	fmt.Fprintln(c.out, state.PageInfo())
	return nil
}

func (c *cli) get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("get requires exactly one id")
	}
	if err := c.controller.FetchSong(ctx, args[0]); err != nil {
		return err
	}
	printSong(c.out, c.store.State().Song)
	return nil
}

func (c *cli) create(ctx context.Context, args []string) error {
	input, _, err := parseSongInput("create", args, c.out)
	if err != nil {
		return err
	}
	if err := c.controller.AddSong(ctx, input); err != nil {
		return err
	}
	state := c.store.State()
	printSong(c.out, &state.Songs[len(state.Songs)-1])
	return nil
}

func (c *cli) update(ctx context.Context, args []string) error {
	input, rest, err := parseSongInput("update", args, c.out)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return errors.New("update requires exactly one id")
	}
	if err := c.controller.UpdateSong(ctx, rest[0], input); err != nil {
		return err
	}
	song := c.store.State().Song
	if song == nil || song.ID.Hex() != rest[0] {
		fmt.Fprintln(c.out, "No song updated")
		return nil
	}
	printSong(c.out, song)
	return nil
}

func (c *cli) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("delete requires exactly one id")
	}
	if err := c.controller.DeleteSong(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Song Deleted Successfully")
	return nil
}

func (c *cli) stats(ctx context.Context) error {
	if err := c.controller.FetchStats(ctx); err != nil {
		return err
	}
	for _, series := range charts.Build(c.store.State().Stats) {
		if err := charts.RenderText(c.out, series); err != nil {
			return err
		}
		fmt.Fprintln(c.out)
	}
	return nil
}

func parseSongInput(name string, args []string, out io.Writer) (*models.SongInput, []string, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	input := &models.SongInput{}
	fs.StringVar(&input.Title, "title", "", "song title")
	fs.StringVar(&input.Artist, "artist", "", "artist name")
	fs.StringVar(&input.Album, "album", "", "album name")
	fs.StringVar(&input.Genre, "genre", "", "one of "+strings.Join(models.Genres, ", "))
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return input, fs.Args(), nil
}

func printSong(w io.Writer, song *models.Song) {
	if song == nil {
		return
	}
	fmt.Fprintf(w, "%s  %s - %s", song.ID.Hex(), song.Title, song.Artist)
	if song.Album != "" {
		fmt.Fprintf(w, " [%s]", song.Album)
	}
	if song.Genre != "" {
		fmt.Fprintf(w, " (%s)", song.Genre)
	}
	fmt.Fprintln(w)
}
