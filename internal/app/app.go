package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cheonTH/singlelife/internal/api"
	"github.com/cheonTH/singlelife/internal/auth"
	"github.com/cheonTH/singlelife/internal/board"
	"github.com/cheonTH/singlelife/internal/config"
	"github.com/cheonTH/singlelife/internal/places"
	"github.com/cheonTH/singlelife/internal/reviews"
	"github.com/cheonTH/singlelife/internal/session"
)

// App wires the stores and services together and drives the screen loop
type App struct {
	cfg     *config.Config
	in      *bufio.Scanner
	store   *board.Store
	backend *api.Client
	sess    *session.Store
	auth    *auth.Service
	places  *places.Service
	reviews *reviews.Service
}

// Run loads configuration, wires everything and enters the screen loop
func Run(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = config.Default()
	}

	setupLogger(cfg.Log.Level)

	sess, err := session.NewStore(cfg.Session.File, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session store")
	}

	backend := api.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
		sess,
		log.Logger,
	)

	kakao := places.NewKakaoClient(cfg.Places.KakaoBaseURL, cfg.Places.KakaoRESTKey, log.Logger)
	google := places.NewGoogleClient(cfg.Places.GoogleBaseURL, cfg.Places.GoogleKey, cfg.Places.Language, log.Logger)
	defaultCoord := places.Coordinate{Lat: cfg.Search.DefaultLat, Lng: cfg.Search.DefaultLng}
	loc := places.Fallback(
		places.StaticProvider{Coord: defaultCoord, Label: cfg.Search.DefaultLabel},
		defaultCoord, cfg.Search.DefaultLabel, log.Logger,
	)

	app := &App{
		cfg:     cfg,
		in:      bufio.NewScanner(os.Stdin),
		store:   board.NewStore(backend, log.Logger),
		backend: backend,
		sess:    sess,
		auth:    auth.NewService(backend, sess, log.Logger),
		places: places.NewService(google, kakao, kakao, loc, places.Config{
			BroadRadiusM: cfg.Search.BroadRadiusM,
			BroadLimit:   cfg.Search.BroadLimit,
			QueryRadiusM: cfg.Search.CategoryQueryRadiusM,
			CategoryCutM: cfg.Search.CategoryRadiusM,
			CategorySize: cfg.Search.CategorySize,
		}, log.Logger),
		reviews: reviews.NewService(backend, sess, cfg.Reviews.PageSize, log.Logger),
	}

	app.mainLoop()
}

// setupLogger configures zerolog
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (a *App) mainLoop() {
	ctx := context.Background()
	for {
		who := "guest"
		if id, _, ok := a.sess.Identity(); ok {
			who = id
		}
		fmt.Printf("\n[%s] 1) board  2) places  3) login  4) signup  5) mypage  6) logout  q) quit\n", who)
		switch a.prompt("> ") {
		case "1":
			a.boardScreen(ctx)
		case "2":
			a.placesScreen(ctx)
		case "3":
			a.loginScreen(ctx)
		case "4":
			a.signupScreen(ctx)
		case "5":
			a.myPageScreen(ctx)
		case "6":
			if err := a.auth.Logout(); err != nil {
				a.notice(err)
			} else {
				fmt.Println("Logged out.")
			}
		case "q", "quit", "exit":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

// prompt prints a prompt and reads one trimmed line; EOF reads as "q"
func (a *App) prompt(p string) string {
	fmt.Print(p)
	if !a.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(a.in.Text())
}

// notice renders any error as the matching user-visible form. Nothing
// escapes the screen loop.
func (a *App) notice(err error) {
	var fields auth.FieldErrors
	var apiStatus *api.StatusError
	var placeStatus *places.StatusError
	switch {
	case err == nil:
	case errors.As(err, &fields):
		for f, msg := range fields {
			fmt.Printf("  - %s: %s\n", f, msg)
		}
	case errors.Is(err, api.ErrAuthRequired):
		fmt.Println("Login required. Use 3) from the main menu.")
	case errors.Is(err, api.ErrConflict):
		fmt.Println("Already exists.")
	case errors.Is(err, api.ErrNotFound):
		fmt.Println("Not found. It may have been deleted.")
	case errors.Is(err, places.ErrNoResults):
		fmt.Println("No matching place or address.")
	case errors.As(err, &apiStatus):
		fmt.Printf("Request failed: %s\n", apiStatus.Message)
	case errors.As(err, &placeStatus):
		fmt.Printf("Search rejected: %s\n", placeStatus.Status)
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Network problem. Please try again.")
	default:
		fmt.Printf("Something went wrong: %v\n", err)
	}
}
