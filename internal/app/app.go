package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/reps/internal/catalog"
	"github.com/five82/reps/internal/config"
	"github.com/five82/reps/internal/detail"
	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/logging"
	"github.com/five82/reps/internal/prefs"
	"github.com/five82/reps/internal/rapidapi"
	"github.com/five82/reps/internal/state"
	"github.com/five82/reps/internal/ui"
	"github.com/five82/reps/internal/videosearch"
)

// Options configure the reps application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/reps/prefs.toml
	Verbose    bool
	// Logger overrides the file logger built from the config.
	Logger *zap.Logger
}

// Runtime is the wired set of components shared by the TUI and the CLI.
type Runtime struct {
	Config    config.Config
	Prefs     prefs.Prefs
	Logger    *zap.Logger
	Exercises *exercisedb.Client
	Videos    *videosearch.Client
	Store     *state.Store
	Catalog   *catalog.Controller
	Detail    *detail.Loader

	ownsLogger bool
}

// Build loads configuration and wires every component. It fails when the
// configuration is unusable, most commonly a missing API key.
func Build(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	rt := &Runtime{Config: cfg, Prefs: userPrefs, Logger: opts.Logger}
	if rt.Logger == nil {
		logger, err := logging.New(logging.Options{
			Dir:     cfg.LogDir,
			Level:   cfg.LogLevel,
			Verbose: opts.Verbose,
		})
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		rt.Logger = logger
		rt.ownsLogger = true
	}

	exerciseGateway := rapidapi.New(
		rapidapi.Credentials{Key: cfg.APIKey, Host: cfg.ExerciseHost},
		rapidapi.WithLogger(rt.Logger.Named("exercisedb")),
		rapidapi.WithTimeout(cfg.RequestTimeout),
	)
	videoGateway := rapidapi.New(
		rapidapi.Credentials{Key: cfg.APIKey, Host: cfg.VideoHost},
		rapidapi.WithLogger(rt.Logger.Named("videosearch")),
		rapidapi.WithTimeout(cfg.RequestTimeout),
	)

	rt.Exercises, err = exercisedb.New(exerciseGateway, cfg.ExerciseBaseURL)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("init exercisedb client: %w", err)
	}
	rt.Videos, err = videosearch.New(videoGateway, cfg.VideoBaseURL)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("init video search client: %w", err)
	}

	rt.Store = state.NewStore(cfg.PageSize)
	rt.Catalog = catalog.New(rt.Exercises, rt.Store,
		catalog.WithLogger(rt.Logger.Named("catalog")),
		catalog.WithPageSize(cfg.PageSize),
	)
	rt.Detail = detail.New(rt.Exercises, rt.Videos, rt.Logger.Named("detail"))
	return rt, nil
}

// Close flushes the logger if Build created it.
func (rt *Runtime) Close() {
	if rt == nil || rt.Logger == nil || !rt.ownsLogger {
		return
	}
	_ = rt.Logger.Sync()
}

// Run boots the reps TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Build(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Logger.Info("starting reps",
		zap.String("exercise_base_url", rt.Config.ExerciseBaseURL),
		zap.Int("page_size", rt.Config.PageSize),
	)

	// Filter choices are fetched before the UI starts. Only transient
	// failures are retried in the background.
	if _, failure := rt.Catalog.LoadBodyParts(ctx); failure.Retryable() {
		StartBodyPartRetry(ctx, rt.Catalog, defaultRetryInterval, rt.Logger.Named("catalog"))
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Catalog:   rt.Catalog,
		Detail:    rt.Detail,
		Logger:    rt.Logger.Named("ui"),
		ThemeName: rt.Prefs.Theme,
		BodyPart:  rt.Prefs.BodyPart,
		PrefsPath: opts.PrefsPath,
		LogPath:   rt.Config.LogPath(),
	}
	return ui.Run(uiOpts)
}
