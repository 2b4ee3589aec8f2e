package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tleaf/barnview/internal/chamber"
	"github.com/tleaf/barnview/internal/config"
	"github.com/tleaf/barnview/internal/logger"
	"github.com/tleaf/barnview/internal/prefs"
	"github.com/tleaf/barnview/internal/state"
	"github.com/tleaf/barnview/internal/ui"
)

// Options configure the barnview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/barnview/prefs.toml
	Host       string // overrides the configured controller host
	PollEvery  int    // seconds; zero uses the configured value
}

// Run boots the barnview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollEvery = time.Duration(opts.PollEvery) * time.Second
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	host := firstNonEmpty(opts.Host, userPrefs.Host, cfg.Host)
	client, err := chamber.NewClient(host)
	if err != nil {
		return fmt.Errorf("init controller client: %w", err)
	}

	log, err := logger.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store := &state.Store{}
	cache := state.NewCache(client, store, cfg.PollEvery)
	scheduler := NewScheduler(client, cache, store, log, cfg.PollEvery, cfg.SettleDelay)

	// Populate the store before the UI draws its first frame.
	scheduler.RunCycle(ctx)
	go scheduler.Run(ctx)

	log.Infow("barnview started", "host", client.Host(), "poll", cfg.PollEvery.String())

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Scheduler: scheduler,
		Log:       log,
		PollTick:  cfg.PollEvery,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
