// Command fetchposts downloads the remote post listing, logs the
// titles, and saves id/title/body rows to a local CSV file.
package main

import (
	"context"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/authlab/secure-api/internal/posts"
	"github.com/authlab/secure-api/pkg/logger"
)

type fetchConfig struct {
	BaseURL  string        `env:"POSTS_BASE_URL"`
	Output   string        `env:"POSTS_OUTPUT, default=posts.csv"`
	Timeout  time.Duration `env:"POSTS_TIMEOUT, default=10s"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`
}

func main() {
	ctx := context.Background()

	var cfg fetchConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client := posts.NewClient(cfg.BaseURL, cfg.Timeout)
	listing, err := client.Fetch(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch posts")
	}

	for _, p := range listing {
		log.Info().Int("id", p.ID).Msg(p.Title)
	}

	if err := posts.SaveCSV(cfg.Output, listing); err != nil {
		log.Fatal().Err(err).Msg("save posts")
	}
	log.Info().Int("count", len(listing)).Str("file", cfg.Output).Msg("posts saved")
}
