package providers

import (
	"github.com/samber/do/v2"

	"github.com/fberrez/bookmarks/internal/config"
	"github.com/fberrez/bookmarks/internal/logger"
	"github.com/fberrez/bookmarks/internal/metadata/oembed"
)

// ProvideOembedClient provides the rate-limited oembed metadata client.
func ProvideOembedClient(i do.Injector) (*oembed.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	registry := oembed.NewRegistry(oembed.Endpoints{
		Photo: cfg.Providers.PhotoEndpoint,
		Video: cfg.Providers.VideoEndpoint,
	})

	client := oembed.NewClient(registry, oembed.Config{
		Timeout:           cfg.Providers.FetchTimeout,
		RequestsPerSecond: cfg.Providers.RequestsPerSecond,
		Burst:             cfg.Providers.Burst,
	}, log.Logger)

	log.Info("Metadata client ready",
		"photo_endpoint", cfg.Providers.PhotoEndpoint,
		"video_endpoint", cfg.Providers.VideoEndpoint,
		"fetch_timeout", cfg.Providers.FetchTimeout,
	)

	return client, nil
}
