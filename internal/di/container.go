// Package di provides dependency injection configuration for the bookmarks server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/fberrez/bookmarks/internal/config"
	"github.com/fberrez/bookmarks/internal/di/providers"
	"github.com/fberrez/bookmarks/internal/logger"
	"github.com/fberrez/bookmarks/internal/metadata/oembed"
	"github.com/fberrez/bookmarks/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Metadata layer
	do.Provide(injector, providers.ProvideOembedClient)

	// Business services
	do.Provide(injector, providers.ProvideBookmarkService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*oembed.Client](injector)
	_ = do.MustInvoke[*service.BookmarkService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
