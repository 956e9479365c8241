package providers

import (
	"github.com/samber/do/v2"

	"github.com/fberrez/bookmarks/internal/logger"
	"github.com/fberrez/bookmarks/internal/metadata/oembed"
	"github.com/fberrez/bookmarks/internal/service"
)

// ProvideBookmarkService provides the bookmark business service.
func ProvideBookmarkService(i do.Injector) (*service.BookmarkService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	metadataClient := do.MustInvoke[*oembed.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookmarkService(storeHandle.Store, metadataClient, log.Logger), nil
}
