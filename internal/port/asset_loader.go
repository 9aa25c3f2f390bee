package port

import (
	"context"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

// AssetLoader resolves a model reference into the instantiable
// templates its bundle contains. A bundle may legitimately contain
// none; that is not an error, the garment just stays non-instantiable.
type AssetLoader interface {
	LoadBundle(ctx context.Context, ref domain.ModelRef) ([]domain.Template, error)
}
