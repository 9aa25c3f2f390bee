// Package asset resolves model references into instantiable templates
// by parsing glTF bundles from the local assets directory. The host
// runtime fetches the actual geometry itself over the asset URL; this
// loader only verifies the bundle and discovers what it contains.
package asset

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

// GLTFLoader reads .gltf/.glb bundles from dir and hands out templates
// whose AssetURL is rooted at baseURL.
type GLTFLoader struct {
	dir     string
	baseURL string
}

func NewGLTFLoader(dir, baseURL string) *GLTFLoader {
	return &GLTFLoader{dir: dir, baseURL: baseURL}
}

// LoadBundle parses the bundle behind ref. A template is any scene
// node that references a mesh; a bundle without one yields an empty
// slice, not an error.
func (l *GLTFLoader) LoadBundle(ctx context.Context, ref domain.ModelRef) ([]domain.Template, error) {
	if ref.IsNone() {
		return nil, errors.New("load of empty model reference")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := filepath.Clean(ref.String())
	doc, err := gltf.Open(filepath.Join(l.dir, rel))
	if err != nil {
		return nil, errors.Wrapf(err, "open bundle %q", ref)
	}

	assetURL := l.baseURL + "/" + path.Clean(filepath.ToSlash(rel))
	var templates []domain.Template
	for i, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		name := node.Name
		if name == "" {
			name = fmt.Sprintf("node-%d", i)
		}
		templates = append(templates, domain.Template{
			AssetURL: assetURL,
			Node:     name,
		})
	}
	return templates, nil
}
