package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const artDir = "art/"

//go:embed art/*.svg
var artFS embed.FS

var artCache sync.Map

// Art returns a Fyne resource for the given artwork file.
func Art(fileName string) (fyne.Resource, error) {
	return loadResource(artFS, artDir+fileName, &artCache)
}

// MustArt returns a Fyne resource or panics on error.
func MustArt(fileName string) fyne.Resource {
	resource, err := Art(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Background returns the decorative face drawn behind the hands when
// numerals are hidden.
func Background() fyne.Resource {
	return MustArt("clock.svg")
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
