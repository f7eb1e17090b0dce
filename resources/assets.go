package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	soundDir = "sounds"
	imageDir = "images/"
)

//go:embed sounds/*.wav
var soundFS embed.FS

//go:embed images/*.png
var imageFS embed.FS

var imageCache sync.Map

// Sounds returns the embedded sound assets rooted at their directory, so
// "A.wav" resolves directly.
func Sounds() fs.FS {
	sub, err := fs.Sub(soundFS, soundDir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Image returns a Fyne resource for the named PNG, without extension.
func Image(name string) (fyne.Resource, error) {
	path := imageDir + name + ".png"
	if cached, ok := imageCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(name+".png", data)
	imageCache.Store(path, resource)
	return resource, nil
}

// MustImage returns a Fyne resource or panics on error.
func MustImage(name string) fyne.Resource {
	resource, err := Image(name)
	if err != nil {
		panic(err)
	}
	return resource
}

// Icon returns the application icon.
func Icon() fyne.Resource {
	return MustImage("icon")
}
