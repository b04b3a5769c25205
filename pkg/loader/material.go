package loader

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sean-h/swrast/pkg/raster"
)

// materialManifest is the TOML document shape: image paths relative to
// the manifest file's own directory.
type materialManifest struct {
	Albedo   string `toml:"albedo"`
	Specular string `toml:"specular"`
	Normal   string `toml:"normal"`
}

// LoadMaterial parses a TOML material manifest at path. Only Albedo is
// consumed by the current shading model; Specular and Normal are
// loaded and retained on the Material for format fidelity.
func LoadMaterial(path string) (*raster.Material, error) {
	var manifest materialManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return nil, fmt.Errorf("loader: decode material %q: %w", path, err)
	}

	dir := filepath.Dir(path)
	mat := &raster.Material{}

	var err error
	if manifest.Albedo != "" {
		if mat.Albedo, err = loadTexture(filepath.Join(dir, manifest.Albedo)); err != nil {
			return nil, err
		}
	}
	if manifest.Specular != "" {
		if mat.Specular, err = loadTexture(filepath.Join(dir, manifest.Specular)); err != nil {
			return nil, err
		}
	}
	if manifest.Normal != "" {
		if mat.Normal, err = loadTexture(filepath.Join(dir, manifest.Normal)); err != nil {
			return nil, err
		}
	}

	return mat, nil
}

// loadTexture decodes an image file into a raster.Texture.
func loadTexture(path string) (*raster.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loader: decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	tex := raster.NewTexture(width, height)

	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			tex.SetPixel(x, y, rgba8(r, g, b, a))
		}
	}

	return tex, nil
}
