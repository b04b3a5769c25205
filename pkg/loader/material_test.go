package loader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTempPNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating temp png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding temp png: %v", err)
	}
}

func TestLoadMaterialAlbedoOnly(t *testing.T) {
	dir := t.TempDir()
	writeTempPNG(t, filepath.Join(dir, "albedo.png"), 4, 4, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	manifestPath := filepath.Join(dir, "material.toml")
	if err := os.WriteFile(manifestPath, []byte(`albedo = "albedo.png"`+"\n"), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	mat, err := LoadMaterial(manifestPath)
	if err != nil {
		t.Fatalf("LoadMaterial returned error: %v", err)
	}
	if mat.Albedo == nil {
		t.Fatal("expected a non-nil albedo texture")
	}
	if mat.Specular != nil || mat.Normal != nil {
		t.Error("expected specular/normal to remain nil when unset in the manifest")
	}

	c := mat.Albedo.Sample(0.5, 0.5)
	if c.R != 200 || c.G != 100 || c.B != 50 {
		t.Errorf("unexpected sampled color: %v", c)
	}
}

func TestLoadMaterialMissingFileErrors(t *testing.T) {
	if _, err := LoadMaterial(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing manifest")
	}
}

func TestLoadMaterialBadImagePathErrors(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "material.toml")
	if err := os.WriteFile(manifestPath, []byte(`albedo = "does-not-exist.png"`+"\n"), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	if _, err := LoadMaterial(manifestPath); err == nil {
		t.Error("expected an error for a missing albedo image")
	}
}
