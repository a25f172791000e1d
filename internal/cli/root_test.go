package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-seam-carver/internal/config"
	"github.com/ironsheep/image-seam-carver/internal/imaging"
)

// writeNoisePNG writes a width x height PNG of random opaque pixels into dir
// and returns its path.
func writeNoisePNG(t *testing.T, dir string, width, height int) string {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255})
		}
	}
	path := filepath.Join(dir, "input.png")
	if err := imaging.Save(img, path, imaging.SaveOptions{}); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func checkSize(t *testing.T, path string, width, height int) {
	t.Helper()
	img, err := imaging.Decode(path)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	if got := img.Bounds(); got.Dx() != width || got.Dy() != height {
		t.Errorf("%s: got %dx%d, want %dx%d", filepath.Base(path), got.Dx(), got.Dy(), width, height)
	}
}

func TestRoot_Dimensions(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 8, 6)
	out := filepath.Join(dir, "out.png")

	if _, err := execute(t, "-d", "5x7", in, out); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	checkSize(t, out, 5, 7)
}

func TestRoot_HeightShorthandAndDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 8, 6)

	if _, err := execute(t, "-h", "4", in); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	checkSize(t, filepath.Join(dir, "input-resized.png"), 8, 4)
}

func TestRoot_WidthOnly(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 8, 6)
	out := filepath.Join(dir, "nested", "wide.png")

	if _, err := execute(t, "--width", "11", in, out); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	checkSize(t, out, 11, 6)
}

func TestRoot_RejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 4, 4)

	tests := []struct {
		name string
		args []string
	}{
		{"dimensions with width", []string{"-d", "100x200", "-w", "5", in}},
		{"dimensions with height", []string{"-d", "100x200", "-h", "5", in}},
		{"no size", []string{in}},
		{"no input", []string{"-w", "3"}},
		{"too many paths", []string{"-w", "3", in, "a.png", "b.png"}},
		{"zero width", []string{"-w", "0", in}},
		{"malformed dimensions", []string{"-d", "100by200", in}},
		{"unwritable output", []string{"-w", "3", in, filepath.Join(dir, "out.webp")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("execute %v: expected an error", tt.args)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "input-resized.png")); !os.IsNotExist(err) {
		t.Errorf("rejected invocations wrote output: %v", err)
	}
}

func TestRoot_OptionErrorsAreInvalidOptions(t *testing.T) {
	in := writeNoisePNG(t, t.TempDir(), 4, 4)
	if _, err := execute(t, "-w", "-2", in); !errors.Is(err, config.ErrInvalidOptions) {
		t.Errorf("got %v, want ErrInvalidOptions", err)
	}
}

func TestRoot_UnreadableInput(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.png")
	if _, err := execute(t, "-w", "3", missing); err == nil {
		t.Error("expected an error for a missing input")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "-w", "3", garbage); err == nil {
		t.Error("expected an error for an undecodable input")
	}
}

func TestRoot_Time(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 6, 6)

	stdout, err := execute(t, "-t", "-w", "4", in, filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stdout, "Resized") || !strings.Contains(stdout, "4x6") {
		t.Errorf("timing report missing, got %q", stdout)
	}
}

func TestRoot_DebugEnergyMap(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 8, 6)
	energy := filepath.Join(dir, "energy.png")

	stdout, err := execute(t, "--debug", energy, "-w", "5", in, filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("unexpected output without -t: %q", stdout)
	}
	// The energy map describes the input, before resizing.
	checkSize(t, energy, 8, 6)
}

func TestRoot_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 8, 6)
	settings := filepath.Join(dir, "settings.yaml")
	yaml := "debug:\n  palette: heat\n  seamColor: \"#00FF00\"\n"
	if err := os.WriteFile(settings, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	energy := filepath.Join(dir, "energy.png")

	if _, err := execute(t, "--config", settings, "--debug", energy, "-w", "7", in, filepath.Join(dir, "out.png")); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	img, err := imaging.Decode(energy)
	if err != nil {
		t.Fatalf("failed to decode energy map: %v", err)
	}
	// Every row carries exactly one seam pixel in the overlay color.
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		hits := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == 0 && g == 0xffff && bl == 0 {
				hits++
			}
		}
		if hits != 1 {
			t.Errorf("row %d: %d seam pixels, want 1", y, hits)
		}
	}
}

func TestRoot_BadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	in := writeNoisePNG(t, dir, 4, 4)
	settings := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(settings, []byte("output:\n  jpegQuality: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--config", settings, "-w", "3", in)
	if !errors.Is(err, config.ErrInvalidOptions) {
		t.Errorf("got %v, want ErrInvalidOptions", err)
	}
}

func TestRoot_Version(t *testing.T) {
	stdout, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("version output %q does not mention 1.2.3", stdout)
	}
}
