package footlight

import (
	"image"
	"strings"
	"testing"
)

// --- Test JSON fixtures ---

const singlePageSheetJSON = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "enemy.png": {
      "frame": {"x": 64, "y": 0, "w": 32, "h": 48},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 48},
      "sourceSize": {"w": 32, "h": 48},
      "pivot": {"x": 0.5, "y": 1}
    },
    "anchor.png": {
      "frame": {"x": 96, "y": 0, "w": 16, "h": 16},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16},
      "sourceSize": {"w": 16, "h": 16},
      "pivot": {"x": 0, "y": 0}
    },
    "trimmed.png": {
      "frame": {"x": 100, "y": 50, "w": 60, "h": 58},
      "rotated": false,
      "trimmed": true,
      "spriteSourceSize": {"x": 2, "y": 3, "w": 60, "h": 58},
      "sourceSize": {"w": 64, "h": 64}
    }
  },
  "meta": {
    "image": "sheet.png",
    "size": {"w": 256, "h": 256},
    "scale": "1"
  }
}`

const multiPageSheetJSON = `{
  "textures": [
    {
      "image": "sheet-0.png",
      "frames": {
        "page0_sprite.png": {
          "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
          "rotated": false,
          "trimmed": false,
          "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
          "sourceSize": {"w": 64, "h": 64}
        }
      }
    },
    {
      "image": "sheet-1.png",
      "frames": {
        "page1_sprite.png": {
          "frame": {"x": 10, "y": 20, "w": 50, "h": 50},
          "rotated": false,
          "trimmed": false,
          "spriteSourceSize": {"x": 0, "y": 0, "w": 50, "h": 50},
          "sourceSize": {"w": 50, "h": 50}
        }
      }
    }
  ]
}`

const rotatedSheetJSON = `{
  "frames": {
    "rotated.png": {
      "frame": {"x": 200, "y": 0, "w": 48, "h": 32},
      "rotated": true,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 48, "h": 32},
      "sourceSize": {"w": 32, "h": 48}
    }
  }
}`

const halfScaleSheetJSON = `{
  "frames": {
    "small.png": {
      "frame": {"x": 0, "y": 0, "w": 32, "h": 32},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 32},
      "sourceSize": {"w": 32, "h": 32}
    }
  },
  "meta": {"scale": "0.5"}
}`

func testPage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// --- LoadCostumeSheet tests ---

func TestLoadCostumeSheet_SinglePage_Count(t *testing.T) {
	sheet, err := LoadCostumeSheet([]byte(singlePageSheetJSON), testPage(256, 256))
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}
	if got := sheet.Len(); got != 4 {
		t.Errorf("costume count = %d, want 4", got)
	}
}

func TestLoadCostumeSheet_Lookup(t *testing.T) {
	page := testPage(256, 256)
	sheet, err := LoadCostumeSheet([]byte(singlePageSheetJSON), page)
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}

	c, ok := sheet.Costume("hero.png")
	if !ok {
		t.Fatal("hero.png not found")
	}
	if c.Image != page {
		t.Error("hero.png does not reference the page image")
	}
	if want := image.Rect(0, 0, 64, 64); c.Region != want {
		t.Errorf("hero.png region = %v, want %v", c.Region, want)
	}
	// No pivot in the JSON: the origin defaults to the center.
	assertNear(t, "hero CenterX", c.CenterX, 32)
	assertNear(t, "hero CenterY", c.CenterY, 32)
	assertNear(t, "hero Scale", c.Scale, 1)
}

func TestLoadCostumeSheet_Pivot(t *testing.T) {
	sheet, err := LoadCostumeSheet([]byte(singlePageSheetJSON), testPage(256, 256))
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}

	// pivot (0.5, 1) over a 32x48 source: bottom-center anchor.
	c, _ := sheet.Costume("enemy.png")
	assertNear(t, "enemy CenterX", c.CenterX, 16)
	assertNear(t, "enemy CenterY", c.CenterY, 48)

	// pivot (0, 0): top-left anchor.
	c, _ = sheet.Costume("anchor.png")
	assertNear(t, "anchor CenterX", c.CenterX, 0)
	assertNear(t, "anchor CenterY", c.CenterY, 0)
}

func TestLoadCostumeSheet_TrimmedPivot(t *testing.T) {
	sheet, err := LoadCostumeSheet([]byte(singlePageSheetJSON), testPage(256, 256))
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}

	// Default pivot over the 64x64 source is (32, 32); the (2, 3) trim
	// shifts it into frame coordinates.
	c, ok := sheet.Costume("trimmed.png")
	if !ok {
		t.Fatal("trimmed.png not found")
	}
	if want := image.Rect(100, 50, 160, 108); c.Region != want {
		t.Errorf("trimmed region = %v, want %v", c.Region, want)
	}
	assertNear(t, "trimmed CenterX", c.CenterX, 30)
	assertNear(t, "trimmed CenterY", c.CenterY, 29)
}

func TestLoadCostumeSheet_MetaScale(t *testing.T) {
	sheet, err := LoadCostumeSheet([]byte(halfScaleSheetJSON), testPage(64, 64))
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}
	// Exported at half size: costumes draw at double scale.
	c, _ := sheet.Costume("small.png")
	assertNear(t, "Scale", c.Scale, 2)
}

func TestLoadCostumeSheet_RotatedRejected(t *testing.T) {
	_, err := LoadCostumeSheet([]byte(rotatedSheetJSON), testPage(256, 256))
	if err == nil {
		t.Fatal("expected error for rotated frame, got nil")
	}
	if !strings.Contains(err.Error(), "rotated") {
		t.Errorf("error = %q, want mention of rotated", err.Error())
	}
}

func TestLoadCostumeSheet_MultiPage(t *testing.T) {
	page0 := testPage(128, 128)
	page1 := testPage(128, 128)
	sheet, err := LoadCostumeSheet([]byte(multiPageSheetJSON), page0, page1)
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}

	c0, _ := sheet.Costume("page0_sprite.png")
	if c0.Image != page0 {
		t.Error("page0_sprite does not reference page 0")
	}
	c1, _ := sheet.Costume("page1_sprite.png")
	if c1.Image != page1 {
		t.Error("page1_sprite does not reference page 1")
	}
	if want := image.Rect(10, 20, 60, 70); c1.Region != want {
		t.Errorf("page1_sprite region = %v, want %v", c1.Region, want)
	}
}

func TestLoadCostumeSheet_MissingPageImage(t *testing.T) {
	_, err := LoadCostumeSheet([]byte(multiPageSheetJSON), testPage(128, 128))
	if err == nil {
		t.Error("expected error for missing page image, got nil")
	}
}

func TestLoadCostumeSheet_NoPages(t *testing.T) {
	_, err := LoadCostumeSheet([]byte(singlePageSheetJSON))
	if err == nil {
		t.Error("expected error for hash format without a page image, got nil")
	}
}

func TestLoadCostumeSheet_MissingLookup(t *testing.T) {
	sheet, err := LoadCostumeSheet([]byte(singlePageSheetJSON), testPage(256, 256))
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}
	if _, ok := sheet.Costume("nonexistent.png"); ok {
		t.Error("missing costume reported found")
	}
}

func TestLoadCostumeSheet_InvalidJSON(t *testing.T) {
	_, err := LoadCostumeSheet([]byte(`{invalid`), testPage(1, 1))
	if err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestLoadCostumeSheet_NoFramesOrTextures(t *testing.T) {
	_, err := LoadCostumeSheet([]byte(`{"meta":{}}`), testPage(1, 1))
	if err == nil {
		t.Error("expected error for JSON with no frames/textures, got nil")
	}
	if !strings.Contains(err.Error(), "neither") {
		t.Errorf("error message = %q, want mention of neither", err.Error())
	}
}

func TestLoadCostumeSheet_BadMetaScale(t *testing.T) {
	_, err := LoadCostumeSheet([]byte(`{"frames":{},"meta":{"scale":"zero"}}`), testPage(1, 1))
	if err == nil {
		t.Error("expected error for bad meta scale, got nil")
	}
}

func TestCostumeSheet_Names(t *testing.T) {
	sheet, err := LoadCostumeSheet([]byte(singlePageSheetJSON), testPage(256, 256))
	if err != nil {
		t.Fatalf("LoadCostumeSheet: %v", err)
	}
	names := sheet.Names()
	want := []string{"anchor.png", "enemy.png", "hero.png", "trimmed.png"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

// --- Benchmarks ---

func BenchmarkLoadCostumeSheet(b *testing.B) {
	data := []byte(singlePageSheetJSON)
	page := testPage(256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = LoadCostumeSheet(data, page)
	}
}

func BenchmarkCostumeSheet_Lookup(b *testing.B) {
	sheet, _ := LoadCostumeSheet([]byte(singlePageSheetJSON), testPage(256, 256))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sheet.Costume("hero.png")
	}
}
