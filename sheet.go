package footlight

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"
	"strconv"
)

// CostumeSheet holds named costumes cut from shared page images, loaded
// from TexturePacker JSON. Each costume's Region selects its frame on the
// page; the pivot becomes the rotation origin and the export scale becomes
// the costume scale.
type CostumeSheet struct {
	costumes map[string]Costume
}

// LoadCostumeSheet parses TexturePacker JSON and cuts costumes from the
// given page images. Both the hash format (single "frames" object, one
// page) and the array format ("textures" array with per-page frame lists)
// are supported. Rotated frames are rejected; re-export with rotation
// disabled.
func LoadCostumeSheet(jsonData []byte, pages ...image.Image) (*CostumeSheet, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     jsonSheetMeta   `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("footlight: failed to parse sheet JSON: %w", err)
	}

	scale, err := probe.Meta.costumeScale()
	if err != nil {
		return nil, err
	}

	sheet := &CostumeSheet{costumes: make(map[string]Costume)}

	if probe.Textures != nil {
		// Multi-page array format
		if err := parseTexturesArray(probe.Textures, pages, scale, sheet); err != nil {
			return nil, err
		}
	} else if probe.Frames != nil {
		// Single-page hash format
		if len(pages) == 0 {
			return nil, fmt.Errorf("footlight: sheet JSON needs a page image")
		}
		if err := parseFrameHash(probe.Frames, pages[0], scale, sheet); err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("footlight: sheet JSON has neither \"frames\" nor \"textures\" key")
	}

	return sheet, nil
}

// Costume returns the costume registered under name. ok is false for
// unknown names, with a debug warning.
func (s *CostumeSheet) Costume(name string) (Costume, bool) {
	c, ok := s.costumes[name]
	if !ok {
		debugf("sheet costume %q not found", name)
	}
	return c, ok
}

// Names returns the registered costume names in sorted order.
func (s *CostumeSheet) Names() []string {
	names := make([]string, 0, len(s.costumes))
	for name := range s.costumes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered costumes.
func (s *CostumeSheet) Len() int {
	return len(s.costumes)
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonVec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
	Pivot            *jsonVec `json:"pivot"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

type jsonSheetMeta struct {
	Scale string `json:"scale"`
}

// costumeScale inverts the export scale: a sheet exported at half size
// carries costumes that draw at double scale.
func (m jsonSheetMeta) costumeScale() (float64, error) {
	if m.Scale == "" {
		return 1, nil
	}
	s, err := strconv.ParseFloat(m.Scale, 64)
	if err != nil || s <= 0 {
		return 0, fmt.Errorf("footlight: bad sheet meta scale %q", m.Scale)
	}
	return 1 / s, nil
}

// parseFrameHash parses the hash format: {"name": {frame...}, ...}
func parseFrameHash(raw json.RawMessage, page image.Image, scale float64, sheet *CostumeSheet) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("footlight: failed to parse sheet frames: %w", err)
	}
	for name, f := range frames {
		c, err := frameToCostume(name, f, page, scale)
		if err != nil {
			return err
		}
		sheet.costumes[name] = c
	}
	return nil
}

// parseTexturesArray parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseTexturesArray(raw json.RawMessage, pages []image.Image, scale float64, sheet *CostumeSheet) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("footlight: failed to parse sheet textures array: %w", err)
	}
	for i, tex := range textures {
		if i >= len(pages) {
			return fmt.Errorf("footlight: sheet references page %d but only %d page images supplied", i, len(pages))
		}
		for name, f := range tex.Frames {
			c, err := frameToCostume(name, f, pages[i], scale)
			if err != nil {
				return err
			}
			sheet.costumes[name] = c
		}
	}
	return nil
}

// frameToCostume converts one TexturePacker frame into a Costume. The pivot
// (default center) is expressed over the untrimmed source size; trimming
// shifts it into frame coordinates so the anchor stays where it was
// authored.
func frameToCostume(name string, f jsonFrame, page image.Image, scale float64) (Costume, error) {
	if f.Rotated {
		return Costume{}, fmt.Errorf("footlight: sheet costume %q is stored rotated; re-export with rotation disabled", name)
	}

	srcW, srcH := float64(f.SourceSize.W), float64(f.SourceSize.H)
	if srcW == 0 || srcH == 0 {
		srcW, srcH = float64(f.Frame.W), float64(f.Frame.H)
	}

	pivotX, pivotY := 0.5, 0.5
	if f.Pivot != nil {
		pivotX, pivotY = f.Pivot.X, f.Pivot.Y
	}

	return Costume{
		Image:   page,
		Region:  image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
		Scale:   scale,
		CenterX: pivotX*srcW - float64(f.SpriteSourceSize.X),
		CenterY: pivotY*srcH - float64(f.SpriteSourceSize.Y),
	}, nil
}
