package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRect is a pixel rectangle inside the atlas image.
type FrameRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// FrameSize is the untrimmed size of a frame.
type FrameSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// FrameDefinition describes a single named frame in a TexturePacker atlas
type FrameDefinition struct {
	Filename         string    `json:"filename"` // only present in the array format
	Frame            FrameRect `json:"frame"`
	Rotated          bool      `json:"rotated"`
	Trimmed          bool      `json:"trimmed"`
	SpriteSourceSize FrameRect `json:"spriteSourceSize"`
	SourceSize       FrameSize `json:"sourceSize"`
}

// AtlasMeta is the "meta" block written by TexturePacker.
type AtlasMeta struct {
	Image string    `json:"image"`
	Size  FrameSize `json:"size"`
	Scale string    `json:"scale"`
}

// AtlasData is the parsed frame metadata of an atlas, keyed by frame name.
type AtlasData struct {
	Frames map[string]FrameDefinition
	Meta   AtlasMeta
}

type atlasFile struct {
	Frames json.RawMessage `json:"frames"`
	Meta   AtlasMeta       `json:"meta"`
}

// ParseAtlasData decodes TexturePacker JSON in either the hash format
// ("frames": {"name": {...}}) or the array format ("frames": [{"filename": ...}]).
func ParseAtlasData(data []byte) (*AtlasData, error) {
	var file atlasFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse atlas json: %w", err)
	}

	frames := make(map[string]FrameDefinition)
	raw := bytes.TrimSpace(file.Frames)
	switch {
	case len(raw) == 0:
		return nil, fmt.Errorf("atlas json has no frames")
	case raw[0] == '{':
		if err := json.Unmarshal(raw, &frames); err != nil {
			return nil, fmt.Errorf("failed to parse atlas frames: %w", err)
		}
		for name, def := range frames {
			def.Filename = name
			frames[name] = def
		}
	case raw[0] == '[':
		var list []FrameDefinition
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to parse atlas frames: %w", err)
		}
		for _, def := range list {
			if def.Filename == "" {
				return nil, fmt.Errorf("atlas frame without filename")
			}
			frames[def.Filename] = def
		}
	default:
		return nil, fmt.Errorf("atlas frames must be an object or an array")
	}

	for name, def := range frames {
		if def.Frame.W <= 0 || def.Frame.H <= 0 {
			return nil, fmt.Errorf("atlas frame %s has invalid size %dx%d", name, def.Frame.W, def.Frame.H)
		}
		if def.Rotated {
			return nil, fmt.Errorf("atlas frame %s is rotated, which is not supported", name)
		}
	}

	return &AtlasData{Frames: frames, Meta: file.Meta}, nil
}

// Names returns every frame name in sorted order.
func (d *AtlasData) Names() []string {
	names := make([]string, 0, len(d.Frames))
	for name := range d.Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the atlas defines a frame.
func (d *AtlasData) Has(name string) bool {
	_, ok := d.Frames[name]
	return ok
}

// Atlas is a loaded image plus its named frames. Sub-images are created lazily
// and cached so each frame is sliced once.
type Atlas struct {
	Data       *AtlasData
	Image      *ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAtlas(img *ebiten.Image, data *AtlasData) *Atlas {
	return &Atlas{
		Data:       data,
		Image:      img,
		frameCache: make(map[string]*ebiten.Image),
	}
}

// Frame returns the sub-image for a named frame.
func (a *Atlas) Frame(name string) (*ebiten.Image, bool) {
	if img, ok := a.frameCache[name]; ok {
		return img, true
	}
	def, ok := a.Data.Frames[name]
	if !ok {
		return nil, false
	}
	r := image.Rect(def.Frame.X, def.Frame.Y, def.Frame.X+def.Frame.W, def.Frame.Y+def.Frame.H)
	img := a.Image.SubImage(r).(*ebiten.Image)
	a.frameCache[name] = img
	return img, true
}

// MustFrame is Frame for names that are known to exist.
func (a *Atlas) MustFrame(name string) *ebiten.Image {
	img, ok := a.Frame(name)
	if !ok {
		panic(fmt.Sprintf("atlas frame not found: %s", name))
	}
	return img
}

// SpriteSheet is an image cut into a grid of equally sized frames.
type SpriteSheet struct {
	Image       *ebiten.Image
	FrameWidth  int
	FrameHeight int
}

// Columns is the number of frames per row.
func (s *SpriteSheet) Columns() int {
	return s.Image.Bounds().Dx() / s.FrameWidth
}

// Frame returns the sub-image for frame index i, counting left to right, top to bottom.
func (s *SpriteSheet) Frame(i int) *ebiten.Image {
	cols := s.Columns()
	if cols <= 0 {
		return s.Image
	}
	sx := (i % cols) * s.FrameWidth
	sy := (i / cols) * s.FrameHeight
	return s.Image.SubImage(image.Rect(sx, sy, sx+s.FrameWidth, sy+s.FrameHeight)).(*ebiten.Image)
}
