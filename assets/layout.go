package assets

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// PlayerSpawn is where the character appears, as a sprite center.
type PlayerSpawn struct {
	X float64
	Y float64
}

// InteractiveSpawn is a static collidable object. X/Y/Width/Height describe its
// collision footprint; the sprite is centered on the footprint.
type InteractiveSpawn struct {
	Name   string
	Sprite string // "machine" or "logo"
	X, Y   float64
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the footprint.
func (s InteractiveSpawn) CenterX() float64 { return s.X + s.Width/2 }

// CenterY returns the vertical center of the footprint.
func (s InteractiveSpawn) CenterY() float64 { return s.Y + s.Height/2 }

// SceneLayout is the placement data read from the house map.
type SceneLayout struct {
	Name         string
	Width        int
	Height       int
	PlayerSpawn  *PlayerSpawn
	Interactives []InteractiveSpawn
}

// LoadSceneLayout parses a Tiled map and collects its object groups.
func LoadSceneLayout(fsys fs.FS, path string) (*SceneLayout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load scene layout %s: %w", path, err)
	}

	layout := &SceneLayout{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				layout.PlayerSpawn = &PlayerSpawn{X: o.X, Y: o.Y}
			}
		case "Interactives":
			for _, o := range og.Objects {
				sprite := o.Properties.GetString("sprite")
				if sprite == "" {
					sprite = o.Class
				}
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("interactive %q in %s has no collision size", o.Name, path)
				}
				layout.Interactives = append(layout.Interactives, InteractiveSpawn{
					Name:   o.Name,
					Sprite: sprite,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
			// Keep map order stable regardless of object id assignment
			sort.SliceStable(layout.Interactives, func(i, j int) bool {
				return layout.Interactives[i].Name < layout.Interactives[j].Name
			})
		}
	}

	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("scene layout %s has no size", path)
	}

	return layout, nil
}

// MustLoadSceneLayout loads the embedded house map.
func MustLoadSceneLayout() *SceneLayout {
	layout, err := LoadSceneLayout(assetFS, LayoutPath)
	if err != nil {
		panic(err)
	}
	return layout
}
