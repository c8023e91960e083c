package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:house all:character
	assetFS embed.FS
)

// Fixed asset locations inside the embedded filesystem.
const (
	BackgroundPath   = "house/bg.png"
	CharacterImage   = "character/adam.png"
	CharacterAtlas   = "character/adam.json"
	MachinePath      = "house/object/vendingmachine.png"
	LogoPath         = "house/object/logo192.png"
	SpeechBubblePath = "house/object/speechbubble.png"
	LayoutPath       = "house/house.tmx"
)

// Spritesheet frame size shared by the machine and logo sheets.
const (
	ObjectFrameWidth  = 64
	ObjectFrameHeight = 64
)

// FS exposes the embedded asset tree (read-only).
func FS() fs.FS {
	return assetFS
}

// SceneAssets bundles every image the house scene draws.
type SceneAssets struct {
	Background   *ebiten.Image
	Character    *Atlas
	Machine      *SpriteSheet
	Logo         *SpriteSheet
	SpeechBubble *ebiten.Image
}

type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

var imageLoader = NewImageLoader(assetFS)

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// LoadAtlas reads an atlas image and its TexturePacker JSON.
func (l *ImageLoader) LoadAtlas(imagePath, dataPath string) (*Atlas, error) {
	raw, err := fs.ReadFile(l.fsys, dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas data %s: %w", dataPath, err)
	}
	data, err := ParseAtlasData(raw)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", dataPath, err)
	}

	img := l.MustLoadImage(imagePath)
	bounds := img.Bounds()
	for name, def := range data.Frames {
		r := image.Rect(def.Frame.X, def.Frame.Y, def.Frame.X+def.Frame.W, def.Frame.Y+def.Frame.H)
		if !r.In(bounds) {
			return nil, fmt.Errorf("atlas %s: frame %s %v lies outside image %v", dataPath, name, r, bounds)
		}
	}

	return NewAtlas(img, data), nil
}

func (l *ImageLoader) MustLoadAtlas(imagePath, dataPath string) *Atlas {
	atlas, err := l.LoadAtlas(imagePath, dataPath)
	if err != nil {
		panic(err.Error())
	}
	return atlas
}

func (l *ImageLoader) MustLoadSpriteSheet(path string, frameWidth, frameHeight int) *SpriteSheet {
	img := l.MustLoadImage(path)
	if img.Bounds().Dx() < frameWidth || img.Bounds().Dy() < frameHeight {
		panic(fmt.Sprintf("Spritesheet %s (%v) is smaller than one %dx%d frame", path, img.Bounds().Size(), frameWidth, frameHeight))
	}
	return &SpriteSheet{
		Image:       img,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
	}
}

// MustLoadSceneAssets loads every image the scene needs and panics on the first failure.
func MustLoadSceneAssets() *SceneAssets {
	return &SceneAssets{
		Background:   imageLoader.MustLoadImage(BackgroundPath),
		Character:    imageLoader.MustLoadAtlas(CharacterImage, CharacterAtlas),
		Machine:      imageLoader.MustLoadSpriteSheet(MachinePath, ObjectFrameWidth, ObjectFrameHeight),
		Logo:         imageLoader.MustLoadSpriteSheet(LogoPath, ObjectFrameWidth, ObjectFrameHeight),
		SpeechBubble: imageLoader.MustLoadImage(SpeechBubblePath),
	}
}
