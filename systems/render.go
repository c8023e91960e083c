package systems

import (
	"github.com/automoto/housewalk/components"
	"github.com/automoto/housewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground draws the background at the origin and repeats it across the
// rest of the screen so no empty space shows around a small image.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Background.First(ecs.World)
	if !ok {
		return
	}
	bg := components.Background.Get(entry)
	if bg.Image == nil {
		return
	}

	tw, th := bg.Image.Bounds().Dx(), bg.Image.Bounds().Dy()
	if tw <= 0 || th <= 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	for y := 0; y < sh; y += th {
		for x := 0; x < sw; x += tw {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(bg.Image, drawOp)
		}
	}
}

// DrawSprites renders static sprites centered on their position.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		w := float64(sprite.Image.Bounds().Dx())
		h := float64(sprite.Image.Bounds().Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-w/2, -h/2)
		drawOp.GeoM.Scale(sprite.ScaleX, sprite.ScaleY)
		drawOp.GeoM.Translate(sprite.X, sprite.Y)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawAnimated renders entities with an Animation component, showing the atlas
// frame named in FrameName centered on the collision box.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Atlas == nil || animData.FrameName == "" {
			return
		}
		img, ok := animData.Atlas.Frame(animData.FrameName)
		if !ok {
			return
		}
		o := components.Object.Get(e)

		w := float64(img.Bounds().Dx())
		h := float64(img.Bounds().Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(o.CenterX()-w/2, o.CenterY()-h/2)
		screen.DrawImage(img, drawOp)
	})
}
