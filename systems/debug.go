package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/fonts"
	"github.com/automoto/housewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for debug rendering (lazy initialized)
var debugFontFace font.Face

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.UI.DebugSolidColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.UI.DebugPlayerColor
			}
			drawOutline(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	drawDebugText(screen, debugLines(ecs))
}

func debugLines(ecs *ecs.ECS) []string {
	lines := []string{fmt.Sprintf("tick %d", CurrentTick(ecs))}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		animData := components.Animation.Get(playerEntry)
		lines = append(lines,
			fmt.Sprintf("pos %.1f,%.1f vel %.0f,%.0f", obj.CenterX(), obj.CenterY(), physics.Velocity.X, physics.Velocity.Y),
			fmt.Sprintf("anim %s playing=%t frame %s", animData.Current, animData.Playing, animData.FrameName),
			fmt.Sprintf("facing %s", player.Facing),
		)
	}

	if bubbleEntry, ok := tags.Bubble.First(ecs.World); ok {
		bubble := components.SpeechBubble.Get(bubbleEntry)
		if bubble.Visible {
			lines = append(lines, fmt.Sprintf("bubble until tick %d", bubble.HiddenAtTick))
		} else {
			lines = append(lines, "bubble hidden")
		}
	}

	return lines
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	sw := cfg.UI.DebugOutlineWidth
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), sw, c, false)
}

func drawDebugText(screen *ebiten.Image, lines []string) {
	// Lazy initialize cached font face
	if debugFontFace == nil {
		debugFontFace = fonts.Debug.Get()
	}

	padding := cfg.UI.DebugTextPadding
	lineHeight := debugFontFace.Metrics().Height.Ceil()

	var maxWidth int
	for _, line := range lines {
		bounds := text.BoundString(debugFontFace, line) //nolint:staticcheck // TODO: migrate to text/v2
		if bounds.Dx() > maxWidth {
			maxWidth = bounds.Dx()
		}
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(maxWidth)+float32(padding)*2,
		float32(lineHeight*len(lines))+float32(padding)*2,
		cfg.UI.DebugTextBgColor,
		false,
	)

	for i, line := range lines {
		x := int(padding)
		y := int(padding) + lineHeight*(i+1)
		text.Draw(screen, line, debugFontFace, x, y, cfg.UI.DebugTextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
