package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpeechBubbleData is the singleton overlay shown above a touched object.
type SpeechBubbleData struct {
	Image        *ebiten.Image
	Visible      bool
	X, Y         float64 // center of the bubble
	HiddenAtTick int64   // tick at which the bubble hides again
	Source       *donburi.Entry

	Pop      *gween.Tween // scale tween played each time the bubble appears
	PopScale float32
}

var SpeechBubble = donburi.NewComponentType[SpeechBubbleData]()
