package animations

import "fmt"

// Animation walks an inclusive range of atlas frame numbers at a fixed rate,
// looping forever unless FreezeOnComplete is set.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks each frame stays on screen
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter += 1.0
	if a.frameCounter < a.SpeedInTps {
		return
	}
	a.frameCounter -= a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Last
		} else {
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = 0
	a.Looped = false
}

// Len is the number of frames in one pass of the clip.
func (a *Animation) Len() int {
	if a.Step <= 0 {
		return 0
	}
	return (a.Last-a.First)/a.Step + 1
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		frame:      first,
	}
}

// TicksPerFrame converts a playback rate in frames per second into the number
// of update ticks each frame is held for.
func TicksPerFrame(frameRate float64, tps int) float32 {
	if frameRate <= 0 {
		return 1
	}
	return float32(float64(tps) / frameRate)
}

// FrameName builds an atlas frame name such as "Adam_idle_anim_7.png".
// zeroPad left-pads the number with zeros to at least that many digits.
func FrameName(prefix string, n, zeroPad int, suffix string) string {
	return fmt.Sprintf("%s%0*d%s", prefix, zeroPad, n, suffix)
}

// GenerateFrameNames returns the names for every frame of an inclusive range.
func GenerateFrameNames(prefix string, first, last, zeroPad int, suffix string) []string {
	if last < first {
		return nil
	}
	names := make([]string, 0, last-first+1)
	for n := first; n <= last; n++ {
		names = append(names, FrameName(prefix, n, zeroPad, suffix))
	}
	return names
}

// Naming is the prefix + number + suffix convention shared by a set of clips.
type Naming struct {
	Prefix  string
	Suffix  string
	ZeroPad int
}

// Name returns the atlas frame name for frame number n.
func (n Naming) Name(frame int) string {
	return FrameName(n.Prefix, frame, n.ZeroPad, n.Suffix)
}
