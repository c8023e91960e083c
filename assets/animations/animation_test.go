package animations

import (
	"reflect"
	"testing"
)

func TestAnimation_AdvancesEverySpeedTicks(t *testing.T) {
	a := NewAnimation(19, 24, 1, 6)

	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() != 19 {
		t.Fatalf("Expected frame 19 after 5 ticks, got %d", a.Frame())
	}

	a.Update()
	if a.Frame() != 20 {
		t.Fatalf("Expected frame 20 after 6 ticks, got %d", a.Frame())
	}
}

func TestAnimation_LoopsForever(t *testing.T) {
	a := NewAnimation(1, 6, 1, 1)

	seen := make([]int, 0, 13)
	for i := 0; i < 13; i++ {
		seen = append(seen, a.Frame())
		a.Update()
	}

	want := []int{1, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6, 1}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Expected frames %v, got %v", want, seen)
	}
	if !a.Looped {
		t.Error("Expected Looped to be set after wrapping")
	}
}

func TestAnimation_FreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)
	a.FreezeOnComplete = true

	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 2 {
		t.Errorf("Expected frozen on last frame 2, got %d", a.Frame())
	}
}

func TestAnimation_Restart(t *testing.T) {
	a := NewAnimation(7, 12, 1, 2)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() == 7 {
		t.Fatal("Expected animation to have advanced")
	}

	a.Restart()
	if a.Frame() != 7 {
		t.Errorf("Expected frame 7 after restart, got %d", a.Frame())
	}
	a.Update()
	if a.Frame() != 7 {
		t.Errorf("Expected restart to reset the tick counter, got frame %d", a.Frame())
	}
}

func TestAnimation_Len(t *testing.T) {
	tests := []struct {
		first, last, step, want int
	}{
		{1, 6, 1, 6},
		{0, 64, 4, 17},
		{3, 3, 1, 1},
	}
	for _, tt := range tests {
		a := NewAnimation(tt.first, tt.last, tt.step, 1)
		if got := a.Len(); got != tt.want {
			t.Errorf("Len(%d..%d step %d): expected %d, got %d", tt.first, tt.last, tt.step, tt.want, got)
		}
	}
}

func TestTicksPerFrame(t *testing.T) {
	if got := TicksPerFrame(10, 60); got != 6 {
		t.Errorf("Expected 6 ticks per frame at 10fps/60tps, got %v", got)
	}
	if got := TicksPerFrame(0, 60); got != 1 {
		t.Errorf("Expected fallback of 1 tick for non-positive rate, got %v", got)
	}
}

func TestGenerateFrameNames(t *testing.T) {
	got := GenerateFrameNames("Adam_idle_anim_", 13, 18, 0, ".png")
	want := []string{
		"Adam_idle_anim_13.png",
		"Adam_idle_anim_14.png",
		"Adam_idle_anim_15.png",
		"Adam_idle_anim_16.png",
		"Adam_idle_anim_17.png",
		"Adam_idle_anim_18.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if names := GenerateFrameNames("f", 5, 4, 0, ""); names != nil {
		t.Errorf("Expected nil for empty range, got %v", names)
	}
}

func TestFrameName_ZeroPad(t *testing.T) {
	if got := FrameName("walk_", 7, 3, ".png"); got != "walk_007.png" {
		t.Errorf("Expected walk_007.png, got %s", got)
	}
	if got := FrameName("walk_", 7, 0, ".png"); got != "walk_7.png" {
		t.Errorf("Expected walk_7.png, got %s", got)
	}
}
