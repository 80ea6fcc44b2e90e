package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Event is one input occurrence drained at the start of a frame.
type Event uint8

const (
	EventQuit Event = iota + 1
	EventSpawn
	EventToggleHUD
	EventToggleSound
)

// Signals is what a frame's events amount to.
type Signals struct {
	Spawns      int
	Quit        bool
	ToggleHUD   bool
	ToggleSound bool
}

// FoldEvents reduces a frame's events in order. Events before a quit are
// kept, anything after it is dropped. Toggles pressed twice in one frame
// cancel out.
func FoldEvents(events []Event) Signals {
	var s Signals
	for _, ev := range events {
		switch ev {
		case EventQuit:
			s.Quit = true
			return s
		case EventSpawn:
			s.Spawns++
		case EventToggleHUD:
			s.ToggleHUD = !s.ToggleHUD
		case EventToggleSound:
			s.ToggleSound = !s.ToggleSound
		}
	}
	return s
}

var keyEvents = map[ebiten.Key]Event{
	ebiten.KeyEscape: EventQuit,
	ebiten.KeySpace:  EventSpawn,
	ebiten.KeyH:      EventToggleHUD,
	ebiten.KeyM:      EventToggleSound,
}

var spawnButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// pollEvents appends every input that arrived since the last frame to events.
// It never blocks.
func pollEvents(events []Event, keys []ebiten.Key) ([]Event, []ebiten.Key) {
	if ebiten.IsWindowBeingClosed() {
		events = append(events, EventQuit)
	}
	keys = inpututil.AppendJustPressedKeys(keys[:0])
	for _, k := range keys {
		if ev, ok := keyEvents[k]; ok {
			events = append(events, ev)
		}
	}
	for _, b := range spawnButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, EventSpawn)
		}
	}
	return events, keys
}
