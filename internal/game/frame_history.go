package game

import "time"

// frameHistory records the last N frame durations into a ring buffer so the
// HUD can show a smoothed frame rate.
type frameHistory struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newFrameHistory(size int) *frameHistory {
	if size < 1 {
		size = 1
	}
	return &frameHistory{buffer: make([]time.Duration, size)}
}

func (h *frameHistory) add(d time.Duration) {
	h.buffer[h.nextIndex] = d
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.filled < len(h.buffer) {
		h.filled++
	}
}

// snapshot returns the recorded durations, oldest first.
func (h *frameHistory) snapshot() []time.Duration {
	out := make([]time.Duration, 0, h.filled)
	start := h.nextIndex - h.filled
	if start < 0 {
		start += len(h.buffer)
	}
	for i := 0; i < h.filled; i++ {
		out = append(out, h.buffer[(start+i)%len(h.buffer)])
	}
	return out
}

// fps is the mean rate over the recorded frames, 0 until a non-zero frame lands.
func (h *frameHistory) fps() float64 {
	var total time.Duration
	for _, d := range h.snapshot() {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(h.filled) / total.Seconds()
}
