package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/bouncing-balls/internal/config"
)

const soundSampleRate = beep.SampleRate(config.SoundSampleRate)

// audioDevice is the slice of beep's speaker package bounceSound drives.
type audioDevice struct {
	init  func(sr beep.SampleRate, bufferSize int) error
	play  func(s ...beep.Streamer)
	clear func()
}

var speakerDevice = audioDevice{init: speaker.Init, play: speaker.Play, clear: speaker.Clear}

// bounceSound plays a short click through a mixer whenever bodies hit an edge.
type bounceSound struct {
	device      audioDevice
	mixer       *beep.Mixer
	initDone    bool
	enabled     bool
	clickLength int
}

func newBounceSound() *bounceSound {
	return &bounceSound{
		device:      speakerDevice,
		mixer:       &beep.Mixer{},
		clickLength: soundSampleRate.N(config.SoundLength * time.Millisecond),
	}
}

// setEnabled opens the speaker on first use, and again after close. On error
// the sound stays off.
func (s *bounceSound) setEnabled(on bool) error {
	if on && !s.initDone {
		if err := s.device.init(soundSampleRate, soundSampleRate.N(time.Second/20)); err != nil {
			return err
		}
		s.device.play(s.mixer)
		s.initDone = true
	}
	s.enabled = on
	return nil
}

// bounce queues one click whose loudness grows with the number of
// reflections in the frame.
func (s *bounceSound) bounce(reflections int) {
	if !s.enabled || !s.initDone || reflections <= 0 {
		return
	}
	volume := config.SoundMaxVolume * clamp01(math.Log2(1+float64(reflections))/4)
	speaker.Lock()
	s.mixer.Add(beep.Take(s.clickLength, newClick(soundSampleRate, config.SoundFrequency, volume)))
	speaker.Unlock()
}

// close drops the mixer from the speaker. A later setEnabled(true)
// reinitializes the device and plays a fresh mixer.
func (s *bounceSound) close() {
	if !s.initDone {
		return
	}
	s.device.clear()
	s.mixer = &beep.Mixer{}
	s.initDone = false
	s.enabled = false
}

// click is an exponentially decaying sine.
type click struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

func newClick(sr beep.SampleRate, freq, volume float64) *click {
	return &click{sr: sr, freq: freq, volume: volume}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)
		v := c.volume * math.Exp(-config.SoundDecay*t) * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }
