// Package audio plays an optional low "thump" locked to the pulse phase.
// Output only; failure to open a stream is non-fatal and the animation
// simply runs silent.
package audio

import (
	"math"

	"github.com/gordonklaus/portaudio"
)

const (
	sampleRate = 44100
	bufferSize = 1024

	thumpFreq = 55.0 // low sine, felt more than heard
	volume    = 0.25
)

// Heartbeat synthesizes the beat in a portaudio callback. The envelope is a
// function of absolute phase within the pulse period, so audio and visuals
// stay locked without any cross-thread signalling beyond the period itself.
type Heartbeat struct {
	stream *portaudio.Stream
	period float64
	time   float64
	filter [2]float64
	Active bool
}

func NewHeartbeat(period float64) *Heartbeat {
	return &Heartbeat{period: period}
}

func (h *Heartbeat) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, bufferSize, h.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	h.stream = stream
	h.Active = true
	return nil
}

func (h *Heartbeat) Stop() {
	if h.stream != nil {
		h.stream.Stop()
		h.stream.Close()
	}
	portaudio.Terminate()
	h.Active = false
}

// envelope shapes the lub-dub: a sharp decay at the start of each period
// and a softer echo 30% in.
func envelope(phase float64) float64 {
	lub := math.Exp(-10 * phase)
	dub := 0.0
	if phase >= 0.3 {
		dub = 0.6 * math.Exp(-10*(phase-0.3))
	}
	return lub + dub
}

// One pole low pass; softens the sine attack into a dull thump.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (h *Heartbeat) process(out [][]float32) {
	dt := 1.0 / float64(sampleRate)
	for i := 0; i < len(out[0]); i++ {
		phase := math.Mod(h.time, h.period) / h.period
		s := math.Sin(2*math.Pi*thumpFreq*h.time) * envelope(phase)

		var l, r float64
		l, h.filter[0] = lpf(s, 200, dt, h.filter[0])
		r, h.filter[1] = lpf(s, 200, dt, h.filter[1])

		out[0][i] = float32(l * volume)
		out[1][i] = float32(r * volume)
		h.time += dt
	}
}
