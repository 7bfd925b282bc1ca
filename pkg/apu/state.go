package apu

import (
	"bytes"
	"encoding/json"
)

// apuState is the JSON-encodable snapshot of all five channels, the frame
// sequencer and the sample resampler's fractional accumulator.
type apuState struct {
	Pulse1   PulseChannel
	Pulse2   PulseChannel
	Triangle TriangleChannel
	Noise    NoiseChannel
	DMC      DMCChannel

	FrameCounter uint8
	FrameStep    int
	FrameIRQ     bool
	FrameCycles  int

	Cycles uint64

	SampleRate  int
	SampleAccum int
}

// SaveState returns an opaque snapshot of channel, frame-sequencer and
// resampler state. The output buffer is not included: it is drained by the
// host every frame and never carries state across a save/load boundary.
func (a *APU) SaveState() ([]byte, error) {
	state := apuState{
		Pulse1:       a.Pulse1,
		Pulse2:       a.Pulse2,
		Triangle:     a.Triangle,
		Noise:        a.Noise,
		DMC:          a.DMC,
		FrameCounter: a.FrameCounter,
		FrameStep:    a.FrameStep,
		FrameIRQ:     a.FrameIRQ,
		FrameCycles:  a.frameCycles,
		Cycles:       a.Cycles,
		SampleRate:   a.SampleRate,
		SampleAccum:  a.sampleAccum,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadState restores the APU from a snapshot produced by SaveState.
func (a *APU) LoadState(data []byte) error {
	var state apuState
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}

	a.Pulse1 = state.Pulse1
	a.Pulse2 = state.Pulse2
	a.Triangle = state.Triangle
	a.Noise = state.Noise
	a.DMC = state.DMC
	a.FrameCounter = state.FrameCounter
	a.FrameStep = state.FrameStep
	a.FrameIRQ = state.FrameIRQ
	a.frameCycles = state.FrameCycles
	a.Cycles = state.Cycles
	a.SampleRate = state.SampleRate
	a.sampleAccum = state.SampleAccum

	return nil
}
