package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// createTestAPU creates an APU instance for testing
func createTestAPU() *APU {
	apu := New()
	apu.Reset()
	return apu
}

// Test APU creation and reset
func TestAPUCreation(t *testing.T) {
	apu := createTestAPU()

	a := assert.New(t)
	a.NotNil(apu)
	a.EqualValues(0, apu.Cycles)
	a.Equal(0, apu.FrameStep)
	a.False(apu.FrameIRQ, "Frame IRQ should be false initially")
}

// Test pulse channel register writes
func TestPulseChannelRegisters(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4000, 0xBF) // Duty=10, Envelope loop, Constant volume, Volume=15

	assert.Equal(t, uint8(2), apu.Pulse1.DutyCycle)
	assert.True(t, apu.Pulse1.Length.Halt)
	assert.True(t, apu.Pulse1.Envelope.Constant)
	assert.Equal(t, uint8(15), apu.Pulse1.Volume)

	apu.WriteRegister(0x4001, 0x88) // Enabled, period=0, negate=true, shift=0

	assert.True(t, apu.Pulse1.Sweep.Enabled)
	assert.Equal(t, uint8(0), apu.Pulse1.Sweep.Period)
	assert.True(t, apu.Pulse1.Sweep.Negate)

	apu.WriteRegister(0x4002, 0x55) // Timer low
	apu.WriteRegister(0x4003, 0x12) // Length index=2, Timer high=2

	assert.Equal(t, uint16(0x255), apu.Pulse1.TimerValue)
}

// Test triangle channel registers
func TestTriangleChannelRegisters(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4015, 0x04) // Enable triangle

	apu.WriteRegister(0x4008, 0x81) // Control flag set, counter=1

	assert.True(t, apu.Triangle.Length.Halt)
	assert.Equal(t, uint8(0), apu.Triangle.LinearCounter)

	apu.WriteRegister(0x400A, 0xAA) // Timer low
	apu.WriteRegister(0x400B, 0x13) // Length index=2, Timer high=3

	assert.Equal(t, uint16(0x3AA), apu.Triangle.TimerValue)
}

// Test noise channel registers
func TestNoiseChannelRegisters(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x400C, 0x3A) // Loop, Constant, Volume=10

	assert.True(t, apu.Noise.Length.Halt)
	assert.True(t, apu.Noise.Envelope.Constant)
	assert.Equal(t, uint8(10), apu.Noise.Volume)

	apu.WriteRegister(0x400E, 0x8F) // Mode=1, Period=15

	assert.True(t, apu.Noise.Mode)
	assert.Equal(t, noisePeriods[15], apu.Noise.TimerValue)
}

// Test status register
func TestStatusRegister(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4015, 0x1F) // Enable all channels

	assert.True(t, apu.Pulse1.Enabled)
	assert.True(t, apu.Pulse2.Enabled)
	assert.True(t, apu.Triangle.Enabled)
	assert.True(t, apu.Noise.Enabled)
	assert.True(t, apu.DMC.Enabled)

	apu.WriteRegister(0x4015, 0x00)

	assert.False(t, apu.Pulse1.Enabled)
	assert.False(t, apu.Triangle.Enabled)
}

// Test envelope stepping
func TestEnvelopeGenerator(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4000, 0x08) // No constant volume, volume=8
	apu.WriteRegister(0x4003, 0x08) // Trigger envelope start

	assert.Equal(t, uint8(0), apu.Pulse1.Envelope.Counter, "envelope should start at 0")

	for i := 0; i < 16; i++ {
		apu.stepEnvelope(&apu.Pulse1.Envelope)
	}

	assert.Equal(t, uint8(14), apu.Pulse1.Envelope.Counter, "expected counter after one complete cycle")
}

// Test length counter
func TestLengthCounter(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4015, 0x01) // Enable pulse 1
	apu.WriteRegister(0x4003, 0x08) // Length counter = lengthTable[1]

	expectedLength := lengthTable[1]
	assert.Equal(t, expectedLength, apu.Pulse1.Length.Value)

	originalValue := apu.Pulse1.Length.Value
	apu.stepLengthCounter(&apu.Pulse1.Length)

	assert.Equal(t, originalValue-1, apu.Pulse1.Length.Value)
}

// Test sweep unit
func TestSweepUnit(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4001, 0x81) // Enable sweep, period=0, negate=false, shift=1
	apu.WriteRegister(0x4002, 0x00) // Timer low = 0
	apu.WriteRegister(0x4003, 0x01) // Timer high = 1, so timer = 0x100

	originalTimer := apu.Pulse1.TimerValue

	apu.stepSweep(&apu.Pulse1, &apu.Pulse1.Sweep, true)

	assert.Greater(t, apu.Pulse1.TimerValue, originalTimer, "sweep should increase the timer")
}

// Test frame counter
func TestFrameCounter(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4017, 0x00) // 4-step mode, no IRQ inhibit
	assert.Equal(t, 0, apu.FrameStep)

	apu.WriteRegister(0x4017, 0x80) // 5-step mode
	assert.Equal(t, 0, apu.FrameStep, "frame step should reset on $4017 write")
}

// Test channel output
func TestChannelOutput(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4015, 0x01) // Enable pulse 1
	apu.WriteRegister(0x4000, 0x5F) // Duty=01 (25%), Constant volume, max volume
	apu.WriteRegister(0x4002, 0x00) // Timer low
	apu.WriteRegister(0x4003, 0x01) // Timer high, length counter

	// Advance the sequence to a position where the 25% duty cycle outputs 1.
	apu.stepPulse(&apu.Pulse1)

	output := apu.getPulseOutput(&apu.Pulse1)
	assert.NotEqual(t, uint8(0), output, "expected non-zero output from enabled pulse channel")

	apu.WriteRegister(0x4015, 0x00)
	output = apu.getPulseOutput(&apu.Pulse1)
	assert.Equal(t, uint8(0), output, "expected zero output from disabled pulse channel")
}

// Test audio mixing
func TestAudioMixing(t *testing.T) {
	apu := createTestAPU()

	apu.WriteRegister(0x4015, 0x1F) // Enable all
	apu.WriteRegister(0x4000, 0x1F) // Pulse 1: max volume
	apu.WriteRegister(0x4004, 0x1F) // Pulse 2: max volume
	apu.WriteRegister(0x4008, 0x81) // Triangle: linear counter
	apu.WriteRegister(0x400C, 0x1F) // Noise: max volume

	sample := apu.mixChannels()

	assert.GreaterOrEqual(t, sample, float32(-1.0))
	assert.LessOrEqual(t, sample, float32(1.0))
}

// Test frequency calculation helper
func TestFrequencyCalculation(t *testing.T) {
	freq := getFrequency(0x100)
	expectedFreq := float32(1789773) / (16.0 * (0x100 + 1))

	assert.InDelta(t, expectedFreq, freq, 0.001)

	assert.Equal(t, float32(0), getFrequency(0), "expected frequency 0 for timer 0")
}

// Test period calculation helper
func TestPeriodCalculation(t *testing.T) {
	period := getPeriod(440.0) // A4 note

	assert.NotZero(t, period)
	assert.LessOrEqual(t, period, uint16(0x7FF))

	assert.Zero(t, getPeriod(0), "expected period 0 for frequency 0")
}

// Test APU step function
func TestAPUStep(t *testing.T) {
	apu := createTestAPU()

	initialCycles := apu.Cycles

	apu.Step()
	assert.Equal(t, initialCycles+1, apu.Cycles)

	// A single CPU-cycle Step only advances the fractional sample
	// accumulator by 3*SampleRate; it takes many steps to cross the
	// masterClockHz threshold and emit a sample, so drive enough steps
	// to guarantee the accumulator has wrapped at least once.
	stepsPerSample := masterClockHz/(3*apu.SampleRate) + 1
	for i := 0; i < stepsPerSample; i++ {
		apu.Step()
	}

	assert.NotEmpty(t, apu.Output, "expected output buffer to have a sample after enough steps")
}
