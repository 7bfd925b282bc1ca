package nes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yoshiomiyamaegones/pkg/apu"
	"github.com/yoshiomiyamaegones/pkg/cartridge"
	"github.com/yoshiomiyamaegones/pkg/coreerr"
	"github.com/yoshiomiyamaegones/pkg/cpu"
	"github.com/yoshiomiyamaegones/pkg/input"
	"github.com/yoshiomiyamaegones/pkg/memory"
	"github.com/yoshiomiyamaegones/pkg/ppu"
)

// AudioSink receives queued audio samples and reports the sample rate the
// host wants them produced at.
type AudioSink interface {
	QueueAudio(samples []float32) error
	SampleRate() int
}

// NES wires the CPU, PPU, APU, memory bus and an inserted cartridge together
// and drives them all from a single master clock.
type NES struct {
	CPU       *cpu.CPU
	PPU       *ppu.PPU
	APU       *apu.APU
	Memory    *memory.Memory
	Cartridge *cartridge.Cartridge
	Input     *input.Controller

	AudioSink AudioSink

	Cycles uint64
	Frame  uint64
}

// NewNES creates a new NES instance with the Dummy (no-cartridge) mapper
// installed until LoadCartridge is called.
func NewNES() *NES {
	nes := &NES{}

	nes.Memory = memory.New()
	nes.CPU = cpu.New(nes.Memory)
	nes.PPU = ppu.New(nes.Memory)
	nes.APU = apu.New()
	nes.Input = input.New()
	nes.Cartridge = cartridge.NewEmpty()

	nes.Memory.SetPPU(nes.PPU)
	nes.Memory.SetAPU(nes.APU)
	nes.Memory.SetInput(nes.Input)
	nes.Memory.SetCartridge(nes.Cartridge)
	nes.PPU.SetCartridge(nes.Cartridge)

	return nes
}

// LoadCartridge inserts a cartridge, replacing the Dummy mapper.
func (n *NES) LoadCartridge(cart *cartridge.Cartridge) {
	n.Cartridge = cart
	n.Memory.SetCartridge(cart)
	n.PPU.SetCartridge(cart)
}

// SetAudioSink installs the sink StepFrame drains queued samples into, and
// primes the APU's resampler to the sink's requested rate.
func (n *NES) SetAudioSink(sink AudioSink) {
	n.AudioSink = sink
	if sink != nil {
		n.APU.SetSampleRate(sink.SampleRate())
	}
}

// SetVideoSink installs the sink the PPU pushes pixels and end-of-frame
// notifications to.
func (n *NES) SetVideoSink(sink ppu.VideoSink) {
	n.PPU.SetSink(sink)
}

// Reset resets every component to its post-RESET state.
func (n *NES) Reset() {
	n.CPU.Reset()
	n.PPU.Reset()
	n.APU.Reset()
	n.Cycles = 0
	n.Frame = 0
}

// Step advances the master clock by one CPU instruction's worth of work.
// If a $4014 write is pending, the OAM DMA transfer runs to completion
// first (513 or 514 CPU cycles, depending on the CPU's cycle parity at the
// moment of the request), with the PPU and APU ticked alongside it exactly
// as they are for ordinary CPU cycles. Then one CPU instruction executes,
// and the PPU is ticked 3 times and the APU once per CPU cycle it took.
//
// Returns ErrMissingCartridge if no cartridge is inserted, or an
// *InvalidOpcodeError if the CPU decoded a byte with no opcode table entry.
func (n *NES) Step() error {
	if n.Cartridge == nil {
		return coreerr.ErrMissingCartridge
	}

	if page, ok := n.Memory.TakeOAMDMA(); ok {
		cpuCycleIsOdd := n.Cycles%2 == 1
		dmaCycles := n.Memory.RunOAMDMA(page, cpuCycleIsOdd)
		n.tickPPUAndAPU(dmaCycles)
		n.Cycles += uint64(dmaCycles)
	}

	cpuCycles := n.CPU.Step()
	n.tickPPUAndAPU(cpuCycles)
	n.Cycles += uint64(cpuCycles)

	if n.CPU.Invalid {
		return &coreerr.InvalidOpcodeError{PC: n.CPU.InvalidPC, Opcode: n.CPU.InvalidOpcode}
	}

	return nil
}

// tickPPUAndAPU advances the PPU 3x and the APU 1x per CPU cycle, wiring
// NMI (PPU VBlank), IRQ (APU frame counter, level-triggered) and mapper IRQ
// into the CPU's interrupt latches.
func (n *NES) tickPPUAndAPU(cpuCycles int) {
	for i := 0; i < cpuCycles*3; i++ {
		n.PPU.Step()

		if n.PPU.NMIRequested {
			n.CPU.TriggerNMI()
			n.PPU.NMIRequested = false
		}
	}

	for i := 0; i < cpuCycles; i++ {
		n.APU.Step()
	}

	if n.APU.FrameIRQ {
		n.CPU.TriggerIRQ()
	} else {
		n.CPU.ClearIRQ()
	}

	if n.PPU.IsMapperIRQPending() {
		n.CPU.TriggerIRQ()
		n.PPU.ClearMapperIRQ()
	}
}

// StepFrame runs the master clock until the PPU signals end of frame (or
// the CPU faults), then drains any samples the APU produced into the
// installed audio sink.
func (n *NES) StepFrame() error {
	for !n.PPU.FrameComplete {
		if err := n.Step(); err != nil {
			return err
		}
	}

	n.PPU.FrameComplete = false
	n.Frame = n.PPU.Frame

	if n.AudioSink != nil && len(n.APU.Output) > 0 {
		if err := n.AudioSink.QueueAudio(n.APU.Output); err != nil {
			return fmt.Errorf("%w: %v", coreerr.ErrAudioSink, err)
		}
		n.APU.Output = n.APU.Output[:0]
	}

	return nil
}

// snapshot bundles each component's opaque sub-snapshot plus the master
// clock counters. It is itself JSON-encoded to produce the single opaque
// blob SaveState/LoadState hand to the host.
type snapshot struct {
	CPU       []byte
	PPU       []byte
	APU       []byte
	Memory    []byte
	Cartridge []byte
	Cycles    uint64
	Frame     uint64
}

// SaveState returns an opaque snapshot of the entire machine: CPU, PPU,
// APU, CPU RAM and the inserted cartridge's RAM/mapper registers. The
// layout is private to this package and not standardized across versions;
// callers should only ever pass the bytes back to LoadState.
func (n *NES) SaveState() ([]byte, error) {
	cpuState, err := n.CPU.SaveState()
	if err != nil {
		return nil, fmt.Errorf("saving CPU state: %w", err)
	}
	ppuState, err := n.PPU.SaveState()
	if err != nil {
		return nil, fmt.Errorf("saving PPU state: %w", err)
	}
	apuState, err := n.APU.SaveState()
	if err != nil {
		return nil, fmt.Errorf("saving APU state: %w", err)
	}
	memState, err := n.Memory.SaveState()
	if err != nil {
		return nil, fmt.Errorf("saving memory state: %w", err)
	}

	var cartState []byte
	if n.Cartridge != nil {
		cartState, err = n.Cartridge.SaveState()
		if err != nil {
			return nil, fmt.Errorf("saving cartridge state: %w", err)
		}
	}

	snap := snapshot{
		CPU:       cpuState,
		PPU:       ppuState,
		APU:       apuState,
		Memory:    memState,
		Cartridge: cartState,
		Cycles:    n.Cycles,
		Frame:     n.Frame,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadState restores the machine from a snapshot produced by SaveState. The
// same cartridge must already be inserted; ROM contents are not part of the
// snapshot.
func (n *NES) LoadState(data []byte) error {
	var snap snapshot
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	if err := n.CPU.LoadState(snap.CPU); err != nil {
		return fmt.Errorf("restoring CPU state: %w", err)
	}
	if err := n.PPU.LoadState(snap.PPU); err != nil {
		return fmt.Errorf("restoring PPU state: %w", err)
	}
	if err := n.APU.LoadState(snap.APU); err != nil {
		return fmt.Errorf("restoring APU state: %w", err)
	}
	if err := n.Memory.LoadState(snap.Memory); err != nil {
		return fmt.Errorf("restoring memory state: %w", err)
	}
	if n.Cartridge != nil && len(snap.Cartridge) > 0 {
		if err := n.Cartridge.LoadState(snap.Cartridge); err != nil {
			return fmt.Errorf("restoring cartridge state: %w", err)
		}
	}

	n.Cycles = snap.Cycles
	n.Frame = snap.Frame

	return nil
}

// PatternTableSnapshot renders one of the two 128x128 pattern tables (0 =
// $0000-$0FFF, 1 = $1000-$1FFF) as a grid of 16x16 8x8 tiles, using a flat
// grayscale ramp over each tile's 2-bit pixel value rather than any
// in-game palette. Intended for debug viewers, not in-game rendering.
func (n *NES) PatternTableSnapshot(table int) [128 * 128]uint32 {
	return n.PPU.PatternTableSnapshot(table)
}

// NametableSnapshot returns the 32x30 tile-index grid for nametable 0-3, as
// stored in VRAM (post-mirroring for whichever physical bank backs it).
func (n *NES) NametableSnapshot(which int) [32 * 30]uint8 {
	return n.PPU.NametableSnapshot(which)
}

// PaletteSnapshot returns background/sprite palette contents and the
// current emphasis bits, for debug viewers.
func (n *NES) PaletteSnapshot() map[string]interface{} {
	return n.PPU.PaletteManager.GetPaletteDebugInfo()
}

// GetInput returns the input controller
func (n *NES) GetInput() *input.Controller {
	return n.Input
}

// GetFrame returns the current frame number
func (n *NES) GetFrame() uint64 {
	return n.Frame
}

// GetFramebuffer returns the current framebuffer as RGBA bytes. Kept for
// hosts that poll a snapshot rather than install a VideoSink.
func (n *NES) GetFramebuffer() []uint8 {
	return n.PPU.GetFramebuffer()
}

// GetFramebufferRaw returns the raw framebuffer as 32-bit ARGB integers.
func (n *NES) GetFramebufferRaw() []uint32 {
	return n.PPU.FrameBuffer[:]
}

// GetDisplayFramebufferRaw returns the framebuffer considering persistent
// rendering (games with intermittent rendering keep their last frame).
func (n *NES) GetDisplayFramebufferRaw() []uint32 {
	return n.PPU.GetDisplayFrameBuffer()
}

// GetDisplayFramebuffer returns the display framebuffer as RGBA bytes.
func (n *NES) GetDisplayFramebuffer() []uint8 {
	frameBuffer := n.PPU.GetDisplayFrameBuffer()

	rgba := make([]uint8, 256*240*4)
	for i, pixel := range frameBuffer {
		r := uint8((pixel >> 16) & 0xFF)
		g := uint8((pixel >> 8) & 0xFF)
		b := uint8(pixel & 0xFF)
		a := uint8((pixel >> 24) & 0xFF)

		rgba[i*4+0] = r
		rgba[i*4+1] = g
		rgba[i*4+2] = b
		rgba[i*4+3] = a
	}

	return rgba
}
