package ppu

import (
	"bytes"
	"encoding/json"
)

// ppuState is the JSON-encodable snapshot of everything the PPU needs to
// resume rendering mid-frame: register file, scroll/address latches, VRAM,
// OAM, both framebuffers and the palette manager.
type ppuState struct {
	PPUCTRL   uint8
	PPUMASK   uint8
	PPUSTATUS uint8
	OAMADDR   uint8
	OAMDATA   uint8
	PPUSCROLL uint8
	PPUADDR   uint8
	PPUDATA   uint8

	V     uint16
	T     uint16
	X     uint8
	XTemp uint8
	W     uint8

	ScrollY uint8

	VRAM                   [0x4000]uint8
	OAM                    [256]uint8
	FrameBuffer            [256 * 240]uint32
	PersistentFrameBuffer  [256 * 240]uint32
	RenderingOccurred      bool
	LastRenderFrame        uint64
	Cycle                  int
	Scanline               int
	Frame                  uint64
	FrameComplete          bool
	NMIRequested           bool
	ReadBuffer             uint8
	PaletteManager         PaletteManager
}

// SaveState returns an opaque snapshot of the PPU's registers, VRAM, OAM,
// framebuffers and palette RAM.
func (p *PPU) SaveState() ([]byte, error) {
	state := ppuState{
		PPUCTRL:               p.PPUCTRL,
		PPUMASK:               p.PPUMASK,
		PPUSTATUS:             p.PPUSTATUS,
		OAMADDR:               p.OAMADDR,
		OAMDATA:               p.OAMDATA,
		PPUSCROLL:             p.PPUSCROLL,
		PPUADDR:               p.PPUADDR,
		PPUDATA:               p.PPUDATA,
		V:                     p.v,
		T:                     p.t,
		X:                     p.x,
		XTemp:                 p.xTemp,
		W:                     p.w,
		ScrollY:               p.ScrollY,
		VRAM:                  p.VRAM,
		OAM:                   p.OAM,
		FrameBuffer:           p.FrameBuffer,
		PersistentFrameBuffer: p.PersistentFrameBuffer,
		RenderingOccurred:     p.renderingOccurred,
		LastRenderFrame:       p.lastRenderFrame,
		Cycle:                 p.Cycle,
		Scanline:              p.Scanline,
		Frame:                 p.Frame,
		FrameComplete:         p.FrameComplete,
		NMIRequested:          p.NMIRequested,
		ReadBuffer:            p.readBuffer,
		PaletteManager:        *p.PaletteManager,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadState restores the PPU from a snapshot produced by SaveState.
func (p *PPU) LoadState(data []byte) error {
	var state ppuState
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}

	p.PPUCTRL = state.PPUCTRL
	p.PPUMASK = state.PPUMASK
	p.PPUSTATUS = state.PPUSTATUS
	p.OAMADDR = state.OAMADDR
	p.OAMDATA = state.OAMDATA
	p.PPUSCROLL = state.PPUSCROLL
	p.PPUADDR = state.PPUADDR
	p.PPUDATA = state.PPUDATA
	p.v = state.V
	p.t = state.T
	p.x = state.X
	p.xTemp = state.XTemp
	p.w = state.W
	p.ScrollY = state.ScrollY
	p.VRAM = state.VRAM
	p.OAM = state.OAM
	p.FrameBuffer = state.FrameBuffer
	p.PersistentFrameBuffer = state.PersistentFrameBuffer
	p.renderingOccurred = state.RenderingOccurred
	p.lastRenderFrame = state.LastRenderFrame
	p.Cycle = state.Cycle
	p.Scanline = state.Scanline
	p.Frame = state.Frame
	p.FrameComplete = state.FrameComplete
	p.NMIRequested = state.NMIRequested
	p.readBuffer = state.ReadBuffer
	if p.PaletteManager == nil {
		p.PaletteManager = NewPaletteManager()
	}
	*p.PaletteManager = state.PaletteManager

	return nil
}
