package mapper

import (
	"bytes"
	"encoding/json"
)

// Mapper7 (AxROM) - 32KB PRG bank switching, one-screen mirroring select
type Mapper7 struct {
	cartridge *CartridgeData

	prgBank   uint8 // 0-7, selects a 32KB PRG bank
	mirroring uint8 // 0 = one-screen lower, 1 = one-screen upper
}

// NewMapper7 creates a new Mapper7 instance
func NewMapper7(data *CartridgeData) *Mapper7 {
	return &Mapper7{cartridge: data}
}

// ReadPRG reads from the selected 32KB PRG bank
func (m *Mapper7) ReadPRG(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	offset := uint32(m.prgBank)*0x8000 + uint32(addr-0x8000)
	if int(offset) < len(m.cartridge.PRGROM) {
		return m.cartridge.PRGROM[offset]
	}
	return 0
}

// WritePRG selects the PRG bank and mirroring
func (m *Mapper7) WritePRG(addr uint16, value uint8) {
	if addr < 0x8000 {
		return
	}
	m.prgBank = value & 0x07
	m.mirroring = (value >> 4) & 0x01
}

// ReadCHR reads from CHR RAM (AxROM carries no CHR ROM)
func (m *Mapper7) ReadCHR(addr uint16) uint8 {
	if len(m.cartridge.CHRRAM) > 0 && int(addr) < len(m.cartridge.CHRRAM) {
		return m.cartridge.CHRRAM[addr]
	}
	return 0
}

// WriteCHR writes to CHR RAM
func (m *Mapper7) WriteCHR(addr uint16, value uint8) {
	if len(m.cartridge.CHRRAM) > 0 && int(addr) < len(m.cartridge.CHRRAM) {
		m.cartridge.CHRRAM[addr] = value
	}
}

// Step does nothing for AxROM (no IRQ source)
func (m *Mapper7) Step() {}

// IsIRQPending returns false for Mapper7 (no IRQ support)
func (m *Mapper7) IsIRQPending() bool { return false }

// ClearIRQ does nothing for Mapper7 (no IRQ support)
func (m *Mapper7) ClearIRQ() {}

// GetMirroringMode returns the selected one-screen bank (0 = lower, 1 = upper)
func (m *Mapper7) GetMirroringMode() uint8 {
	return m.mirroring
}

// mapper7State is the JSON-encodable snapshot of the AxROM bank registers.
type mapper7State struct {
	PRGBank   uint8
	Mirroring uint8
}

// SaveState returns the selected PRG bank and one-screen mirroring bank.
func (m *Mapper7) SaveState() ([]byte, error) {
	var buf bytes.Buffer
	state := mapper7State{PRGBank: m.prgBank, Mirroring: m.mirroring}
	if err := json.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadState restores the selected PRG bank and one-screen mirroring bank.
func (m *Mapper7) LoadState(data []byte) error {
	var state mapper7State
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}
	m.prgBank = state.PRGBank
	m.mirroring = state.Mirroring
	return nil
}
