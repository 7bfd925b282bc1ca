package memory

import (
	"bytes"
	"encoding/json"
)

// memoryState is the JSON-encodable snapshot of CPU RAM and the pending
// OAM-DMA latch. PPU/APU/Cartridge/Input are owned and snapshotted by their
// respective packages, not here.
type memoryState struct {
	RAM              [2048]uint8
	HighMem          [0xA000]uint8
	OAMDMARequested  bool
	OAMDMAPage       uint8
}

// SaveState returns an opaque snapshot of CPU RAM and the OAM-DMA latch.
func (m *Memory) SaveState() ([]byte, error) {
	state := memoryState{
		RAM:             m.RAM,
		HighMem:         m.HighMem,
		OAMDMARequested: m.OAMDMARequested,
		OAMDMAPage:      m.OAMDMAPage,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadState restores CPU RAM and the OAM-DMA latch from a snapshot produced
// by SaveState.
func (m *Memory) LoadState(data []byte) error {
	var state memoryState
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}

	m.RAM = state.RAM
	m.HighMem = state.HighMem
	m.OAMDMARequested = state.OAMDMARequested
	m.OAMDMAPage = state.OAMDMAPage

	return nil
}
