package cpu

import (
	"bytes"
	"encoding/json"
)

// cpuState is the JSON-encodable snapshot of the 6502's registers, cycle
// count and interrupt latches.
type cpuState struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8

	Cycles int

	ResetPending bool
	NMI          bool
	IRQ          bool

	Invalid       bool
	InvalidOpcode uint8
	InvalidPC     uint16
}

// SaveState returns an opaque snapshot of the CPU's registers and
// interrupt latches.
func (c *CPU) SaveState() ([]byte, error) {
	state := cpuState{
		A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P,
		Cycles:        c.Cycles,
		ResetPending:  c.ResetPending,
		NMI:           c.NMI,
		IRQ:           c.IRQ,
		Invalid:       c.Invalid,
		InvalidOpcode: c.InvalidOpcode,
		InvalidPC:     c.InvalidPC,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadState restores the CPU from a snapshot produced by SaveState.
func (c *CPU) LoadState(data []byte) error {
	var state cpuState
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}

	c.A, c.X, c.Y, c.SP, c.PC, c.P = state.A, state.X, state.Y, state.SP, state.PC, state.P
	c.Cycles = state.Cycles
	c.ResetPending = state.ResetPending
	c.NMI = state.NMI
	c.IRQ = state.IRQ
	c.Invalid = state.Invalid
	c.InvalidOpcode = state.InvalidOpcode
	c.InvalidPC = state.InvalidPC

	return nil
}
