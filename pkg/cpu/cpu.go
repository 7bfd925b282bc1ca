package cpu

import (
	"github.com/yoshiomiyamaegones/pkg/logger"
	"github.com/yoshiomiyamaegones/pkg/memory"
)

// CPU represents the 6502 processor
type CPU struct {
	// Registers
	A  uint8  // Accumulator
	X  uint8  // X register
	Y  uint8  // Y register
	SP uint8  // Stack pointer
	PC uint16 // Program counter
	P  uint8  // Status register

	// Memory interface
	Memory *memory.Memory

	// Cycle counting
	Cycles int

	// Interrupt latches. RESET takes priority over NMI, which takes
	// priority over IRQ; all three are only examined at instruction
	// boundaries, never mid-instruction.
	ResetPending bool
	NMI          bool
	IRQ          bool

	// Invalid is set when executeInstruction decodes a byte with no entry
	// in the opcode table. The orchestrator treats this as fatal.
	Invalid       bool
	InvalidOpcode uint8
	InvalidPC     uint16
}

// Status flag bits
const (
	FlagCarry     = 1 << 0 // C
	FlagZero      = 1 << 1 // Z
	FlagInterrupt = 1 << 2 // I
	FlagDecimal   = 1 << 3 // D
	FlagBreak     = 1 << 4 // B
	FlagUnused    = 1 << 5 // -
	FlagOverflow  = 1 << 6 // V
	FlagNegative  = 1 << 7 // N
)

// New creates a new CPU instance with its RESET latch armed; the reset
// vector is not read until the first Step.
func New(mem *memory.Memory) *CPU {
	return &CPU{
		Memory:       mem,
		SP:           0xFD,
		P:            FlagUnused | FlagInterrupt,
		ResetPending: true,
	}
}

// Reset arms the RESET latch; the actual register/PC reload happens at the
// next instruction boundary in Step, consistent with NMI/IRQ latch timing.
func (c *CPU) Reset() {
	c.ResetPending = true
}

func (c *CPU) doReset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.PC = c.read16(0xFFFC)
	c.Cycles = 0
	c.ResetPending = false
	c.Invalid = false
}

// Step services pending latches in RESET > NMI > IRQ priority, then
// executes one instruction and returns the cycles taken.
func (c *CPU) Step() int {
	if c.ResetPending {
		c.doReset()
		return 7
	}

	if c.NMI {
		c.NMI = false
		c.handleNMI()
		return 7
	}

	if c.IRQ && !c.getFlag(FlagInterrupt) {
		c.handleIRQ()
		return 7
	}

	opcode := c.read(c.PC)
	c.PC++

	cycles := c.executeInstruction(opcode)
	c.Cycles += cycles

	return cycles
}

// handleNMI handles Non-Maskable Interrupt
func (c *CPU) handleNMI() {
	logger.LogCPU("NMI triggered: PC=$%04X, pushing to stack", c.PC)
	c.push16(c.PC)
	c.push(c.P &^ FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFA)
}

// handleIRQ handles Interrupt Request
func (c *CPU) handleIRQ() {
	c.push16(c.PC)
	c.push(c.P &^ FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFE)
}

// Flag operations
func (c *CPU) getFlag(flag uint8) bool {
	return c.P&flag != 0
}

func (c *CPU) setFlag(flag uint8, value bool) {
	if value {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// Memory operations
func (c *CPU) read(addr uint16) uint8 {
	return c.Memory.Read(addr)
}

func (c *CPU) write(addr uint16, value uint8) {
	c.Memory.Write(addr, value)
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// Stack operations
func (c *CPU) push(value uint8) {
	c.write(0x100|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(0x100 | uint16(c.SP))
}

func (c *CPU) push16(value uint16) {
	c.push(uint8(value >> 8))
	c.push(uint8(value & 0xFF))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// TriggerNMI latches a Non-Maskable Interrupt, serviced at the next
// instruction boundary.
func (c *CPU) TriggerNMI() {
	c.NMI = true
}

// TriggerIRQ asserts the level-triggered IRQ line. The orchestrator is
// responsible for calling this every tick the source (APU frame IRQ,
// mapper IRQ) remains asserted, and for not calling it once the source
// deasserts.
func (c *CPU) TriggerIRQ() {
	c.IRQ = true
}

// ClearIRQ deasserts the level-triggered IRQ line.
func (c *CPU) ClearIRQ() {
	c.IRQ = false
}

// GetFlag returns the state of a flag (public method for testing)
func (c *CPU) GetFlag(flag uint8) bool {
	return c.getFlag(flag)
}
