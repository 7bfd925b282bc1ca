// Package coreerr defines the error taxonomy the emulator core surfaces to
// its driver: sentinel errors matched with errors.Is, wrapped with context
// via fmt.Errorf("%w", ...) at the point of failure.
package coreerr

import (
	"errors"
	"fmt"
)

var (
	// ErrIO covers failures reading a cartridge image from its source.
	ErrIO = errors.New("cartridge i/o failure")

	// ErrFormat covers a malformed iNES container: bad magic, truncated
	// PRG/CHR payload.
	ErrFormat = errors.New("invalid cartridge format")

	// ErrUnsupportedMapper is returned when a cartridge names a mapper id
	// outside the supported set (NROM, MMC1, UxROM, AxROM).
	ErrUnsupportedMapper = errors.New("unsupported mapper")

	// ErrInvalidOpcode is returned when the CPU decodes a byte with no
	// entry in the opcode table. Fatal: the orchestrator halts the
	// current run-frame.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrMissingCartridge is returned by master_clock_tick when no
	// cartridge has been inserted.
	ErrMissingCartridge = errors.New("no cartridge inserted")

	// ErrAudioSink is returned when the host audio sink reports a fatal
	// failure from queue_audio.
	ErrAudioSink = errors.New("audio sink failure")
)

// InvalidOpcodeError carries the faulting program counter and byte so the
// driver can report where execution halted.
type InvalidOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode $%02X at PC=$%04X", e.Opcode, e.PC)
}

func (e *InvalidOpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}
