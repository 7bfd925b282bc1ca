package mapper

import (
	"fmt"

	"github.com/yoshiomiyamaegones/pkg/coreerr"
)

// Mapper interface for different mappers
type Mapper interface {
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, value uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
	Step()
	IsIRQPending() bool
	ClearIRQ()

	// SaveState returns the mapper's bank-select registers as an opaque,
	// JSON-encoded blob. ROM/RAM contents are not included: the cartridge
	// snapshots those itself since they are shared with CartridgeData.
	SaveState() ([]byte, error)
	LoadState(data []byte) error
}

// CartridgeData contains cartridge data for mappers
type CartridgeData struct {
	PRGROM []uint8
	CHRROM []uint8
	PRGRAM []uint8
	CHRRAM []uint8
}

// NewMapper creates a new mapper instance for one of the supported ids
// (NROM, MMC1, UxROM, AxROM). Any other id is an unsupported mapper.
func NewMapper(mapperNumber uint8, data *CartridgeData) (Mapper, error) {
	switch mapperNumber {
	case 0:
		return NewMapper0(data), nil
	case 1:
		return NewMapper1(data), nil
	case 2:
		return NewMapper2(data), nil
	case 7:
		return NewMapper7(data), nil
	default:
		return nil, fmt.Errorf("mapper %d: %w", mapperNumber, coreerr.ErrUnsupportedMapper)
	}
}
