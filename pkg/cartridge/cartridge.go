package cartridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yoshiomiyamaegones/pkg/cartridge/mapper"
	"github.com/yoshiomiyamaegones/pkg/coreerr"
)

// Cartridge represents a NES cartridge
type Cartridge struct {
	// ROM data
	PRGROM []uint8 // Program ROM
	CHRROM []uint8 // Character ROM

	// RAM data
	PRGRAM []uint8 // Program RAM (SRAM)
	CHRRAM []uint8 // Character RAM

	// Header information
	Header iNESHeader

	// Mapper
	Mapper mapper.Mapper

	// Mirroring, as derived from the header. Dynamic mappers (MMC1,
	// AxROM) override this at runtime; see GetMirroring.
	Mirroring MirroringMode
}

// iNESHeader represents the iNES file header
type iNESHeader struct {
	Magic      [4]uint8 // "NES\x1A"
	PRGROMSize uint8    // Size of PRG ROM in 16KB units
	CHRROMSize uint8    // Size of CHR ROM in 8KB units
	Flags6     uint8    // Mapper, mirroring, battery, trainer
	Flags7     uint8    // Mapper, VS/Playchoice, NES 2.0
	Flags8     uint8    // PRG-RAM size (rarely used)
	Flags9     uint8    // TV system (rarely used)
	Flags10    uint8    // TV system, PRG-RAM presence (unofficial)
	Padding    [5]uint8 // Unused padding (should be zero)
}

// MirroringMode is the nametable mirroring mode
type MirroringMode int

const (
	MirroringHorizontal MirroringMode = iota
	MirroringVertical
	MirroringOneScreenLower
	MirroringOneScreenUpper
	MirroringFourScreen
)

func (m MirroringMode) String() string {
	switch m {
	case MirroringHorizontal:
		return "Horizontal"
	case MirroringVertical:
		return "Vertical"
	case MirroringOneScreenLower:
		return "OneScreenLower"
	case MirroringOneScreenUpper:
		return "OneScreenUpper"
	case MirroringFourScreen:
		return "FourScreen"
	default:
		return "Unknown"
	}
}

// LoadFromReader loads a cartridge from an iNES file
func LoadFromReader(reader io.Reader) (*Cartridge, error) {
	cart := &Cartridge{}

	if err := cart.readHeader(reader); err != nil {
		return nil, fmt.Errorf("reading header: %w", coreerr.ErrIO)
	}

	if string(cart.Header.Magic[:]) != "NES\x1A" {
		return nil, fmt.Errorf("bad magic %q: %w", cart.Header.Magic, coreerr.ErrFormat)
	}
	if cart.Header.PRGROMSize == 0 {
		return nil, fmt.Errorf("zero-length PRG ROM: %w", coreerr.ErrFormat)
	}

	// Skip trainer if present
	if cart.Header.Flags6&0x04 != 0 {
		trainer := make([]uint8, 512)
		if _, err := io.ReadFull(reader, trainer); err != nil {
			return nil, fmt.Errorf("reading trainer: %w", coreerr.ErrFormat)
		}
	}

	prgSize := int(cart.Header.PRGROMSize) * 16384
	cart.PRGROM = make([]uint8, prgSize)
	if _, err := io.ReadFull(reader, cart.PRGROM); err != nil {
		return nil, fmt.Errorf("reading PRG ROM: %w", coreerr.ErrFormat)
	}

	chrSize := int(cart.Header.CHRROMSize) * 8192
	if chrSize > 0 {
		cart.CHRROM = make([]uint8, chrSize)
		if _, err := io.ReadFull(reader, cart.CHRROM); err != nil {
			return nil, fmt.Errorf("reading CHR ROM: %w", coreerr.ErrFormat)
		}
	} else {
		cart.CHRRAM = make([]uint8, 8192)
	}

	if cart.Header.Flags6&0x02 != 0 {
		cart.PRGRAM = make([]uint8, 8192)
	}

	switch {
	case cart.Header.Flags6&0x08 != 0:
		cart.Mirroring = MirroringFourScreen
	case cart.Header.Flags6&0x01 != 0:
		cart.Mirroring = MirroringVertical
	default:
		cart.Mirroring = MirroringHorizontal
	}

	mapperNumber := (cart.Header.Flags6 >> 4) | (cart.Header.Flags7 & 0xF0)

	mapperData := &mapper.CartridgeData{
		PRGROM: cart.PRGROM,
		CHRROM: cart.CHRROM,
		PRGRAM: cart.PRGRAM,
		CHRRAM: cart.CHRRAM,
	}

	var err error
	cart.Mapper, err = mapper.NewMapper(mapperNumber, mapperData)
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// NewEmpty returns a cartridge backed by the Dummy mapper, for use before a
// ROM has been inserted.
func NewEmpty() *Cartridge {
	return &Cartridge{Mapper: mapper.NewDummy()}
}

// readHeader reads the iNES header
func (c *Cartridge) readHeader(reader io.Reader) error {
	headerBytes := make([]uint8, 16)
	_, err := io.ReadFull(reader, headerBytes)
	if err != nil {
		return err
	}

	copy(c.Header.Magic[:], headerBytes[0:4])
	c.Header.PRGROMSize = headerBytes[4]
	c.Header.CHRROMSize = headerBytes[5]
	c.Header.Flags6 = headerBytes[6]
	c.Header.Flags7 = headerBytes[7]
	c.Header.Flags8 = headerBytes[8]
	c.Header.Flags9 = headerBytes[9]
	c.Header.Flags10 = headerBytes[10]
	copy(c.Header.Padding[:], headerBytes[11:16])

	return nil
}

// ReadPRG reads from PRG space
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	if c.Mapper != nil {
		return c.Mapper.ReadPRG(addr)
	}
	return 0
}

// WritePRG writes to PRG space
func (c *Cartridge) WritePRG(addr uint16, value uint8) {
	if c.Mapper != nil {
		c.Mapper.WritePRG(addr, value)
	}
}

// ReadCHR reads from CHR space
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	if c.Mapper != nil {
		return c.Mapper.ReadCHR(addr)
	}
	return 0
}

// WriteCHR writes to CHR space
func (c *Cartridge) WriteCHR(addr uint16, value uint8) {
	if c.Mapper != nil {
		c.Mapper.WriteCHR(addr, value)
	}
}

// Step steps the mapper. None of the supported mappers (NROM, MMC1,
// UxROM, AxROM) carry an IRQ source, but the hook stays for symmetry with
// IsIRQPending/ClearIRQ.
func (c *Cartridge) Step() {
	if c.Mapper != nil {
		c.Mapper.Step()
	}
}

// IsIRQPending returns whether mapper IRQ is pending
func (c *Cartridge) IsIRQPending() bool {
	if c.Mapper != nil {
		return c.Mapper.IsIRQPending()
	}
	return false
}

// ClearIRQ clears mapper IRQ
func (c *Cartridge) ClearIRQ() {
	if c.Mapper != nil {
		c.Mapper.ClearIRQ()
	}
}

// GetMirroring returns the current nametable mirroring mode, consulting the
// mapper first since MMC1 and AxROM can change it at runtime. Mappers report
// raw bits in the NES-standard encoding: 0 = one-screen lower, 1 =
// one-screen upper, 2 = vertical, 3 = horizontal.
func (c *Cartridge) GetMirroring() MirroringMode {
	if m, ok := c.Mapper.(interface{ GetMirroringMode() uint8 }); ok {
		switch m.GetMirroringMode() {
		case 0:
			return MirroringOneScreenLower
		case 1:
			return MirroringOneScreenUpper
		case 2:
			return MirroringVertical
		default:
			return MirroringHorizontal
		}
	}

	return c.Mirroring
}

// cartridgeState is the JSON-encodable snapshot of the cartridge's mutable
// RAM contents and mapper registers. PRG/CHR ROM and the header are not
// included since they never change once a ROM is inserted.
type cartridgeState struct {
	PRGRAM     []uint8
	CHRRAM     []uint8
	MapperData []byte
}

// SaveState returns an opaque snapshot of PRG-RAM, CHR-RAM and the mapper's
// bank-select registers, suitable for round-tripping through LoadState.
func (c *Cartridge) SaveState() ([]byte, error) {
	var mapperData []byte
	if c.Mapper != nil {
		data, err := c.Mapper.SaveState()
		if err != nil {
			return nil, fmt.Errorf("saving mapper state: %w", err)
		}
		mapperData = data
	}

	var buf bytes.Buffer
	state := cartridgeState{
		PRGRAM:     c.PRGRAM,
		CHRRAM:     c.CHRRAM,
		MapperData: mapperData,
	}
	if err := json.NewEncoder(&buf).Encode(state); err != nil {
		return nil, fmt.Errorf("encoding cartridge state: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadState restores PRG-RAM, CHR-RAM and the mapper's bank-select
// registers from a snapshot produced by SaveState. The cartridge must
// already have the same ROM inserted; RAM sizes are copied in place so
// mapper-held slice aliases stay valid.
func (c *Cartridge) LoadState(data []byte) error {
	var state cartridgeState
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return fmt.Errorf("decoding cartridge state: %w", err)
	}

	copy(c.PRGRAM, state.PRGRAM)
	copy(c.CHRRAM, state.CHRRAM)

	if c.Mapper != nil && len(state.MapperData) > 0 {
		if err := c.Mapper.LoadState(state.MapperData); err != nil {
			return fmt.Errorf("loading mapper state: %w", err)
		}
	}
	return nil
}
