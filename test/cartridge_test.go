package test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoshiomiyamaegones/pkg/cartridge"
)

// TestCartridgeLoader tests the cartridge loading functionality
func TestCartridgeLoader(t *testing.T) {
	rom := createMinimalROM()

	reader := bytes.NewReader(rom)
	cart, err := cartridge.LoadFromReader(reader)
	require.NoError(t, err, "failed to load test ROM")

	assert.EqualValues(t, 1, cart.Header.PRGROMSize)
	assert.EqualValues(t, 1, cart.Header.CHRROMSize)
	assert.Len(t, cart.PRGROM, 16384)
	assert.Len(t, cart.CHRROM, 8192)
	require.NotNil(t, cart.Mapper)

	assert.Equal(t, uint8(0x42), cart.ReadPRG(0x8000))
	assert.Equal(t, uint8(0x55), cart.ReadCHR(0x0000))
}

// TestInvalidROM tests loading invalid ROM data
func TestInvalidROM(t *testing.T) {
	invalidROM := []byte{0x4E, 0x45, 0x53, 0x00} // "NES\x00" instead of "NES\x1A"
	_, err := cartridge.LoadFromReader(bytes.NewReader(invalidROM))
	assert.Error(t, err, "expected error for invalid magic number")

	truncatedROM := []byte{0x4E, 0x45, 0x53, 0x1A, 0x01} // Too short
	_, err = cartridge.LoadFromReader(bytes.NewReader(truncatedROM))
	assert.Error(t, err, "expected error for truncated ROM")
}

// createMinimalROM creates a minimal valid iNES ROM for testing
func createMinimalROM() []byte {
	rom := make([]byte, 0)

	header := []byte{
		0x4E, 0x45, 0x53, 0x1A, // "NES\x1A"
		0x01,                                           // 1 x 16KB PRG ROM
		0x01,                                           // 1 x 8KB CHR ROM
		0x00,                                           // Flags 6: Horizontal mirroring, Mapper 0
		0x00,                                           // Flags 7: Mapper 0
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Padding
	}
	rom = append(rom, header...)

	prgROM := make([]byte, 16384)
	prgROM[0] = 0x42
	prgROM[0x3FFC] = 0x00 // Reset vector low
	prgROM[0x3FFD] = 0x80 // Reset vector high
	rom = append(rom, prgROM...)

	chrROM := make([]byte, 8192)
	chrROM[0] = 0x55
	rom = append(rom, chrROM...)

	return rom
}

// TestMapperSelection tests mapper selection logic against the supported set
// (NROM/MMC1/UxROM/AxROM); everything else must be rejected.
func TestMapperSelection(t *testing.T) {
	testCases := []struct {
		flags6     uint8
		flags7     uint8
		mapperNum  uint8
		shouldFail bool
	}{
		{0x00, 0x00, 0, false}, // NROM
		{0x10, 0x00, 1, false}, // MMC1
		{0x20, 0x00, 2, false}, // UxROM
		{0x30, 0x00, 3, true},  // unsupported
		{0x40, 0x00, 4, true},  // unsupported (MMC3)
		{0x50, 0x00, 5, true},  // unsupported
		{0x70, 0x00, 7, false}, // AxROM
	}

	for _, tc := range testCases {
		rom := createMinimalROM()
		rom[6] = tc.flags6
		rom[7] = tc.flags7

		cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))

		if tc.shouldFail {
			assert.Errorf(t, err, "expected error for unsupported mapper %d", tc.mapperNum)
			continue
		}
		require.NoErrorf(t, err, "unexpected error for mapper %d", tc.mapperNum)
		assert.NotNilf(t, cart, "cart should not be nil for mapper %d", tc.mapperNum)
	}
}

// TestMirroringModes tests mirroring mode detection
func TestMirroringModes(t *testing.T) {
	testCases := []struct {
		flags6    uint8
		mirroring cartridge.MirroringMode
	}{
		{0x00, cartridge.MirroringHorizontal}, // Bit 0 clear
		{0x01, cartridge.MirroringVertical},   // Bit 0 set
		{0x08, cartridge.MirroringFourScreen}, // Bit 3 set (four-screen)
	}

	for _, tc := range testCases {
		rom := createMinimalROM()
		rom[6] = tc.flags6

		cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
		require.NoError(t, err)

		assert.Equal(t, tc.mirroring, cart.Mirroring)
	}
}
