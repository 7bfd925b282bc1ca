package ppu

// PatternTableSnapshot renders pattern table 0 ($0000-$0FFF) or 1
// ($1000-$1FFF) as a 128x128 grid of 16x16 8x8 tiles. Each tile's 2-bit
// pixel value is mapped onto a flat grayscale ramp (0, 85, 170, 255)
// rather than any in-game palette, since a pattern table has no palette
// assignment of its own until a nametable/attribute entry selects one.
func (p *PPU) PatternTableSnapshot(table int) [128 * 128]uint32 {
	var out [128 * 128]uint32
	base := uint16(table&1) * 0x1000

	grayscale := [4]uint32{0xFF000000, 0xFF555555, 0xFFAAAAAA, 0xFFFFFFFF}

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			tileIndex := uint16(tileY*16 + tileX)
			tileAddr := base + tileIndex*16

			for row := 0; row < 8; row++ {
				lo := p.readVRAM(tileAddr + uint16(row))
				hi := p.readVRAM(tileAddr + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					bit := 7 - col
					pixel := ((lo >> bit) & 1) | (((hi >> bit) & 1) << 1)

					x := tileX*8 + col
					y := tileY*8 + row
					out[y*128+x] = grayscale[pixel]
				}
			}
		}
	}

	return out
}

// NametableSnapshot returns the 32x30 tile-index grid for nametable 0-3
// ($2000/$2400/$2800/$2C00), after mirroring resolves which physical VRAM
// bank backs it.
func (p *PPU) NametableSnapshot(which int) [32 * 30]uint8 {
	var out [32 * 30]uint8
	base := uint16(0x2000 + (which&3)*0x400)

	for i := range out {
		out[i] = p.readNameTable(base + uint16(i))
	}

	return out
}
