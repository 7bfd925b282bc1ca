package mapper

// Dummy services both address spaces with no cartridge inserted: every read
// returns zero and every write is absorbed silently.
type Dummy struct{}

// NewDummy creates the no-cartridge-inserted mapper.
func NewDummy() *Dummy { return &Dummy{} }

func (d *Dummy) ReadPRG(addr uint16) uint8         { return 0 }
func (d *Dummy) WritePRG(addr uint16, value uint8) {}
func (d *Dummy) ReadCHR(addr uint16) uint8         { return 0 }
func (d *Dummy) WriteCHR(addr uint16, value uint8) {}
func (d *Dummy) Step()                             {}
func (d *Dummy) IsIRQPending() bool                { return false }
func (d *Dummy) ClearIRQ()                         {}
func (d *Dummy) SaveState() ([]byte, error)        { return nil, nil }
func (d *Dummy) LoadState(data []byte) error       { return nil }
