package cpu

// MEMORY_SIZE is the full 16-bit address space, 64 KiB.
const MEMORY_SIZE = 64 * 1024

// Memory is the flat byte-addressable RAM. Address arithmetic wraps modulo
// the address space, so a 16-bit access at 0xFFFF straddles to 0x0000.
type Memory struct {
	bytes [MEMORY_SIZE]uint8
}

// Read8 returns the byte at an address.
func (m *Memory) Read8(address uint16) uint8 {
	return m.bytes[address]
}

// Read16 returns the little-endian word at an address.
func (m *Memory) Read16(address uint16) uint16 {
	low := m.Read8(address)
	high := m.Read8(address + 1)
	return uint16(high)<<8 | uint16(low)
}

// Write8 stores a byte at an address.
func (m *Memory) Write8(address uint16, value uint8) {
	m.bytes[address] = value
}

// Write16 stores a word at an address, low byte first.
func (m *Memory) Write16(address uint16, value uint16) {
	m.Write8(address, uint8(value))
	m.Write8(address+1, uint8(value>>8))
}

// LoadBlock copies an image into memory starting at origin. The image must
// fit without wrapping.
func (m *Memory) LoadBlock(data []uint8, origin uint16) error {
	if int(origin)+len(data) > MEMORY_SIZE {
		return ErrLoadOutOfRange
	}
	copy(m.bytes[origin:], data)
	return nil
}

// Bytes returns a read-only view of the full address space.
func (m *Memory) Bytes() []uint8 {
	return m.bytes[:]
}
