package cpu

import (
	"github.com/ganeshsjsu/aurora-softcpu/io"
)

// Bus routes byte accesses to the first attached device whose window
// contains the address, falling back to memory. A 16-bit access is two byte
// accesses, low byte first, each routed independently.
type Bus struct {
	memory  *Memory
	devices []io.Device
}

// NewBus wraps a memory. The bus borrows the memory; the caller keeps
// ownership.
func NewBus(memory *Memory) *Bus {
	return &Bus{memory: memory}
}

// AttachDevice appends a device to the routing list. Attachment order is
// dispatch order.
func (b *Bus) AttachDevice(dev io.Device) {
	b.devices = append(b.devices, dev)
}

// Devices returns the attached devices in attachment order.
func (b *Bus) Devices() []io.Device {
	return b.devices
}

func (b *Bus) findDevice(address uint16) io.Device {
	for _, dev := range b.devices {
		if io.Handles(dev, address) {
			return dev
		}
	}
	return nil
}

func (b *Bus) Read8(address uint16) uint8 {
	if dev := b.findDevice(address); dev != nil {
		return dev.Read(io.Offset(dev, address))
	}
	return b.memory.Read8(address)
}

func (b *Bus) Read16(address uint16) uint16 {
	low := b.Read8(address)
	high := b.Read8(address + 1)
	return uint16(high)<<8 | uint16(low)
}

func (b *Bus) Write8(address uint16, value uint8) {
	if dev := b.findDevice(address); dev != nil {
		dev.Write(io.Offset(dev, address), value)
		return
	}
	b.memory.Write8(address, value)
}

func (b *Bus) Write16(address uint16, value uint16) {
	b.Write8(address, uint8(value))
	b.Write8(address+1, uint8(value>>8))
}

// TickDevices advances every attached device by one step, in attachment
// order.
func (b *Bus) TickDevices() {
	for _, dev := range b.devices {
		dev.Tick()
	}
}
