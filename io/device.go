// Package io provides the memory-mapped device contract for the Aurora-16
// bus and the three stock devices: the console, the timer, and the LED panel.
// Devices claim a half-open address window [Base, Base+Size) and see bus
// accesses translated to window-local offsets.
package io

// Device is a peripheral mapped into the 16-bit address space. Devices own
// their internal state; the bus owns only the ordered attachment list.
type Device interface {
	// Name identifies the device in traces and dumps.
	Name() string
	// Base returns the first address of the device window.
	Base() uint16
	// Size returns the window length in bytes.
	Size() uint16
	// Read returns the byte at a window-local offset.
	Read(offset uint16) uint8
	// Write stores a byte at a window-local offset.
	Write(offset uint16, value uint8)
	// Tick advances the device by one CPU step.
	Tick()
}

// Handles reports whether a device window contains the given bus address.
func Handles(dev Device, address uint16) bool {
	return address >= dev.Base() && address-dev.Base() < dev.Size()
}

// Offset translates a bus address into a window-local offset.
func Offset(dev Device, address uint16) uint16 {
	return address - dev.Base()
}
