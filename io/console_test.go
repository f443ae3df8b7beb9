package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleWindow(t *testing.T) {
	assert := assert.New(t)

	console := NewConsole()
	assert.Equal("console", console.Name())
	assert.Equal(uint16(0xFF00), console.Base())
	assert.Equal(uint16(0x0010), console.Size())
	assert.True(Handles(console, 0xFF00))
	assert.True(Handles(console, 0xFF0F))
	assert.False(Handles(console, 0xFF10))
	assert.Equal(uint16(0x0F), Offset(console, 0xFF0F))
}

func TestConsoleWrite(t *testing.T) {
	assert := assert.New(t)

	var sink bytes.Buffer
	console := NewConsole()
	console.Output = &sink

	console.Write(CONSOLE_DATA, 'h')
	console.Write(CONSOLE_DATA, 'i')
	assert.Equal("hi", sink.String())
	assert.Equal([]byte("hi"), console.Buffer)

	// Status writes are ignored; data port reads as zero.
	console.Write(CONSOLE_STATUS, 0xFF)
	assert.Equal(uint8(0), console.Read(CONSOLE_DATA))
	assert.Equal(uint8(0x01), console.Read(CONSOLE_STATUS))

	console.Ready = false
	assert.Equal(uint8(0x00), console.Read(CONSOLE_STATUS))
}

func TestConsoleWithoutSink(t *testing.T) {
	assert := assert.New(t)

	console := NewConsole()
	console.Write(CONSOLE_DATA, 0x41)
	assert.Equal([]byte{0x41}, console.Buffer)
}
