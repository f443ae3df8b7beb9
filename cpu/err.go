package cpu

import (
	"errors"

	"github.com/ganeshsjsu/aurora-softcpu/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrLoadOutOfRange = errors.New(f("image does not fit in memory"))

	// Assembler errors
	ErrStringLiteral    = errors.New(f("invalid string literal"))
	ErrUnknownDirective = errors.New(f("unknown directive"))
	ErrUnknownMnemonic  = errors.New(f("unknown mnemonic"))
	ErrOrgBackward      = errors.New(f(".org may not move backward"))
	ErrOrgBeforeOrigin  = errors.New(f(".org before origin not supported"))
	ErrExpression       = errors.New(f("expression did not yield an integer"))
)

// ErrUnknownOpcode is raised by the control unit when execution reaches a
// byte that does not decode to any instruction.
type ErrUnknownOpcode struct {
	Opcode  Opcode
	Address uint16
}

func (e *ErrUnknownOpcode) Error() string {
	return f("unknown opcode %02X at %04X", uint8(e.Opcode), e.Address)
}
