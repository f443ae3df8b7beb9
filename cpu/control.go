package cpu

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Well-known port ids.
const (
	PORT_CONSOLE_DATA   = 0
	PORT_CONSOLE_STATUS = 1
	PORT_TIMER_CONTROL  = 2
	PORT_TIMER_COUNTER  = 3
	PORT_LEDS           = 4
)

// PortAddress maps a port id to its bus address. Unlisted ids map into the
// I/O region at 0xFF00 + id.
func PortAddress(port uint16) uint16 {
	switch port {
	case PORT_CONSOLE_DATA:
		return 0xFF00
	case PORT_CONSOLE_STATUS:
		return 0xFF01
	case PORT_TIMER_CONTROL:
		return 0xFF12
	case PORT_TIMER_COUNTER:
		return 0xFF10
	case PORT_LEDS:
		return 0xFF20
	}
	return 0xFF00 + port
}

// ControlUnit fetches, decodes and executes instructions against a bus and a
// register file.
type ControlUnit struct {
	bus       *Bus
	registers *Registers
	alu       Alu

	// SysOut receives the observable output of SYS service codes. Defaults
	// to stdout.
	SysOut io.Writer
}

// NewControlUnit wires a control unit to its bus and register file.
func NewControlUnit(bus *Bus, registers *Registers) *ControlUnit {
	return &ControlUnit{
		bus:       bus,
		registers: registers,
		SysOut:    os.Stdout,
	}
}

// Reset restores the register file to its power-on state.
func (cu *ControlUnit) Reset() {
	cu.registers.Reset()
}

// Step fetches and executes a single instruction. It returns false when
// execution must stop: HALT, or a fault on an unknown opcode.
func (cu *ControlUnit) Step(trace bool) bool {
	inst := cu.fetch()
	if trace {
		log.Printf("%04X %-5s", inst.Address, OpcodeName(inst.Opcode))
	}
	return cu.execute(&inst)
}

// fetch reads the 4-byte header and any extra operand words, advancing PC
// past the full instruction.
func (cu *ControlUnit) fetch() (inst Instruction) {
	inst.Address = cu.registers.Pc
	pc := cu.registers.Pc

	opcode := cu.bus.Read8(pc)
	rawA := cu.bus.Read8(pc + 1)
	rawB := cu.bus.Read8(pc + 2)
	inst.Modifier = cu.bus.Read8(pc + 3)
	pc += HeaderSize

	inst.Opcode = Opcode(opcode)
	inst.OperandA = cu.resolve(DecodeOperand(rawA), &pc)
	inst.OperandB = cu.resolve(DecodeOperand(rawB), &pc)

	inst.SizeBytes = pc - inst.Address
	cu.registers.Pc = pc
	return
}

// resolve expands an operand descriptor, consuming an extra word from the
// instruction stream when the type carries one.
func (cu *ControlUnit) resolve(desc OperandDescriptor, pc *uint16) (operand Operand) {
	operand.Type = desc.Type
	switch desc.Type {
	case OPERAND_REG, OPERAND_REG_IND:
		operand.Reg = desc.Payload & 0x07
	case OPERAND_REG_INDEX:
		operand.Reg = desc.Payload & 0x07
		operand.Offset = int16(cu.bus.Read16(*pc))
		operand.HasOffset = true
		*pc += 2
	case OPERAND_IMM, OPERAND_ABS:
		operand.Value = cu.bus.Read16(*pc)
		*pc += 2
	case OPERAND_PORT:
		operand.Value = uint16(desc.Payload)
	}
	return
}

// readOperand returns the value an operand denotes.
func (cu *ControlUnit) readOperand(operand *Operand) uint16 {
	switch operand.Type {
	case OPERAND_REG:
		return cu.registers.Read(operand.Reg)
	case OPERAND_IMM:
		return operand.Value
	case OPERAND_ABS:
		return cu.bus.Read16(operand.Value)
	case OPERAND_REG_IND:
		return cu.bus.Read16(cu.registers.Read(operand.Reg))
	case OPERAND_REG_INDEX:
		address := cu.registers.Read(operand.Reg) + uint16(operand.Offset)
		return cu.bus.Read16(address)
	}
	return operand.Value
}

// writeOperand stores a value to the target an operand denotes. Immediates
// and ports are not write targets; such writes are dropped.
func (cu *ControlUnit) writeOperand(operand *Operand, value uint16) {
	switch operand.Type {
	case OPERAND_REG:
		cu.registers.Write(operand.Reg, value)
	case OPERAND_ABS:
		cu.bus.Write16(operand.Value, value)
	case OPERAND_REG_IND:
		cu.bus.Write16(cu.registers.Read(operand.Reg), value)
	case OPERAND_REG_INDEX:
		address := cu.registers.Read(operand.Reg) + uint16(operand.Offset)
		cu.bus.Write16(address, value)
	}
}

// push decrements SP by 2, then stores at the new SP.
func (cu *ControlUnit) push(value uint16) {
	newSp := cu.registers.Sp - 2
	cu.bus.Write16(newSp, value)
	cu.registers.WriteSp(newSp)
}

// pop reads at SP, then increments SP by 2.
func (cu *ControlUnit) pop() uint16 {
	value := cu.bus.Read16(cu.registers.Sp)
	cu.registers.WriteSp(cu.registers.Sp + 2)
	return value
}

func (cu *ControlUnit) jumpIf(condition bool, operand *Operand) {
	if condition {
		cu.registers.Pc = cu.readOperand(operand)
	}
}

func (cu *ControlUnit) binaryOp(inst *Instruction, op func(lhs, rhs uint16) AluResult) {
	lhs := cu.readOperand(&inst.OperandA)
	rhs := cu.readOperand(&inst.OperandB)
	result := op(lhs, rhs)
	cu.writeOperand(&inst.OperandA, result.Value)
	cu.registers.Flags = result.Flags
}

func (cu *ControlUnit) execute(inst *Instruction) bool {
	regs := cu.registers
	switch inst.Opcode {
	case OP_NOP:
	case OP_HALT:
		return false
	case OP_LDI:
		value := cu.readOperand(&inst.OperandB)
		cu.writeOperand(&inst.OperandA, value)
		regs.Flags = logicFlags(value)
	case OP_MOV, OP_LOAD:
		cu.writeOperand(&inst.OperandA, cu.readOperand(&inst.OperandB))
	case OP_STORE:
		cu.writeOperand(&inst.OperandB, cu.readOperand(&inst.OperandA))
	case OP_ADD, OP_ADDI:
		cu.binaryOp(inst, func(lhs, rhs uint16) AluResult { return cu.alu.Add(lhs, rhs, false) })
	case OP_SUB, OP_SUBI:
		cu.binaryOp(inst, cu.alu.Sub)
	case OP_MUL:
		cu.binaryOp(inst, cu.alu.Mul)
	case OP_DIV:
		cu.binaryOp(inst, cu.alu.Div)
	case OP_AND:
		cu.binaryOp(inst, cu.alu.And)
	case OP_OR:
		cu.binaryOp(inst, cu.alu.Or)
	case OP_XOR:
		cu.binaryOp(inst, cu.alu.Xor)
	case OP_NOT:
		result := cu.alu.Not(cu.readOperand(&inst.OperandA))
		cu.writeOperand(&inst.OperandA, result.Value)
		regs.Flags = result.Flags
	case OP_SHL:
		cu.binaryOp(inst, func(lhs, rhs uint16) AluResult { return cu.alu.Shl(lhs, uint8(rhs)) })
	case OP_SHR:
		cu.binaryOp(inst, func(lhs, rhs uint16) AluResult { return cu.alu.Shr(lhs, uint8(rhs)) })
	case OP_CMP:
		lhs := cu.readOperand(&inst.OperandA)
		rhs := cu.readOperand(&inst.OperandB)
		regs.Flags = cu.alu.Sub(lhs, rhs).Flags
	case OP_JMP:
		regs.Pc = cu.readOperand(&inst.OperandA)
	case OP_JZ:
		cu.jumpIf(regs.Flags.Test(FLAG_ZERO), &inst.OperandA)
	case OP_JNZ:
		cu.jumpIf(!regs.Flags.Test(FLAG_ZERO), &inst.OperandA)
	case OP_JN:
		cu.jumpIf(regs.Flags.Test(FLAG_NEGATIVE), &inst.OperandA)
	case OP_JC:
		cu.jumpIf(regs.Flags.Test(FLAG_CARRY), &inst.OperandA)
	case OP_CALL:
		target := cu.readOperand(&inst.OperandA)
		cu.push(regs.Pc)
		regs.Pc = target
	case OP_RET:
		regs.Pc = cu.pop()
	case OP_PUSH:
		cu.push(cu.readOperand(&inst.OperandA))
	case OP_POP:
		cu.writeOperand(&inst.OperandA, cu.pop())
	case OP_OUT:
		address := PortAddress(inst.OperandA.Value)
		cu.bus.Write8(address, uint8(cu.readOperand(&inst.OperandB)))
	case OP_IN:
		address := PortAddress(inst.OperandB.Value)
		cu.writeOperand(&inst.OperandA, uint16(cu.bus.Read8(address)))
	case OP_ADJSP:
		delta := int16(cu.readOperand(&inst.OperandA))
		regs.WriteSp(regs.Sp + uint16(delta))
	case OP_SYS:
		cu.sys(cu.readOperand(&inst.OperandA))
	default:
		log.Printf("%v", &ErrUnknownOpcode{Opcode: inst.Opcode, Address: inst.Address})
		return false
	}
	return true
}

// sys dispatches a service routine code. Unrecognised codes are no-ops.
func (cu *ControlUnit) sys(code uint16) {
	switch code {
	case 1:
		fmt.Fprintln(cu.SysOut)
	case 2:
		fmt.Fprintf(cu.SysOut, "[R0=%d]\n", cu.registers.Read(0))
	}
}
