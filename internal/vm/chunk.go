package vm

import "encoding/binary"

// Chunk is a compiled unit of bytecode plus the constant pool it
// references. Immediates are little-endian throughout (§4.4 "Immediates
// and encoding").
type Chunk struct {
	Code      []byte
	Constants *ConstantTable
}

// NewChunk creates an empty Chunk with a fresh constant table.
func NewChunk() *Chunk {
	return &Chunk{Constants: NewConstantTable()}
}

func (c *Chunk) emitOp(op OpCode) int {
	c.Code = append(c.Code, byte(op))
	return len(c.Code) - 1
}

func (c *Chunk) emitReg(r Register) {
	c.Code = append(c.Code, byte(r))
}

func (c *Chunk) emitByte(b byte) {
	c.Code = append(c.Code, b)
}

func (c *Chunk) emitImm64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	c.Code = append(c.Code, buf[:]...)
}

// emitName writes an 8-byte length prefix followed by the raw UTF-8 bytes
// of name, matching §4.4's "A name operand is an 8-byte length followed by
// raw UTF-8 bytes".
func (c *Chunk) emitName(name string) {
	c.emitImm64(uint64(len(name)))
	c.Code = append(c.Code, name...)
}

// emitJump writes a placeholder 4-byte relative offset and returns its
// position so the caller can patch it once the jump target is known
// (patchJump).
func (c *Chunk) emitJump(op OpCode) int {
	c.emitOp(op)
	pos := len(c.Code)
	c.Code = append(c.Code, 0, 0, 0, 0)
	return pos
}

// patchJump backfills the 4-byte offset at pos so that executing it lands
// exactly at the chunk's current end.
func (c *Chunk) patchJump(pos int) {
	offset := int32(len(c.Code) - (pos + 4))
	binary.LittleEndian.PutUint32(c.Code[pos:pos+4], uint32(offset))
}

// emitLoopJump emits a backward jump (JumpLoop) to target, a previously
// recorded position in c.Code.
func (c *Chunk) emitLoopJump(target int) {
	c.emitOp(OpJumpLoop)
	offset := int32(target - (len(c.Code) + 4))
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(offset))
	c.Code = append(c.Code, buf[:]...)
}

func readImm64(code []byte, pc int) uint64 {
	return binary.LittleEndian.Uint64(code[pc : pc+8])
}

func readJumpOffset(code []byte, pc int) int32 {
	return int32(binary.LittleEndian.Uint32(code[pc : pc+4]))
}

func readName(code []byte, pc int) (string, int) {
	n := readImm64(code, pc)
	start := pc + 8
	return string(code[start : start+int(n)]), start + int(n)
}
