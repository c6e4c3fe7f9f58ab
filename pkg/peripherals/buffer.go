package peripherals

import (
	"bytes"

	"bfppc/pkg/tape"
)

// Buffer is an in-memory Peripheral: reads drain Input in order, writes
// append to Output. Useful for the tapeview GUI (which has no terminal to
// attach stdio to) and for tests that want to assert on a program's full
// byte output without a real pipe.
type Buffer struct {
	Input  *bytes.Reader
	Output bytes.Buffer
}

// NewBuffer builds a Buffer peripheral that will read input in order and
// collect everything written to it.
func NewBuffer(input []byte) *Buffer {
	return &Buffer{Input: bytes.NewReader(input)}
}

func (b *Buffer) ReadByte() (byte, error) {
	return b.Input.ReadByte()
}

func (b *Buffer) WriteByte(c byte) error {
	return b.Output.WriteByte(c)
}

func init() {
	Register("buffer", func() tape.Peripheral { return NewBuffer(nil) })
}
