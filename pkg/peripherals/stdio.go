// Package peripherals provides concrete tape.Peripheral implementations.
// Grounded on the teacher's pluggable-device interface in
// pkg/cpu/peripheral.go/message_device.go — the registration pattern
// (name -> factory map, so a saved session can re-instantiate its
// devices by type string) is kept; the MMIO-offset decoding and the
// VFS-backed message queue those files also contained are dropped, since
// neither an addressable bus nor a persistent on-disk queue exists in
// this domain (see DESIGN.md).
package peripherals

import (
	"bufio"
	"io"

	"bfppc/pkg/tape"
)

// Stdio is the default Peripheral for running compiled target code from
// a terminal: `,` reads one byte from an input reader, `.` writes one
// byte to an output writer, both buffered the same way the teacher
// buffers its console I/O in cmd/console.
type Stdio struct {
	r *bufio.Reader
	w *bufio.Writer
}

// NewStdio wraps r/w as a tape.Peripheral. Passing the same *os.Stdin /
// *os.Stdout the CLI otherwise uses is the common case.
func NewStdio(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{r: bufio.NewReader(r), w: bufio.NewWriter(w)}
}

func (s *Stdio) ReadByte() (byte, error) {
	return s.r.ReadByte()
}

func (s *Stdio) WriteByte(b byte) error {
	if err := s.w.WriteByte(b); err != nil {
		return err
	}
	return s.w.Flush()
}

// factory is a constructor for a named Peripheral type, mirroring the
// teacher's PeripheralFactory/RegisterPeripheral pair.
type factory func() tape.Peripheral

var registry = map[string]factory{}

// Register adds a named Peripheral constructor to the registry, so a
// saved tape session (pkg/tape's hibernate format only persists cell
// state, not a live I/O handle) can be handed a freshly built device of
// the same type on restore.
func Register(name string, f factory) {
	registry[name] = f
}

// New builds the Peripheral registered under name, or nil if none is.
func New(name string) tape.Peripheral {
	f, ok := registry[name]
	if !ok {
		return nil
	}
	return f()
}
