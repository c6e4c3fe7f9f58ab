// Package tape implements the tape machine the core compiles to: an
// unbounded, bidirectional array of 8-bit wrapping cells and a data
// pointer, stepped one instruction at a time over the eight-character
// target alphabet `{+, -, <, >, [, ], ., ,}`. It is not part of the
// compilation engine (spec.md §1 lists "the standalone interactive tape
// debugger" as an external collaborator) — it is what makes the core's
// output actually runnable, for the CLI's optional `--run` mode and for
// cmd/tapeview's live view. Adapted from the teacher's pkg/cpu fetch-
// execute Step/Run loop, cut down from a 16-bit register machine to the
// tape machine's six primitives plus bracket matching.
package tape

import "fmt"

// Interpreter runs compiled target code against a tape of 8-bit cells.
// The tape grows in both directions as the pointer moves past what has
// been touched so far; Cell accepts any index, never out of range.
type Interpreter struct {
	code    []byte
	jumpFor map[int]int // '[' index -> matching ']' index, and back

	cells map[int]byte
	ptr   int
	pc    int
	io    Peripheral

	Halted bool
	// Steps counts instructions actually executed (bracket characters
	// included), for cmd/tapeview's step counter and for tests that want
	// to bound a run.
	Steps int
}

// Peripheral is the pluggable I/O surface a `,`/`.` talks to. Kept as the
// teacher's pkg/cpu/peripheral.go names it (a small interface a caller
// supplies), sized for a byte stream rather than a 16-bit MMIO bus.
type Peripheral interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
}

// New builds an Interpreter for code, validating and pre-matching its
// brackets up front so Step never has to search for a jump target.
func New(code string, io Peripheral) (*Interpreter, error) {
	jumps, err := matchBrackets(code)
	if err != nil {
		return nil, err
	}
	return &Interpreter{
		code:    []byte(code),
		jumpFor: jumps,
		cells:   map[int]byte{},
		io:      io,
	}, nil
}

// matchBrackets pre-computes, for every `[` and `]` in code, the index of
// its partner, erroring on an unbalanced program rather than failing
// halfway through a Run.
func matchBrackets(code string) (map[int]int, error) {
	pairs := map[int]int{}
	var stack []int
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return nil, fmt.Errorf("tape: unmatched ']' at offset %d", i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs[open] = i
			pairs[i] = open
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("tape: unmatched '[' at offset %d", stack[len(stack)-1])
	}
	return pairs, nil
}

// Cell returns the current value of absolute cell idx (0 if never
// touched — an untouched cell is a real, known zero on this machine,
// unlike the core's conservative abstract ⊥).
func (in *Interpreter) Cell(idx int) byte { return in.cells[idx] }

// Ptr returns the interpreter's current pointer position.
func (in *Interpreter) Ptr() int { return in.ptr }

// PC returns the index into the source code the interpreter will execute
// next.
func (in *Interpreter) PC() int { return in.pc }

// Step executes a single instruction and advances pc, or sets Halted once
// pc runs past the end of code. Returns an error only for a real I/O
// failure from the Peripheral; a halted interpreter's Step is a no-op.
func (in *Interpreter) Step() error {
	if in.Halted {
		return nil
	}
	if in.pc >= len(in.code) {
		in.Halted = true
		return nil
	}

	switch in.code[in.pc] {
	case '+':
		in.cells[in.ptr] = in.cells[in.ptr] + 1
	case '-':
		in.cells[in.ptr] = in.cells[in.ptr] - 1
	case '>':
		in.ptr++
	case '<':
		in.ptr--
	case '.':
		if in.io != nil {
			if err := in.io.WriteByte(in.cells[in.ptr]); err != nil {
				return err
			}
		}
	case ',':
		if in.io != nil {
			b, err := in.io.ReadByte()
			if err != nil {
				return err
			}
			in.cells[in.ptr] = b
		}
	case '[':
		if in.cells[in.ptr] == 0 {
			in.pc = in.jumpFor[in.pc]
		}
	case ']':
		if in.cells[in.ptr] != 0 {
			in.pc = in.jumpFor[in.pc]
		}
	}
	in.pc++
	in.Steps++
	return nil
}

// Run steps the interpreter until it halts or maxSteps instructions have
// executed (0 means unbounded) — a guard against a genuinely non-
// terminating program, since spec.md §1 explicitly disclaims termination
// verification.
func (in *Interpreter) Run(maxSteps int) error {
	for !in.Halted {
		if maxSteps > 0 && in.Steps >= maxSteps {
			return fmt.Errorf("tape: exceeded %d steps without halting", maxSteps)
		}
		if err := in.Step(); err != nil {
			return err
		}
	}
	return nil
}
