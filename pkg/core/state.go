package core

// cellInfo is one entry of an AbstractState's cell_values map: a value that
// may or may not be known.
type cellInfo struct {
	value byte
	known bool
}

// locInfo is one entry of an AbstractState's named_locations table: the
// absolute cell offset a name resolves to, the type name it was declared
// with, and the pointer generation it was declared under (a later
// generation bump invalidates it).
type locInfo struct {
	offset   int
	typeName string
	gen      int
}

// AbstractState is the single-pointer constant-propagation state threaded
// through a compile: which absolute cells have known values, the current
// pointer and its generation, the macro/type/name tables, and diagnostic
// bookkeeping. Grounded on context.py's State, generalized with the
// symbol tables tokens.py's constructs read and write directly.
type AbstractState struct {
	cells map[int]cellInfo
	Ptr   int
	// PtrGen increments every time positional knowledge is invalidated
	// (an unstable loop). Named locations recorded under an earlier
	// generation are no longer valid.
	PtrGen int

	Macros map[string]*MacroDecl
	Types  *TypeRegistry
	names  map[string]locInfo

	// ErrorCount is bumped by every SeverityError diagnostic raised
	// while Quiet is false.
	ErrorCount int
	// Quiet suppresses diagnostic reporting and the ErrorCount bump that
	// goes with it (but not the symbol-table side effects a Delta call
	// performs) — used when a
	// construct's own Emit already reported for real and a container is
	// recomputing the same Delta purely to obtain the value to apply.
	Quiet bool
	Sink  Sink

	// lastWrite records, for a cell known to hold a constant, the span
	// of the construct that last set it — used by IneffectiveLoopWarning
	// to explain *why* a cell is known to be zero. A best-effort
	// supplement (error.py's IneffectiveLoopWarning.notes), not part of
	// the core cell-tracking algebra itself.
	lastWrite map[int]Span
}

// NewAbstractState returns a fresh state: pointer at 0, generation 0, no
// cells known, only the builtin byte type declared.
func NewAbstractState(sink Sink) *AbstractState {
	if sink == nil {
		sink = DiscardSink
	}
	return &AbstractState{
		cells:     map[int]cellInfo{},
		Macros:    map[string]*MacroDecl{},
		Types:     NewTypeRegistry(),
		names:     map[string]locInfo{},
		Sink:      sink,
		lastWrite: map[int]Span{},
	}
}

// Clone returns a state for speculative use: cell knowledge, named
// locations, and error/last-write bookkeeping are deep-copied so mutating
// the clone can never leak into the real state; Macros and Types are
// shared by reference, since those tables are genuinely global (a macro
// or type declared anywhere is visible everywhere after registration,
// mirroring context.py's silent() sharing the same underlying tables).
func (s *AbstractState) Clone() *AbstractState {
	cells := make(map[int]cellInfo, len(s.cells))
	for k, v := range s.cells {
		cells[k] = v
	}
	names := make(map[string]locInfo, len(s.names))
	for k, v := range s.names {
		names[k] = v
	}
	lastWrite := make(map[int]Span, len(s.lastWrite))
	for k, v := range s.lastWrite {
		lastWrite[k] = v
	}
	return &AbstractState{
		cells:      cells,
		Ptr:        s.Ptr,
		PtrGen:     s.PtrGen,
		Macros:     s.Macros,
		Types:      s.Types,
		names:      names,
		ErrorCount: s.ErrorCount,
		Quiet:      s.Quiet,
		Sink:       s.Sink,
		lastWrite:  lastWrite,
	}
}

// Report sends a diagnostic to the sink and bumps ErrorCount for errors,
// unless the state is quiet — a quiet recomputation (emitChild's second,
// silent Delta pass) re-evaluates the same diagnostic condition a
// construct already raised for real, and must neither show it nor count
// it again. Matches tokens.py, where every ctx.n_errors += 1 sits behind
// the same `if not ctx.quiet:` that gates the message itself.
func (s *AbstractState) Report(m Message) {
	if s.Quiet {
		return
	}
	if m.Severity == SeverityError {
		s.ErrorCount++
	}
	s.Sink.Report(m)
}

// CellKnown returns the known value of the absolute cell idx, if any.
func (s *AbstractState) CellKnown(idx int) (byte, bool) {
	c, ok := s.cells[idx]
	if !ok {
		return 0, false
	}
	return c.value, c.known
}

// Apply folds delta into the state: pointer and generation advance, and
// each of delta's cell actions (keyed relative to the pointer position
// before the delta) is applied to the corresponding absolute cell. span
// is recorded as the last-writer for any cell that becomes a known
// constant as a result (used only for diagnostic notes).
func (s *AbstractState) Apply(d StateDelta, span Span) {
	if d.GenDelta > 0 {
		s.cells = map[int]cellInfo{}
		s.PtrGen += d.GenDelta
	}

	base := s.Ptr
	for off, act := range d.Cells {
		abs := base + off
		prior := s.cells[abs]
		val, ok := act.Apply(prior.value, prior.known)
		if ok {
			s.cells[abs] = cellInfo{value: val, known: true}
			if span != nil {
				s.lastWrite[abs] = span
			}
		} else {
			delete(s.cells, abs)
			delete(s.lastWrite, abs)
		}
	}
	s.Ptr += d.PtrDelta
}

// LastWriteSpan returns the span of the construct that last set the
// absolute cell idx to its current known value, if tracked.
func (s *AbstractState) LastWriteSpan(idx int) (Span, bool) {
	sp, ok := s.lastWrite[idx]
	return sp, ok
}

// DeclareName registers name as resolving to the given absolute offset and
// type, under the current pointer generation.
func (s *AbstractState) DeclareName(name string, offset int, typeName string) {
	s.names[name] = locInfo{offset: offset, typeName: typeName, gen: s.PtrGen}
}

// UndeclareName removes name from scope.
func (s *AbstractState) UndeclareName(name string) {
	delete(s.names, name)
}

// ResolveName returns the absolute offset and type name for name, if it is
// currently declared and its generation hasn't been invalidated since.
func (s *AbstractState) ResolveName(name string) (offset int, typeName string, ok bool) {
	loc, present := s.names[name]
	if !present || loc.gen != s.PtrGen {
		return 0, "", false
	}
	return loc.offset, loc.typeName, true
}

// NamedLocations returns every name currently in scope (generation-valid),
// used for MemNotFound's "did you mean" suggestions.
func (s *AbstractState) NamedLocations() []string {
	names := make([]string, 0, len(s.names))
	for n, loc := range s.names {
		if loc.gen == s.PtrGen {
			names = append(names, n)
		}
	}
	return names
}
