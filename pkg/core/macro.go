package core

// MacroDecl is a declared macro: a named, typed parameter list, the field
// among them the pointer is auto-positioned on at entry, and a body
// construct. Invocation is textual substitution — the same Body is
// emitted again at every call site, with parameter names bound to the
// caller's argument locations for that one emission. Grounded on
// tokens.py's Macro/DeclareMacro/InvokeMacro trio.
type MacroDecl struct {
	Name   string
	Params []Field
	// Active names the parameter (optionally through a field path into
	// it) the pointer must sit on when Body starts, mirroring LocDecBare's
	// active_path. A synthetic Goto to Active is run ahead of Body at
	// every dry-run and call site instead of being spliced into the
	// stored tree, matching spec.md §4.10's "prepend a synthetic LocGoto".
	Active *Path
	Body   Construct
}

// DeclareMacro registers a MacroDecl after dry-running its body once
// against a scratch state with its parameters bound to fresh, zero-based
// locations. The registration happens only *after* the dry run, so the
// body can never resolve its own name — a directly-recursive macro
// reports MacroNotFound at declaration time. Grounded on
// tokens.py's DeclareMacro.into_bf; see SPEC_FULL.md §6 decision 1.
type DeclareMacro struct {
	span Span
	Decl *MacroDecl
}

func NewDeclareMacro(span Span, name string, params []Field, active *Path, body Construct) *DeclareMacro {
	return &DeclareMacro{span: span, Decl: &MacroDecl{Name: name, Params: params, Active: active, Body: body}}
}

func (d *DeclareMacro) Span() Span { return d.span }

func (d *DeclareMacro) Emit(s *AbstractState) string {
	d.Delta(s)
	return ""
}

func (d *DeclareMacro) Delta(s *AbstractState) StateDelta {
	scratch := s.Clone()
	scratch.names = map[string]locInfo{}

	at := 0
	for _, p := range d.Decl.Params {
		if _, ok := scratch.Types.Lookup(p.TypeName); !ok {
			scratch.Report(typeNotFound(d.span, p.TypeName, Suggest(p.TypeName, scratch.Types.Names())))
		}
		scratch.DeclareName(p.Name, at, p.TypeName)
		at += scratch.Types.SizeOf(p.TypeName)
	}

	entered(d.Decl.Active, d.Decl.Body, d.span).Emit(scratch)
	s.ErrorCount = scratch.ErrorCount

	s.Macros[d.Decl.Name] = d.Decl
	return Identity()
}

// entered builds the "goto active, then run body" sequence spec.md §4.10
// describes as prepending a synthetic LocGoto to the macro body, so the
// body can assume the pointer already sits on its active parameter
// regardless of where the caller's pointer happened to be. A nil active
// (no parameters to position against) just runs body unmodified.
func entered(active *Path, body Construct, span Span) Construct {
	if active == nil {
		return body
	}
	return NewSequence(span, NewGoto(span, active), body)
}

// InvokeMacro calls a declared macro at a specific source position,
// binding each parameter name to the corresponding argument's resolved
// location for the duration of one emission of the body. Grounded on
// tokens.py's InvokeMacro.
type InvokeMacro struct {
	span Span
	Name string
	Args []*Path
}

func NewInvokeMacro(span Span, name string, args ...*Path) *InvokeMacro {
	return &InvokeMacro{span: span, Name: name, Args: args}
}

func (m *InvokeMacro) Span() Span { return m.span }

func (m *InvokeMacro) Emit(s *AbstractState) string {
	text, _ := m.simulate(s)
	return text
}

func (m *InvokeMacro) Delta(s *AbstractState) StateDelta {
	_, delta := m.simulate(s)
	return delta
}

// simulate resolves the macro and its arguments against s (reporting any
// diagnostics directly against s, honoring s.Quiet like every other
// construct) and, if that succeeds, emits the body once against a clone
// of s — so that neither call site (Emit or Delta) ever mutates s's
// cells or pointer directly. The single real mutation happens later, once,
// when the caller (typically emitChild) applies the StateDelta this
// returns. Error-count bookkeeping is merged back from the clone; the
// clone's own diagnostic reports already reached the shared Sink.
func (m *InvokeMacro) simulate(s *AbstractState) (text string, delta StateDelta) {
	decl, ok := s.Macros[m.Name]
	if !ok {
		s.Report(macroNotFound(m.span, m.Name, Suggest(m.Name, macroNames(s))))
		return "", Identity()
	}
	if len(m.Args) != len(decl.Params) {
		s.Report(wrongArgumentCount(m.span, m.Name, len(decl.Params), len(m.Args)))
		return "", Identity()
	}

	type binding struct {
		name     string
		offset   int
		typeName string
	}
	bindings := make([]binding, 0, len(m.Args))
	for i, arg := range m.Args {
		off, typeName, ok := arg.Resolve(s)
		if !ok {
			continue
		}
		param := decl.Params[i]
		if typeName != param.TypeName {
			s.Report(wrongArgumentType(m.span, m.Name, i, param.TypeName, typeName))
		}
		bindings = append(bindings, binding{name: param.Name, offset: off, typeName: param.TypeName})
	}

	scratch := s.Clone()
	scratch.names = map[string]locInfo{}
	for _, b := range bindings {
		scratch.DeclareName(b.name, b.offset, b.typeName)
	}

	text = entered(decl.Active, decl.Body, m.span).Emit(scratch)
	s.ErrorCount = scratch.ErrorCount

	return text, diffStates(s, scratch)
}

func macroNames(s *AbstractState) []string {
	names := make([]string, 0, len(s.Macros))
	for n := range s.Macros {
		names = append(names, n)
	}
	return names
}

// diffStates builds the StateDelta that, applied to before, produces
// after's cells and pointer. Used by InvokeMacro, the one construct whose
// effect is discovered by actually running its body against a scratch
// clone rather than computed structurally.
func diffStates(before, after *AbstractState) StateDelta {
	cells := map[int]CellAction{}

	if after.PtrGen > before.PtrGen {
		for abs, info := range after.cells {
			if info.known {
				cells[abs-before.Ptr] = SetTo{V: info.value}
			}
		}
		return StateDelta{Cells: cells, PtrDelta: after.Ptr - before.Ptr, GenDelta: after.PtrGen - before.PtrGen}
	}

	touched := map[int]struct{}{}
	for abs := range before.cells {
		touched[abs] = struct{}{}
	}
	for abs := range after.cells {
		touched[abs] = struct{}{}
	}
	for abs := range touched {
		beforeInfo, hadBefore := before.cells[abs]
		afterInfo, hasAfter := after.cells[abs]
		switch {
		case hasAfter && afterInfo.known:
			if !(hadBefore && beforeInfo.known && beforeInfo.value == afterInfo.value) {
				cells[abs-before.Ptr] = SetTo{V: afterInfo.value}
			}
		case hadBefore && beforeInfo.known:
			cells[abs-before.Ptr] = Unknown{}
		}
	}
	return StateDelta{Cells: cells, PtrDelta: after.Ptr - before.Ptr}
}
