package core

// LocDecl is one name declared by a LocDec, in declaration order.
type LocDecl struct {
	Name     string
	TypeName string
}

// LocDec declares a consecutive run of named locations, laid out one after
// another, aligned so that one of them — Active, possibly through a
// struct field path — sits at a fixed base position (From, or the current
// pointer if From is nil). All declared names end up resolvable relative
// to that alignment. It never emits target code; its whole effect is
// registering names, done directly inside Delta (Emit is a thin
// passthrough), matching tokens.py's LocDec.
//
// Note on grounding: tokens.py's LocDecBare.get_var_offsets_and_type_names
// computes the final absolute offset as
// `i - active_relative_ptr + ctx.ptr + rel_from_ptr`, which double-counts
// ctx.ptr whenever From is given (rel_from_ptr is already an absolute
// position in that case). This implementation follows the evident intent
// instead — the active name lands exactly at the base position, every
// other declared name at its layout-relative offset from that — rather
// than porting the apparent double-count.
type LocDec struct {
	span   Span
	Decls  []LocDecl
	From   *Path // nil means "the current pointer"
	Active *Path // a name among Decls, optionally with a field path into it
}

func NewLocDec(span Span, decls []LocDecl, from *Path, active *Path) *LocDec {
	return &LocDec{span: span, Decls: decls, From: from, Active: active}
}

func (l *LocDec) Span() Span { return l.span }

func (l *LocDec) Emit(s *AbstractState) string {
	l.Delta(s)
	return ""
}

type locLayout struct {
	offset   int
	typeName string
}

func (l *LocDec) Delta(s *AbstractState) StateDelta {
	base := s.Ptr
	if l.From != nil {
		if at, typeName, ok := l.From.Resolve(s); ok {
			if size := s.Types.SizeOf(typeName); size != 1 {
				s.Report(gotoWide(l.span, typeName, size))
			}
			base = at
		}
	}

	layout := map[string]locLayout{}
	names := make([]string, 0, len(l.Decls))
	at := 0
	for _, d := range l.Decls {
		t, ok := s.Types.Lookup(d.TypeName)
		if !ok {
			s.Report(typeNotFound(l.span, d.TypeName, Suggest(d.TypeName, s.Types.Names())))
			continue
		}
		layout[d.Name] = locLayout{offset: at, typeName: d.TypeName}
		names = append(names, d.Name)
		at += t.Size(s.Types)
	}

	activeRelative, ok := l.resolveActive(s, layout)
	if !ok {
		s.Report(declareLocnameNotFound(l.span, l.Active.String(), Suggest(l.Active.Root, names)))
		activeRelative = 0
	}

	for _, name := range names {
		loc := layout[name]
		s.DeclareName(name, base+loc.offset-activeRelative, loc.typeName)
	}

	return Identity()
}

// resolveActive walks Active against the freshly-computed layout (not the
// outer state's named locations — Active refers to one of *this*
// declaration's own names) to find the local offset the whole group
// should be centered on.
func (l *LocDec) resolveActive(s *AbstractState, layout map[string]locLayout) (int, bool) {
	root, ok := layout[l.Active.Root]
	if !ok {
		return 0, false
	}
	offset := root.offset
	curType := root.typeName
	for _, field := range l.Active.Fields {
		t, found := s.Types.Lookup(curType)
		if !found {
			s.Report(typeNotFound(l.span, curType, Suggest(curType, s.Types.Names())))
			return 0, false
		}
		st, isStruct := t.(StructType)
		if !isStruct {
			s.Report(fieldNotFound(l.span, curType, field, nil))
			return 0, false
		}
		foff, ftype, found := st.FieldOffset(s.Types, field)
		if !found {
			s.Report(fieldNotFound(l.span, curType, field, Suggest(field, st.FieldNames())))
			return 0, false
		}
		offset += foff
		curType = ftype
	}
	if size := s.Types.SizeOf(curType); size != 1 {
		s.Report(gotoWide(l.span, curType, size))
		return 0, true
	}
	return offset, true
}
