package core

// Path is a location reference: a root name followed by zero or more
// struct field accesses. It isn't itself a Construct — it has no emitted
// text of its own — but is the shared building block LocDec and LocGoto
// resolve to an absolute cell offset and a type. Grounded on tokens.py's
// Path.
type Path struct {
	span   Span
	Root   string
	Fields []string
}

func NewPath(span Span, root string, fields ...string) *Path {
	return &Path{span: span, Root: root, Fields: fields}
}

func (p *Path) Span() Span { return p.span }

func (p *Path) String() string {
	s := p.Root
	for _, f := range p.Fields {
		s += "." + f
	}
	return s
}

// Resolve walks the path against s's named locations and type registry,
// returning the absolute cell offset and final type name. Diagnostics
// (MemNotFound for an unknown root, TypeNotFound/FieldNotFound while
// walking) are reported directly against s.
func (p *Path) Resolve(s *AbstractState) (offset int, typeName string, ok bool) {
	base, rootType, found := s.ResolveName(p.Root)
	if !found {
		s.Report(memNotFound(p.span, p.Root, Suggest(p.Root, s.NamedLocations())))
		return 0, "", false
	}

	off := base
	curType := rootType
	for _, field := range p.Fields {
		t, found := s.Types.Lookup(curType)
		if !found {
			s.Report(typeNotFound(p.span, curType, Suggest(curType, s.Types.Names())))
			return 0, "", false
		}
		st, isStruct := t.(StructType)
		if !isStruct {
			s.Report(fieldNotFound(p.span, curType, field, nil))
			return 0, "", false
		}
		foff, ftype, found := st.FieldOffset(s.Types, field)
		if !found {
			s.Report(fieldNotFound(p.span, curType, field, Suggest(field, st.FieldNames())))
			return 0, "", false
		}
		off += foff
		curType = ftype
	}
	return off, curType, true
}
