package core

// Undeclare removes one or more names from scope. Each name must already
// be declared and visible in the current pointer generation; an unknown
// or stale name raises MemNotFound. It has no effect on cells or the
// pointer — it only narrows what ResolveName can see afterward.
// Grounded on tokens.py's UndeclareLoc.
type Undeclare struct {
	span  Span
	Names []string
}

func NewUndeclare(span Span, names ...string) *Undeclare {
	return &Undeclare{span: span, Names: names}
}

func (u *Undeclare) Span() Span { return u.span }

func (u *Undeclare) Emit(s *AbstractState) string {
	u.Delta(s)
	return ""
}

func (u *Undeclare) Delta(s *AbstractState) StateDelta {
	for _, name := range u.Names {
		if _, _, ok := s.ResolveName(name); !ok {
			s.Report(memNotFound(u.span, name, Suggest(name, s.NamedLocations())))
			continue
		}
		s.UndeclareName(name)
	}
	return Identity()
}
