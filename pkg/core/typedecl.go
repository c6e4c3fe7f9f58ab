package core

// TypeDec registers a new named struct type, built from field declarations
// referencing already-known type names. It has no runtime effect — no
// cells, no pointer movement — it only grows the type registry. Grounded
// on tokens.py's TypeDec.
type TypeDec struct {
	span   Span
	Name   string
	Fields []Field
}

func NewTypeDec(span Span, name string, fields []Field) *TypeDec {
	return &TypeDec{span: span, Name: name, Fields: fields}
}

func (t *TypeDec) Span() Span { return t.span }

func (t *TypeDec) Emit(s *AbstractState) string {
	t.Delta(s)
	return ""
}

func (t *TypeDec) Delta(s *AbstractState) StateDelta {
	for _, f := range t.Fields {
		if _, ok := s.Types.Lookup(f.TypeName); !ok {
			s.Report(typeNotFound(t.span, f.TypeName, Suggest(f.TypeName, s.Types.Names())))
		}
	}
	s.Types.Declare(t.Name, StructType{Fields: t.Fields})
	return Identity()
}
