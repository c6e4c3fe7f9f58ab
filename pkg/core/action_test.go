package core

import "testing"

func TestDeltaApply(t *testing.T) {
	tests := []struct {
		name     string
		d        Delta
		prior    byte
		known    bool
		wantVal  byte
		wantKnown bool
	}{
		{"zero delta passes through unknown", NewDelta(0), 0, false, 0, false},
		{"zero delta passes through known", NewDelta(0), 42, true, 42, true},
		{"nonzero delta on unknown stays unknown", NewDelta(5), 0, false, 0, false},
		{"nonzero delta wraps mod 256", NewDelta(10), 250, true, 4, true},
		{"negative delta normalizes", NewDelta(-1), 0, true, 255, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotVal, gotKnown := tc.d.Apply(tc.prior, tc.known)
			if gotVal != tc.wantVal || gotKnown != tc.wantKnown {
				t.Errorf("Apply(%d, %v) = (%d, %v); want (%d, %v)",
					tc.prior, tc.known, gotVal, gotKnown, tc.wantVal, tc.wantKnown)
			}
		})
	}
}

func TestDeltaAfter(t *testing.T) {
	if got := NewDelta(3).After(NewDelta(4)); got != NewDelta(7) {
		t.Errorf("Delta+Delta = %s; want Delta(+7)", got)
	}
	if got := NewDelta(3).After(SetTo{V: 10}); got != (SetTo{V: 13}) {
		t.Errorf("Delta after SetTo = %s; want SetTo(13)", got)
	}
	if _, ok := NewDelta(3).After(Unknown{}).(Unknown); !ok {
		t.Errorf("Delta after Unknown should stay Unknown")
	}
}

func TestSetToAbsorbs(t *testing.T) {
	if got := (SetTo{V: 9}).After(NewDelta(100)); got != (SetTo{V: 9}) {
		t.Errorf("SetTo absorbs prior action: got %s", got)
	}
	val, ok := (SetTo{V: 7}).Apply(0, false)
	if !ok || val != 7 {
		t.Errorf("SetTo.Apply should always produce a known value")
	}
}

func TestRepeated(t *testing.T) {
	if got := NewDelta(0).Repeated(); got != NewDelta(0) {
		t.Errorf("a no-op delta stays a no-op when repeated: got %s", got)
	}
	if _, ok := NewDelta(3).Repeated().(Unknown); !ok {
		t.Errorf("a nonzero delta becomes Unknown when repeated")
	}
	if _, ok := (SetTo{V: 1}).Repeated().(Unknown); !ok {
		t.Errorf("SetTo becomes Unknown when repeated (might run zero times)")
	}
	if _, ok := (Unknown{}).Repeated().(Unknown); !ok {
		t.Errorf("Unknown stays Unknown when repeated")
	}
}
