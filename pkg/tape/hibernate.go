package tape

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// snapshot is the JSON-serializable control state saved alongside the
// cell array. Adapted from the teacher's humanReadableState in
// pkg/cpu/hibernate.go, cut down to what a tape machine actually has:
// no registers, no peripherals bus, just pointer, pc, halted, and the
// step count.
type snapshot struct {
	Ptr    int  `json:"ptr"`
	PC     int  `json:"pc"`
	Halted bool `json:"halted"`
	Steps  int  `json:"steps"`
}

// cellEntry is one touched cell, stored sparsely since the tape is
// unbounded and most of it is untouched zero.
type cellEntry struct {
	Offset int  `json:"offset"`
	Value  byte `json:"value"`
}

// HibernateToBytes serialises the interpreter's state — code, cells, and
// control state; the jump table is not stored, RestoreFromBytes rebuilds
// it from the code — into an in-memory ZIP archive,
// the same container format as the teacher's CPU.HibernateToBytes, so the
// same archive tooling (any zip viewer) can inspect a saved tape.
func (in *Interpreter) HibernateToBytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	ctrl, err := zw.Create("control.json")
	if err != nil {
		return nil, err
	}
	if err := json.NewEncoder(ctrl).Encode(snapshot{
		Ptr: in.ptr, PC: in.pc, Halted: in.Halted, Steps: in.Steps,
	}); err != nil {
		return nil, err
	}

	codeW, err := zw.Create("code.bf")
	if err != nil {
		return nil, err
	}
	if _, err := codeW.Write(in.code); err != nil {
		return nil, err
	}

	entries := make([]cellEntry, 0, len(in.cells))
	for off, v := range in.cells {
		entries = append(entries, cellEntry{Offset: off, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Offset < entries[j].Offset })

	cellsW, err := zw.Create("cells.json")
	if err != nil {
		return nil, err
	}
	if err := json.NewEncoder(cellsW).Encode(entries); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RestoreFromBytes rebuilds an Interpreter from an archive produced by
// HibernateToBytes. periph is supplied fresh by the caller, matching the
// teacher's pattern of re-wiring peripherals by hand on restore rather
// than trying to serialize live I/O handles.
func RestoreFromBytes(data []byte, periph Peripheral) (*Interpreter, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var code []byte
	var ctrl snapshot
	var entries []cellEntry

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		switch f.Name {
		case "code.bf":
			code, err = io.ReadAll(rc)
		case "control.json":
			err = json.NewDecoder(rc).Decode(&ctrl)
		case "cells.json":
			err = json.NewDecoder(rc).Decode(&entries)
		}
		rc.Close()
		if err != nil {
			return nil, err
		}
	}
	if code == nil {
		return nil, fmt.Errorf("tape: archive missing code.bf")
	}

	jumps, err := matchBrackets(string(code))
	if err != nil {
		return nil, err
	}
	cells := make(map[int]byte, len(entries))
	for _, e := range entries {
		cells[e.Offset] = e.Value
	}

	return &Interpreter{
		code: code, jumpFor: jumps, cells: cells, io: periph,
		ptr: ctrl.Ptr, pc: ctrl.PC, Halted: ctrl.Halted, Steps: ctrl.Steps,
	}, nil
}
