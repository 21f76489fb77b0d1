package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tailored-agentic-units/records/manager"
	"github.com/tailored-agentic-units/records/record"
	"github.com/tailored-agentic-units/records/store"
)

var (
	errUnknownOp     = errors.New("unknown operation")
	errMissingRecord = errors.New("set requires a record")
)

// step is one scripted operation:
//
//	{"op": "set", "record": {"id": 3, "name": "baz"}, "draft": true}
//	{"op": "delete", "id": 2}
//	{"op": "setList", "records": [{"id": 1, "name": "foo"}]}
//	{"op": "notify"}
type step struct {
	Op      string          `json:"op"`
	Draft   bool            `json:"draft,omitempty"`
	ID      int64           `json:"id,omitempty"`
	Record  *record.Entity  `json:"record,omitempty"`
	Records []record.Entity `json:"records,omitempty"`
}

func (s step) field() store.Field {
	if s.Draft {
		return store.Draft
	}
	return store.Committed
}

func (s step) validate() error {
	switch s.Op {
	case "set":
		if s.Record == nil {
			return errMissingRecord
		}
	case "delete", "setList", "notify":
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, s.Op)
	}
	return nil
}

func loadScript(filename string) ([]step, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	var steps []step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse script file: %w", err)
	}

	for i, s := range steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return steps, nil
}

func runScript(m *manager.Manager[int64, record.Entity], steps []step) {
	for _, s := range steps {
		switch s.Op {
		case "set":
			m.Set(*s.Record, s.field())
		case "delete":
			m.Delete(s.ID, s.field())
		case "setList":
			m.SetList(s.Records)
		case "notify":
			m.Notify()
		}
	}
}

func printState(w io.Writer, view store.View[int64, record.Entity]) error {
	for id, slot := range view.All() {
		committed, err := formatValue(slot.Committed())
		if err != nil {
			return err
		}
		draft, err := formatValue(slot.Draft())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  [%d] committed=%s draft=%s\n", id, committed, draft)
	}
	return nil
}

func formatValue(e record.Entity, ok bool) (string, error) {
	if !ok {
		return "-", nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to encode record %d: %w", e.ID, err)
	}
	return string(data), nil
}
