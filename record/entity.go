package record

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
)

// Entity is a record with an integer identifier and an opaque attribute
// payload. Its JSON form is a flat object whose "id" key holds the
// identifier; every other key is carried through untouched.
//
//	{"id": 1, "name": "foo"}
type Entity struct {
	ID         int64
	Attributes map[string]any
}

// NewEntity creates an Entity. The attribute map is copied.
func NewEntity(id int64, attrs map[string]any) Entity {
	return Entity{ID: id, Attributes: maps.Clone(attrs)}
}

func (e Entity) RecordID() int64 {
	return e.ID
}

// Attr returns a single attribute value.
func (e Entity) Attr(key string) (any, bool) {
	v, ok := e.Attributes[key]
	return v, ok
}

func (e Entity) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Attributes)+1)
	maps.Copy(out, e.Attributes)
	out["id"] = e.ID
	return json.Marshal(out)
}

func (e *Entity) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rawID, ok := raw["id"]
	if !ok {
		return ErrMissingID
	}

	var id int64
	if err := json.Unmarshal(rawID, &id); err != nil || IsNull(id) {
		return fmt.Errorf("%w: %s", ErrInvalidID, rawID)
	}
	delete(raw, "id")

	attrs := make(map[string]any, len(raw))
	for key, val := range raw {
		var v any
		if err := json.Unmarshal(val, &v); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		attrs[key] = v
	}

	e.ID = id
	e.Attributes = attrs
	return nil
}

// LoadEntities reads a JSON array of entities from filename.
func LoadEntities(filename string) ([]Entity, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var entities []Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("failed to parse records file: %w", err)
	}
	return entities, nil
}
