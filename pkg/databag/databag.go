// Package databag stores a loosely typed record as a JSON document and
// addresses its fields by dotted paths ("event.participants.0.status").
//
// Entity data is kept under an entity-type namespace, so an event's status
// lives at "event.status". JSON null is treated the same as a missing field.
// Path segments are used verbatim and must not contain gjson path syntax.
package databag

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	ErrInvalidDocument = errors.New("databag: invalid json document")
	ErrNotArray        = errors.New("databag: value is not an array")
	ErrInvalidSegment  = errors.New("databag: invalid path segment")
)

// pathSyntax holds the characters gjson and sjson give a meaning in paths.
const pathSyntax = ".*?#|@!\\ "

// ValidateSegment checks that s can be used as a single path segment.
func ValidateSegment(s string) error {
	if s == "" || strings.ContainsAny(s, pathSyntax) {
		return fmt.Errorf("%w: %q", ErrInvalidSegment, s)
	}
	return nil
}

// DataBag is a mutable JSON document. It is not safe for concurrent use.
type DataBag struct {
	doc []byte
}

// FromEntityData wraps data under the entityType namespace.
func FromEntityData(entityType string, data map[string]any) (*DataBag, error) {
	if data == nil {
		data = map[string]any{}
	}
	doc, err := json.Marshal(map[string]any{entityType: data})
	if err != nil {
		return nil, fmt.Errorf("databag: encode %s: %w", entityType, err)
	}
	return &DataBag{doc: doc}, nil
}

// FromJSON wraps an already encoded document.
func FromJSON(raw []byte) (*DataBag, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrInvalidDocument
	}
	doc := make([]byte, len(raw))
	copy(doc, raw)
	return &DataBag{doc: doc}, nil
}

// Path joins segments into a dotted path.
func Path(segments ...string) string {
	return strings.Join(segments, ".")
}

func (b *DataBag) Get(path string) gjson.Result {
	return gjson.GetBytes(b.doc, path)
}

// Has reports whether path holds a non-null value.
func (b *DataBag) Has(path string) bool {
	r := b.Get(path)
	return r.Exists() && r.Type != gjson.Null
}

// String returns the value at path as a string, or def when it is unset.
func (b *DataBag) String(path, def string) string {
	if !b.Has(path) {
		return def
	}
	return b.Get(path).String()
}

// Int returns the value at path as an int. ok is false when it is unset.
func (b *DataBag) Int(path string) (int, bool) {
	if !b.Has(path) {
		return 0, false
	}
	return int(b.Get(path).Int()), true
}

// Unmarshal decodes the value at path into dst. It returns false, leaving
// dst untouched, when the value is unset.
func (b *DataBag) Unmarshal(path string, dst any) (bool, error) {
	if !b.Has(path) {
		return false, nil
	}
	if err := json.Unmarshal([]byte(b.Get(path).Raw), dst); err != nil {
		return false, fmt.Errorf("databag: decode %s: %w", path, err)
	}
	return true, nil
}

// Set writes value at path, creating intermediate objects as needed.
func (b *DataBag) Set(path string, value any) error {
	doc, err := sjson.SetBytes(b.doc, path, value)
	if err != nil {
		return fmt.Errorf("databag: set %s: %w", path, err)
	}
	b.doc = doc
	return nil
}

// Append adds value to the end of the array at path. An unset path becomes
// a one element array; any other non-array value is an error.
func (b *DataBag) Append(path string, value any) error {
	if !b.Has(path) {
		return b.Set(path, []any{value})
	}
	if !b.Get(path).IsArray() {
		return fmt.Errorf("%w: %s", ErrNotArray, path)
	}
	return b.Set(path+".-1", value)
}

// EntityData decodes the entityType namespace back into a plain map.
func (b *DataBag) EntityData(entityType string) (map[string]any, error) {
	data := map[string]any{}
	if _, err := b.Unmarshal(entityType, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Raw returns a copy of the underlying JSON document.
func (b *DataBag) Raw() []byte {
	out := make([]byte, len(b.doc))
	copy(out, b.doc)
	return out
}

// Update runs fn against a copy of the bag and keeps the copy only when fn
// succeeds, so a failed update leaves the bag untouched.
func (b *DataBag) Update(fn func(tx *DataBag) error) error {
	tx := &DataBag{doc: b.Raw()}
	if err := fn(tx); err != nil {
		return err
	}
	b.doc = tx.doc
	return nil
}
