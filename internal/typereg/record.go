package typereg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Placeholder is printed for anything that cannot be resolved. A type may
// also be literally named "???" by the DWARF producer for unnamed base types.
const Placeholder = "???"

// Category is the kind of a type record.
type Category string

const (
	CategoryBase    Category = "base"
	CategoryStruct  Category = "struct"
	CategoryTypedef Category = "typedef"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBase, CategoryStruct, CategoryTypedef:
		return true
	}
	return false
}

// Target is the aliased type of a typedef record.
type Target struct {
	Raw      string // as recorded, e.g. "char*"
	Name     string // Raw without the indirection suffix
	Indirect bool   // Raw ends in "*" or "[]"
}

// ParseTarget splits an alias target into its name and indirection marker.
func ParseTarget(raw string) Target {
	t := Target{Raw: raw, Name: raw}
	switch {
	case strings.HasSuffix(raw, "*"):
		t.Name, t.Indirect = strings.TrimSuffix(raw, "*"), true
	case strings.HasSuffix(raw, "[]"):
		t.Name, t.Indirect = strings.TrimSuffix(raw, "[]"), true
	}
	return t
}

// Record is one (category, payload) pair. Size is the payload of base and
// struct records; Target is the payload of typedef records.
type Record struct {
	Category Category
	Size     int
	Target   Target
}

// Base returns a base type record.
func Base(size int) Record { return Record{Category: CategoryBase, Size: size} }

// Struct returns a struct record. A zero size marks an opaque struct.
func Struct(size int) Record { return Record{Category: CategoryStruct, Size: size} }

// Typedef returns a typedef record aliasing target.
func Typedef(target string) Record {
	return Record{Category: CategoryTypedef, Target: ParseTarget(target)}
}

// Sized reports whether the record carries a byte size.
func (r Record) Sized() bool { return r.Category != CategoryTypedef }

// Opaque reports whether r is a struct of unknown size.
func (r Record) Opaque() bool { return r.Category == CategoryStruct && r.Size == 0 }

// Equal reports whether two records are structurally identical.
func (r Record) Equal(o Record) bool {
	if r.Category != o.Category {
		return false
	}
	if r.Category == CategoryTypedef {
		return r.Target.Raw == o.Target.Raw
	}
	return r.Size == o.Size
}

// String formats the record the way descriptor files spell it.
func (r Record) String() string {
	if r.Category == CategoryTypedef {
		return fmt.Sprintf("[%q, %q]", r.Category, r.Target.Raw)
	}
	return fmt.Sprintf("[%q, %d]", r.Category, r.Size)
}

// MarshalJSON encodes the record as a two-element array.
// Typedef targets such as "<anonymous>" are written without HTML escaping.
func (r Record) MarshalJSON() ([]byte, error) {
	pair := []interface{}{r.Category, r.Size}
	if r.Category == CategoryTypedef {
		pair[1] = r.Target.Raw
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pair); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a two-element [category, payload] array.
func (r *Record) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("type record: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("type record: want [category, payload], got %d elements", len(pair))
	}
	var category Category
	if err := json.Unmarshal(pair[0], &category); err != nil {
		return fmt.Errorf("type record category: %w", err)
	}
	return r.decode(category, func(v interface{}) error { return json.Unmarshal(pair[1], v) })
}

// UnmarshalYAML decodes a two-element [category, payload] sequence.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("type record at line %d: want [category, payload]", node.Line)
	}
	var category Category
	if err := node.Content[0].Decode(&category); err != nil {
		return fmt.Errorf("type record category: %w", err)
	}
	return r.decode(category, node.Content[1].Decode)
}

// MarshalYAML encodes the record as a flow sequence.
func (r Record) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	payload := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(r.Size)}
	if r.Category == CategoryTypedef {
		payload = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Target.Raw}
	}
	n.Content = []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(r.Category)},
		payload,
	}
	return n, nil
}

func (r *Record) decode(category Category, payload func(interface{}) error) error {
	if !category.Valid() {
		return fmt.Errorf("type record: unknown category %q", category)
	}
	if category == CategoryTypedef {
		var target string
		if err := payload(&target); err != nil {
			return fmt.Errorf("typedef target: %w", err)
		}
		*r = Typedef(target)
		return nil
	}
	var size int
	if err := payload(&size); err != nil {
		return fmt.Errorf("%s size: %w", category, err)
	}
	*r = Record{Category: category, Size: size}
	return nil
}
