package form

import "strconv"

// FieldKind is the simplified enum for the input kinds the collector and
// payload pipeline understand.
type FieldKind string

const (
	// FieldKindNumeric accepts free-form numeric input.
	FieldKindNumeric FieldKind = "numeric"
	// FieldKindChoice accepts one of a fixed set of encoded options.
	FieldKindChoice FieldKind = "choice"
)

// Choice pairs an encoded value with its display label. The encoded value is
// what travels in the payload; the label is only ever shown to the user.
type Choice struct {
	Value int    `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Raw returns the encoded value as the raw string a form entry would carry.
func (c Choice) Raw() string {
	return strconv.Itoa(c.Value)
}

// Bounds describes the inclusive range a numeric field should stay within.
// Bounds are advisory on the client: the serializer and validator do not
// enforce them, the prediction service does.
type Bounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Field models a single input in a prediction form.
type Field struct {
	Name    string    `yaml:"name" json:"name"`
	Label   string    `yaml:"label,omitempty" json:"label,omitempty"`
	Kind    FieldKind `yaml:"kind" json:"kind"`
	Choices []Choice  `yaml:"choices,omitempty" json:"choices,omitempty"`
	Bounds  *Bounds   `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Help    string    `yaml:"help,omitempty" json:"help,omitempty"`
}

// DisplayLabel returns the label to show for the field, falling back to the
// field name when no label was configured.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// ChoiceLabel resolves the display label for an encoded value. The second
// return reports whether the value is a known choice.
func (f Field) ChoiceLabel(value int) (string, bool) {
	for _, c := range f.Choices {
		if c.Value == value {
			return c.Label, true
		}
	}
	return "", false
}

// Definition is an ordered prediction form. Field order matters: it is the
// order values are collected, serialized, and validated in.
type Definition struct {
	Name   string  `yaml:"name" json:"name"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// FieldNames returns the field names in definition order.
func (d Definition) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// FieldByName looks a field up by name.
func (d Definition) FieldByName(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Entry is one collected form value: the field name and the raw string the
// user supplied. An empty Raw means the field was left blank.
type Entry struct {
	Name string
	Raw  string
}

// Entries is an ordered collection of form entries. Collectors must yield one
// entry per form field, blanks included, so downstream serialization never
// silently drops a field.
type Entries []Entry
