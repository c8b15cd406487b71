package form

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a form definition from its YAML representation. Field
// order in the document is preserved.
func ParseYAML(data []byte) (Definition, error) {
	if len(data) == 0 {
		return Definition{}, errors.New("form: yaml document is empty")
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("form: parse yaml definition: %w", err)
	}

	if err := validateDefinition(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func validateDefinition(def Definition) error {
	if len(def.Fields) == 0 {
		return errors.New("form: definition has no fields")
	}
	seen := make(map[string]struct{}, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return errors.New("form: field with empty name")
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("form: duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Kind {
		case FieldKindNumeric, FieldKindChoice:
		case "":
			return fmt.Errorf("form: field %q is missing a kind", f.Name)
		default:
			return fmt.Errorf("form: field %q has unknown kind %q", f.Name, f.Kind)
		}
		if f.Kind == FieldKindChoice && len(f.Choices) == 0 {
			return fmt.Errorf("form: choice field %q has no choices", f.Name)
		}
	}
	return nil
}
