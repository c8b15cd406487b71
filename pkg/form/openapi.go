package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI builds a form definition from the request body of the named
// operation inside an OpenAPI document. Integer and number properties become
// numeric fields (carrying minimum/maximum as bounds); enum properties become
// choice fields.
//
// kin-openapi exposes schema properties as an unordered map, so field order
// follows the schema's required list, with any remaining properties appended
// in name order.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (Definition, error) {
	if ctx == nil {
		return Definition{}, errors.New("form: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Definition{}, err
	}
	if len(data) == 0 {
		return Definition{}, errors.New("form: openapi document is empty")
	}
	if operationID == "" {
		return Definition{}, errors.New("form: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return Definition{}, fmt.Errorf("form: load openapi document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return Definition{}, fmt.Errorf("form: operation %q not found", operationID)
	}

	schema := requestSchema(operation)
	if schema == nil {
		return Definition{}, fmt.Errorf("form: operation %q has no request schema", operationID)
	}

	def := Definition{Name: operationID}
	for _, name := range orderedPropertyNames(schema) {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		field, err := fieldFromSchema(name, prop.Value)
		if err != nil {
			return Definition{}, err
		}
		def.Fields = append(def.Fields, field)
	}

	if err := validateDefinition(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func orderedPropertyNames(schema *openapi3.Schema) []string {
	ordered := make([]string, 0, len(schema.Properties))
	seen := make(map[string]struct{}, len(schema.Properties))
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func fieldFromSchema(name string, src *openapi3.Schema) (Field, error) {
	field := Field{
		Name:  name,
		Label: src.Title,
		Help:  src.Description,
	}

	if len(src.Enum) > 0 {
		field.Kind = FieldKindChoice
		for _, raw := range src.Enum {
			choice, err := choiceFromEnum(name, raw)
			if err != nil {
				return Field{}, err
			}
			field.Choices = append(field.Choices, choice)
		}
		return field, nil
	}

	switch firstType(src.Type) {
	case "integer", "number":
		field.Kind = FieldKindNumeric
		if src.Min != nil || src.Max != nil {
			bounds := &Bounds{}
			if src.Min != nil {
				bounds.Min = *src.Min
			}
			if src.Max != nil {
				bounds.Max = *src.Max
			}
			field.Bounds = bounds
		}
	default:
		// string-typed inputs still travel through the numeric path; the
		// serializer decides whether the raw value coerces.
		field.Kind = FieldKindNumeric
	}
	return field, nil
}

func choiceFromEnum(fieldName string, raw any) (Choice, error) {
	switch v := raw.(type) {
	case float64:
		return Choice{Value: int(v), Label: strconv.Itoa(int(v))}, nil
	case int:
		return Choice{Value: v, Label: strconv.Itoa(v)}, nil
	case int64:
		return Choice{Value: int(v), Label: strconv.FormatInt(v, 10)}, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Choice{}, fmt.Errorf("form: field %q has non-numeric enum value %q", fieldName, v)
		}
		return Choice{Value: n, Label: v}, nil
	default:
		return Choice{}, fmt.Errorf("form: field %q has unsupported enum value %T", fieldName, raw)
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
