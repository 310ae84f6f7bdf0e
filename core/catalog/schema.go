package catalog

import (
	"sort"
)

// JSONSchema is a raw json-schema object as reported by discovery.
type JSONSchema map[string]any

// SchemaField is one fully qualified field of a json-schema.
type SchemaField struct {
	Path   FieldPath
	Schema JSONSchema
}

// FieldsToSchema builds an object schema with one property per name/type pair.
// It mirrors what connectors emit for flat streams.
func FieldsToSchema(fields ...SchemaField) JSONSchema {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		if len(f.Path) == 0 {
			continue
		}
		props[f.Path[len(f.Path)-1]] = map[string]any(f.Schema.Clone())
	}
	return JSONSchema{
		"type":       "object",
		"properties": props,
	}
}

// Field is a shorthand for a top-level SchemaField of the given json type.
func Field(name, jsonType string) SchemaField {
	return SchemaField{Path: FieldPath{name}, Schema: JSONSchema{"type": jsonType}}
}

// SchemaFields returns every fully qualified field of the schema, walking nested
// "properties" objects. Results are sorted by path.
func SchemaFields(schema JSONSchema) []SchemaField {
	var fields []SchemaField
	collectFields(map[string]any(schema), nil, &fields)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Path.String() < fields[j].Path.String()
	})
	return fields
}

func collectFields(node map[string]any, prefix FieldPath, out *[]SchemaField) {
	props, ok := asObject(node["properties"])
	if !ok {
		return
	}
	for name, raw := range props {
		child, ok := asObject(raw)
		if !ok {
			continue
		}
		path := append(append(FieldPath{}, prefix...), name)
		*out = append(*out, SchemaField{Path: path, Schema: JSONSchema(child)})
		collectFields(child, path, out)
	}
}

// HasField reports whether the path resolves to a property of the schema.
func HasField(schema JSONSchema, path FieldPath) bool {
	_, ok := LookupField(schema, path)
	return ok
}

// LookupField returns the sub-schema at path.
func LookupField(schema JSONSchema, path FieldPath) (JSONSchema, bool) {
	if len(path) == 0 {
		return nil, false
	}
	node := map[string]any(schema)
	for _, segment := range path {
		props, ok := asObject(node["properties"])
		if !ok {
			return nil, false
		}
		child, ok := asObject(props[segment])
		if !ok {
			return nil, false
		}
		node = child
	}
	return JSONSchema(node), true
}

// Clone returns a deep copy of the schema. A nil schema stays nil.
func (s JSONSchema) Clone() JSONSchema {
	if s == nil {
		return nil
	}
	return JSONSchema(deepCopyObject(map[string]any(s)))
}

func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, t != nil
	case JSONSchema:
		return map[string]any(t), t != nil
	default:
		return nil, false
	}
}

func deepCopyObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return t
		}
		return deepCopyObject(t)
	case JSONSchema:
		return t.Clone()
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		if t == nil {
			return t
		}
		return append([]string{}, t...)
	default:
		return v
	}
}
