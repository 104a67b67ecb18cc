package dispatch

import (
	"strconv"

	"fapimcp/pkg/core"
)

// DecimalPattern is the accepted form of a decimal passed as a string.
const DecimalPattern = `^-?[0-9]+(\.[0-9]+)?$`

// Schema returns the JSON Schema object describing tool's arguments.
func Schema(tool core.ToolSpec) map[string]any {
	properties := make(map[string]any, len(tool.Params))
	for _, p := range tool.Params {
		properties[p.Name] = paramSchema(p)
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if required := tool.RequiredParams(); len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func paramSchema(p core.ParamSpec) map[string]any {
	s := make(map[string]any)
	switch p.Type {
	case core.ParamDecimal:
		s["type"] = []string{"number", "string"}
		s["pattern"] = DecimalPattern
	default:
		s["type"] = string(p.Type)
	}
	if p.Description != "" {
		s["description"] = p.Description
	}
	if p.Default != nil {
		s["default"] = p.Default
	}
	if len(p.Enum) > 0 {
		s["enum"] = enumValues(p)
	}
	return s
}

// enumValues types the enum members to match the parameter type.
func enumValues(p core.ParamSpec) []any {
	out := make([]any, 0, len(p.Enum))
	for _, v := range p.Enum {
		if p.Type == core.ParamInteger {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				out = append(out, n)
				continue
			}
		}
		out = append(out, v)
	}
	return out
}
