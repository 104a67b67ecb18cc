// Package dispatch validates tool calls against the tool table and hands
// them to an executor.
package dispatch

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"fapimcp/pkg/core"
)

type entry struct {
	tool     core.ToolSpec
	declared map[string]bool
	schema   *gojsonschema.Schema
}

// Registry is an immutable, validated tool table with compiled argument schemas.
type Registry struct {
	order   []string
	entries map[string]*entry
}

// NewRegistry validates tools and compiles their schemas.
// Tool names must be unique and every one-of member must be a declared parameter.
func NewRegistry(tools []core.ToolSpec) (*Registry, error) {
	validate := validator.New()
	r := &Registry{
		entries: make(map[string]*entry, len(tools)),
	}

	for _, tool := range tools {
		if err := validate.Struct(tool); err != nil {
			return nil, fmt.Errorf("tool %q: %w", tool.Name, err)
		}
		if _, dup := r.entries[tool.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", tool.Name)
		}

		declared := make(map[string]bool, len(tool.Params))
		for _, p := range tool.Params {
			if declared[p.Name] {
				return nil, fmt.Errorf("tool %q: duplicate parameter %q", tool.Name, p.Name)
			}
			declared[p.Name] = true
		}
		for _, group := range tool.OneOf {
			if len(group) == 0 {
				return nil, fmt.Errorf("tool %q: empty one-of group", tool.Name)
			}
			for _, name := range group {
				if !declared[name] {
					return nil, fmt.Errorf("tool %q: one-of member %q is not a parameter", tool.Name, name)
				}
			}
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(Schema(tool)))
		if err != nil {
			return nil, fmt.Errorf("schema for %s: %w", tool.Name, err)
		}

		r.entries[tool.Name] = &entry{tool: tool, declared: declared, schema: schema}
		r.order = append(r.order, tool.Name)
	}

	return r, nil
}

// Lookup returns the named tool.
func (r *Registry) Lookup(name string) (core.ToolSpec, bool) {
	e, ok := r.entries[name]
	if !ok {
		return core.ToolSpec{}, false
	}
	return e.tool, true
}

// Tools returns the tools in registration order.
func (r *Registry) Tools() []core.ToolSpec {
	out := make([]core.ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].tool)
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
