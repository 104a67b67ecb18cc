package core

// EncodingMode selects how a tool's parameters are serialized for signing and for the wire.
type EncodingMode string

// Encoding modes supported by the request builder.
const (
	// EncodingStrict percent-escapes every key and value (RFC 3986) and drops null entries.
	EncodingStrict EncodingMode = "strict"
	// EncodingLenient relies on the generic form encoder and keeps null entries as "key=".
	EncodingLenient EncodingMode = "lenient"
)

// String returns the mode name.
func (m EncodingMode) String() string {
	return string(m)
}

// ParamType is the JSON type a tool argument accepts.
type ParamType string

// Parameter types understood by the tool schema generator.
const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamNumber  ParamType = "number"
	// ParamDecimal accepts a JSON number or a numeric string such as "0.001".
	ParamDecimal ParamType = "decimal"
	ParamBoolean ParamType = "boolean"
)

// ParamSpec describes one argument of a tool.
type ParamSpec struct {
	Name        string    `json:"name" yaml:"name" validate:"required"`
	Type        ParamType `json:"type" yaml:"type" validate:"oneof=string integer number decimal boolean"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// ToolSpec is the immutable description of one remote operation exposed as a tool.
type ToolSpec struct {
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Description string       `json:"description" yaml:"description" validate:"required"`
	Method      string       `json:"method" yaml:"method" validate:"oneof=GET POST PUT DELETE"`
	Path        string       `json:"path" yaml:"path" validate:"required,startswith=/fapi/"`
	Encoding    EncodingMode `json:"encoding" yaml:"encoding" validate:"oneof=strict lenient"`
	Params      []ParamSpec  `json:"params,omitempty" yaml:"params,omitempty" validate:"dive"`

	// OneOf lists groups of parameters of which at least one must be supplied.
	OneOf [][]string `json:"one_of,omitempty" yaml:"one_of,omitempty"`

	// Normalize applies operation-specific defaults after validation.
	Normalize func(Params) `json:"-" yaml:"-"`
}

// Param returns the named parameter spec.
func (t ToolSpec) Param(name string) (ParamSpec, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// RequiredParams returns the names of the required parameters in declaration order.
func (t ToolSpec) RequiredParams() []string {
	var names []string
	for _, p := range t.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// IsQuery reports whether the tool's parameters travel in the URL query string.
// Write-style verbs carry them in a form body instead.
func (t ToolSpec) IsQuery() bool {
	return IsQueryMethod(t.Method)
}

// IsQueryMethod reports whether an HTTP method sends its parameters as a query string.
func IsQueryMethod(method string) bool {
	return method == "GET" || method == "DELETE"
}
