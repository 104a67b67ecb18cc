package core

import "maps"

// Params maps parameter names to scalar values. A nil value marks an absent parameter.
type Params map[string]any

// Clone returns a shallow copy of the params.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

// Present returns a copy without nil entries.
func (p Params) Present() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// Has reports whether key is set to a non-nil value.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Request is a signed request ready for the transport.
// Query and Body hold already-encoded payloads that must be sent verbatim.
type Request struct {
	Tool    string            `json:"tool,omitempty"`
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   string            `json:"query,omitempty"`
	Body    string            `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetTool(name string) *Request {
	r.Tool = name
	return r
}

func (r *Request) SetQuery(query string) *Request {
	r.Query = query
	return r
}

func (r *Request) SetBody(body string) *Request {
	r.Body = body
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// URL returns the path with the encoded query string appended.
func (r *Request) URL() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}
