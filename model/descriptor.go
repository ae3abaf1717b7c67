// Package model holds the public data types shared by the console client:
// operation descriptors, call parameters, request/response envelopes,
// errors and enumerated field values.
package model

import "strings"

// Location says where a caller field lands in the outbound request.
type Location string

const (
	// InPath substitutes the value into a {placeholder} of the path template.
	InPath Location = "path"
	// InQuery appends the value to the query string.
	InQuery Location = "query"
	// InBody places the value in the JSON request body.
	InBody Location = "body"
)

// FieldMapping maps one caller-facing field name to its wire name and location.
type FieldMapping struct {
	Name     string   `json:"name"`
	WireName string   `json:"wire_name"`
	In       Location `json:"in"`
}

// OperationDescriptor is the static definition of one console endpoint.
// Descriptors are built once and never mutated; use Clone before handing
// one to code outside the catalog.
type OperationDescriptor struct {
	ID           string         `json:"id"`
	Method       string         `json:"method"`
	PathTemplate string         `json:"path_template"`
	Required     []string       `json:"required,omitempty"`
	Fields       []FieldMapping `json:"fields,omitempty"`
	// Accept overrides the default application/json Accept header.
	Accept string `json:"accept,omitempty"`
}

// Field returns the mapping for the given caller field name.
func (d OperationDescriptor) Field(name string) (FieldMapping, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldMapping{}, false
}

// FieldsIn returns the mappings placed at the given location, in declaration order.
func (d OperationDescriptor) FieldsIn(loc Location) []FieldMapping {
	var out []FieldMapping
	for _, f := range d.Fields {
		if f.In == loc {
			out = append(out, f)
		}
	}
	return out
}

// PathParams returns the placeholder names found in the path template.
func (d OperationDescriptor) PathParams() []string {
	var names []string
	rest := d.PathTemplate
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// Clone returns a deep copy of the descriptor.
func (d OperationDescriptor) Clone() OperationDescriptor {
	c := d
	if d.Required != nil {
		c.Required = append([]string(nil), d.Required...)
	}
	if d.Fields != nil {
		c.Fields = append([]FieldMapping(nil), d.Fields...)
	}
	return c
}
