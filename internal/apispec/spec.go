// Package apispec holds the endpoint descriptions that drive a generation
// run: the raw form decoded from JSON or YAML, and the normalized form every
// renderer consumes.
package apispec

import (
	"strings"

	"github.com/thellimist/apigen/internal/nameutil"
)

const (
	// GenericType is used for any parameter or return type left unspecified.
	GenericType = "String"
	// DefaultEndpointName replaces an empty or all-whitespace apiName.
	DefaultEndpointName = "unnamedApi"
	// DefaultParamName replaces a missing parameter name.
	DefaultParamName = "param"
)

// Method is an HTTP method supported by the generated controller.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod maps a method name, case-insensitively, to a supported
// Method. Anything unrecognized, including the empty string, is GET.
func ParseMethod(s string) Method {
	switch m := Method(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodPost, MethodPut, MethodDelete:
		return m
	default:
		return MethodGet
	}
}

// Parameter is one raw input parameter. Either field may be omitted.
type Parameter struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// EndpointSpec is one desired API operation as supplied by the caller.
type EndpointSpec struct {
	Name       string      `json:"apiName,omitempty" yaml:"apiName,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ReturnType string      `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Method     string      `json:"method,omitempty" yaml:"method,omitempty"`
}

// Param is a parameter with every default applied.
type Param struct {
	Name string
	Type string
}

// Endpoint is an EndpointSpec with every default applied. Renderers rely
// on all fields being populated.
type Endpoint struct {
	Name       string
	Params     []Param
	ReturnType string
	Method     Method
}

// ReturnsGeneric reports whether the endpoint returns the generic string type.
func (e Endpoint) ReturnsGeneric() bool {
	return e.ReturnType == GenericType
}

// Normalize applies the defaults for missing or blank fields.
func (s EndpointSpec) Normalize() Endpoint {
	e := Endpoint{
		Name:       nameutil.SanitizeIdentifier(s.Name, DefaultEndpointName),
		ReturnType: nameutil.OrDefault(s.ReturnType, GenericType),
		Method:     ParseMethod(s.Method),
	}
	if len(s.Parameters) > 0 {
		e.Params = make([]Param, len(s.Parameters))
		for i, p := range s.Parameters {
			e.Params[i] = Param{
				Name: nameutil.SanitizeIdentifier(p.Name, DefaultParamName),
				Type: nameutil.OrDefault(p.Type, GenericType),
			}
		}
	}
	return e
}

// Normalize normalizes every spec, preserving order.
func Normalize(specs []EndpointSpec) []Endpoint {
	endpoints := make([]Endpoint, len(specs))
	for i, s := range specs {
		endpoints[i] = s.Normalize()
	}
	return endpoints
}
