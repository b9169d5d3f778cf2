package codegen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/thellimist/apigen/internal/apispec"
)

const (
	pomGroupID    = "com.boa"
	pomArtifactID = ServiceDir
)

// RenderPom renders the Maven build descriptor. The output is constant.
func RenderPom() (string, error) {
	data := struct{ GroupID, ArtifactID string }{pomGroupID, pomArtifactID}
	return execute(pomTemplate, data)
}

// RenderApplication renders the Spring Boot entry point.
func RenderApplication() (string, error) {
	return execute(applicationTemplate, JavaPackage)
}

// RenderProperties renders the runtime configuration: listen on any free port.
func RenderProperties() string {
	return "server.port=0\n"
}

// RenderController renders one request handler per endpoint, each
// delegating to the business service method of the same name and arguments.
func RenderController(endpoints []apispec.Endpoint) (string, error) {
	return execute(controllerTemplate, newRenderContext(endpoints))
}

// RenderService renders one placeholder business method per endpoint with
// the same name, parameters and return type as its handler.
func RenderService(endpoints []apispec.Endpoint) (string, error) {
	return execute(serviceTemplate, newRenderContext(endpoints))
}

// RenderModels renders one empty placeholder class per distinct
// non-generic return type.
func RenderModels(endpoints []apispec.Endpoint) (string, error) {
	return execute(modelsTemplate, newRenderContext(endpoints))
}

// ModelTypes returns the distinct return types that need a placeholder
// class, in first-seen order. The generic string type is excluded.
func ModelTypes(endpoints []apispec.Endpoint) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, e := range endpoints {
		if e.ReturnsGeneric() || e.ReturnType == "" {
			continue
		}
		if _, dup := seen[e.ReturnType]; dup {
			continue
		}
		seen[e.ReturnType] = struct{}{}
		types = append(types, e.ReturnType)
	}
	return types
}

// RenderAll renders every file of the generated project in write order.
func RenderAll(endpoints []apispec.Endpoint) ([]File, error) {
	type step struct {
		path   string
		render func() (string, error)
	}
	steps := []step{
		{PomPath, RenderPom},
		{ApplicationPath, RenderApplication},
		{ControllerPath, func() (string, error) { return RenderController(endpoints) }},
		{ServicePath, func() (string, error) { return RenderService(endpoints) }},
		{ModelsPath, func() (string, error) { return RenderModels(endpoints) }},
		{PropertiesPath, func() (string, error) { return RenderProperties(), nil }},
	}

	files := make([]File, 0, len(steps))
	for _, s := range steps {
		content, err := s.render()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s.path, err)
		}
		files = append(files, File{Path: s.path, Content: content})
	}
	return files, nil
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}
