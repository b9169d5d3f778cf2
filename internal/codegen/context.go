package codegen

import (
	"path"

	"github.com/thellimist/apigen/internal/apispec"
)

// Layout of the generated project, relative to the project root.
const (
	ServiceDir  = "generated-service"
	JavaPackage = "com.boa.generated"
)

var (
	javaDir      = path.Join(ServiceDir, "src", "main", "java", "com", "boa", "generated")
	resourcesDir = path.Join(ServiceDir, "src", "main", "resources")
)

// Output file paths, relative to the project root.
var (
	PomPath         = path.Join(ServiceDir, "pom.xml")
	ApplicationPath = path.Join(javaDir, "GeneratedServiceApplication.java")
	ControllerPath  = path.Join(javaDir, "GeneratedController.java")
	ServicePath     = path.Join(javaDir, "GeneratedBusinessService.java")
	ModelsPath      = path.Join(javaDir, "models.java")
	PropertiesPath  = path.Join(resourcesDir, "application.properties")
)

// File is one rendered output file. Path is slash-separated and relative
// to the project root.
type File struct {
	Path    string
	Content string
}

// renderContext holds all data the per-endpoint templates read.
type renderContext struct {
	Package   string             // Java package of every generated class
	Endpoints []apispec.Endpoint // Normalized endpoints, input order
	Models    []string           // Distinct placeholder class names
}

func newRenderContext(endpoints []apispec.Endpoint) renderContext {
	return renderContext{
		Package:   JavaPackage,
		Endpoints: endpoints,
		Models:    ModelTypes(endpoints),
	}
}
