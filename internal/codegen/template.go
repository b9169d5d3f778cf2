package codegen

import (
	"strings"
	"text/template"

	"github.com/thellimist/apigen/internal/apispec"
)

var funcs = template.FuncMap{
	"mapping":     mappingAnnotation,
	"params":      paramList,
	"boundParams": boundParamList,
	"callArgs":    callArgs,
	"javaString":  escapeJavaString,
}

var (
	pomTemplate         = template.Must(template.New("pom.xml").Parse(pomTemplateSource))
	applicationTemplate = template.Must(template.New("application").Parse(applicationTemplateSource))
	controllerTemplate  = template.Must(template.New("controller").Funcs(funcs).Parse(controllerTemplateSource))
	serviceTemplate     = template.Must(template.New("service").Funcs(funcs).Parse(serviceTemplateSource))
	modelsTemplate      = template.Must(template.New("models").Parse(modelsTemplateSource))
)

// mappingAnnotation returns the Spring routing annotation for a method.
func mappingAnnotation(m apispec.Method) string {
	switch m {
	case apispec.MethodPost:
		return "PostMapping"
	case apispec.MethodPut:
		return "PutMapping"
	case apispec.MethodDelete:
		return "DeleteMapping"
	default:
		return "GetMapping"
	}
}

// paramList renders "T1 n1, T2 n2" for the business service signature.
func paramList(params []apispec.Param) string {
	return joinParams(params, func(p apispec.Param) string {
		return p.Type + " " + p.Name
	})
}

// boundParamList renders the controller signature, binding each parameter
// to the request field of the same name.
func boundParamList(params []apispec.Param) string {
	return joinParams(params, func(p apispec.Param) string {
		return `@RequestParam("` + escapeJavaString(p.Name) + `") ` + p.Type + " " + p.Name
	})
}

// callArgs renders "n1, n2" for the delegating call.
func callArgs(params []apispec.Param) string {
	return joinParams(params, func(p apispec.Param) string {
		return p.Name
	})
}

func joinParams(params []apispec.Param, render func(apispec.Param) string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = render(p)
	}
	return strings.Join(parts, ", ")
}

// escapeJavaString escapes s for use inside a Java string literal.
func escapeJavaString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

const pomTemplateSource = `<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>
  <groupId>{{.GroupID}}</groupId>
  <artifactId>{{.ArtifactID}}</artifactId>
  <version>0.0.1-SNAPSHOT</version>
  <properties>
    <java.version>17</java.version>
    <spring.boot.version>3.2.0</spring.boot.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-dependencies</artifactId>
        <version>${spring.boot.version}</version>
        <type>pom</type>
        <scope>import</scope>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
  </dependencies>
  <build>
    <plugins>
      <plugin>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-maven-plugin</artifactId>
      </plugin>
    </plugins>
  </build>
</project>
`

const applicationTemplateSource = `package {{.}};

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class GeneratedServiceApplication {
    public static void main(String[] args) {
        SpringApplication.run(GeneratedServiceApplication.class, args);
    }
}
`

const controllerTemplateSource = `package {{.Package}};

import org.springframework.web.bind.annotation.*;
import org.springframework.beans.factory.annotation.Autowired;
import java.util.*;

@RestController
@RequestMapping("/api")
public class GeneratedController {

    @Autowired
    private GeneratedBusinessService business;

{{range .Endpoints}}    @{{mapping .Method}}("/{{javaString .Name}}")
    public {{.ReturnType}} {{.Name}}({{boundParams .Params}}) {
        return business.{{.Name}}({{callArgs .Params}});
    }

{{end}}}
`

const serviceTemplateSource = `package {{.Package}};

import org.springframework.stereotype.Service;

@Service
public class GeneratedBusinessService {

{{range .Endpoints}}    public {{.ReturnType}} {{.Name}}({{params .Params}}) {
        // Replace with real business logic; returns a placeholder.
{{- if .ReturnsGeneric}}
        return "OK: {{javaString .Name}}";
{{- else}}
        return new {{.ReturnType}}();
{{- end}}
    }

{{end}}}
`

const modelsTemplateSource = `package {{.Package}};

// Placeholder classes for the DTOs returned by GeneratedController.
{{range .Models}}
class {{.}} {
    // Add fields that match your returned object
    public {{.}}() {}
}
{{end}}`
