package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/thellimist/apigen/internal/apispec"
	"github.com/thellimist/apigen/internal/apperr"
	"github.com/thellimist/apigen/internal/metrics"
	"github.com/thellimist/apigen/internal/project"
)

// generateResponse is the success body for both generator endpoints.
type generateResponse struct {
	Message string `json:"message"`
	*project.Result
}

// handleFromJSON generates a project from a JSON spec list in the body.
func (s *Server) handleFromJSON(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	defer body.Close()

	specs, err := apispec.Decode(body, apispec.FormatJSON)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.generate(w, r, specs, r.URL.Query().Get("parentName"))
}

// handleFromFile generates a project from an uploaded spec file in the
// multipart field "file". YAML is accepted when the filename says so.
func (s *Server) handleFromFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		if tooLarge(err) {
			s.fail(w, err)
			return
		}
		s.fail(w, apperr.InvalidInput("failed to parse upload form: %v", err))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, apperr.InvalidInput("missing upload field %q", "file"))
		return
	}
	defer file.Close()

	specs, err := apispec.Decode(file, apispec.FormatFromPath(header.Filename))
	if err != nil {
		s.fail(w, fmt.Errorf("%s: %w", header.Filename, err))
		return
	}
	s.generate(w, r, specs, r.FormValue("parentName"))
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, specs []apispec.EndpointSpec, parent string) {
	if strings.TrimSpace(parent) == "" {
		parent = s.defaultParent
	}
	res, err := s.generator.Generate(r.Context(), specs, parent)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.metrics.ObserveGeneration(metrics.SourceHTTP, metrics.OutcomeOK, res.Endpoints)
	writeJSON(w, http.StatusOK, generateResponse{Message: res.Message(), Result: res})
}

// fail writes err as {"error": ...} with the status its kind maps to.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	if tooLarge(err) {
		status = http.StatusRequestEntityTooLarge
	}
	s.metrics.ObserveGeneration(metrics.SourceHTTP, apperr.Kind(err), 0)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	} else {
		s.logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
