package apperr

import (
	"errors"
	"io/fs"
	"net/http"
	"testing"
)

func TestFilesystemKeepsBothErrors(t *testing.T) {
	err := Filesystem("create dir", fs.ErrPermission)
	if !errors.Is(err, ErrFilesystem) {
		t.Errorf("expected ErrFilesystem in chain: %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected fs.ErrPermission in chain: %v", err)
	}
}

func TestHTTPStatusAndKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"nil", nil, http.StatusOK, "ok"},
		{"invalid input", InvalidInput("no specs"), http.StatusBadRequest, "invalid_input"},
		{"parse", Parse("body", errors.New("eof")), http.StatusBadRequest, "parse_error"},
		{"filesystem", Filesystem("write", errors.New("disk full")), http.StatusInternalServerError, "filesystem_error"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.status)
			}
			if got := Kind(tt.err); got != tt.kind {
				t.Errorf("Kind = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestInvalidInputMessage(t *testing.T) {
	err := InvalidInput("missing --%s", "inputFile")
	if got, want := err.Error(), "invalid input: missing --inputFile"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
