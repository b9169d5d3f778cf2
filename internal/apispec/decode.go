package apispec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thellimist/apigen/internal/apperr"
)

// Format is an input document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the decoder by file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a spec list from r. The document must be a sequence of spec
// objects; null entries decode as empty specs. Malformed input is reported
// as apperr.ErrParse.
func Decode(r io.Reader, format Format) ([]EndpointSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.Parse("reading spec document", err)
	}
	return decode(data, format)
}

// ParseFile reads and decodes the spec list at path.
func ParseFile(path string) ([]EndpointSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("apispec: reading %s: %w", path, err)
	}
	specs, err := decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("apispec: %s: %w", path, err)
	}
	return specs, nil
}

func decode(data []byte, format Format) ([]EndpointSpec, error) {
	var specs []EndpointSpec
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&specs); err != nil {
			if errors.Is(err, io.EOF) {
				// Empty document.
				return nil, nil
			}
			return nil, apperr.Parse("decoding yaml", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, apperr.Parse("decoding yaml", errors.New("unexpected document after spec list"))
		}
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&specs); err != nil {
			return nil, apperr.Parse("decoding json", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, apperr.Parse("decoding json", errors.New("unexpected data after spec list"))
		}
	default:
		return nil, apperr.Parse("decoding", fmt.Errorf("unknown format %q", format))
	}
	return specs, nil
}
