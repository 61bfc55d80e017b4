package invocation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Format is the encoding of an invocation file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type document struct {
	Invocations []ToolInvocation `json:"invocations"`
}

// Decode reads a list of invocations. The list is either the top-level value
// or the "invocations" field of a top-level object.
func Decode(r io.Reader, format Format) ([]ToolInvocation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read invocations: %w", err)
	}

	if format == FormatYAML {
		// Converting keeps mapping order, which is the order arguments are shown in.
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var invocations []ToolInvocation
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &invocations); err != nil {
			return nil, fmt.Errorf("failed to decode invocations: %w", err)
		}
	case '{':
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode invocations: %w", err)
		}
		invocations = doc.Invocations
	default:
		return nil, errors.New("invocations must be a list or an object with an \"invocations\" list")
	}

	// Missing ids stay empty; blocks for those records are keyed by position.
	return invocations, nil
}

// Load reads the invocations stored in path.
func Load(ctx context.Context, path string) ([]ToolInvocation, error) {
	_, span := otel.Tracer("toolview/invocation").Start(ctx, "invocation.Load")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	invocations, err := Decode(f, FormatForPath(path))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	span.SetAttributes(attribute.Int("invocations", len(invocations)))
	return invocations, nil
}
