package configfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Config error kinds. Callers match with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("config file not found")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrParse             = errors.New("config parse error")
	ErrEmpty             = errors.New("config file is empty")
	ErrMissingField      = errors.New("missing required field")
)

// Format identifies a supported serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is a generic string-keyed configuration mapping.
type Document map[string]interface{}

// DetectFormat infers the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnsupportedFormat, path)
	}
}

// Read decodes the file at path into a Document. Format "yml" is accepted as
// an alias for yaml, matching the extensions DetectFormat recognizes.
func Read(path string, format Format) (Document, error) {
	switch Format(strings.ToLower(string(format))) {
	case "yml", FormatYAML:
		format = FormatYAML
	case FormatJSON:
		format = FormatJSON
	}
	if format != FormatYAML && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q (supported: yaml, json)", ErrUnsupportedFormat, format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType(string(format))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	settings := v.AllSettings()
	if len(settings) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return Document(settings), nil
}

// Write encodes the document to path, creating parent directories as needed.
// The format is inferred from the path extension.
func Write(path string, doc Document) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalidArgument)
	}
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidArgument)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
