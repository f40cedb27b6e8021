package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk syntax of a config file.
type Format int

const (
	FormatRC Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "rc"
	}
}

// ErrReadOnlyFormat is returned when editing a YAML or TOML config file.
// Only the key=value rc format is edited in place.
var ErrReadOnlyFormat = errors.New("config: only key=value files can be edited")

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatRC
	}
}

// ReadFile reads the config file at path into a flat key/value map.
// Nested YAML mappings and TOML tables are flattened with '_' so that
//
//	log:
//	  level: debug
//
// reads as log_level=debug. Lists become comma separated values.
// A missing YAML or TOML file reads as empty; a missing rc file is created.
func ReadFile(path string) (map[string]string, error) {
	format := FormatOf(path)
	if format == FormatRC {
		lines, err := ReadLinesFrom(path)
		if err != nil {
			return nil, err
		}
		return Parse(lines)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		_, err = toml.Decode(string(data), &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decode %s %s: %w", format, path, err)
	}

	out := make(map[string]string, len(raw))
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "_" + k
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, scalar(item))
			}
			out[key] = strings.Join(parts, ",")
		default:
			out[key] = scalar(val)
		}
	}
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
