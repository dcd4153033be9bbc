package contract

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fieldmap.yaml
var defaultFieldMap []byte

// FieldSpec maps one logical offer value to the candidate form field names
// it may be stored under, in priority order.
type FieldSpec struct {
	Key      string   `yaml:"key"`
	Variants []string `yaml:"variants"`
}

type fieldMapFile struct {
	Fields []FieldSpec `yaml:"fields"`
}

// DefaultFieldSpecs returns the built-in variant table.
func DefaultFieldSpecs() []FieldSpec {
	specs, err := ParseFieldSpecs(defaultFieldMap)
	if err != nil {
		panic(fmt.Sprintf("embedded field map: %v", err))
	}
	return specs
}

// ParseFieldSpecs decodes a YAML field map and rejects entries without a key.
func ParseFieldSpecs(data []byte) ([]FieldSpec, error) {
	var f fieldMapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse field map: %w", err)
	}
	for i, s := range f.Fields {
		if s.Key == "" {
			return nil, fmt.Errorf("parse field map: entry %d has no key", i)
		}
	}
	return f.Fields, nil
}

// LoadFieldSpecs reads an operator-provided field map, falling back to the
// built-in table when path is empty.
func LoadFieldSpecs(path string) ([]FieldSpec, error) {
	if path == "" {
		return DefaultFieldSpecs(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field map %s: %w", path, err)
	}
	return ParseFieldSpecs(data)
}
