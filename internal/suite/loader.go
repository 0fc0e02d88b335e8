package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/lre/internal/schema"
)

// Load reads a suite file. Files ending in .json are decoded as JSON, all
// others as YAML. The document is validated against the suite schema before
// it is decoded.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	isJSON := strings.EqualFold(filepath.Ext(path), ".json")

	doc, err := genericDocument(data, isJSON)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := schema.ValidateSuite(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var s Suite
	if isJSON {
		err = json.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Base(path)
	s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	s.Path = path
	if s.Type == "" {
		s.Type = TypeFloat64
	}

	return &s, nil
}

// LoadDir loads every file in dir whose name matches pattern, sorted by name.
func LoadDir(dir, pattern string) ([]*Suite, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("suite directory: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid suite pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var suites []*Suite
	for _, path := range matches {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			continue
		}
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}

	return suites, nil
}

// genericDocument decodes data into plain JSON types for schema validation.
// YAML is round-tripped through JSON so numbers become float64 and mappings
// map[string]any.
func genericDocument(data []byte, isJSON bool) (any, error) {
	var doc any
	if isJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("unsupported YAML document: %w", err)
	}
	var out any
	if err := json.Unmarshal(asJSON, &out); err != nil {
		return nil, fmt.Errorf("unsupported YAML document: %w", err)
	}
	return out, nil
}
