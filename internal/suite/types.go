// Package suite provides reference suites: candidate values produced by an
// implementation, checked against decimal reference literals and rendered as
// LRE tables.
package suite

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Numeric types a suite can be evaluated in.
const (
	TypeFloat32 = "float32"
	TypeFloat64 = "float64"
)

// Literal is a number exactly as written in a suite file. Keeping the text
// preserves the digits a reference specifies, including trailing zeros that a
// decoded float would lose.
type Literal string

// UnmarshalYAML keeps the scalar's source text, quoted or not.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: literal must be a scalar", node.Line)
	}
	*l = Literal(node.Value)
	return nil
}

// UnmarshalJSON accepts a string or a bare number and keeps its text.
func (l *Literal) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Literal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("literal must be a string or number: %w", err)
	}
	*l = Literal(text)
	return nil
}

// Case is one candidate checked against one reference.
type Case struct {
	Name       string  `json:"name" yaml:"name"`
	Field      string  `json:"field" yaml:"field"`
	Candidate  Literal `json:"candidate" yaml:"candidate"`
	Reference  Literal `json:"reference" yaml:"reference"`
	Exact      bool    `json:"exact,omitempty" yaml:"exact,omitempty"`
	Digits     float64 `json:"digits,omitempty" yaml:"digits,omitempty"` // 0 = as many as the reference allows
	Annotation string  `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// Suite is one suite file. All its cases render into one table.
type Suite struct {
	Name        string `json:"-" yaml:"-"` // File name without extension
	Path        string `json:"-" yaml:"-"`
	Table       string `json:"table" yaml:"table"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Exact       bool   `json:"exact,omitempty" yaml:"exact,omitempty"` // Applies to every case
	Cases       []Case `json:"cases" yaml:"cases"`
}
