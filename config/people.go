package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Person is one entry of the Names section.
type Person struct {
	Name    string    `yaml:"-" validate:"required"`
	Partner string    `yaml:"Partner"`
	History []*string `yaml:"History"`
}

// People is the Names section in file order.
type People []Person

// UnmarshalYAML decodes the Names mapping while keeping key order. A name
// with no details (`Gus:`) is a single person without history.
func (p *People) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: Names must map each name to its details", value.Line)
	}

	out := make(People, 0, len(value.Content)/2)
	var (
		i      int
		key    *yaml.Node
		detail *yaml.Node
	)
	for i = 0; i+1 < len(value.Content); i += 2 {
		key, detail = value.Content[i], value.Content[i+1]

		var person Person
		if err := checkKeys(detail); err != nil {
			return fmt.Errorf("%s: %w", key.Value, err)
		}
		if detail.ShortTag() != "!!null" {
			if err := detail.Decode(&person); err != nil {
				return fmt.Errorf("line %d: %s: %w", detail.Line, key.Value, err)
			}
		}
		if err := key.Decode(&person.Name); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		out = append(out, person)
	}
	*p = out
	return nil
}

// checkKeys rejects unknown keys in a person's details.
func checkKeys(detail *yaml.Node) error {
	if detail.Kind != yaml.MappingNode {
		return nil
	}
	var i int
	for i = 0; i < len(detail.Content); i += 2 {
		switch detail.Content[i].Value {
		case "Partner", "History":
		default:
			return fmt.Errorf("line %d: unknown key %q", detail.Content[i].Line, detail.Content[i].Value)
		}
	}
	return nil
}
