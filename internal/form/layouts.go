package form

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout names of the built-in forms.
const (
	ContactLayout = "contact"
	OrderLayout   = "order"
)

//go:embed layouts/*.yaml
var layoutFS embed.FS

// Parse decodes a YAML form layout.
func Parse(data []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse form layout: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load returns a fresh instance of a built-in layout.
func Load(name string) (*Form, error) {
	data, err := layoutFS.ReadFile("layouts/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("form layout %q: %w", name, err)
	}
	return Parse(data)
}

// Contact returns a new, empty contact form.
func Contact() *Form { return mustLoad(ContactLayout) }

// Order returns a new, empty order form.
func Order() *Form { return mustLoad(OrderLayout) }

func mustLoad(name string) *Form {
	f, err := Load(name)
	if err != nil {
		panic(err)
	}
	return f
}
