// Package form models the contact and order forms as data: an ordered list
// of fields (document order) carrying required/type constraints and an
// error marker. It replaces the page's DOM for the submission orchestrator.
package form

import (
	"errors"
	"fmt"
	"strings"
)

// Field types understood by the forms. Only email and tel carry extra
// validation rules.
const (
	TypeText     = "text"
	TypeEmail    = "email"
	TypeTel      = "tel"
	TypeNumber   = "number"
	TypeDate     = "date"
	TypeSelect   = "select"
	TypeTextarea = "textarea"
)

// ErrUnknownField is returned when a value is set on a field the form does
// not declare.
var ErrUnknownField = errors.New("unknown form field")

// Field is a single form control.
type Field struct {
	Name     string   `yaml:"name"`
	Label    string   `yaml:"label"`
	Type     string   `yaml:"type"`
	Required bool     `yaml:"required"`
	Options  []string `yaml:"options,omitempty"`

	Value string `yaml:"-"`
	err   bool
}

// FieldValue implements validate.Target.
func (f *Field) FieldValue() string { return f.Value }

// IsRequired implements validate.Target.
func (f *Field) IsRequired() bool { return f.Required }

// InputType implements validate.Target.
func (f *Field) InputType() string { return f.Type }

// SetError implements validate.Target.
func (f *Field) SetError(invalid bool) { f.err = invalid }

// HasError reports whether the error marker is present.
func (f *Field) HasError() bool { return f.err }

// Form is a named set of fields plus the labels and identifiers the
// submission flow needs.
type Form struct {
	ID            string   `yaml:"id"`
	SuccessID     string   `yaml:"success_id"`
	OrderIDTarget string   `yaml:"order_id_target,omitempty"`
	Endpoint      string   `yaml:"endpoint"`
	SubmitLabel   string   `yaml:"submit_label"`
	LoadingLabel  string   `yaml:"loading_label"`
	Fields        []*Field `yaml:"fields"`
}

// Field returns the field called name, or nil.
func (f *Form) Field(name string) *Field {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld
		}
	}
	return nil
}

// Set assigns a value to the named field.
func (f *Form) Set(name, value string) error {
	fld := f.Field(name)
	if fld == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	fld.Value = value
	return nil
}

// Get returns the raw value of the named field, or "" when absent.
func (f *Form) Get(name string) string {
	if fld := f.Field(name); fld != nil {
		return fld.Value
	}
	return ""
}

// Required returns the fields carrying the required marker, in document
// order.
func (f *Form) Required() []*Field {
	out := make([]*Field, 0, len(f.Fields))
	for _, fld := range f.Fields {
		if fld.Required {
			out = append(out, fld)
		}
	}
	return out
}

// FirstError returns the first field in document order that carries the
// error marker, or nil.
func (f *Form) FirstError() *Field {
	for _, fld := range f.Fields {
		if fld.HasError() {
			return fld
		}
	}
	return nil
}

// Reset clears all values and error markers.
func (f *Form) Reset() {
	for _, fld := range f.Fields {
		fld.Value = ""
		fld.err = false
	}
}

// Clone returns a deep copy so a shared layout can back several
// independent form instances.
func (f *Form) Clone() *Form {
	cp := *f
	cp.Fields = make([]*Field, len(f.Fields))
	for i, fld := range f.Fields {
		c := *fld
		c.Options = append([]string(nil), fld.Options...)
		cp.Fields[i] = &c
	}
	return &cp
}

func (f *Form) check() error {
	if strings.TrimSpace(f.ID) == "" {
		return errors.New("form: id is required")
	}
	if !strings.HasPrefix(f.Endpoint, "/") {
		return fmt.Errorf("form %s: endpoint must start with '/'", f.ID)
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for i, fld := range f.Fields {
		if fld == nil || strings.TrimSpace(fld.Name) == "" {
			return fmt.Errorf("form %s: field %d has no name", f.ID, i)
		}
		if _, dup := seen[fld.Name]; dup {
			return fmt.Errorf("form %s: duplicate field %q", f.ID, fld.Name)
		}
		seen[fld.Name] = struct{}{}
		if fld.Type == "" {
			fld.Type = TypeText
		}
	}
	return nil
}
