package validate

import (
	"strings"
	"testing"
)

type fakeField struct {
	value    string
	required bool
	typ      string
	marked   bool
	calls    int
}

func (f *fakeField) FieldValue() string { return f.value }
func (f *fakeField) IsRequired() bool   { return f.required }
func (f *fakeField) InputType() string  { return f.typ }
func (f *fakeField) SetError(invalid bool) {
	f.calls++
	f.marked = invalid
}

func TestValidate_RequiredBlankIsInvalid(t *testing.T) {
	v := New()
	for _, in := range []string{"", " ", "\t", "\n  \r"} {
		for _, typ := range []string{"text", TypeEmail, TypeTel, "textarea"} {
			f := &fakeField{value: in, required: true, typ: typ}
			if v.Validate(f) {
				t.Fatalf("Validate(%q, %s) = true; want false", in, typ)
			}
			if !f.marked {
				t.Fatalf("expected error marker for blank required %s field", typ)
			}
		}
	}
}

func TestValidate_OptionalBlankIsValid(t *testing.T) {
	v := New()
	for _, typ := range []string{"text", TypeEmail, TypeTel} {
		f := &fakeField{value: "   ", typ: typ, marked: true}
		if !v.Validate(f) {
			t.Fatalf("optional blank %s field should be valid", typ)
		}
		if f.marked {
			t.Fatalf("marker should be cleared on valid %s field", typ)
		}
	}
}

func TestCheck_Email(t *testing.T) {
	v := New()
	valid := []string{"a@b.c", "user@example.com", "first.last+tag@sub.domain.in", " x@y.z "}
	invalid := []string{"plain", "user.example.com", "@b.c", "a@", "a@b", "a b@c.d", "a@b@c.d", "a@b.", "a@.c.", "a@@b.c"}

	for _, s := range valid {
		if !v.Check(s, true, TypeEmail) {
			t.Errorf("email %q should be valid", s)
		}
	}
	for _, s := range invalid {
		if v.Check(s, true, TypeEmail) {
			t.Errorf("email %q should be invalid", s)
		}
	}
}

func TestCheck_EmailWithoutAtIsAlwaysInvalid(t *testing.T) {
	v := New()
	for _, s := range []string{"x", "x.y.z", "no-at-sign.example.com", "12345"} {
		if strings.Contains(s, "@") {
			t.Fatalf("bad fixture %q", s)
		}
		if v.Check(s, false, TypeEmail) {
			t.Errorf("value without @ %q accepted as email", s)
		}
	}
}

func TestCheck_PhoneLength(t *testing.T) {
	v := New()
	for n := 1; n <= 16; n++ {
		val := strings.Repeat("9", n)
		got := v.Check(val, true, TypeTel)
		if want := n == PhoneLength; got != want {
			t.Errorf("tel of length %d: got %v want %v", n, got, want)
		}
	}
	// only length matters, not format
	if !v.Check("98-765-432", true, TypeTel) {
		t.Fatalf("ten characters including dashes should pass the length rule")
	}
	// length is measured after trimming
	if !v.Check("  9876543210  ", true, TypeTel) {
		t.Fatalf("surrounding whitespace must not count toward the length")
	}
}

func TestCheck_OtherTypesOnlyRequired(t *testing.T) {
	v := New()
	if !v.Check("anything at all", true, "text") {
		t.Fatalf("text field with content should be valid")
	}
	if !v.Check("3", true, "number") {
		t.Fatalf("number field with content should be valid")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	v := New()
	fields := []*fakeField{
		{value: "bad-email", required: true, typ: TypeEmail},
		{value: "ok@aquablue.in", required: true, typ: TypeEmail},
		{value: "12345", required: true, typ: TypeTel},
		{value: "", required: true, typ: "text"},
	}
	for _, f := range fields {
		first, firstMark := v.Validate(f), f.marked
		second, secondMark := v.Validate(f), f.marked
		if first != second || firstMark != secondMark {
			t.Fatalf("validation not idempotent for %+v", f)
		}
		if f.calls != 2 {
			t.Fatalf("expected marker to be applied on each call, got %d", f.calls)
		}
	}
}
