package editor

import (
	"reflect"
	"testing"

	"stylekit/styles"
)

func TestFormatter_RegisterAndLookup(t *testing.T) {
	fr := newFormatter(nil)

	if fr.Has("loud") {
		t.Error("Has() on empty registry = true")
	}

	def := styles.Inline{Title: "Loud", Tag: "strong"}
	fr.Register("loud", def)

	if !fr.Has("loud") {
		t.Error("Has() after Register = false")
	}
	got, ok := fr.Get("loud")
	if !ok {
		t.Fatal("Get() after Register not found")
	}
	if !reflect.DeepEqual(got, def) {
		t.Errorf("Get() = %#v, want %#v", got, def)
	}
}

func TestFormatter_NamesKeepRegistrationOrder(t *testing.T) {
	fr := newFormatter(nil)
	fr.Register("b", styles.Inline{Tag: "b"})
	fr.Register("a", styles.Inline{Tag: "a"})
	fr.Register("c", styles.Inline{Tag: "c"})

	// Re-registration keeps the original position.
	fr.Register("a", styles.Inline{Tag: "em"})

	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(fr.Names(), want) {
		t.Errorf("Names() = %v, want %v", fr.Names(), want)
	}

	if def, _ := fr.Get("a"); def.(styles.Inline).Tag != "em" {
		t.Errorf("re-registration did not replace definition: %#v", def)
	}
}

func TestFormatter_ValidationIsAdvisory(t *testing.T) {
	fr := newFormatter(nil)

	// Broken styles and unsupported selectors must not prevent registration.
	tests := []struct {
		name string
		def  styles.Format
	}{
		{"bad declarations", styles.Inline{Title: "X", Tag: "span", Styles: "not a declaration block {{"}},
		{"combinator selector", styles.SelectorStyle{Title: "Y", Selector: "div > p", Styles: "color: red"}},
		{"missing selector", styles.SelectorStyle{Title: "Z", Styles: "color: red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := styles.CustomName(tt.name)
			fr.Register(name, tt.def)
			if !fr.Has(name) {
				t.Errorf("Register(%q) with invalid definition did not register", name)
			}
		})
	}
}
