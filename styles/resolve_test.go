package styles

import (
	"reflect"
	"testing"
)

func TestResolve_Empty(t *testing.T) {
	custom, out := Resolve(nil)
	if len(custom) != 0 {
		t.Errorf("Resolve(nil) custom = %v, want empty", custom)
	}
	if len(out) != 0 {
		t.Errorf("Resolve(nil) out = %v, want empty", out)
	}

	custom, out = Resolve([]Format{})
	if len(custom) != 0 || len(out) != 0 {
		t.Errorf("Resolve([]) = %v, %v, want empty, empty", custom, out)
	}
}

func TestResolve_Leaves(t *testing.T) {
	tests := []struct {
		name       string
		input      Format
		wantName   string
		wantOut    Format
		wantCustom int
	}{
		{
			name:       "inline",
			input:      Inline{Title: "Big Red", Icon: "x", Tag: "span", Styles: "color: red"},
			wantName:   "custom-big red",
			wantOut:    Reference{Title: "Big Red", Icon: "x", Name: "custom-big red"},
			wantCustom: 1,
		},
		{
			name:       "block without icon",
			input:      Block{Title: "Callout", Tag: "div", Styles: "border: 1px solid"},
			wantName:   "custom-callout",
			wantOut:    Reference{Title: "Callout", Name: "custom-callout"},
			wantCustom: 1,
		},
		{
			name:       "selector",
			input:      SelectorStyle{Title: "Table Row", Selector: "tr", Styles: "background: gray"},
			wantName:   "custom-table row",
			wantOut:    Reference{Title: "Table Row", Name: "custom-table row"},
			wantCustom: 1,
		},
		{
			name:       "title with punctuation is not slugged",
			input:      Inline{Title: "Q&A!", Tag: "span"},
			wantName:   "custom-q&a!",
			wantOut:    Reference{Title: "Q&A!", Name: "custom-q&a!"},
			wantCustom: 1,
		},
		{
			name:       "unicode title lowercased",
			input:      Inline{Title: "GRÜN", Tag: "span"},
			wantName:   "custom-grün",
			wantOut:    Reference{Title: "GRÜN", Name: "custom-grün"},
			wantCustom: 1,
		},
		{
			name:       "separator passes through",
			input:      Separator{},
			wantOut:    Separator{},
			wantCustom: 0,
		},
		{
			name:       "reference passes through",
			input:      Reference{Title: "Bold", Icon: "bold", Name: "bold"},
			wantOut:    Reference{Title: "Bold", Icon: "bold", Name: "bold"},
			wantCustom: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			custom, out := Resolve([]Format{tt.input})
			if len(out) != 1 {
				t.Fatalf("Resolve() out length = %d, want 1", len(out))
			}
			if !reflect.DeepEqual(out[0], tt.wantOut) {
				t.Errorf("Resolve() out = %#v, want %#v", out[0], tt.wantOut)
			}
			if len(custom) != tt.wantCustom {
				t.Fatalf("Resolve() custom length = %d, want %d", len(custom), tt.wantCustom)
			}
			if tt.wantCustom == 1 {
				if custom[0].Name != tt.wantName {
					t.Errorf("custom name = %q, want %q", custom[0].Name, tt.wantName)
				}
				if !reflect.DeepEqual(custom[0].Def, tt.input) {
					t.Errorf("custom def = %#v, want original %#v", custom[0].Def, tt.input)
				}
			}
		})
	}
}

func TestResolve_Nested(t *testing.T) {
	input := []Format{
		Group{Title: "My Styles", Items: []Format{
			Inline{Title: "One", Tag: "span"},
			Separator{},
			Group{Title: "Deep", Items: []Format{
				Block{Title: "Two", Tag: "div"},
			}},
			Reference{Title: "Bold", Name: "bold"},
		}},
		Inline{Title: "Three", Tag: "em"},
	}

	custom, out := Resolve(input)

	// Custom formats in depth first encounter order.
	wantNames := []string{"custom-one", "custom-two", "custom-three"}
	if len(custom) != len(wantNames) {
		t.Fatalf("custom length = %d, want %d", len(custom), len(wantNames))
	}
	for i, want := range wantNames {
		if custom[i].Name != want {
			t.Errorf("custom[%d].Name = %q, want %q", i, custom[i].Name, want)
		}
	}

	want := []Format{
		Group{Title: "My Styles", Items: []Format{
			Reference{Title: "One", Name: "custom-one"},
			Separator{},
			Group{Title: "Deep", Items: []Format{
				Reference{Title: "Two", Name: "custom-two"},
			}},
			Reference{Title: "Bold", Name: "bold"},
		}},
		Reference{Title: "Three", Name: "custom-three"},
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("out = %#v, want %#v", out, want)
	}
}

func TestCustomName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Big Red", "custom-big red"},
		{"CODE", "custom-code"},
		{"", "custom-"},
		{"Mixed Case Title", "custom-mixed case title"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := CustomName(tt.title); got != tt.want {
				t.Errorf("CustomName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
