package styles

import "testing"

func TestDefaults_Shape(t *testing.T) {
	defaults := Defaults()

	wantGroups := []struct {
		title string
		count int
	}{
		{"Headings", 6},
		{"Inline", 7},
		{"Blocks", 4},
		{"Align", 4},
	}

	if len(defaults) != len(wantGroups) {
		t.Fatalf("Defaults() length = %d, want %d", len(defaults), len(wantGroups))
	}

	for i, want := range wantGroups {
		group, ok := defaults[i].(Group)
		if !ok {
			t.Fatalf("Defaults()[%d] is %T, want Group", i, defaults[i])
		}
		if group.Title != want.title {
			t.Errorf("group[%d].Title = %q, want %q", i, group.Title, want.title)
		}
		if len(group.Items) != want.count {
			t.Errorf("group %q has %d items, want %d", group.Title, len(group.Items), want.count)
		}
		for _, item := range group.Items {
			ref, ok := item.(Reference)
			if !ok {
				t.Fatalf("group %q contains %T, want Reference", group.Title, item)
			}
			if ref.Name == "" {
				t.Errorf("entry %q in group %q has no format name", ref.Title, group.Title)
			}
		}
	}
}

func TestDefaults_HeadingNames(t *testing.T) {
	headings := Defaults()[0].(Group)
	for i, item := range headings.Items {
		want := "h" + string(rune('1'+i))
		if ref := item.(Reference); ref.Name != want {
			t.Errorf("heading[%d].Name = %q, want %q", i, ref.Name, want)
		}
	}
}

func TestDefaults_IconsPresent(t *testing.T) {
	defaults := Defaults()
	for _, gi := range []int{1, 3} { // Inline and Align carry icons
		group := defaults[gi].(Group)
		for _, item := range group.Items {
			if ref := item.(Reference); ref.Icon == "" {
				t.Errorf("entry %q in group %q has no icon", ref.Title, group.Title)
			}
		}
	}
}

func TestDefaults_FreshCopy(t *testing.T) {
	first := Defaults()
	first[0] = Separator{}
	first = append(first, Separator{})

	second := Defaults()
	if len(second) != 4 {
		t.Fatalf("Defaults() length after caller append = %d, want 4", len(second))
	}
	if _, ok := second[0].(Group); !ok {
		t.Errorf("Defaults()[0] affected by caller mutation: %T", second[0])
	}
}
