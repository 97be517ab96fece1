package styles

// Resolve normalizes a user supplied format tree into a renderable menu
// tree plus the flat list of custom formats the formatting engine has to
// learn before the menu can apply them by name.
//
// The walk is left to right, depth first, and preserves order exactly:
// groups recurse, inline/block/selector definitions are replaced by a
// reference to a freshly named custom format, everything else (separators
// and existing references) passes through unchanged. Resolve is pure -
// registration of the returned custom formats happens one layer up.
func Resolve(in []Format) (custom []CustomFormat, out []Format) {
	custom = []CustomFormat{}
	out = []Format{}

	for _, f := range in {
		switch v := f.(type) {
		case Group:
			sub, items := Resolve(v.Items)
			custom = append(custom, sub...)
			out = append(out, Group{Title: v.Title, Items: items})
		case Inline:
			name := CustomName(v.Title)
			custom = append(custom, CustomFormat{Name: name, Def: v})
			out = append(out, Reference{Title: v.Title, Icon: v.Icon, Name: name})
		case Block:
			name := CustomName(v.Title)
			custom = append(custom, CustomFormat{Name: name, Def: v})
			out = append(out, Reference{Title: v.Title, Icon: v.Icon, Name: name})
		case SelectorStyle:
			name := CustomName(v.Title)
			custom = append(custom, CustomFormat{Name: name, Def: v})
			out = append(out, Reference{Title: v.Title, Icon: v.Icon, Name: name})
		default:
			out = append(out, f)
		}
	}
	return custom, out
}
