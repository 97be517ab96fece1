package styles

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// MenuItemID returns a stable element id for a menu entry, derived from its
// title. Unlike CustomName this is a UI concern and wants URL/DOM safe text,
// so the title is slugged.
func MenuItemID(title string) string {
	return "menuitem-" + slug.Make(title)
}

// RenderTree renders a format tree as indented text, one entry per line.
// Used by diagnostics and the CLI; the actual menu UI is not drawn here.
func RenderTree(formats []Format) string {
	tw := treeWriter{w: &strings.Builder{}}
	tw.renderList(0, formats)
	return tw.String()
}

type treeWriter struct {
	w *strings.Builder
}

func (tw treeWriter) String() string {
	return tw.w.String()
}

func (tw treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) renderList(depth int, formats []Format) {
	for _, f := range formats {
		switch v := f.(type) {
		case Group:
			tw.line(depth, "+ %s [%s]", v.Title, MenuItemID(v.Title))
			tw.renderList(depth+1, v.Items)
		case Reference:
			tw.line(depth, "- %s -> %s%s", v.Title, v.Name, iconSuffix(v.Icon))
		case Separator:
			tw.line(depth, "---")
		case Inline:
			tw.line(depth, "- %s <%s>%s", v.Title, v.Tag, iconSuffix(v.Icon))
		case Block:
			tw.line(depth, "- %s <%s>%s", v.Title, v.Tag, iconSuffix(v.Icon))
		case SelectorStyle:
			tw.line(depth, "- %s {%s}%s", v.Title, v.Selector, iconSuffix(v.Icon))
		}
	}
}

func iconSuffix(icon string) string {
	if icon == "" {
		return ""
	}
	return " (icon: " + icon + ")"
}
