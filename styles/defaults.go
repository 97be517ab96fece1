package styles

// Defaults returns the built-in style menu: headings, inline styles,
// block styles and alignment. All entries reference formats the formatting
// engine knows out of the box. A fresh tree is returned on every call so
// callers are free to append to it.
func Defaults() []Format {
	return []Format{
		Group{Title: "Headings", Items: []Format{
			Reference{Title: "Heading 1", Name: "h1"},
			Reference{Title: "Heading 2", Name: "h2"},
			Reference{Title: "Heading 3", Name: "h3"},
			Reference{Title: "Heading 4", Name: "h4"},
			Reference{Title: "Heading 5", Name: "h5"},
			Reference{Title: "Heading 6", Name: "h6"},
		}},
		Group{Title: "Inline", Items: []Format{
			Reference{Title: "Bold", Icon: "bold", Name: "bold"},
			Reference{Title: "Italic", Icon: "italic", Name: "italic"},
			Reference{Title: "Underline", Icon: "underline", Name: "underline"},
			Reference{Title: "Strikethrough", Icon: "strike-through", Name: "strikethrough"},
			Reference{Title: "Superscript", Icon: "superscript", Name: "superscript"},
			Reference{Title: "Subscript", Icon: "subscript", Name: "subscript"},
			Reference{Title: "Code", Icon: "sourcecode", Name: "code"},
		}},
		Group{Title: "Blocks", Items: []Format{
			Reference{Title: "Paragraph", Name: "p"},
			Reference{Title: "Blockquote", Name: "blockquote"},
			Reference{Title: "Div", Name: "div"},
			Reference{Title: "Pre", Name: "pre"},
		}},
		Group{Title: "Align", Items: []Format{
			Reference{Title: "Left", Icon: "align-left", Name: "alignleft"},
			Reference{Title: "Center", Icon: "align-center", Name: "aligncenter"},
			Reference{Title: "Right", Icon: "align-right", Name: "alignright"},
			Reference{Title: "Justify", Icon: "align-justify", Name: "alignjustify"},
		}},
	}
}
