package editor

import "stylekit/styles"

// RegisterCustomFormats makes every entry known to the formatting engine.
// Names already present are left alone, so repeating a pass is a no-op.
// When the engine is not constructed yet the whole pass is deferred to the
// editor init event instead of being dropped; otherwise it completes before
// returning.
func RegisterCustomFormats(ed *Editor, custom []styles.CustomFormat) {
	if len(custom) == 0 {
		return
	}
	register := func() {
		fr := ed.Formatter()
		for _, cf := range custom {
			if fr.Has(cf.Name) {
				continue
			}
			fr.Register(cf.Name, cf.Def)
		}
	}
	if ed.Formatter() == nil {
		ed.On(EventInit, register)
		return
	}
	register()
}

// StyleFormats produces the effective style menu tree for the editor.
// Without user configuration this is the built-in catalogue. Otherwise the
// user tree is normalized, its custom formats are handed to the engine
// (deferred if the engine is not up yet) and the result either extends or
// replaces the defaults depending on the merge setting.
func StyleFormats(ed *Editor) []styles.Format {
	user, ok := ed.Settings().UserStyleFormats()
	if !ok {
		return styles.Defaults()
	}
	custom, tree := styles.Resolve(user)
	RegisterCustomFormats(ed, custom)
	if ed.Settings().MergeStyleFormats() {
		return append(styles.Defaults(), tree...)
	}
	return tree
}
