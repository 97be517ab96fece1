// Package editor models the host editor side of the style machinery: the
// formatting engine registry, the editor lifecycle and the settings the
// style menu is built from.
package editor

import (
	"go.uber.org/zap"

	"stylekit/styles"
)

// EventInit fires once when the editor finished initialization and the
// formatting engine became available.
const EventInit = "init"

// Settings carries the user configuration the style menu consumes.
type Settings struct {
	// StyleFormats is the user supplied format tree. nil means "not
	// configured" and is distinct from an explicitly empty list.
	StyleFormats []styles.Format

	// MergeFormats appends user formats to the built-in catalogue instead
	// of replacing it.
	MergeFormats bool
}

// UserStyleFormats returns the configured format tree if there is one.
func (s Settings) UserStyleFormats() ([]styles.Format, bool) {
	return s.StyleFormats, s.StyleFormats != nil
}

// MergeStyleFormats reports whether user formats extend the defaults.
func (s Settings) MergeStyleFormats() bool {
	return s.MergeFormats
}

// Editor is a single editor instance. The formatting engine does not exist
// until Init runs; callbacks subscribed to EventInit before that run
// exactly once on the NotReady to Ready transition.
type Editor struct {
	settings  Settings
	formatter *Formatter
	log       *zap.Logger

	ready    bool
	handlers map[string][]func()
}

// New creates an uninitialized editor.
func New(settings Settings, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		settings: settings,
		log:      log.Named("editor"),
		handlers: make(map[string][]func()),
	}
}

// Settings returns the editor settings.
func (ed *Editor) Settings() Settings {
	return ed.settings
}

// Formatter returns the formatting engine registry, nil before Init.
func (ed *Editor) Formatter() *Formatter {
	return ed.formatter
}

// On subscribes fn to a lifecycle event. Subscriptions are one shot; when
// the event already fired fn runs immediately.
func (ed *Editor) On(event string, fn func()) {
	if event == EventInit && ed.ready {
		fn()
		return
	}
	ed.handlers[event] = append(ed.handlers[event], fn)
}

// Init constructs the formatting engine, seeds it with the built-in
// formats and fires pending init callbacks. Repeated calls are no-ops.
func (ed *Editor) Init() {
	if ed.ready {
		return
	}
	ed.formatter = newFormatter(ed.log)
	registerBuiltins(ed.formatter)
	ed.ready = true
	ed.log.Debug("Editor initialized", zap.Int("builtins", len(ed.formatter.Names())))
	ed.fire(EventInit)
}

func (ed *Editor) fire(event string) {
	fns := ed.handlers[event]
	delete(ed.handlers, event)
	for _, fn := range fns {
		fn()
	}
}
