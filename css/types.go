package css

// Declaration is a single CSS property declaration from a style rule block.
type Declaration struct {
	Property string
	Value    string
}

// Selector is a parsed simple selector. Only element, class and
// element.class shapes are supported - anything else is reported to the
// caller as a warning and kept in Raw only.
type Selector struct {
	Raw     string
	Element string
	Class   string
}

// IsSimple returns true if the selector was recognized as a supported shape.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

func (s Selector) String() string {
	if s.Class == "" {
		return s.Element
	}
	return s.Element + "." + s.Class
}
