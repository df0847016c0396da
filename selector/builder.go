package selector

// Entry points for hand-written selector chains. Each starts a new compound
// selector seeded with a single part; with one part present neither the
// uniqueness nor the ordering check can fire.

// Element starts a selector with an element part: Element("a") -> "a".
func Element(value string) *Selector { return New(KindElement, value) }

// ID starts a selector with an id part: ID("main") -> "#main".
func ID(value string) *Selector { return New(KindID, value) }

// Class starts a selector with a class part: Class("editable") -> ".editable".
func Class(value string) *Selector { return New(KindClass, value) }

// Attr starts a selector with an attribute part: Attr("disabled") -> "[disabled]".
func Attr(value string) *Selector { return New(KindAttribute, value) }

// PseudoClass starts a selector with a pseudo-class part: PseudoClass("hover") -> ":hover".
func PseudoClass(value string) *Selector { return New(KindPseudoClass, value) }

// PseudoElement starts a selector with a pseudo-element part: PseudoElement("before") -> "::before".
func PseudoElement(value string) *Selector { return New(KindPseudoElement, value) }
