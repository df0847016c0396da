package selector

import (
	"errors"
	"strings"
)

// Composition rule violations reported by Selector.Err. Matchable with
// errors.Is.
var (
	ErrDuplicatePart = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")
	ErrOutOfOrder    = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// Part is a single token of a compound selector. Immutable once appended.
type Part struct {
	Kind  Kind
	Value string
}

// String returns the decorated CSS token, e.g. "#main" for an id part. The
// value is embedded verbatim - syntax of the value itself is the caller's
// responsibility.
func (p Part) String() string {
	t := kindTokens[p.Kind]
	return t.prefix + p.Value + t.suffix
}

// Selector accumulates parts of one compound selector in rendering order.
//
// Part methods mutate the receiver and return it to allow chaining. The
// first composition violation sticks: subsequent part methods become no-ops,
// Err reports the violation and String renders to "" so a partial selector
// never leaks into output.
type Selector struct {
	parts []Part
	err   error
}

// New starts a compound selector from an explicit kind. The typed entry
// points (Element, ID, Class, ...) read better in hand-written chains; New
// exists for callers driven by parsed rule data.
func New(kind Kind, value string) *Selector {
	if !kind.valid() {
		// kinds come from the Kind* constants or ParseKind
		panic("invalid selector part kind")
	}
	return &Selector{parts: []Part{{Kind: kind, Value: value}}}
}

// With validates and appends one part. A selector always carries at least
// its seed part, so the ordering check compares against a non-empty tail.
func (s *Selector) With(kind Kind, value string) *Selector {
	if !kind.valid() {
		panic("invalid selector part kind")
	}
	if s.err != nil {
		return s
	}
	if kind.Unique() {
		for _, p := range s.parts {
			if p.Kind == kind {
				s.err = ErrDuplicatePart
				return s
			}
		}
	}
	if kind < s.parts[len(s.parts)-1].Kind {
		s.err = ErrOutOfOrder
		return s
	}
	s.parts = append(s.parts, Part{Kind: kind, Value: value})
	return s
}

// WithElement appends an element part ("div").
func (s *Selector) WithElement(value string) *Selector { return s.With(KindElement, value) }

// WithID appends an id part ("#main").
func (s *Selector) WithID(value string) *Selector { return s.With(KindID, value) }

// WithClass appends a class part (".container").
func (s *Selector) WithClass(value string) *Selector { return s.With(KindClass, value) }

// WithAttribute appends an attribute part ("[href$=\".png\"]").
func (s *Selector) WithAttribute(value string) *Selector { return s.With(KindAttribute, value) }

// WithPseudoClass appends a pseudo-class part (":focus").
func (s *Selector) WithPseudoClass(value string) *Selector { return s.With(KindPseudoClass, value) }

// WithPseudoElement appends a pseudo-element part ("::before").
func (s *Selector) WithPseudoElement(value string) *Selector { return s.With(KindPseudoElement, value) }

// Err returns the first composition violation, if any. Once set the selector
// is unusable - no later call can clear it.
func (s *Selector) Err() error {
	return s.err
}

// String renders the compound selector by concatenating part tokens in
// append order, without separators. A failed selector renders to "".
func (s *Selector) String() string {
	if s.err != nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range s.parts {
		sb.WriteString(p.String())
	}
	return sb.String()
}
