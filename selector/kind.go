// Package selector builds compound CSS selector strings (div#id.class) and
// combined selector expressions. It only writes selectors - it does not
// parse CSS or match selectors against a document.
package selector

import (
	"fmt"
	"strings"
)

// Kind identifies a single compound selector part. Declaration order is the
// canonical arrangement of parts within a compound selector and is what the
// ordering check compares against.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// kindTokens maps a Kind to its name, its CSS token decoration and the
// uniqueness rule: element, id and pseudo-element may occur at most once per
// compound selector.
var kindTokens = [...]struct {
	name   string
	prefix string
	suffix string
	unique bool
}{
	KindElement:       {"element", "", "", true},
	KindID:            {"id", "#", "", true},
	KindClass:         {"class", ".", "", false},
	KindAttribute:     {"attribute", "[", "]", false},
	KindPseudoClass:   {"pseudo-class", ":", "", false},
	KindPseudoElement: {"pseudo-element", "::", "", true},
}

func (k Kind) valid() bool {
	return k >= KindElement && k <= KindPseudoElement
}

// String returns the kind name as used in rule files and diagnostics.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTokens[k].name
}

// Unique reports whether at most one part of this kind may appear in a
// compound selector.
func (k Kind) Unique() bool {
	return k.valid() && kindTokens[k].unique
}

// ParseKind converts a kind name to the corresponding Kind.
func ParseKind(name string) (Kind, error) {
	for k, t := range kindTokens {
		if t.name == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("'%s' is not a valid selector part kind (supported kinds: %s)", name, strings.Join(KindNames(), ", "))
}

// KindNames returns all kind names in canonical order.
func KindNames() []string {
	names := make([]string, len(kindTokens))
	for k, t := range kindTokens {
		names[k] = t.name
	}
	return names
}
