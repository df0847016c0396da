package selector_test

import (
	"errors"
	"testing"

	"cssb/selector"
)

func TestSelector_SingleParts(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Selector
		want string
	}{
		{"element", selector.Element("a"), "a"},
		{"id", selector.ID("main"), "#main"},
		{"class", selector.Class("container"), ".container"},
		{"attribute", selector.Attr("disabled"), "[disabled]"},
		{"pseudo-class", selector.PseudoClass("hover"), ":hover"},
		{"pseudo-element", selector.PseudoElement("before"), "::before"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sel.Err(); err != nil {
				t.Fatalf("single part selector failed: %v", err)
			}
			if got := tt.sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_Chaining(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Selector
		want string
	}{
		{
			"id with classes",
			selector.ID("main").WithClass("container").WithClass("editable"),
			"#main.container.editable",
		},
		{
			"element attribute pseudo-class",
			selector.Element("a").WithAttribute(`href$=".png"`).WithPseudoClass("focus"),
			`a[href$=".png"]:focus`,
		},
		{
			"full arrangement",
			selector.Element("div").WithID("app").WithClass("wide").WithAttribute("lang=en").WithPseudoClass("hover").WithPseudoElement("after"),
			"div#app.wide[lang=en]:hover::after",
		},
		{
			"repeated attributes and pseudo-classes",
			selector.Class("btn").WithAttribute("type=submit").WithAttribute("form=login").WithPseudoClass("enabled").WithPseudoClass("focus"),
			".btn[type=submit][form=login]:enabled:focus",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sel.Err(); err != nil {
				t.Fatalf("chain failed: %v", err)
			}
			if got := tt.sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_DuplicateParts(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Selector
	}{
		{"second id", selector.ID("a").WithID("b")},
		{"second element", selector.Element("div").WithElement("span")},
		{"second pseudo-element", selector.PseudoElement("before").WithPseudoElement("after")},
		{"duplicate after classes", selector.Element("p").WithID("x").WithClass("c").WithID("y")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.sel.Err(), selector.ErrDuplicatePart) {
				t.Fatalf("Err() = %v, want ErrDuplicatePart", tt.sel.Err())
			}
			if got := tt.sel.String(); got != "" {
				t.Errorf("failed selector rendered %q, want empty", got)
			}
		})
	}
}

func TestSelector_OutOfOrderParts(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Selector
	}{
		{"element after class", selector.Class("c").WithElement("div")},
		{"id after attribute", selector.Attr("disabled").WithID("main")},
		{"class after pseudo-class", selector.Element("a").WithPseudoClass("hover").WithClass("link")},
		{"anything after pseudo-element", selector.PseudoElement("before").WithPseudoClass("hover")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.sel.Err(), selector.ErrOutOfOrder) {
				t.Fatalf("Err() = %v, want ErrOutOfOrder", tt.sel.Err())
			}
			if got := tt.sel.String(); got != "" {
				t.Errorf("failed selector rendered %q, want empty", got)
			}
		})
	}
}

func TestSelector_StickyError(t *testing.T) {
	s := selector.ID("a").WithID("b")
	if !errors.Is(s.Err(), selector.ErrDuplicatePart) {
		t.Fatalf("Err() = %v, want ErrDuplicatePart", s.Err())
	}

	// later calls are no-ops and do not replace the first violation
	s.WithClass("c").WithElement("div")
	if !errors.Is(s.Err(), selector.ErrDuplicatePart) {
		t.Errorf("Err() after further calls = %v, want ErrDuplicatePart", s.Err())
	}
	if got := s.String(); got != "" {
		t.Errorf("failed selector rendered %q, want empty", got)
	}
}

func TestSelector_SameKindTies(t *testing.T) {
	// equal rank is not "out of order" - ties within a kind are allowed for
	// the repeatable kinds
	s := selector.Class("a").WithClass("b").WithClass("c")
	if err := s.Err(); err != nil {
		t.Fatalf("chain failed: %v", err)
	}
	if got, want := s.String(), ".a.b.c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSelector_IdempotentRendering(t *testing.T) {
	s := selector.Element("a").WithAttribute(`href$=".png"`).WithPseudoClass("focus")
	first := s.String()
	second := s.String()
	if first != second {
		t.Errorf("repeated String() differs: %q vs %q", first, second)
	}
}

func TestSelector_ValueEmbeddedVerbatim(t *testing.T) {
	// malformed values are the caller's problem and pass through untouched
	s := selector.Attr(`data-x="a b"`)
	if got, want := s.String(), `[data-x="a b"]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range selector.KindNames() {
		k, err := selector.ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", name, err)
		}
		if k.String() != name {
			t.Errorf("ParseKind(%q).String() = %q", name, k.String())
		}
	}

	if _, err := selector.ParseKind("pseudoelement"); err == nil {
		t.Error("ParseKind() with unknown name should fail")
	}
}
