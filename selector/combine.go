package selector

// Renderable is the capability shared by everything that renders itself into
// a selector string: a compound Selector leaf or a Combined expression.
type Renderable interface {
	// String renders the expression. A failed expression renders to "".
	String() string
	// Err reports the first composition violation inside the expression.
	Err() error
}

// Standard CSS combinators. Combine does not restrict the combinator to
// these four - any token is embedded verbatim.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	Sibling    = "~"
)

// Combined joins two renderable expressions with a combinator. It never
// mutates or flattens its children, so expressions nest arbitrarily deep.
type Combined struct {
	left       Renderable
	combinator string
	right      Renderable
}

// Combine wraps left and right into a composite expression:
//
//	Combine(Element("div").WithID("main"), Adjacent, Element("table").WithID("data"))
//
// renders to "div#main + table#data". Arguments are only read, never
// mutated, and either side may itself be a Combined.
func Combine(left Renderable, combinator string, right Renderable) *Combined {
	return &Combined{left: left, combinator: combinator, right: right}
}

// String renders "left combinator right", evaluating children lazily on
// every call. A combined expression with a failed child renders to "".
func (c *Combined) String() string {
	if c.Err() != nil {
		return ""
	}
	return c.left.String() + " " + c.combinator + " " + c.right.String()
}

// Err returns the first violation among children, left to right.
func (c *Combined) Err() error {
	if err := c.left.Err(); err != nil {
		return err
	}
	return c.right.Err()
}
