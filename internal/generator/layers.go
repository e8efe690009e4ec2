package generator

import "strings"

// LayerKind says how a layer contributes to a JSX render tree.
type LayerKind int

const (
	// LayerWrapper encloses everything added after it and the leaf.
	LayerWrapper LayerKind = iota
	// LayerSibling renders next to the leaf, before it.
	LayerSibling
)

// Layer is an optional fragment producer for generated source. A layer is
// active when its identifier is selected (or always, when ID is empty).
type Layer struct {
	ID      string
	Kind    LayerKind
	Imports []string // import lines
	Setup   []string // module-level statements emitted after the imports
	Open    string   // wrapper opening tag
	Close   string   // wrapper closing tag
	Element string   // sibling element
}

// active reports whether l applies to the selection check has.
func (l Layer) active(has func(string) bool) bool {
	return l.ID == "" || has(l.ID)
}

// jsxTree renders wrappers, siblings and a leaf with an explicit stack, so
// every opened tag is closed in reverse order regardless of which layers
// are active.
type jsxTree struct {
	indent string
	depth  int
	lines  []string
	stack  []string
}

func newJSXTree(indent string, depth int) *jsxTree {
	return &jsxTree{indent: indent, depth: depth}
}

func (t *jsxTree) line(s string) {
	t.lines = append(t.lines, strings.Repeat(t.indent, t.depth+len(t.stack))+s)
}

// push opens a wrapper.
func (t *jsxTree) push(open, close string) {
	t.line(open)
	t.stack = append(t.stack, close)
}

// element adds a self-contained element at the current depth.
func (t *jsxTree) element(el string) {
	t.line(el)
}

// closeAll pops every open wrapper.
func (t *jsxTree) closeAll() {
	for len(t.stack) > 0 {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.line(top)
	}
}

// String returns the rendered lines joined by newlines.
func (t *jsxTree) String() string {
	return strings.Join(t.lines, "\n")
}

// composeJSX applies the active layers in precedence order: wrappers are
// pushed in order (first is outermost), siblings are emitted before the
// leaf inside the innermost wrapper.
func composeJSX(layers []Layer, has func(string) bool, leaf, indent string, depth int) string {
	t := newJSXTree(indent, depth)
	var siblings []string
	for _, l := range layers {
		if !l.active(has) {
			continue
		}
		switch l.Kind {
		case LayerWrapper:
			t.push(l.Open, l.Close)
		case LayerSibling:
			siblings = append(siblings, l.Element)
		}
	}
	for _, s := range siblings {
		t.element(s)
	}
	t.element(leaf)
	t.closeAll()
	return t.String()
}

// collectImports returns the import lines of the active layers in order.
func collectImports(layers []Layer, has func(string) bool) []string {
	var out []string
	for _, l := range layers {
		if l.active(has) {
			out = append(out, l.Imports...)
		}
	}
	return out
}

// collectSetup returns the setup statements of the active layers in order.
func collectSetup(layers []Layer, has func(string) bool) []string {
	var out []string
	for _, l := range layers {
		if l.active(has) {
			out = append(out, l.Setup...)
		}
	}
	return out
}
