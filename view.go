// Package ladder is a version-gated view layer for terminal UIs. A
// component declares up to five ordered tier bodies, absent tiers inherit
// the next older tier, and each render query resolves exactly one tier
// against the running platform's version.
package ladder

import "github.com/charmbracelet/lipgloss"

// View is anything that can appear in a render tree. Composite views
// describe themselves in terms of another view via Body; primitives
// implement Primitive and produce output directly.
type View interface {
	Body() View
}

// Primitive is a view that produces output itself instead of delegating
// to a Body. Render checks for Primitive before consulting Body, so a
// primitive's Body is never called by the framework.
type Primitive interface {
	View
	Output(ctx *Context) Output
}

// ListPrimitive is a primitive that can expand into a sequence of sibling
// outputs.
type ListPrimitive interface {
	Primitive
	ListOutput(ctx *Context) []Output

	// ListCount reports how many outputs ListOutput would produce.
	// ok is false when the count is not statically knowable and the
	// caller must expand the list to count it.
	ListCount(ctx *Context) (n int, ok bool)
}

// Kind discriminates Output values.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindGroup
)

// Output is a structural render description. Text is already styled;
// composing outputs into terminal text happens in String.
type Output struct {
	Kind     Kind
	Text     string
	Children []Output
	Path     Path
}

// String flattens the output to terminal text. Group children join
// vertically; empty outputs contribute nothing.
func (o Output) String() string {
	switch o.Kind {
	case KindText:
		return o.Text
	case KindGroup:
		lines := make([]string, 0, len(o.Children))
		for _, c := range o.Children {
			if c.Kind == KindEmpty {
				continue
			}
			lines = append(lines, c.String())
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	return ""
}

// Leaf marks a view as having no Body. Embed it in primitives.
type Leaf struct{}

func (Leaf) Body() View { return nil }

// Empty is the view that produces nothing. It is the default tier-1 body
// of every gated component.
type Empty struct{ Leaf }

func (Empty) Output(ctx *Context) Output {
	return Output{Kind: KindEmpty, Path: ctx.Path()}
}

func (Empty) ListOutput(ctx *Context) []Output { return nil }

// ListCount for the empty view is unknown: the always-present baseline
// never claims a static count.
func (Empty) ListCount(ctx *Context) (int, bool) { return 0, false }

// Text is a styled text leaf. Its own style wins over whatever the
// context inherited from ancestors.
type Text struct {
	Leaf
	Content string
	Style   lipgloss.Style
}

func (t Text) Output(ctx *Context) Output {
	return Output{
		Kind: KindText,
		Text: t.Style.Inherit(ctx.Style()).Render(t.Content),
		Path: ctx.Path(),
	}
}

// Group composes ordered children. As a list it splices each child's own
// list output into one flat sequence of siblings.
type Group struct {
	Leaf
	Children []View
}

func (g Group) Output(ctx *Context) Output {
	out := Output{Kind: KindGroup, Path: ctx.Path()}
	out.Children = make([]Output, len(g.Children))
	for i, c := range g.Children {
		out.Children[i] = Render(c, ctx.Rebase(i))
	}
	return out
}

func (g Group) ListOutput(ctx *Context) []Output {
	var outs []Output
	for i, c := range g.Children {
		outs = append(outs, RenderList(c, ctx.Rebase(i))...)
	}
	return outs
}

// ListCount sums child counts and is unknown as soon as any child's
// count is unknown.
func (g Group) ListCount(ctx *Context) (int, bool) {
	total := 0
	for i, c := range g.Children {
		n, ok := Count(c, ctx.Rebase(i))
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// Render resolves v down to a primitive and returns its output. A nil
// view, or a Body chain ending in nil, renders as empty.
func Render(v View, ctx *Context) Output {
	for {
		if v == nil {
			return Output{Kind: KindEmpty, Path: ctx.Path()}
		}
		if p, ok := v.(Primitive); ok {
			return p.Output(ctx)
		}
		v = v.Body()
	}
}

// RenderList expands v into sibling outputs. A primitive without a list
// form is a single-element list.
func RenderList(v View, ctx *Context) []Output {
	for {
		if v == nil {
			return nil
		}
		if lp, ok := v.(ListPrimitive); ok {
			return lp.ListOutput(ctx)
		}
		if p, ok := v.(Primitive); ok {
			return []Output{p.Output(ctx)}
		}
		v = v.Body()
	}
}

// Count reports how many outputs RenderList would produce without
// expanding the list. A primitive without a list form counts exactly 1;
// a nil view, like Empty, has no static count.
func Count(v View, ctx *Context) (int, bool) {
	for {
		if v == nil {
			return 0, false
		}
		if lp, ok := v.(ListPrimitive); ok {
			return lp.ListCount(ctx)
		}
		if _, ok := v.(Primitive); ok {
			return 1, true
		}
		v = v.Body()
	}
}
