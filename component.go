package ladder

// BodyFunc produces a tier body. Thunks are evaluated on every access, so
// bodies behave as computed properties over whatever state they capture.
type BodyFunc func() View

// Levels declares a component's tier bodies, oldest to newest. A nil slot
// inherits the next older slot's body; a nil V1 is the empty view.
type Levels struct {
	V1, V2, V3, V4, V5 BodyFunc
}

// Component is a version-gated view: each render query selects exactly
// one of five tier bodies by testing platform minimums newest-first and
// delegates entirely to it. The component has no body of its own.
//
// A component holds no state beyond its declared thunks; every query is a
// pure function of (declared tiers, platform, context) and runs at most
// four predicate tests on the UI thread.
type Component struct {
	bodies   [tierCount]BodyFunc
	declared [tierCount]bool
}

// New builds the fallback chain once. An absent slot copies the previous
// slot's thunk, so an undeclared tier is value-identical to the nearest
// older declared tier. Resolution afterwards only tests declared tiers:
// skipping an inherited tier cannot change which body is selected.
func New(l Levels) *Component {
	c := &Component{}
	slots := [tierCount]BodyFunc{l.V1, l.V2, l.V3, l.V4, l.V5}
	prev := BodyFunc(func() View { return Empty{} })
	for i, fn := range slots {
		if fn != nil {
			c.declared[i] = true
			prev = fn
		}
		c.bodies[i] = prev
	}
	return c
}

// BodyAt returns the body for a tier, following the fallback chain. It is
// total: every tier resolves to a declared body or the empty view, and an
// out-of-range tier is treated as Tier1.
func (c *Component) BodyAt(t Tier) View {
	if t < Tier1 || t > Tier5 {
		t = Tier1
	}
	return c.bodies[t-1]()
}

// Declared reports whether the consumer supplied an explicit body for t.
// Hosts introspect this to see which tiers are reachable for a component.
func (c *Component) Declared(t Tier) bool {
	if t < Tier1 || t > Tier5 {
		return false
	}
	return c.declared[t-1]
}

// resolve picks the highest declared tier at or below top whose minimum
// the platform meets. Tier1 always applies, so resolution is total.
func (c *Component) resolve(p Platform, top Tier) Tier {
	for t := top; t > Tier1; t-- {
		if c.declared[t-1] && t.appliesTo(p) {
			return t
		}
	}
	return Tier1
}

// Body marks the no-direct-output contract: a gated component renders
// only through resolution. Render checks Primitive before Body, so
// reaching this panic means the host called outside the framework walk.
func (c *Component) Body() View {
	panic("ladder: version-gated component has no body of its own; render it through Render, RenderList, or Count")
}

// Output renders the resolved tier's body, with the context rebased onto
// that tier's slot.
func (c *Component) Output(ctx *Context) Output {
	t := c.resolve(ctx.Platform(), Tier5)
	return Render(c.BodyAt(t), ctx.Rebase(int(t)))
}

// ListOutput expands the resolved tier's body into sibling outputs. List
// resolution caps at Tier4: a tier-5 platform takes tier 4's list path.
func (c *Component) ListOutput(ctx *Context) []Output {
	t := c.resolve(ctx.Platform(), Tier4)
	return RenderList(c.BodyAt(t), ctx.Rebase(int(t)))
}

// ListCount counts the resolved tier's list output without expanding it.
// Counting starts at Tier2; below that floor the count is unknown.
func (c *Component) ListCount(ctx *Context) (int, bool) {
	t := c.resolve(ctx.Platform(), Tier4)
	if t < Tier2 {
		return 0, false
	}
	return Count(c.BodyAt(t), ctx.Rebase(int(t)))
}
