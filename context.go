package ladder

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Path identifies a call site in the render tree as slot indices from the
// root.
type Path []int

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

// Context is the framework-supplied render context: the call-site path
// plus configuration accumulated from ancestors. Contexts are immutable;
// With* and Rebase return copies.
type Context struct {
	path  Path
	plat  Platform
	style lipgloss.Style
}

// NewContext returns a root context resolving against the host platform.
func NewContext() *Context {
	return &Context{plat: Host()}
}

// Path returns the call-site path.
func (c *Context) Path() Path { return c.path }

// Platform returns the platform resolution runs against.
func (c *Context) Platform() Platform { return c.plat }

// Style returns the style inherited from ancestors.
func (c *Context) Style() lipgloss.Style { return c.style }

// WithPlatform returns a copy resolving against p.
func (c *Context) WithPlatform(p Platform) *Context {
	d := *c
	d.plat = p
	return &d
}

// WithStyle returns a copy whose descendants inherit s.
func (c *Context) WithStyle(s lipgloss.Style) *Context {
	d := *c
	d.style = s
	return &d
}

// Rebase returns a copy whose path descends into the given slot. The path
// is cloned so sibling contexts never alias.
func (c *Context) Rebase(slot int) *Context {
	d := *c
	d.path = append(append(make(Path, 0, len(c.path)+1), c.path...), slot)
	return &d
}
