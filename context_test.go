package ladder

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

func TestRebase(t *testing.T) {
	t.Run("appends the slot", func(t *testing.T) {
		ctx := NewContext().Rebase(2).Rebase(0).Rebase(7)
		if diff := cmp.Diff(Path{2, 0, 7}, ctx.Path()); diff != "" {
			t.Errorf("path (-want +got):\n%s", diff)
		}
	})

	t.Run("siblings never alias", func(t *testing.T) {
		parent := NewContext().Rebase(1)
		a := parent.Rebase(0)
		b := parent.Rebase(9)
		a.Rebase(5) // extend a's lineage; b must not see it
		if diff := cmp.Diff(Path{1, 0}, a.Path()); diff != "" {
			t.Errorf("a path (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(Path{1, 9}, b.Path()); diff != "" {
			t.Errorf("b path (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(Path{1}, parent.Path()); diff != "" {
			t.Errorf("parent path (-want +got):\n%s", diff)
		}
	})
}

func TestContextCopies(t *testing.T) {
	t.Run("WithPlatform leaves the parent alone", func(t *testing.T) {
		parent := NewContext().WithPlatform(Static{F: FamilyLinux, V: Version{6, 1}})
		child := parent.WithPlatform(Static{F: FamilyDarwin, V: Version{14, 0}})
		if parent.Platform().Family() != FamilyLinux {
			t.Error("parent platform mutated")
		}
		if child.Platform().Family() != FamilyDarwin {
			t.Error("child platform not applied")
		}
	})

	t.Run("WithStyle leaves the parent alone", func(t *testing.T) {
		parent := NewContext()
		child := parent.WithStyle(lipgloss.NewStyle().Bold(true))
		if parent.Style().GetBold() {
			t.Error("parent style mutated")
		}
		if !child.Style().GetBold() {
			t.Error("child style not applied")
		}
	})
}

func TestPathString(t *testing.T) {
	cases := []struct {
		p    Path
		want string
	}{
		{nil, ""},
		{Path{3}, "3"},
		{Path{1, 0, 12}, "1.0.12"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("Path%v.String() = %q, want %q", []int(c.p), got, c.want)
		}
	}
}

func TestNewContextUsesHost(t *testing.T) {
	p := NewContext().Platform()
	if p.Family() != Host().Family() {
		t.Errorf("root context family %v, host %v", p.Family(), Host().Family())
	}
}
