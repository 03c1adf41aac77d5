// Command ladderdemo renders one version-gated component under bubbletea
// and lets you walk the platform ladder interactively.
//
// Keys: 1-5 pin the platform to that tier's minimum for the current
// family, f cycles the family, h returns to the detected host platform,
// +/- drive the bound counter the tier bodies wrap, q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"ladder"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	tierStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	legendStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// state is the one piece of data the component's bodies wrap.
type state struct {
	requests int
}

type model struct {
	plat ladder.Platform
	fam  ladder.Family
	st   *state
	comp *ladder.Component
}

func newModel(plat ladder.Platform) model {
	st := &state{}
	count := ladder.Bind(&st.requests)

	comp := ladder.New(ladder.Levels{
		V1: func() ladder.View {
			return ladder.Text{Content: "requests: " + strconv.Itoa(count.Get())}
		},
		V2: func() ladder.View {
			return ladder.Group{Children: []ladder.View{
				ladder.Text{Content: "requests", Style: dimStyle},
				ladder.Text{Content: strconv.Itoa(count.Get())},
			}}
		},
		V4: func() ladder.View {
			return ladder.Group{Children: []ladder.View{
				ladder.Text{Content: "requests", Style: dimStyle},
				ladder.Text{Content: strconv.Itoa(count.Get()), Style: tierStyle},
				ladder.Text{Content: bar(count.Get()), Style: tierStyle},
			}}
		},
		V5: func() ladder.View {
			return ladder.Text{
				Content: fmt.Sprintf("requests %d %s", count.Get(), bar(count.Get())),
				Style:   titleStyle,
			}
		},
	})

	return model{plat: plat, fam: plat.Family(), st: st, comp: comp}
}

func bar(n int) string {
	if n > 40 {
		n = 40
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = '█'
	}
	return string(out)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4", "5":
		t := ladder.Tier(key.String()[0] - '0')
		m.plat = pinned(m.fam, t)
	case "f":
		m.fam = (m.fam + 1) % 3
		m.plat = pinned(m.fam, resolvedHint(m.comp, m.plat))
	case "h":
		m.plat = ladder.Host()
		m.fam = m.plat.Family()
	case "+", "=":
		m.st.requests++
	case "-":
		if m.st.requests > 0 {
			m.st.requests--
		}
	}
	return m, nil
}

// pinned returns a platform sitting exactly on tier t's minimum.
func pinned(f ladder.Family, t ladder.Tier) ladder.Platform {
	min, ok := t.Min(f)
	if !ok {
		return ladder.Static{F: f}
	}
	return ladder.Static{F: f, V: min}
}

// resolvedHint finds the highest tier whose render the platform would
// take, so switching family keeps roughly the same rung.
func resolvedHint(c *ladder.Component, p ladder.Platform) ladder.Tier {
	for t := ladder.Tier5; t > ladder.Tier1; t-- {
		min, ok := t.Min(p.Family())
		if ok && p.Version().AtLeast(min) {
			return t
		}
	}
	return ladder.Tier1
}

func (m model) View() string {
	ctx := ladder.NewContext().WithPlatform(m.plat)

	single := ladder.Render(m.comp, ctx)
	list := ladder.RenderList(m.comp, ctx)
	count, known := ladder.Count(m.comp, ctx)

	countLabel := "unknown"
	if known {
		countLabel = strconv.Itoa(count)
	}

	declared := ""
	for t := ladder.Tier1; t <= ladder.Tier5; t++ {
		mark := "·"
		if m.comp.Declared(t) {
			mark = strconv.Itoa(int(t))
		}
		declared += mark
	}

	header := titleStyle.Render("ladder demo") + dimStyle.Render(
		fmt.Sprintf("  %s %s  declared %s", m.plat.Family(), m.plat.Version(), declared))

	listLines := make([]string, 0, len(list))
	for _, o := range list {
		listLines = append(listLines, o.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		boxStyle.Render(single.String()),
		dimStyle.Render(fmt.Sprintf("list output: %d sibling(s), count query: %s", len(list), countLabel)),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, listLines...)),
		legendStyle.Render("1-5 pin tier · f family · h host · +/- requests · q quit"),
	)
}

func main() {
	configPath := flag.String("config", "", "TOML file pinning the starting platform")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ladderdemo: stdout is not a terminal")
		os.Exit(1)
	}

	plat := ladder.Host()
	if *configPath != "" {
		p, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ladderdemo: %v\n", err)
			os.Exit(1)
		}
		plat = p
	}

	if _, err := tea.NewProgram(newModel(plat), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ladderdemo: %v\n", err)
		os.Exit(1)
	}
}
