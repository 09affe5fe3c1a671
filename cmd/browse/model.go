package browse

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/guiinfo/cmd/cli"
	"github.com/gigurra/guiinfo/cmd/gui/container"
	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/session"
	"github.com/mattn/go-runewidth"
)

var clipboardWriteAll = clipboard.WriteAll

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	label2Style   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// frameInterval paces Process calls; scrolling animates between them.
const frameInterval = 33 * time.Millisecond

type tickMsg time.Time

var keyActions = map[string]control.ActionID{
	"up":        control.ActionMoveUp,
	"down":      control.ActionMoveDown,
	"left":      control.ActionMoveLeft,
	"right":     control.ActionMoveRight,
	"pgup":      control.ActionPageUp,
	"pgdown":    control.ActionPageDown,
	"home":      control.ActionFirstPage,
	"end":       control.ActionLastPage,
	"enter":     control.ActionSelectItem,
	"esc":       control.ActionPreviousMenu,
	"backspace": control.ActionNavBack,
	"tab":       control.ActionNextLetter,
	"shift+tab": control.ActionPrevLetter,
}

type model struct {
	s       *session.Session
	footers []string
	width   int
	height  int
	frame   container.Frame
	status  string
}

func newModel(s *session.Session, footers []string, width, height int) model {
	return model{s: s, footers: footers, width: width, height: height, frame: s.Tick()}
}

func (m model) Init() tea.Cmd { return tickCmd() }

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+y":
			m.status = m.copyFocused()
		default:
			if id, ok := keyActions[key]; ok {
				m.s.OnAction(control.NewAction(id))
			} else if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
				m.s.OnAction(control.Action{ID: control.ActionUnicode, Unicode: msg.Runes[0]})
			}
		}
		m.frame = m.s.Tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		m.frame = m.s.Tick()
		return m, tickCmd()
	}
	return m, nil
}

func (m model) copyFocused() string {
	path := m.s.Label("ListItem.Path", nil)
	if path == "" {
		return "nothing to copy"
	}
	if err := clipboardWriteAll(path); err != nil {
		return "copy failed: " + err.Error()
	}
	return "copied " + path
}

func (m model) View() string {
	var b strings.Builder
	title := "guiinfo"
	if w := m.s.Windows.Window(0); w != nil {
		title = w.Name()
	}
	b.WriteString(headerStyle.Render(cli.Fit(title+"  "+m.s.Label("Container.Content", nil), m.width)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(m.width, 0)))
	b.WriteString("\n")

	rows, columns := m.grid()
	cell := m.width / max(columns, 1)
	for _, row := range rows {
		for _, it := range row {
			b.WriteString(renderItem(it, cell))
		}
		b.WriteString("\n")
	}
	for _, f := range m.footers {
		b.WriteString(footerStyle.Render(cli.Fit(m.s.Label(f, nil), m.width)))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(cli.Fit(m.status, m.width)))
	return b.String()
}

// grid groups the visible frame items into screen rows ordered by
// column.
func (m model) grid() ([][]container.FrameItem, int) {
	byRow := map[int][]container.FrameItem{}
	columns := 1
	for _, it := range m.frame.Items {
		if !it.OnScreen || !it.Visible {
			continue
		}
		r := int(math.Round(it.Pos))
		byRow[r] = append(byRow[r], it)
		columns = max(columns, it.Column+1)
	}
	keys := make([]int, 0, len(byRow))
	for r := range byRow {
		keys = append(keys, r)
	}
	sort.Ints(keys)
	rows := make([][]container.FrameItem, 0, len(keys))
	for _, r := range keys {
		row := byRow[r]
		sort.Slice(row, func(i, j int) bool { return row[i].Column < row[j].Column })
		rows = append(rows, row)
	}
	return rows, columns
}

func renderItem(it container.FrameItem, width int) string {
	var label, label2 string
	if len(it.Labels) > 0 {
		label = it.Labels[0]
	}
	if len(it.Labels) > 1 {
		label2 = it.Labels[1]
	}
	marker := "  "
	if it.Item != nil && it.Item.Selected {
		marker = selectedStyle.Render("• ")
	}
	label2 = runewidth.Truncate(label2, max(width/2-1, 0), "…")
	right := runewidth.StringWidth(label2)
	if right > 0 {
		right++
	}
	left := cli.Fit(label, max(width-2-right, 0))
	text := left
	if label2 != "" {
		text += " " + label2Style.Render(label2)
	}
	if it.Focused {
		return marker + focusedStyle.Render(left) + strings.TrimPrefix(text, left)
	}
	return marker + text
}
