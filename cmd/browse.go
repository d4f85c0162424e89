package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive asset browser",
	Long: `Launch a full-screen interactive browser over the active libraries.

The browser provides:
- Result list recomputed on every keystroke of the query
- Category and library filter cycling
- Detail pane for the selected asset
- Quick actions: open link, delete

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Actions:
    Enter       Open asset's first link
    d           Delete asset
    c           Cycle category filter
    L           Cycle library filter

  Views:
    /           Search mode
    Esc         Clear search / Exit mode
    ?           Show help

  General:
    q           Quit browser
    Ctrl+C      Force quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	paths, err := activePaths()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println(ui.FormatWarning("No active libraries"))
		fmt.Println(ui.FormatInfo("Register one with: pinlib lib add <name> <path>"))
		return nil
	}

	m := newBrowseModel(ctx, paths)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}

// Browser view modes
type browseMode int

const (
	browseModeList browseMode = iota
	browseModeSearch
	browseModeHelp
	browseModeConfirmDelete
)

// Browser model
type browseModel struct {
	ctx          context.Context
	paths        []string // active library roots
	matches      []domain.Match
	skipped      int
	categories   []string // union across libraries; index 0 is "all"
	catIndex     int
	libIndex     int // 0 = all libraries, i selects paths[i-1]
	cursor       int
	offset       int
	mode         browseMode
	searchInput  textinput.Model
	help         help.Model
	keys         browseKeyMap
	detail       viewport.Model
	width        int
	height       int
	ready        bool
	message      string
	messageStyle lipgloss.Style
	messageUntil time.Time
}

// Key bindings
type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Delete   key.Binding
	Category key.Binding
	Library  key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Category, k.Search, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Delete, k.Category, k.Library},
		{k.Search, k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open link"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cycle category"),
	),
	Library: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "cycle library"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

func newBrowseModel(ctx context.Context, paths []string) browseModel {
	ti := textinput.New()
	ti.Placeholder = "keywords key:value [tag]..."
	ti.CharLimit = 200
	ti.Width = 50

	vp := viewport.New(60, 20)

	m := browseModel{
		ctx:         ctx,
		paths:       paths,
		searchInput: ti,
		help:        help.New(),
		keys:        browseKeys,
		detail:      vp,
		categories:  append([]string{""}, queryService.Categories(ctx, paths)...),
	}
	m.applyQuery()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

// statusBrowseMsg carries a transient footer message
type statusBrowseMsg struct {
	message string
	style   lipgloss.Style
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		detailWidth := (msg.Width / 2) - 4
		detailHeight := msg.Height - 12
		if detailHeight < 8 {
			detailHeight = 8
		}
		m.detail.Width = detailWidth
		m.detail.Height = detailHeight
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case browseModeSearch:
			return m.updateSearch(msg)
		case browseModeHelp:
			return m.updateHelp(msg)
		case browseModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}

	case statusBrowseMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageUntil = time.Now().Add(3 * time.Second)
		return m, nil
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
			m.refreshDetail()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			m.adjustViewport()
			m.refreshDetail()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0
		m.refreshDetail()

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.matches) - 1
		m.adjustViewport()
		m.refreshDetail()

	case msg.Type == tea.KeyPgUp:
		m.detail.ViewUp()

	case msg.Type == tea.KeyPgDown:
		m.detail.ViewDown()

	case key.Matches(msg, m.keys.Open):
		if len(m.matches) > 0 {
			return m, m.openFirstLink(m.matches[m.cursor])
		}

	case key.Matches(msg, m.keys.Delete):
		if len(m.matches) > 0 {
			m.mode = browseModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Category):
		m.catIndex = (m.catIndex + 1) % len(m.categories)
		m.applyQuery()

	case key.Matches(msg, m.keys.Library):
		m.libIndex = (m.libIndex + 1) % (len(m.paths) + 1)
		m.applyQuery()

	case key.Matches(msg, m.keys.Search):
		m.mode = browseModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = browseModeHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = browseModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applyQuery()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = browseModeList
		m.searchInput.Blur()
		return m, nil

	// Only use arrow keys for navigation in search mode, not j/k
	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
			m.refreshDetail()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			m.adjustViewport()
			m.refreshDetail()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		// Recompute results on every keystroke
		m.applyQuery()
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = browseModeList
	}
	return m, nil
}

func (m browseModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = browseModeList
		if len(m.matches) > 0 {
			match := m.matches[m.cursor]
			m.deleteAsset(match)
			m.applyQuery()
		}

	case key.Matches(msg, m.keys.Cancel):
		m.mode = browseModeList
	}
	return m, nil
}

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Loading browser..."
	}

	switch m.mode {
	case browseModeHelp:
		return m.viewHelp()
	case browseModeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewList() string {
	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	listWidth := int(float64(m.width) * 0.45)
	if listWidth < 30 {
		listWidth = 30
	}
	detailWidth := m.width - listWidth - 2

	listContent := m.renderMatchList(listWidth)
	detailContent := m.renderDetail(detailWidth)

	listLines := strings.Split(listContent, "\n")
	detailLines := strings.Split(detailContent, "\n")

	maxLines := len(listLines)
	if len(detailLines) > maxLines {
		maxLines = len(detailLines)
	}

	for i := 0; i < maxLines; i++ {
		var listLine, detailLine string
		if i < len(listLines) {
			listLine = listLines[i]
		}
		if i < len(detailLines) {
			detailLine = detailLines[i]
		}
		s.WriteString(padRight(listLine, listWidth))
		s.WriteString("  ")
		s.WriteString(detailLine)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m browseModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	category := "all categories"
	if m.categories[m.catIndex] != "" {
		category = "category: " + m.categories[m.catIndex]
	}

	library := fmt.Sprintf("%d libraries", len(m.paths))
	if m.libIndex > 0 {
		library = "library: " + filepath.Base(m.paths[m.libIndex-1])
	}

	title := titleStyle.Render(ui.IconLibrary + " Asset Browser")
	stats := statsStyle.Render(fmt.Sprintf("%d results  %s  %s", len(m.matches), category, library))

	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacer),
		stats,
	)
}

func (m browseModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == browseModeSearch {
		borderColor = ui.ColorPrimary
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 4)

	prompt := ui.StyleMuted.Render("🔍 ")
	if m.mode == browseModeSearch {
		prompt = ui.StylePrimary.Render("🔍 ")
	}

	content := prompt + m.searchInput.View()
	if m.mode != browseModeSearch && m.searchInput.Value() == "" {
		content = prompt + ui.StyleMuted.Render("Press / to search...")
	}

	return searchStyle.Render(content)
}

func (m browseModel) renderMatchList(width int) string {
	var s strings.Builder

	if len(m.matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(2, 2).
			Width(width)

		if m.searchInput.Value() != "" {
			s.WriteString(emptyStyle.Render("No assets match your query."))
		} else {
			s.WriteString(emptyStyle.Render("No assets found."))
		}
		return s.String()
	}

	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	start := m.offset
	end := m.offset + listHeight
	if end > len(m.matches) {
		end = len(m.matches)
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderMatchItem(m.matches[i], i == m.cursor, width))
	}

	return s.String()
}

func (m browseModel) renderMatchItem(match domain.Match, selected bool, width int) string {
	var cursor string
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)

	if selected {
		cursor = ui.StylePrimary.Render("▶ ")
		nameStyle = ui.StylePrimary.Copy().Bold(true)
	} else {
		cursor = "  "
	}

	maxNameLen := width - 20
	if maxNameLen < 10 {
		maxNameLen = 10
	}

	name := ui.Truncate(match.Asset.Name, maxNameLen)

	line := fmt.Sprintf("%s%-*s %s",
		cursor,
		maxNameLen,
		nameStyle.Render(name),
		ui.StyleMuted.Render(match.Library),
	)

	return padRight(line, width) + "\n"
}

func (m browseModel) renderDetail(width int) string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(width - 2).
		Height(m.height - 12)

	if len(m.matches) == 0 {
		return borderStyle.Render(
			lipgloss.NewStyle().
				Foreground(ui.ColorMuted).
				Italic(true).
				Padding(1).
				Render("No asset selected"),
		)
	}

	return borderStyle.Render(m.detail.View())
}

func (m browseModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageUntil) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}

	if m.skipped > 0 {
		statusLine += ui.StyleWarning.Render(fmt.Sprintf("  (%d libraries unreadable)", m.skipped))
	}

	helpHint := ui.StyleMuted.Render("[↑↓/jk] Navigate  [Enter/o] Open Link  [c] Category  [L] Library  [d] Delete  [/] Search  [?] Help  [q] Quit")

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return footerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, helpHint))
}

func (m browseModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorAccent).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorSuccess).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault)

	s.WriteString(titleStyle.Render("Asset Browser - Keyboard Shortcuts"))
	s.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{
			title: "Navigation",
			keys: []struct{ key, desc string }{
				{"↑ / k", "Move cursor up"},
				{"↓ / j", "Move cursor down"},
				{"g", "Jump to top"},
				{"G", "Jump to bottom"},
			},
		},
		{
			title: "Actions",
			keys: []struct{ key, desc string }{
				{"Enter / o", "Open the asset's first link"},
				{"d", "Delete asset (with confirmation)"},
				{"c", "Cycle category filter"},
				{"L", "Cycle library filter"},
			},
		},
		{
			title: "Search",
			keys: []struct{ key, desc string }{
				{"/", "Start search (results update as you type)"},
				{"Esc", "Clear search / Cancel"},
			},
		},
		{
			title: "General",
			keys: []struct{ key, desc string }{
				{"PgUp/PgDn", "Scroll detail pane"},
				{"q", "Quit browser"},
				{"Ctrl+C", "Force quit"},
			},
		},
	}

	for _, section := range sections {
		s.WriteString(sectionStyle.Render(section.title))
		s.WriteString("\n")
		for _, binding := range section.keys {
			s.WriteString("  ")
			s.WriteString(keyStyle.Render(binding.key))
			s.WriteString(descStyle.Render(binding.desc))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return to the browser"))
	s.WriteString("\n")

	return s.String()
}

func (m browseModel) viewConfirmDelete() string {
	if len(m.matches) == 0 {
		return ""
	}
	match := m.matches[m.cursor]

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(60).
		Align(lipgloss.Center)

	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorWarning).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true)

	promptStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault).
		MarginTop(1)

	content := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		titleStyle.Render("Delete Asset?"),
		nameStyle.Render(match.Asset.Name),
		ui.StyleMuted.Render(match.Library),
		promptStyle.Render("Press 'y' to confirm, 'n' or ESC to cancel"),
	)

	box := boxStyle.Render(content)

	var s strings.Builder
	verticalPadding := (m.height - lipgloss.Height(box)) / 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}
	for i := 0; i < verticalPadding; i++ {
		s.WriteString("\n")
	}
	s.WriteString(lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, box))

	return s.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// padRight pads a rendered line to a fixed display width
func padRight(s string, width int) string {
	// Strip ANSI codes to get real length
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

func (m *browseModel) adjustViewport() {
	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// applyQuery recomputes the result set from the current search string
// and category filter
func (m *browseModel) applyQuery() {
	var categories []string
	if m.categories[m.catIndex] != "" {
		categories = []string{m.categories[m.catIndex]}
	}

	paths := m.paths
	if m.libIndex > 0 {
		paths = m.paths[m.libIndex-1 : m.libIndex]
	}

	resp, err := queryService.Execute(m.ctx, services.QueryRequest{
		Raw:        m.searchInput.Value(),
		Categories: categories,
		Paths:      paths,
	})
	if err == nil {
		m.matches = resp.Results
		m.skipped = resp.Skipped
	}

	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
	m.refreshDetail()
}

// refreshDetail rebuilds the detail pane for the selected asset
func (m *browseModel) refreshDetail() {
	if len(m.matches) == 0 {
		m.detail.SetContent("")
		return
	}

	match := m.matches[m.cursor]
	a := match.Asset

	var s strings.Builder
	s.WriteString(ui.StylePrimary.Copy().Bold(true).Render(a.Name))
	s.WriteString("\n\n")
	s.WriteString(ui.StyleBold.Render("Library: "))
	s.WriteString(match.Library)
	s.WriteString("\n")
	if a.Category != "" {
		s.WriteString(ui.StyleBold.Render("Category: "))
		s.WriteString(a.Category)
		s.WriteString("\n")
	}
	s.WriteString(ui.StyleBold.Render("Created: "))
	s.WriteString(a.GetDisplayDate())
	s.WriteString("\n")

	if a.Description != "" {
		s.WriteString("\n")
		s.WriteString(a.Description)
		s.WriteString("\n")
	}

	if len(a.Tags) > 0 {
		s.WriteString("\n")
		for _, tag := range a.Tags {
			s.WriteString(ui.StyleAccent.Render("[" + tag + "]"))
			s.WriteString(" ")
		}
		s.WriteString("\n")
	}

	if len(a.Attributes) > 0 {
		s.WriteString("\n")
		for _, k := range sortedKeys(a.Attributes) {
			s.WriteString(ui.StyleBold.Render(k + ": "))
			s.WriteString(a.Attributes[k])
			s.WriteString("\n")
		}
	}

	if len(a.Links) > 0 {
		s.WriteString("\n")
		for _, l := range a.Links {
			s.WriteString(ui.StyleInfo.Render(l.Name))
			s.WriteString(" ")
			s.WriteString(ui.StyleMuted.Render(l.URL))
			s.WriteString("\n")
		}
	}

	m.detail.SetContent(s.String())
	m.detail.GotoTop()
}

// Commands

func (m browseModel) openFirstLink(match domain.Match) tea.Cmd {
	return func() tea.Msg {
		if len(match.Asset.Links) == 0 {
			return statusBrowseMsg{
				message: "Asset has no links",
				style:   ui.StyleWarning,
			}
		}

		link := match.Asset.Links[0]
		if err := OpenPath(link.URL); err != nil {
			return statusBrowseMsg{
				message: fmt.Sprintf("Failed to open link: %v", err),
				style:   ui.StyleError,
			}
		}

		return statusBrowseMsg{
			message: "Opened: " + link.URL,
			style:   ui.StyleSuccess,
		}
	}
}

// deleteAsset removes the asset and records the outcome in the footer.
// A locked library rejects the delete; the result set is recomputed by
// the caller either way.
func (m *browseModel) deleteAsset(match domain.Match) {
	if err := assetService.Delete(m.ctx, match.Library, match.Asset.Name); err != nil {
		m.message = fmt.Sprintf("Delete failed: %v", err)
		m.messageStyle = ui.StyleError
	} else {
		m.message = "Deleted: " + match.Asset.Name
		m.messageStyle = ui.StyleSuccess
	}
	m.messageUntil = time.Now().Add(3 * time.Second)
}
