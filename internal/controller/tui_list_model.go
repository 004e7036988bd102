package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// callableDelegate renders one callable per line: variant count, then label.
type callableDelegate struct {
	offset int
}

func (d callableDelegate) Height() int  { return 1 }
func (d callableDelegate) Spacing() int { return 0 }
func (d callableDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d callableDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	callable, ok := item.(callableItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var labelStyle, countStyle lipgloss.Style

	var label string

	width := m.Width() - 10 // count column (8) + spacing (2)

	if isSelected {
		labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(8).
			Align(lipgloss.Right)

		label = animateScroll(callable.label, width, d.offset)
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(8).
			Align(lipgloss.Right)

		label = truncateToWidth(callable.label, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		countStyle.Render(variantsCell(callable.variants)),
		labelStyle.Render(label),
	)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// ticks to wait before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// listModel browses the callables marked for generation.
type listModel struct {
	width        int
	height       int
	callables    list.Model
	delegate     callableDelegate
	total        int
	variants     int
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newListModel() listModel {
	delegate := callableDelegate{}
	callables := list.New([]list.Item{}, delegate, 80, 20)
	callables.SetShowPagination(false)
	callables.SetShowFilter(true)
	callables.SetShowHelp(false)
	callables.SetShowTitle(false)
	callables.SetShowStatusBar(false)
	callables.FilterInput.Placeholder = "Filter by name or path…"

	return listModel{
		callables:    callables,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m listModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.callables.SetWidth(m.width)

	case tickMsg:
		if m.callables.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.callables.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.callables.Update(msg)
			m.callables = newList

			// restart the scroll animation on selection change
			if m.callables.Index() != m.lastSelected {
				m.lastSelected = m.callables.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.callables.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case summariesMsg:
		m = m.handleSummariesMsg(msg)
	}

	return m, cmd
}

func (m listModel) handleSummariesMsg(msg summariesMsg) listModel {
	m.err = msg.err
	m.total = len(msg.items)
	m.variants = msg.variants

	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		items = append(items, item)
	}

	m.callables.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m listModel) View() string {
	if !m.rendered {
		return "Scanning for declarations…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("defargs callables")

	summaryText := fmt.Sprintf(
		"Callables: %s   Variants: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.variants)),
	)
	if m.err != nil {
		summaryText = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error())
	}

	summary := summaryStyle.Render(summaryText)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m listModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := max(m.height-9, 5)

	// margin (2) + border (2) + padding (2)
	listWidth := m.width - 6

	m.callables.SetHeight(listHeight)
	m.callables.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%8s  %s", "Variants", "Callable"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.callables.View(),
		),
	)
}
