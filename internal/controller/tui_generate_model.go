package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusColors = map[string]lipgloss.Color{
	"generated": lipgloss.Color("2"),
	"cached":    lipgloss.Color("6"),
	"removed":   lipgloss.Color("8"),
	"error":     lipgloss.Color("1"),
}

// fileResultDelegate renders one generated file per line.
type fileResultDelegate struct {
	offset int
}

func (d fileResultDelegate) Height() int  { return 1 }
func (d fileResultDelegate) Spacing() int { return 0 }
func (d fileResultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileResultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(fileResult)
	if !ok {
		return
	}

	pathWidth := m.Width() - 24 // status (10) + variants (8) + spacing

	statusStyle := lipgloss.NewStyle().Bold(true).Width(10).Align(lipgloss.Left)
	countStyle := lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle()

	var path string

	if index == m.Index() {
		selected := func(s lipgloss.Style) lipgloss.Style {
			return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		}
		statusStyle, countStyle, pathStyle = selected(statusStyle), selected(countStyle), selected(pathStyle)
		path = animateScroll(result.path, pathWidth, d.offset)
	} else {
		color, ok := statusColors[result.status]
		if !ok {
			color = lipgloss.Color("8")
		}

		statusStyle = statusStyle.Foreground(color)
		countStyle = countStyle.Foreground(lipgloss.Color("11"))
		pathStyle = pathStyle.Foreground(lipgloss.Color("14"))
		path = truncateToWidth(result.path, pathWidth)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		statusStyle.Render(result.status),
		countStyle.Render(fmt.Sprintf("%d", result.variants)),
		pathStyle.Render(path),
	)
}

// generateModel shows worker progress while files are generated, then the
// per-file results.
type generateModel struct {
	width           int
	height          int
	progressBar     progress.Model
	totalFiles      int
	completedCount  int
	progressPercent float64
	workers         int
	workerFiles     map[int]string
	rendered        bool
	finished        bool
	results         []fileResult
	resultsList     list.Model
	delegate        fileResultDelegate
	animOffset      int
	lastSelected    int
	showDetail      bool
	selectedDetail  string
	selectedPath    string
}

func newGenerateModel() generateModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := fileResultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return generateModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		workerFiles:  make(map[int]string),
		lastSelected: -1,
	}
}

func (m generateModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m generateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case concurrencyMsg:
		m.workers = msg.workers
		m.totalFiles = msg.files
		m.completedCount = 0
		m.progressPercent = 0
		m.rendered = true

	case startFileMsg:
		m.workerFiles[msg.worker] = msg.path
		m.rendered = true

	case completedFileMsg:
		m = m.handleCompletedFile(msg)

	case finishedMsg:
		m.finished = true
		m.rendered = true
		m.progressPercent = 1
	}

	return m, cmd
}

func (m generateModel) handleCompletedFile(msg completedFileMsg) generateModel {
	m.completedCount++
	m.results = append(m.results, msg.result)

	for worker, path := range m.workerFiles {
		if path == msg.result.path {
			delete(m.workerFiles, worker)
		}
	}

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)

	if m.totalFiles > 0 {
		m.progressPercent = float64(m.completedCount) / float64(m.totalFiles)
	}

	return m
}

func (m generateModel) View() string {
	if !m.rendered {
		return "Scanning sources…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m generateModel) viewProgress() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("defargs generate")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", m.workers)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		m.renderWorkerBox(accentColor),
		footer,
	)
}

func (m generateModel) renderWorkerBox(accentColor lipgloss.Color) string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(max(m.width-4, 20))

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// width - border (2) - padding (2)
	availableWidth := m.width - 4 - 2 - 2
	lines := make([]string, 0, m.workers)

	for i := range max(m.workers, 1) {
		content := "idle"
		if file := m.workerFiles[i]; file != "" {
			content = fileStyle.Render(truncateToWidth(file, max(availableWidth-12, 10)))
		}

		if m.workers > 1 {
			content = fmt.Sprintf("Worker %d: %s", i, content)
		}

		lines = append(lines, content)
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m generateModel) viewResults() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("defargs results")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s  •  Generated: %s  •  Cached: %s  •  Errors: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.results))),
		accentStyle.Render(fmt.Sprintf("%d", m.countStatus("generated"))),
		accentStyle.Render(fmt.Sprintf("%d", m.countStatus("cached"))),
		accentStyle.Render(fmt.Sprintf("%d", m.countStatus("error"))),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • enter/space details • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderResultsBox(accentColor),
		footer,
	)
}

func (m generateModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 4
	detail := m.renderDetailBox(accentColor, listWidth)

	listHeight := max(m.height-9-lipgloss.Height(detail), 5)
	if detail == "" {
		listHeight = max(m.height-9, 5)
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %8s  %s", "Status", "Variants", "File"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))

	if detail == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, detail)
}

func (m generateModel) renderDetailBox(accentColor lipgloss.Color, width int) string {
	if !m.showDetail || m.selectedDetail == "" {
		return ""
	}

	contentWidth := max(width-4, 10)

	lines := strings.Split(m.selectedDetail, "\n")
	body := make([]string, 0, len(lines))

	for _, line := range lines {
		body = append(body, truncateToWidth(line, contentWidth))
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth(m.selectedPath, contentWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(body, "\n")))
}

func (m generateModel) countStatus(status string) int {
	count := 0

	for _, result := range m.results {
		if result.status == status {
			count++
		}
	}

	return count
}

func (m generateModel) handleKeyMsg(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if !m.finished {
			return m, nil
		}

		if m.resultsList.FilterState() != list.Filtering && (msg.String() == "enter" || msg.String() == " ") {
			m.toggleSelectedDetail()

			return m, nil
		}

		var newList list.Model

		newList, cmd = m.resultsList.Update(msg)
		m.resultsList = newList

		if m.resultsList.Index() != m.lastSelected {
			m.lastSelected = m.resultsList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.resultsList.SetDelegate(m.delegate)
			m.showDetail = false
			m.selectedDetail = ""
			m.selectedPath = ""
		}
	}

	return m, cmd
}

func (m *generateModel) toggleSelectedDetail() {
	result, ok := m.resultsList.SelectedItem().(fileResult)
	if !ok {
		return
	}

	if m.showDetail && m.selectedPath == result.path {
		m.showDetail = false
		m.selectedDetail = ""
		m.selectedPath = ""

		return
	}

	m.showDetail = true
	m.selectedDetail = result.detail
	m.selectedPath = result.path
}

func (m generateModel) handleWindowSize(msg tea.WindowSizeMsg) generateModel {
	m.width = msg.Width
	m.height = msg.Height
	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m generateModel) handleTickMsg(_ tickMsg) (generateModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
