package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/ports"
	amendmentuc "amendtrack/internal/usecase/amendment"
)

const (
	pageSize         = 20
	maxShownProgress = 4
)

type Options struct {
	StatusFilter    string
	RefreshInterval time.Duration
}

type browserModel struct {
	ctx             context.Context
	service         *amendmentuc.Service
	statusFilter    string
	refreshInterval time.Duration

	items         []ports.AmendmentRecord
	total         int64
	skip          int
	selectedIndex int
	detail        amendmentuc.AmendmentDetail
	hasDetail     bool
	status        string
}

type amendmentsLoadedMsg struct {
	items []ports.AmendmentRecord
	total int64
	err   error
}

type detailLoadedMsg struct {
	amendmentID uint64
	detail      amendmentuc.AmendmentDetail
	err         error
}

type tickMsg struct{}

// statusCycle is the order the f key steps through.
var statusCycle = []string{
	"",
	string(domain.StatusOpen),
	string(domain.StatusInProgress),
	string(domain.StatusTesting),
	string(domain.StatusCompleted),
	string(domain.StatusDeployed),
}

func NewBrowserModel(ctx context.Context, service *amendmentuc.Service, options Options) tea.Model {
	interval := options.RefreshInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &browserModel{
		ctx:             ctx,
		service:         service,
		statusFilter:    strings.TrimSpace(options.StatusFilter),
		refreshInterval: interval,
		status:          "loading",
	}
}

func (m *browserModel) Init() tea.Cmd {
	return tea.Batch(m.loadAmendmentsCmd(), m.tickCmd())
}

func (m *browserModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tickMsg:
		return m, tea.Batch(m.loadAmendmentsCmd(), m.tickCmd())
	case amendmentsLoadedMsg:
		if msg.err != nil {
			m.status = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.items = msg.items
		m.total = msg.total
		if len(m.items) == 0 {
			m.selectedIndex = 0
			m.hasDetail = false
			m.status = "no amendments"
			return m, nil
		}
		if m.selectedIndex >= len(m.items) {
			m.selectedIndex = len(m.items) - 1
		}
		if m.selectedIndex < 0 {
			m.selectedIndex = 0
		}
		m.status = fmt.Sprintf("refreshed, %d of %d shown", len(m.items), m.total)
		return m, m.loadSelectedDetailCmd()
	case detailLoadedMsg:
		selected, ok := m.selected()
		if !ok || selected.AmendmentID != msg.amendmentID {
			return m, nil
		}
		if msg.err != nil {
			m.hasDetail = false
			m.status = "detail load failed: " + msg.err.Error()
			return m, nil
		}
		m.detail = msg.detail
		m.hasDetail = true
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.status = "refreshing"
			return m, m.loadAmendmentsCmd()
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
				return m, m.loadSelectedDetailCmd()
			}
			return m, nil
		case "down", "j":
			if m.selectedIndex < len(m.items)-1 {
				m.selectedIndex++
				return m, m.loadSelectedDetailCmd()
			}
			return m, nil
		case "right", "l":
			if int64(m.skip+pageSize) < m.total {
				m.skip += pageSize
				m.selectedIndex = 0
				return m, m.loadAmendmentsCmd()
			}
			return m, nil
		case "left", "h":
			if m.skip > 0 {
				m.skip -= pageSize
				if m.skip < 0 {
					m.skip = 0
				}
				m.selectedIndex = 0
				return m, m.loadAmendmentsCmd()
			}
			return m, nil
		case "f":
			m.statusFilter = nextStatusFilter(m.statusFilter)
			m.skip = 0
			m.selectedIndex = 0
			return m, m.loadAmendmentsCmd()
		}
	}
	return m, nil
}

func (m *browserModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))

	filterLabel := m.statusFilter
	if filterLabel == "" {
		filterLabel = "all"
	}

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Amendment Browser"))
	builder.WriteString("\n")
	builder.WriteString(dimStyle.Render(fmt.Sprintf(
		"status=%s page=%d total=%d refresh=%s",
		filterLabel,
		m.skip/pageSize+1,
		m.total,
		m.refreshInterval,
	)))
	builder.WriteString("\n\n")

	builder.WriteString(sectionStyle.Render("Amendments"))
	builder.WriteString("\n")
	if len(m.items) == 0 {
		builder.WriteString(dimStyle.Render("- none"))
		builder.WriteString("\n\n")
	} else {
		for index, item := range m.items {
			line := fmt.Sprintf(
				"%s [%s/%s] %s %s",
				item.Reference,
				item.Status,
				item.Priority,
				item.Type,
				truncate(item.Description, 60),
			)
			if index == m.selectedIndex {
				builder.WriteString(selectedStyle.Render("> " + line))
			} else {
				builder.WriteString("  " + line)
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	builder.WriteString(sectionStyle.Render("Detail"))
	builder.WriteString("\n")
	if !m.hasDetail {
		builder.WriteString(dimStyle.Render("- no detail"))
		builder.WriteString("\n\n")
	} else {
		a := m.detail.Amendment
		builder.WriteString(fmt.Sprintf("Reference: %s\n", a.Reference))
		builder.WriteString(fmt.Sprintf("Type: %s  Status: %s  Dev: %s  Priority: %s\n",
			a.Type, a.Status, a.DevelopmentStatus, a.Priority))
		builder.WriteString(fmt.Sprintf("Assigned: %s  Reported by: %s\n",
			orDash(a.AssignedTo), orDash(a.ReportedBy)))
		if a.DateReported != nil {
			builder.WriteString(fmt.Sprintf("Reported: %s\n", a.DateReported.Format("2006-01-02")))
		}
		builder.WriteString(fmt.Sprintf("QA completed: %v\n", a.QACompleted))
		builder.WriteString(fmt.Sprintf("Description: %s\n", a.Description))
		if len(m.detail.Applications) > 0 {
			names := make([]string, 0, len(m.detail.Applications))
			for _, app := range m.detail.Applications {
				names = append(names, app.ApplicationName)
			}
			builder.WriteString(fmt.Sprintf("Applications: %s\n", strings.Join(names, ", ")))
		}
		if len(m.detail.Links) > 0 {
			builder.WriteString(fmt.Sprintf("Links: %d  Documents: %d\n", len(m.detail.Links), len(m.detail.Documents)))
		}

		builder.WriteString("\nRecent Progress:\n")
		if len(m.detail.Progress) == 0 {
			builder.WriteString("- none\n")
		} else {
			shown := m.detail.Progress
			if len(shown) > maxShownProgress {
				shown = shown[:maxShownProgress]
			}
			for _, entry := range shown {
				builder.WriteString(fmt.Sprintf("- %s %s\n", orDash(entry.CreatedBy), entry.Description))
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString(sectionStyle.Render("Status"))
	builder.WriteString("\n")
	builder.WriteString("- " + m.status)
	builder.WriteString("\n\n")

	builder.WriteString(dimStyle.Render("Keys: ↑/k ↓/j move  ←/h →/l page  f filter  g refresh  q quit"))
	return builder.String()
}

func (m *browserModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *browserModel) loadAmendmentsCmd() tea.Cmd {
	filter := ports.AmendmentFilter{
		SortBy:    "created_on",
		SortOrder: "desc",
		Skip:      m.skip,
		Limit:     pageSize,
	}
	if m.statusFilter != "" {
		filter.Statuses = []string{m.statusFilter}
	}

	return func() tea.Msg {
		result, err := m.service.ListAmendments(m.ctx, filter)
		if err != nil {
			return amendmentsLoadedMsg{err: err}
		}
		return amendmentsLoadedMsg{items: result.Items, total: result.Total}
	}
}

func (m *browserModel) loadSelectedDetailCmd() tea.Cmd {
	selected, ok := m.selected()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		detail, err := m.service.GetAmendment(m.ctx, selected.AmendmentID)
		if err != nil {
			return detailLoadedMsg{amendmentID: selected.AmendmentID, err: err}
		}
		return detailLoadedMsg{amendmentID: selected.AmendmentID, detail: detail}
	}
}

func (m *browserModel) selected() (ports.AmendmentRecord, bool) {
	if len(m.items) == 0 || m.selectedIndex < 0 || m.selectedIndex >= len(m.items) {
		return ports.AmendmentRecord{}, false
	}
	return m.items[m.selectedIndex], true
}

func nextStatusFilter(current string) string {
	for i, status := range statusCycle {
		if status == current {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}
