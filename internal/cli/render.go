package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

const (
	progressWidth = 20
	columnWidth   = 30
)

// renderer turns views into terminal text. Styles degrade to plain text
// when the output is not a terminal.
type renderer struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	label   lipgloss.Style
	done    lipgloss.Style
	warn    lipgloss.Style
	box     lipgloss.Style
	column  lipgloss.Style
	heading lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("243")),
		label:   r.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
		done:    r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		column:  r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Width(columnWidth).Padding(0, 1),
		heading: r.NewStyle().Bold(true).Underline(true),
	}
}

func progressBar(pct int) string {
	pct = max(0, min(100, pct))
	filled := pct * progressWidth / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("█", filled), strings.Repeat("░", progressWidth-filled), pct)
}

func (r *renderer) list(rows []views.Overview, selectedID string) string {
	if len(rows) == 0 {
		return r.muted.Render("No applications yet. Use 'add' to create one.")
	}
	var b strings.Builder
	for _, o := range rows {
		marker := " "
		if o.ID == selectedID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s%3d. %s  %s - %s  %s\n",
			marker, o.Position+1,
			progressBar(o.Progress),
			r.title.Render(o.Company), o.Title,
			r.muted.Render(fmt.Sprintf("(%s, %s)", o.Status, o.Date)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) board(b views.Board) string {
	cols := b.Columns()
	rendered := make([]string, len(cols))
	for i, c := range cols {
		var sb strings.Builder
		sb.WriteString(r.heading.Render(fmt.Sprintf("%s (%d)", c.Title, len(c.Apps))))
		for _, a := range c.Apps {
			line := fmt.Sprintf("• %s - %s %d%%", a.Company, a.Title, a.Progress())
			if c.Title == "Completed" {
				line += " " + r.muted.Render("["+string(a.Status)+"]")
			}
			sb.WriteString("\n" + line)
		}
		rendered[i] = r.column.Render(sb.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (r *renderer) field(name, value string) string {
	return r.label.Render(fmt.Sprintf("%-13s", name)) + " " + value
}

func (r *renderer) detail(a models.Application) string {
	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	editable := func(f models.EditableField, name, value string) string {
		s := value
		if d, ok := a.Draft(f); ok {
			s += " " + r.warn.Render(fmt.Sprintf("(editing, draft %q)", d))
		}
		return r.field(name, s)
	}

	add(
		r.title.Render(a.Company+" - "+a.Title),
		r.muted.Render("id "+a.ID),
		"",
		editable(models.FieldTitle, "Title", a.Title),
		editable(models.FieldCompany, "Company", a.Company),
		r.field("Date", a.Date),
		r.field("Status", string(a.Status)),
		editable(models.FieldJobReqID, "Job Req ID", orNA(a.JobReqID)),
		editable(models.FieldJobLink, "Job Link", views.LinkHost(a.JobLink)),
		r.field("Cover Letter", a.CoverLetter.DisplayName()),
		r.field("Resume", a.Resume.DisplayName()),
		r.field("Progress", progressBar(a.Progress())),
	)
	if a.JobLink != "" {
		add(r.field("", r.muted.Render(a.JobLink)))
	}

	add("", r.heading.Render("Checklist"))
	for gi, g := range a.Checklist {
		add(r.title.Render(fmt.Sprintf("%d. %s", gi+1, g.Stage)))
		for ti, t := range g.Tasks {
			box := "[ ]"
			text := t.Text
			if t.Done {
				box = r.done.Render("[x]")
				text = r.muted.Render(text)
			}
			add(fmt.Sprintf("   %d.%d %s %s", gi+1, ti+1, box, text))
		}
	}
	if n := a.Checklist.Notes(); n != "" {
		add("", r.heading.Render("Notes & Interview Questions"), n)
	}

	if a.Notes != "" {
		add("", r.heading.Render("Notes"), a.Notes)
	}

	add("", r.heading.Render("Interview Rounds"))
	if len(a.InterviewRounds) == 0 {
		add(r.muted.Render("none, use 'round add'"))
	}
	for i, rd := range a.InterviewRounds {
		add(r.round(i, rd))
	}

	return r.box.Render(strings.Join(lines, "\n"))
}

func (r *renderer) round(i int, rd models.InterviewRound) string {
	when := strings.TrimSpace(rd.Date + " " + rd.Time)
	if when == "" {
		when = r.muted.Render("not scheduled")
	}
	s := fmt.Sprintf("%d. %s", i+1, when)

	where := rd.ActiveLocation()
	switch {
	case rd.LocationType == models.LocationInPerson && where != "":
		s += fmt.Sprintf("\n   In person: %s\n   %s", where, r.muted.Render(views.MapsURL(where)))
	case rd.LocationType == models.LocationInPerson:
		s += "\n   In person"
	case where != "":
		s += "\n   Remote: " + where
	default:
		s += "\n   Remote"
	}
	if rd.InterviewerName != "" || rd.InterviewerContact != "" {
		s += "\n   Interviewer: " + strings.TrimSpace(rd.InterviewerName+" "+rd.InterviewerContact)
	}
	return s
}

func (r *renderer) upcoming(items []views.UpcomingInterview, now time.Time) string {
	if len(items) == 0 {
		return r.muted.Render("No upcoming interviews.")
	}
	var b strings.Builder
	for _, u := range items {
		day := u.Start.Format("Mon 2006-01-02")
		if strings.TrimSpace(u.Details.Time) != "" {
			day += " " + u.Start.Format(models.TimeLayout)
		}
		if sameDay(u.Start, now) {
			day = r.warn.Render(day + " (today)")
		}
		fmt.Fprintf(&b, "%s  %s - %s, round %d\n", day, r.title.Render(u.Company), u.Title, u.Round+1)
	}
	return strings.TrimRight(b.String(), "\n")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return views.NotAvailable
	}
	return s
}
