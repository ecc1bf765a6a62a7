package models

import (
	"math"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// ChecklistTask is a single checklist item.
type ChecklistTask struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// ChecklistGroup is a named stage of the application process.
// Notes is only used on the first group of a checklist.
type ChecklistGroup struct {
	Stage string          `json:"stage"`
	Tasks []ChecklistTask `json:"tasks"`
	Notes string          `json:"notes,omitempty"`
}

// Checklist is an ordered list of stages.
//
// Methods mutate the groups in place but never change the number of groups,
// so a value receiver is enough.
type Checklist []ChecklistGroup

var defaultChecklist = Checklist{
	{
		Stage: "Before Writing",
		Tasks: []ChecklistTask{
			{Text: "Research the company’s mission, values, and recent news using online sources (e.g., company website, news aggregators, or ChatGPT)"},
			{Text: "Review the job description and extract key responsibilities and required qualifications"},
			{Text: "Identify how your experience aligns with the role’s expectations (tools like ChatGPT or Notion AI can help you think this through)"},
			{Text: "Determine a target salary range based on platforms like Glassdoor, Levels.fyi, or Payscale"},
		},
	},
	{
		Stage: "Writing & Customization",
		Tasks: []ChecklistTask{
			{Text: "Refine your resume to align with the job posting (consider using Rezi, Teal, or Resume Worded for suggestions)"},
			{Text: "Run your resume through an ATS optimization tool such as Jobscan or Resumeworded"},
			{Text: "Draft or enhance a tailored cover letter (assistive tools like Grammarly, ChatGPT, or Jasper can be useful)"},
			{Text: "Ensure your LinkedIn profile is up to date and reflects key career milestones"},
			{Text: "Update any portfolio, website, or project links you're planning to include"},
		},
	},
	{
		Stage: "Final Review & Submission",
		Tasks: []ChecklistTask{
			{Text: "Proofread all application materials—manual review and tools like Grammarly or Hemingway can help spot issues"},
			{Text: "Export your resume and cover letter as PDFs with clear, professional filenames (e.g., JohnDoe_Resume_SystemsEngineer.pdf)"},
			{Text: "Verify the application deadline and the correct submission method (e.g., company portal, recruiter, LinkedIn)"},
			{Text: "Double-check all required documents are included and up to date"},
			{Text: "Set a reminder to follow up one week after submitting the application"},
		},
	},
}

// DefaultChecklist returns a fresh copy of the canonical checklist with every
// task not done. Each call returns independent memory.
func DefaultChecklist() Checklist {
	return defaultChecklist.Clone()
}

// Clone returns a deep copy of c.
func (c Checklist) Clone() Checklist {
	if c == nil {
		return nil
	}
	out := make(Checklist, len(c))
	for i, g := range c {
		out[i] = g
		if g.Tasks != nil {
			out[i].Tasks = append(make([]ChecklistTask, 0, len(g.Tasks)), g.Tasks...)
		}
	}
	return out
}

func (c Checklist) group(g int) (*ChecklistGroup, error) {
	if err := common.CheckIndex("group", g, len(c)); err != nil {
		return nil, err
	}
	return &c[g], nil
}

func (c Checklist) task(g, t int) (*ChecklistTask, error) {
	grp, err := c.group(g)
	if err != nil {
		return nil, err
	}
	if err := common.CheckIndex("task", t, len(grp.Tasks)); err != nil {
		return nil, err
	}
	return &grp.Tasks[t], nil
}

// ToggleTask flips the done flag of task t in group g.
func (c Checklist) ToggleTask(g, t int) error {
	task, err := c.task(g, t)
	if err != nil {
		return err
	}
	task.Done = !task.Done
	return nil
}

// AddTask appends a new task to group g. Blank text is ignored and reported
// with added == false.
func (c Checklist) AddTask(g int, text string) (added bool, err error) {
	grp, err := c.group(g)
	if err != nil {
		return false, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	grp.Tasks = append(grp.Tasks, ChecklistTask{Text: text})
	return true, nil
}

// RemoveTask deletes task t from group g.
func (c Checklist) RemoveTask(g, t int) error {
	if _, err := c.task(g, t); err != nil {
		return err
	}
	tasks := c[g].Tasks
	c[g].Tasks = append(tasks[:t:t], tasks[t+1:]...)
	return nil
}

// RenameTask replaces the text of task t in group g with the trimmed text.
// An empty label is rejected.
func (c Checklist) RenameTask(g, t int, text string) error {
	task, err := c.task(g, t)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return &common.ValidationError{Fields: []string{"task"}, Reason: "task text must not be empty"}
	}
	task.Text = text
	return nil
}

// Counts returns the number of done tasks and the total across all groups.
func (c Checklist) Counts() (done, total int) {
	for _, g := range c {
		total += len(g.Tasks)
		for _, t := range g.Tasks {
			if t.Done {
				done++
			}
		}
	}
	return done, total
}

// Progress returns the rounded percentage of done tasks, 0 for an empty
// checklist.
func (c Checklist) Progress() int {
	done, total := c.Counts()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// Notes returns the checklist notes kept on the first group.
func (c Checklist) Notes() string {
	if len(c) == 0 {
		return ""
	}
	return c[0].Notes
}

// SetNotes stores notes on the first group.
func (c Checklist) SetNotes(notes string) error {
	grp, err := c.group(0)
	if err != nil {
		return err
	}
	grp.Notes = notes
	return nil
}
