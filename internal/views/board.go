// Package views derives read-only presentations of the application
// collection: status boards, overview rows, upcoming interviews, spreadsheet
// rows and calendar events. Nothing here mutates its input.
package views

import "github.com/dmitrijs2005/jobkeeper/internal/models"

// Board partitions applications by status. Offer and Rejected share the
// Completed column. Each column keeps the master order.
type Board struct {
	NotStarted   []models.Application
	Applied      []models.Application
	Interviewing []models.Application
	Completed    []models.Application
}

// Column is one titled board column.
type Column struct {
	Title string
	Apps  []models.Application
}

// GroupByStatus builds the board for apps.
func GroupByStatus(apps []models.Application) Board {
	var b Board
	for _, a := range apps {
		switch a.Status {
		case models.StatusApplied:
			b.Applied = append(b.Applied, a)
		case models.StatusInterviewing:
			b.Interviewing = append(b.Interviewing, a)
		case models.StatusOffer, models.StatusRejected:
			b.Completed = append(b.Completed, a)
		default:
			b.NotStarted = append(b.NotStarted, a)
		}
	}
	return b
}

// Columns returns the board columns left to right.
func (b Board) Columns() []Column {
	return []Column{
		{Title: string(models.StatusNotStarted), Apps: b.NotStarted},
		{Title: string(models.StatusApplied), Apps: b.Applied},
		{Title: string(models.StatusInterviewing), Apps: b.Interviewing},
		{Title: "Completed", Apps: b.Completed},
	}
}

// Len returns the number of applications on the board.
func (b Board) Len() int {
	return len(b.NotStarted) + len(b.Applied) + len(b.Interviewing) + len(b.Completed)
}
