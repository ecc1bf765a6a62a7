package views

import "github.com/dmitrijs2005/jobkeeper/internal/models"

// Overview is the one-line summary shown in the application list.
type Overview struct {
	Position int
	ID       string
	Title    string
	Company  string
	Date     string
	Status   models.Status
	Progress int
	Rounds   int
}

func Overviews(apps []models.Application) []Overview {
	out := make([]Overview, len(apps))
	for i, a := range apps {
		out[i] = Overview{
			Position: i,
			ID:       a.ID,
			Title:    a.Title,
			Company:  a.Company,
			Date:     a.Date,
			Status:   a.Status,
			Progress: a.Progress(),
			Rounds:   len(a.InterviewRounds),
		}
	}
	return out
}
