package views

import "github.com/dmitrijs2005/jobkeeper/internal/models"

// SpreadsheetColumn describes one column of the exported sheet.
type SpreadsheetColumn struct {
	Header string
	Width  float64
}

// SpreadsheetColumns is the fixed column layout of the export.
var SpreadsheetColumns = []SpreadsheetColumn{
	{Header: "Job Title", Width: 20},
	{Header: "Company", Width: 20},
	{Header: "Date Applied", Width: 15},
	{Header: "Status", Width: 15},
	{Header: "Job Req ID", Width: 20},
	{Header: "Job Link", Width: 30},
	{Header: "Cover Letter", Width: 30},
	{Header: "Resume", Width: 30},
}

// SpreadsheetRow holds the cells of one application, in column order.
type SpreadsheetRow [8]string

// SpreadsheetRows renders apps as sheet rows in master order.
func SpreadsheetRows(apps []models.Application) []SpreadsheetRow {
	rows := make([]SpreadsheetRow, len(apps))
	for i, a := range apps {
		rows[i] = SpreadsheetRow{
			a.Title,
			a.Company,
			a.Date,
			string(a.Status),
			orNA(a.JobReqID),
			orNA(a.JobLink),
			a.CoverLetter.DisplayName(),
			a.Resume.DisplayName(),
		}
	}
	return rows
}
