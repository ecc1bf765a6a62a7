package views

import (
	"testing"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadsheetRows(t *testing.T) {
	full := app("1", models.StatusApplied)
	full.JobReqID = "R-17"
	full.JobLink = "https://jobs.example.com/17"
	full.Resume = &models.Attachment{Name: "cv.pdf"}

	bare := app("2", models.StatusNotStarted)

	rows := SpreadsheetRows([]models.Application{full, bare})
	require.Len(t, rows, 2)

	assert.Equal(t, SpreadsheetRow{
		full.Title, full.Company, "2024-03-01", "Applied",
		"R-17", "https://jobs.example.com/17", "No file uploaded", "cv.pdf",
	}, rows[0])
	assert.Equal(t, "N/A", rows[1][4])
	assert.Equal(t, "N/A", rows[1][5])
	assert.Equal(t, "No file uploaded", rows[1][6])
	assert.Equal(t, "No file uploaded", rows[1][7])
}

func TestSpreadsheetColumns_MatchRowWidth(t *testing.T) {
	assert.Len(t, SpreadsheetColumns, len(SpreadsheetRow{}))
	assert.Equal(t, "Job Title", SpreadsheetColumns[0].Header)
	assert.Equal(t, "Resume", SpreadsheetColumns[7].Header)
}
