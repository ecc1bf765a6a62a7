package models

import (
	"testing"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Not started", StatusNotStarted},
		{"not_started", StatusNotStarted},
		{"NOTSTARTED", StatusNotStarted},
		{"applied", StatusApplied},
		{" Interviewing ", StatusInterviewing},
		{"offer", StatusOffer},
		{"rejected", StatusRejected},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStatus("hired")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestStatus_Completed(t *testing.T) {
	assert.True(t, StatusOffer.Completed())
	assert.True(t, StatusRejected.Completed())
	assert.False(t, StatusApplied.Completed())
	assert.False(t, Status("nope").Valid())
}
