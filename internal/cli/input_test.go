package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubPassword(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	i := 0
	readPassword = func(int) ([]byte, error) {
		if i >= len(answers) {
			return nil, errors.New("no more passwords")
		}
		pw := answers[i]
		i++
		return []byte(pw), nil
	}
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetDefaultText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		want    string
	}{
		{"empty keeps current", "\n", "09:00", "09:00"},
		{"dash clears", "-\n", "09:00", ""},
		{"new value", "10:30\n", "09:00", "10:30"},
		{"no current", "x\n", "", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetDefaultText(rdr(tt.input), "Time", tt.current, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDefaultText_ShowsCurrent(t *testing.T) {
	var out bytes.Buffer
	_, err := GetDefaultText(rdr("\n"), "Time", "09:00", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Time [09:00]")
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\nignored\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = GetMultiline(rdr("only"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "only", got)
}

func TestGetPassword(t *testing.T) {
	stubPassword(t, "s3cret")
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubPassword(t)
	var out bytes.Buffer
	_, err := GetPassword(&out, "Password")
	require.Error(t, err)
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		var out bytes.Buffer
		got, err := Confirm(rdr(input), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParsePosition(t *testing.T) {
	i, err := parsePosition("task", "3")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	for _, bad := range []string{"0", "-1", "x", ""} {
		_, err := parsePosition("task", bad)
		assert.ErrorIs(t, err, common.ErrValidation, bad)
	}
}

func TestNeedArgs(t *testing.T) {
	require.NoError(t, needArgs([]string{"a"}, 1, "cmd <a>"))

	err := needArgs(nil, 1, "cmd <a>")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "usage: cmd <a>")
}
