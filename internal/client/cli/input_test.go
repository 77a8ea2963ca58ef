package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	value, err := GetSimpleText(newReader("Design Patterns\n"), "Course", &out)
	require.NoError(t, err)
	require.Equal(t, "Design Patterns", value)
	require.Contains(t, out.String(), "Course")
}

func TestGetSimpleTextTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	value, err := GetSimpleText(newReader("  padded  \n"), "Field", &out)
	require.NoError(t, err)
	require.Equal(t, "padded", value)
}

func TestGetSimpleTextPartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	value, err := GetSimpleText(newReader("no newline"), "Field", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", value)
}

func TestGetSimpleTextEmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(newReader(""), "Field", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetTextWithDefaultKeepsCurrent(t *testing.T) {
	var out bytes.Buffer
	value, err := GetTextWithDefault(newReader("\n"), "Organization", "Acme Corp", &out)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", value)
	require.Contains(t, out.String(), "[Acme Corp]")
}

func TestGetTextWithDefaultOverrides(t *testing.T) {
	var out bytes.Buffer
	value, err := GetTextWithDefault(newReader("New Org\n"), "Organization", "Acme Corp", &out)
	require.NoError(t, err)
	require.Equal(t, "New Org", value)
}

func TestGetTextWithDefaultNoCurrentNoBrackets(t *testing.T) {
	var out bytes.Buffer
	_, err := GetTextWithDefault(newReader("x\n"), "Organization", "", &out)
	require.NoError(t, err)
	require.NotContains(t, out.String(), "[")
}

func TestGetPassword(t *testing.T) {
	saved := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = saved })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password:")
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"whatever\n", false},
		{"\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := GetYesNo(newReader(tt.input), "Admin account?", &out)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
