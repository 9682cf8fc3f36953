package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2024, time.March, 1, 15, 30, 0, 0, time.Local)

func TestParseDate(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"2024-02-29":  "2024-02-29",
		" Today ":     "2024-03-01",
		"yesterday":   "2024-02-29",
		"tomorrow":    "2024-03-02",
		"05/01/2024":  "2024-01-05",
		"5/1/2024":    "2024-01-05",
		"3 days ago":  "2024-02-27",
		"1 day ago":   "2024-02-29",
		"2 weeks ago": "2024-02-16",
		"1w ago":      "2024-02-23",
	}
	for in, want := range cases {
		got, err := ParseDate(in, refNow)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"2024-02-30", "31/02/2024", "13/13/2024", "soon", "3 days", "2024/03/01"} {
		_, err := ParseDate(bad, refNow)
		assert.Error(t, err, bad)
	}
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("", refNow)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)

	y, m, err = ParseMonth("2023-7", refNow)
	require.NoError(t, err)
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.July, m)

	_, _, err = ParseMonth("2023-13", refNow)
	assert.Error(t, err)
	_, _, err = ParseMonth("july", refNow)
	assert.Error(t, err)
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear("", refNow)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)

	y, err = ParseYear("1999", refNow)
	require.NoError(t, err)
	assert.Equal(t, 1999, y)

	_, err = ParseYear("nineteen", refNow)
	assert.Error(t, err)
}

func TestParseContent(t *testing.T) {
	t.Run("tags are extracted", func(t *testing.T) {
		p := ParseContent("Call the bank #money,errands about issue #42 #phone")
		assert.Equal(t, "Call the bank about issue #42", p.Text)
		assert.Equal(t, []string{"money", "errands", "phone"}, p.Tags)
	})

	t.Run("no tags", func(t *testing.T) {
		p := ParseContent("  Buy   milk ")
		assert.Equal(t, "Buy milk", p.Text)
		assert.Empty(t, p.Tags)
	})

	t.Run("hash inside a word is text", func(t *testing.T) {
		p := ParseContent("learn C#basics")
		assert.Equal(t, "learn C#basics", p.Text)
		assert.Empty(t, p.Tags)
	})
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"work", "home", "x"}, SplitTags("#work, home  x,"))
	assert.Empty(t, SplitTags(" , "))
}
