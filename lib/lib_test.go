package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripRecentFlag(t *testing.T) {
	fixtures := []struct {
		source   []string
		expected []string
	}{
		{nil, []string{}},
		{[]string{"\\Recent"}, []string{}},
		{[]string{"\\Seen", "\\Recent", "\\Flagged"}, []string{"\\Seen", "\\Flagged"}},
		{[]string{"$Forwarded"}, []string{"$Forwarded"}},
	}

	for _, fixture := range fixtures {
		assert.Equal(t, fixture.expected, StripRecentFlag(fixture.source))
	}
}

func TestNormalizeNewlines(t *testing.T) {
	fixtures := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"* 1 EXISTS", "* 1 EXISTS"},
		{"* 1 EXISTS\n", "* 1 EXISTS\r\n"},
		{"* 1 EXISTS\n* 0 RECENT\n", "* 1 EXISTS\r\n* 0 RECENT\r\n"},
		{"* 1 EXISTS\r\n* 0 RECENT\r\n", "* 1 EXISTS\r\n* 0 RECENT\r\n"},
	}

	for _, fixture := range fixtures {
		assert.Equal(t, fixture.expected, string(NormalizeNewlines([]byte(fixture.input))))
	}
}

func TestVerifyDelimiter(t *testing.T) {
	fixtures := []struct {
		name     string
		existing string
		expected string
		output   string
	}{
		{"INBOX", "/", ".", "INBOX"},
		{"Archive/2022", "/", ".", "Archive.2022"},
		{"Archive.2022", ".", ".", "Archive.2022"},
		{"v1.2/notes", "/", ".", "v1\\.2.notes"},
		{"Flat", "", ".", "Flat"},
	}

	for _, fixture := range fixtures {
		assert.Equal(t, fixture.output, VerifyDelimiter(fixture.name, fixture.existing, fixture.expected))
	}
}
