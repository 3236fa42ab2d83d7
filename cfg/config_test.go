package cfg

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creativeprojects/imapresp/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
store: "data/snapshots.db"
transcripts:
  select:
    kind: mailbox
    file: "transcripts/select.txt"
  messages:
    kind: fetch
    file: "transcripts/fetch.txt"
    maildir: "backup"
    mailbox: "Archive"
  list:
    kind: names
    file: "transcripts/list.txt"
`
	config, err := loadConfig(io.NopCloser(strings.NewReader(content)))
	require.NoError(t, err)
	assert.Equal(t, "data/snapshots.db", config.Store)
	assert.Equal(t, []string{"list", "messages", "select"}, config.Names())

	assert.Equal(t, Transcript{Kind: KindMailbox, File: "transcripts/select.txt", Mailbox: "INBOX"}, config.Transcripts["select"])
	assert.Equal(t, Transcript{Kind: KindFetch, File: "transcripts/fetch.txt", Maildir: "backup", Mailbox: "Archive"}, config.Transcripts["messages"])
}

func TestLoadEmptyConfig(t *testing.T) {
	config, err := loadConfig(io.NopCloser(strings.NewReader("")))
	require.NoError(t, err)
	assert.Equal(t, "snapshots.db", config.Store)
	assert.Empty(t, config.Names())
}

func TestInvalidConfig(t *testing.T) {
	fixtures := []string{
		"transcripts:\n  one:\n    kind: unknown\n    file: one.txt\n",
		"transcripts:\n  one:\n    kind: search\n",
		"transcripts:\n  one:\n    kind: search\n    file: one.txt\n    maildir: backup\n",
		"transcripts: [",
	}
	for _, fixture := range fixtures {
		_, err := loadConfig(io.NopCloser(strings.NewReader(fixture)))
		assert.Error(t, err)
	}

	_, err := loadConfig(io.NopCloser(strings.NewReader(fixtures[0])))
	assert.ErrorIs(t, err, lib.ErrUnknownKind)
}

func TestLoadFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "imapresp.yaml")
	err := os.WriteFile(filename, []byte("transcripts:\n  caps:\n    kind: capabilities\n    file: caps.txt\n"), 0600)
	require.NoError(t, err)

	config, err := LoadFromFile(filename)
	require.NoError(t, err)
	assert.Equal(t, KindCapabilities, config.Transcripts["caps"].Kind)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseKind("status")
	assert.ErrorIs(t, err, lib.ErrUnknownKind)
}
