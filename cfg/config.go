package cfg

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/creativeprojects/imapresp/lib"
	"gopkg.in/yaml.v3"
)

// Kind is the command whose server output a transcript holds
type Kind string

const (
	KindNames        Kind = "names"
	KindFetch        Kind = "fetch"
	KindCapabilities Kind = "capabilities"
	KindMailbox      Kind = "mailbox"
	KindSearch       Kind = "search"
	KindAuthenticate Kind = "authenticate"
)

var Kinds = []Kind{KindNames, KindFetch, KindCapabilities, KindMailbox, KindSearch, KindAuthenticate}

func (k Kind) Valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ParseKind returns lib.ErrUnknownKind for anything not in Kinds
func ParseKind(value string) (Kind, error) {
	kind := Kind(value)
	if !kind.Valid() {
		return kind, fmt.Errorf("%w: %q", lib.ErrUnknownKind, value)
	}
	return kind, nil
}

type Config struct {
	Store       string                `yaml:"store"`
	Transcripts map[string]Transcript `yaml:"transcripts"`
}

// Transcript is a file of raw server output to replay
type Transcript struct {
	Kind Kind   `yaml:"kind"`
	File string `yaml:"file"`
	// Maildir receives the fetched messages (fetch transcripts only)
	Maildir string `yaml:"maildir"`
	// Mailbox is the folder name used in the maildir, INBOX by default
	Mailbox string `yaml:"mailbox"`
}

// New returns the default configuration
func New() *Config {
	return &Config{
		Store:       "snapshots.db",
		Transcripts: make(map[string]Transcript),
	}
}

// Names returns the transcript names in alphabetical order
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Transcripts))
	for name := range c.Transcripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFromFile loads the configuration from the file
func LoadFromFile(fileName string) (*Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	return loadConfig(file)
}

// loadConfig from a io.ReadCloser
func loadConfig(reader io.ReadCloser) (*Config, error) {
	defer reader.Close()
	decoder := yaml.NewDecoder(reader)
	config := New()
	err := decoder.Decode(config)
	if err != nil && err != io.EOF {
		return nil, err
	}
	err = validateConfiguration(config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfiguration(config *Config) error {
	if config.Transcripts == nil {
		config.Transcripts = make(map[string]Transcript)
	}
	for name, transcript := range config.Transcripts {
		if !transcript.Kind.Valid() {
			return fmt.Errorf("transcript %q: %w: %q", name, lib.ErrUnknownKind, transcript.Kind)
		}
		if transcript.File == "" {
			return fmt.Errorf("transcript %q: missing file", name)
		}
		if transcript.Maildir != "" && transcript.Kind != KindFetch {
			return fmt.Errorf("transcript %q: maildir export needs a fetch transcript", name)
		}
		if transcript.Mailbox == "" {
			transcript.Mailbox = "INBOX"
			config.Transcripts[name] = transcript
		}
	}
	return nil
}
