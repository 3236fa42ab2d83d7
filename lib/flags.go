package lib

import (
	"strings"

	"github.com/emersion/go-imap"
)

// StripRecentFlag removes \Recent, which is session-bound and never persisted
func StripRecentFlag(source []string) []string {
	output := make([]string, 0, len(source))
	for _, flag := range source {
		if strings.EqualFold(flag, imap.RecentFlag) {
			continue
		}
		output = append(output, flag)
	}
	return output
}
