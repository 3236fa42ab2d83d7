package response

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var searchPattern = regexp.MustCompile(`(?i)^(?:\*\s+)?SEARCH((?:\s+[0-9]+)*)\s*$`)

// ParseSearchIDs reads a SEARCH response line and returns the message numbers.
// A SEARCH response without numbers is an empty result, not an error.
func ParseSearchIDs(lines []byte) ([]uint32, error) {
	if !utf8.Valid(lines) {
		return nil, newInvalidError(lines, errors.New("not valid UTF-8"))
	}
	matches := searchPattern.FindSubmatch(lines)
	if matches == nil {
		return nil, newInvalidError(lines, errors.New("not a SEARCH response"))
	}
	fields := strings.Fields(string(matches[1]))
	ids := make([]uint32, 0, len(fields))
	for _, field := range fields {
		id, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, newInvalidError(lines, err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

// SearchIDs is ParseSearchIDs
func (p *Parser) SearchIDs(lines []byte) ([]uint32, error) {
	ids, err := ParseSearchIDs(lines)
	if err == nil {
		p.log.Printf("search returned %d messages", len(ids))
	}
	return ids, err
}
