package response

import "regexp"

var authenticatePattern = regexp.MustCompile(`^\+ ?(.*)\r\n`)

// ParseAuthenticate returns the payload of a continuation request sent during AUTHENTICATE
func ParseAuthenticate(line string) (string, error) {
	matches := authenticatePattern.FindStringSubmatch(line)
	if matches == nil {
		return "", &AuthenticationError{Line: line}
	}
	return matches[1], nil
}

// Authenticate is ParseAuthenticate
func (p *Parser) Authenticate(line string) (string, error) {
	return ParseAuthenticate(line)
}
