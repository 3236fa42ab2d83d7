package lib

import "bytes"

// NormalizeNewlines converts bare LF line endings into CRLF.
// Input already using CRLF is returned untouched.
func NormalizeNewlines(input []byte) []byte {
	if !bytes.Contains(input, []byte("\n")) || bytes.Contains(input, []byte("\r\n")) {
		return input
	}
	return bytes.ReplaceAll(input, []byte("\n"), []byte("\r\n"))
}
