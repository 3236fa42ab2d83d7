package response

import "github.com/creativeprojects/imapresp/record"

// IsUnilateral reports whether the server is allowed to send this response at any
// time, whatever the command in progress (RFC 3501 section 7).
func IsUnilateral(rec record.Record) bool {
	switch rec.(type) {
	case *record.Recent, *record.Exists, *record.Fetch, *record.Expunge:
		return true
	}
	return false
}
