package lib

import "strings"

// VerifyDelimiter rewrites a hierarchical mailbox name from the delimiter
// the server reported to the one expected by the destination.
// An expected delimiter already present in the name is escaped first.
func VerifyDelimiter(name, existingDelimiter, expectedDelimiter string) string {
	if existingDelimiter == "" || expectedDelimiter == "" || existingDelimiter == expectedDelimiter {
		return name
	}
	name = strings.ReplaceAll(name, expectedDelimiter, "\\"+expectedDelimiter)
	name = strings.ReplaceAll(name, existingDelimiter, expectedDelimiter)
	return name
}
