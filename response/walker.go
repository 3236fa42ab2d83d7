package response

import (
	"github.com/creativeprojects/imapresp/lib"
	"github.com/creativeprojects/imapresp/record"
)

// outcome of the classification of a record by a mapper
type outcome int

const (
	mapped outcome = iota
	unrelated
	skipped
)

// walk tokenizes all the lines and collects the values mapped by classify.
// Unrelated records are only accepted when they are unilateral.
func walk[T any](log lib.Logger, lines []byte, classify func(record.Record) (T, outcome)) ([]T, error) {
	things := make([]T, 0)
	for len(lines) > 0 {
		rest, rec, err := record.Parse(lines)
		if err != nil {
			return nil, newInvalidError(lines, err)
		}
		lines = rest

		value, result := classify(rec)
		switch result {
		case mapped:
			things = append(things, value)
		case unrelated:
			if !IsUnilateral(rec) {
				return nil, &UnexpectedError{Record: rec}
			}
			log.Printf("skipping unilateral response %q", excerpt(rec.Raw()))
		}
	}
	return things, nil
}
