package response

import "github.com/creativeprojects/imapresp/lib"

// Parser holds the logger used to report skipped responses.
// It has no other state and can be shared.
type Parser struct {
	log lib.Logger
}

func NewParser(logger lib.Logger) *Parser {
	return &Parser{
		log: lib.LoggerOrNoLog(logger),
	}
}

var silent = NewParser(nil)
