package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-imap"
)

// ErrMalformed is returned when a line could be tokenized but its arguments
// do not have the shape the response kind requires.
var ErrMalformed = errors.New("malformed response")

// Parse reads the first response of b.
// It returns the bytes following that response and the record.
// On error nothing is consumed and rest is b.
func Parse(b []byte) (rest []byte, rec Record, err error) {
	source := bytes.NewReader(b)
	buffered := bufio.NewReader(source)
	resp, err := imap.ReadResp(imap.NewReader(buffered))
	if err != nil {
		return b, nil, err
	}
	consumed := len(b) - source.Len() - buffered.Buffered()
	rec, err = classify(line(b[:consumed:consumed]), resp)
	if err != nil {
		return b, nil, err
	}
	return b[consumed:], rec, nil
}

func classify(raw line, resp imap.Resp) (Record, error) {
	switch resp := resp.(type) {
	case *imap.ContinuationReq:
		return &Continuation{line: raw, Info: resp.Info}, nil
	case *imap.StatusResp:
		return &Status{
			line:      raw,
			Tag:       resp.Tag,
			Type:      resp.Type,
			Code:      resp.Code,
			Arguments: resp.Arguments,
			Info:      resp.Info,
		}, nil
	case *imap.DataResp:
		return classifyData(raw, resp)
	}
	return nil, fmt.Errorf("%w: unsupported response type %T", ErrMalformed, resp)
}

func classifyData(raw line, resp *imap.DataResp) (Record, error) {
	fields := resp.Fields
	other := &Other{line: raw, Tag: resp.Tag, Fields: fields}
	if resp.Tag != "*" || len(fields) == 0 {
		return other, nil
	}

	// message data starts with a number: "* 12 EXISTS"
	if len(fields) >= 2 {
		if num, err := imap.ParseNumber(fields[0]); err == nil {
			return classifyMessageData(raw, num, fields[1:], other)
		}
	}

	name, _ := fields[0].(string)
	args := fields[1:]
	switch strings.ToUpper(name) {
	case "CAPABILITY":
		names := make([]string, 0, len(args))
		for _, arg := range args {
			capability, err := imap.ParseString(arg)
			if err != nil {
				return nil, malformed("CAPABILITY", err)
			}
			names = append(names, capability)
		}
		return &Capability{line: raw, Names: names}, nil

	case "FLAGS":
		if len(args) < 1 {
			return nil, malformed("FLAGS", errors.New("missing flag list"))
		}
		flags, err := imap.ParseStringList(args[0])
		if err != nil {
			return nil, malformed("FLAGS", err)
		}
		return &Flags{line: raw, Flags: flags}, nil

	case "LIST", "LSUB":
		return parseList(raw, strings.ToUpper(name) == "LSUB", args)

	case "STATUS":
		return parseMailboxStatus(raw, args)

	case "SEARCH":
		ids := make([]uint32, 0, len(args))
		for _, arg := range args {
			id, err := imap.ParseNumber(arg)
			if err != nil {
				// extended search results (RFC 7162) are left to the caller
				return other, nil
			}
			ids = append(ids, id)
		}
		return &Search{line: raw, IDs: ids}, nil
	}
	return other, nil
}

func classifyMessageData(raw line, num uint32, fields []interface{}, other *Other) (Record, error) {
	kind, _ := fields[0].(string)
	switch strings.ToUpper(kind) {
	case "EXISTS":
		return &Exists{line: raw, Count: num}, nil
	case "RECENT":
		return &Recent{line: raw, Count: num}, nil
	case "EXPUNGE":
		return &Expunge{line: raw, SeqNum: num}, nil
	case "FETCH":
		if len(fields) < 2 {
			return nil, malformed("FETCH", errors.New("missing attribute list"))
		}
		list, ok := fields[1].([]interface{})
		if !ok {
			return nil, malformed("FETCH", fmt.Errorf("expected a list of attributes, got %T", fields[1]))
		}
		attributes, err := parseAttributes(list)
		if err != nil {
			return nil, err
		}
		return &Fetch{line: raw, SeqNum: num, Attributes: attributes}, nil
	}
	return other, nil
}

func parseList(raw line, subscribed bool, args []interface{}) (Record, error) {
	kind := "LIST"
	if subscribed {
		kind = "LSUB"
	}
	if len(args) < 3 {
		return nil, malformed(kind, fmt.Errorf("expected 3 arguments, got %d", len(args)))
	}
	attributes, err := imap.ParseStringList(args[0])
	if err != nil {
		return nil, malformed(kind, err)
	}
	delimiter := ""
	if args[1] != nil {
		delimiter, err = imap.ParseString(args[1])
		if err != nil {
			return nil, malformed(kind, err)
		}
	}
	name, err := imap.ParseString(args[2])
	if err != nil {
		return nil, malformed(kind, err)
	}
	return &List{
		line:       raw,
		Subscribed: subscribed,
		Attributes: attributes,
		Delimiter:  delimiter,
		Name:       name,
	}, nil
}

func parseMailboxStatus(raw line, args []interface{}) (Record, error) {
	if len(args) < 2 {
		return nil, malformed("STATUS", fmt.Errorf("expected 2 arguments, got %d", len(args)))
	}
	name, err := imap.ParseString(args[0])
	if err != nil {
		return nil, malformed("STATUS", err)
	}
	list, ok := args[1].([]interface{})
	if !ok || len(list)%2 != 0 {
		return nil, malformed("STATUS", errors.New("invalid status item list"))
	}
	items := make(map[imap.StatusItem]uint64, len(list)/2)
	for i := 0; i < len(list); i += 2 {
		key, _ := list[i].(string)
		value, _ := list[i+1].(string)
		number, err := strconv.ParseUint(value, 10, 64)
		if key == "" || err != nil {
			return nil, malformed("STATUS", fmt.Errorf("invalid status item %v %v", list[i], list[i+1]))
		}
		items[imap.StatusItem(strings.ToUpper(key))] = number
	}
	return &MailboxStatus{line: raw, Name: name, Items: items}, nil
}

func parseAttributes(fields []interface{}) ([]Attribute, error) {
	if len(fields)%2 != 0 {
		return nil, malformed("FETCH", errors.New("odd number of items"))
	}
	attributes := make([]Attribute, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			return nil, malformed("FETCH", fmt.Errorf("item name is not an atom but a %T", fields[i]))
		}
		attribute, err := parseAttribute(key, fields[i+1])
		if err != nil {
			return nil, malformed("FETCH", fmt.Errorf("item %s: %w", key, err))
		}
		attributes = append(attributes, attribute)
	}
	return attributes, nil
}

func parseAttribute(key string, value interface{}) (Attribute, error) {
	name := strings.ToUpper(key)
	switch {
	case name == "FLAGS":
		flags, err := imap.ParseStringList(value)
		if err != nil {
			return nil, err
		}
		return AttrFlags(flags), nil

	case name == "UID":
		uid, err := imap.ParseNumber(value)
		if err != nil {
			return nil, err
		}
		return AttrUID(uid), nil

	case name == "RFC822":
		data, err := payload(value)
		return AttrRFC822(data), err

	case name == "RFC822.HEADER":
		data, err := payload(value)
		return AttrRFC822Header(data), err

	case name == "RFC822.TEXT":
		data, err := payload(value)
		return AttrRFC822Text(data), err

	case strings.HasPrefix(name, "BODY["):
		section, origin, err := parseSection(key)
		if err != nil {
			return nil, err
		}
		data, err := payload(value)
		if err != nil {
			return nil, err
		}
		return AttrBodySection{Section: section, Origin: origin, Data: data}, nil
	}
	return AttrOther{Name: name, Value: value}, nil
}

// parseSection splits "BODY[section]<origin>"
func parseSection(key string) (string, int64, error) {
	start := strings.IndexByte(key, '[')
	end := strings.LastIndexByte(key, ']')
	if start < 0 || end < start {
		return "", 0, fmt.Errorf("invalid body section %q", key)
	}
	section := key[start+1 : end]
	partial := key[end+1:]
	if partial == "" {
		return section, -1, nil
	}
	if !strings.HasPrefix(partial, "<") || !strings.HasSuffix(partial, ">") {
		return "", 0, fmt.Errorf("invalid body section origin %q", partial)
	}
	origin, err := strconv.ParseInt(partial[1:len(partial)-1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid body section origin %q: %w", partial, err)
	}
	return section, origin, nil
}

// payload returns the content of a nstring: nil for NIL.
// Literals read by go-imap are already buffered, their bytes are used as is.
func payload(value interface{}) ([]byte, error) {
	switch value := value.(type) {
	case nil:
		return nil, nil
	case *bytes.Buffer:
		return value.Bytes(), nil
	case string:
		return []byte(value), nil
	case imap.Literal:
		data := make([]byte, value.Len())
		if _, err := io.ReadFull(value, data); err != nil {
			return nil, err
		}
		return data, nil
	}
	return nil, fmt.Errorf("expected a string, a literal or NIL, got %T", value)
}

func malformed(kind string, err error) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformed, kind, err)
}
