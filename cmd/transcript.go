package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/creativeprojects/imapresp/cfg"
	"github.com/creativeprojects/imapresp/lib"
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/response"
	"github.com/pterm/pterm"
)

// decoded is the outcome of parsing one transcript
type decoded struct {
	kind    cfg.Kind
	table   pterm.TableData
	status  *mailbox.Status
	fetches []mailbox.Fetch
	summary string
}

func readTranscript(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return lib.NormalizeNewlines(data), nil
}

func decodeTranscript(parser *response.Parser, kind cfg.Kind, data []byte) (*decoded, error) {
	result := &decoded{kind: kind}
	switch kind {
	case cfg.KindNames:
		names, err := parser.Names(data)
		if err != nil {
			return nil, err
		}
		result.table = pterm.TableData{{"Mailbox", "Delimiter", "Attributes"}}
		for _, name := range names.Value() {
			decodedName, err := name.DecodedName()
			if err != nil {
				decodedName = name.Name
			}
			result.table = append(result.table, []string{decodedName, name.Delimiter, displayFlags(name.Attributes)})
		}
		result.summary = fmt.Sprintf("%d mailboxes", len(names.Value()))

	case cfg.KindFetch:
		fetches, err := parser.Fetches(data)
		if err != nil {
			return nil, err
		}
		result.fetches = fetches.Value()
		result.table = pterm.TableData{{"Message", "UID", "Flags", "Size"}}
		for _, fetch := range result.fetches {
			uid := ""
			if fetch.HasUID() {
				uid = strconv.FormatUint(uint64(fetch.Uid), 10)
			}
			result.table = append(result.table, []string{
				strconv.FormatUint(uint64(fetch.Message), 10),
				uid,
				displayFlags(fetch.Flags),
				strconv.Itoa(len(fetch.Payload())),
			})
		}
		result.summary = fmt.Sprintf("%d messages", len(result.fetches))

	case cfg.KindCapabilities:
		capabilities, err := parser.Capabilities(data)
		if err != nil {
			return nil, err
		}
		result.table = pterm.TableData{{"Capability"}}
		for _, capability := range capabilities.Value().List() {
			result.table = append(result.table, []string{capability})
		}
		result.summary = fmt.Sprintf("%d capabilities", capabilities.Value().Len())

	case cfg.KindMailbox:
		status, err := parser.Mailbox(data)
		if err != nil {
			return nil, err
		}
		result.status = status
		result.table = pterm.TableData{
			{"Property", "Value"},
			{"Exists", strconv.FormatUint(uint64(status.Exists), 10)},
			{"Recent", strconv.FormatUint(uint64(status.Recent), 10)},
			{"Unseen", displayOptional(status.Unseen)},
			{"UID validity", displayOptional(status.UidValidity)},
			{"UID next", displayOptional(status.UidNext)},
			{"Flags", displayFlags(status.Flags)},
			{"Permanent flags", displayFlags(status.PermanentFlags)},
		}
		result.summary = fmt.Sprintf("%d messages", status.Exists)

	case cfg.KindSearch:
		ids, err := parser.SearchIDs(data)
		if err != nil {
			return nil, err
		}
		result.table = pterm.TableData{{"Message"}}
		for _, id := range ids {
			result.table = append(result.table, []string{strconv.FormatUint(uint64(id), 10)})
		}
		result.summary = fmt.Sprintf("%d results", len(ids))

	case cfg.KindAuthenticate:
		challenge, err := parser.Authenticate(string(data))
		if err != nil {
			return nil, err
		}
		result.table = pterm.TableData{{"Challenge"}, {challenge}}
		result.summary = fmt.Sprintf("challenge of %d bytes", len(challenge))

	default:
		return nil, fmt.Errorf("%w: %q", lib.ErrUnknownKind, kind)
	}
	return result, nil
}

func displayFlags(source []string) string {
	flags := make([]string, len(source))
	for i, flag := range source {
		flags[i] = strings.TrimPrefix(flag, "\\")
	}
	return strings.Join(flags, ", ")
}

func displayOptional(value uint32) string {
	if value == 0 {
		return "-"
	}
	return strconv.FormatUint(uint64(value), 10)
}
