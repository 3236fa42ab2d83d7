// Package mdir exports fetched messages into maildir folders.
package mdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/creativeprojects/imapresp/lib"
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/emersion/go-maildir"
)

const Delimiter = "."

type Exporter struct {
	root string
	log  lib.Logger
}

func NewWithLogger(root string, logger lib.Logger) (*Exporter, error) {
	if runtime.GOOS == "windows" {
		return nil, errors.New("maildir is not supported on Windows")
	}
	err := os.MkdirAll(root, 0700)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		root: root,
		log:  lib.LoggerOrNoLog(logger),
	}, nil
}

// Folder returns the maildir folder used for the mailbox, creating it when needed
func (e *Exporter) Folder(name mailbox.Name) (maildir.Dir, error) {
	decoded, err := name.DecodedName()
	if err != nil {
		return "", fmt.Errorf("invalid mailbox name %q: %w", name.Name, err)
	}
	folder := lib.VerifyDelimiter(decoded, name.Delimiter, Delimiter)
	dirName := filepath.Join(e.root, folder)
	mbox := maildir.Dir(dirName)
	if _, err := os.Stat(dirName); err == nil || errors.Is(err, fs.ErrExist) {
		return mbox, nil
	}
	err = mbox.Init()
	if err != nil {
		return mbox, err
	}
	e.log.Printf("created maildir folder %q", dirName)
	return mbox, nil
}

// Export writes the payload of each fetched message into the mailbox folder.
// Messages without payload are skipped. It returns the number of messages written.
func (e *Exporter) Export(name mailbox.Name, fetches []mailbox.Fetch) (int, error) {
	mbox, err := e.Folder(name)
	if err != nil {
		return 0, fmt.Errorf("cannot create folder for mailbox %q: %w", name.Name, err)
	}
	count := 0
	for _, fetch := range fetches {
		payload := fetch.Payload()
		if payload == nil {
			e.log.Printf("message %d: %s", fetch.Message, lib.ErrNoPayload)
			continue
		}
		key, size, err := e.create(mbox, lib.StripRecentFlag(fetch.Flags), payload)
		if err != nil {
			return count, fmt.Errorf("cannot save message %d: %w", fetch.Message, err)
		}
		e.log.Printf("message %d saved: key=%q uid=%d size=%d flags=%v", fetch.Message, key, fetch.Uid, size, fetch.Flags)
		count++
	}
	return count, nil
}

func (e *Exporter) create(mbox maildir.Dir, flags []string, payload []byte) (string, int, error) {
	key, writer, err := mbox.Create(toFlags(flags))
	if err != nil {
		return key, 0, err
	}
	written, err := writer.Write(payload)
	if err != nil {
		_ = writer.Close()
		return key, written, err
	}
	if written < len(payload) {
		_ = writer.Close()
		return key, written, io.ErrShortWrite
	}
	return key, written, writer.Close()
}
