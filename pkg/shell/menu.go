package shell

import (
	"context"
	"errors"
)

// Event is a File menu notification delivered to the editing surface
type Event interface {
	event()
}

// FileOpened carries a file the user chose to open
type FileOpened struct {
	Path    string
	Content string
}

// SaveRequested asks for the log to be saved to its current path
type SaveRequested struct{}

// SaveAsRequested asks for the log to be saved to Path
type SaveAsRequested struct {
	Path string
}

// NewEntryRequested asks for a blank record
type NewEntryRequested struct{}

func (FileOpened) event()        {}
func (SaveRequested) event()     {}
func (SaveAsRequested) event()   {}
func (NewEntryRequested) event() {}

// Menu turns File menu actions into notifications. Dialog work happens in
// the caller's goroutine; the notification is consumed asynchronously.
type Menu struct {
	shell  *Shell
	events chan Event
}

// NewMenu creates a menu whose notifications are buffered up to buffer
func NewMenu(shell *Shell, buffer int) *Menu {
	return &Menu{
		shell:  shell,
		events: make(chan Event, buffer),
	}
}

// Events returns the notification channel
func (m *Menu) Events() <-chan Event {
	return m.events
}

// Open shows the open dialog and posts FileOpened. A canceled dialog
// posts nothing and returns nil.
func (m *Menu) Open(ctx context.Context) error {
	res, err := m.shell.Open(ctx)
	if errors.Is(err, ErrCanceled) {
		return nil
	}
	if err != nil {
		m.shell.ReportError("Failed to open file", err)
		return err
	}
	return m.post(ctx, FileOpened{Path: res.FilePath, Content: res.Content})
}

// OpenRecent reads a path from the recent file list and posts FileOpened
func (m *Menu) OpenRecent(ctx context.Context, path string) error {
	res, err := m.shell.OpenPath(path)
	if err != nil {
		if m.shell.recent != nil {
			m.shell.recent.Remove(path)
		}
		m.shell.ReportError("Failed to open file", err)
		return err
	}
	return m.post(ctx, FileOpened{Path: res.FilePath, Content: res.Content})
}

// Save posts SaveRequested
func (m *Menu) Save(ctx context.Context) error {
	return m.post(ctx, SaveRequested{})
}

// SaveAs shows the save dialog and posts SaveAsRequested. A canceled
// dialog posts nothing and returns nil.
func (m *Menu) SaveAs(ctx context.Context, suggested string) error {
	path, err := m.shell.SelectSavePath(ctx, suggested)
	if errors.Is(err, ErrCanceled) {
		return nil
	}
	if err != nil {
		m.shell.ReportError("Failed to save file", err)
		return err
	}
	return m.post(ctx, SaveAsRequested{Path: path})
}

// NewEntry posts NewEntryRequested
func (m *Menu) NewEntry(ctx context.Context) error {
	return m.post(ctx, NewEntryRequested{})
}

// Close ends the notification stream
func (m *Menu) Close() {
	close(m.events)
}

func (m *Menu) post(ctx context.Context, ev Event) error {
	select {
	case m.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
