// Package editor connects the File menu notifications to the record store:
// opened files are parsed into the store and save requests write the
// generated ADIF text back through the shell.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/ssargent/logmacster/pkg/logbook"
	"github.com/ssargent/logmacster/pkg/shell"
)

// ErrNoPath is returned when a save is requested for a log that has never
// been saved and no path can be asked for
var ErrNoPath = errors.New("no file path to save to")

// Controller applies File menu notifications to a store
type Controller struct {
	store  *logbook.Store
	shell  *shell.Shell
	logger *log.Logger

	mutex    sync.Mutex
	onChange func()
	onError  func(error)
}

// New creates a controller for store
func New(store *logbook.Store, sh *shell.Shell, logger *log.Logger) *Controller {
	return &Controller{
		store:  store,
		shell:  sh,
		logger: logger,
	}
}

// Store returns the controlled store
func (c *Controller) Store() *logbook.Store {
	return c.store
}

// Shell returns the shell used for file access
func (c *Controller) Shell() *shell.Shell {
	return c.shell
}

// OnChange registers fn to be called after every notification that
// changed the store
func (c *Controller) OnChange(fn func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onChange = fn
}

// OnError registers fn to receive failures from Run instead of the
// shell's error dialog
func (c *Controller) OnError(fn func(error)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onError = fn
}

// Dispatch applies one notification
func (c *Controller) Dispatch(ctx context.Context, ev shell.Event) error {
	var err error
	switch ev := ev.(type) {
	case shell.FileOpened:
		c.Load(ev.Path, ev.Content)
	case shell.SaveRequested:
		err = c.Save(ctx)
	case shell.SaveAsRequested:
		err = c.SaveAs(ev.Path)
	case shell.NewEntryRequested:
		c.store.Add()
	default:
		return fmt.Errorf("unknown notification %T", ev)
	}
	if err != nil {
		return err
	}
	c.changed()
	return nil
}

// Run consumes notifications until the channel closes or ctx ends.
// Failures are reported to the user and do not stop the loop.
func (c *Controller) Run(ctx context.Context, events <-chan shell.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := c.Dispatch(ctx, ev); err != nil {
				c.report(err)
			}
		}
	}
}

// Load parses content read from path into the store
func (c *Controller) Load(path, content string) int {
	doc := adif.Parse(content)
	doc.Path = path
	c.store.Load(doc)
	c.logger.Infof("Loaded %d QSOs from %s", len(doc.Records), path)
	return len(doc.Records)
}

// Open reads path through the shell and loads it
func (c *Controller) Open(path string) (int, error) {
	res, err := c.shell.OpenPath(path)
	if err != nil {
		return 0, err
	}
	n := c.Load(res.FilePath, res.Content)
	c.changed()
	return n, nil
}

// Save writes the store to its current path, asking for one when the log
// has never been saved
func (c *Controller) Save(ctx context.Context) error {
	path := c.store.Path()
	if path == "" {
		if c.shell.Dialogs() == nil {
			return ErrNoPath
		}
		var err error
		path, err = c.shell.SelectSavePath(ctx, "")
		if errors.Is(err, shell.ErrCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return c.SaveAs(path)
}

// SaveAs writes the store to path. The in-memory log is unchanged when the
// write fails.
func (c *Controller) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	res, err := c.shell.Save(path, c.store.ADIF())
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	c.store.MarkSaved(res.FilePath)
	c.logger.Infof("Saved %d QSOs to %s", c.store.Len(), res.FilePath)
	return nil
}

// Title returns the window title, marked when there are unsaved changes
func (c *Controller) Title() string {
	title := shell.Title(c.store.Path())
	if c.store.Modified() {
		title = "* " + title
	}
	return title
}

func (c *Controller) report(err error) {
	c.mutex.Lock()
	fn := c.onError
	c.mutex.Unlock()
	if fn != nil {
		c.logger.Error("notification failed", "error", err)
		fn(err)
		return
	}
	c.shell.ReportError("LogMacster", err)
}

func (c *Controller) changed() {
	c.mutex.Lock()
	fn := c.onChange
	c.mutex.Unlock()
	if fn != nil {
		fn()
	}
}
