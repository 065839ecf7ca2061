package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ssargent/logmacster/pkg/config"
	"github.com/ssargent/logmacster/pkg/editor"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/ssargent/logmacster/pkg/logbook"
	"github.com/ssargent/logmacster/pkg/shell"
)

// newController wires a store and shell from cfg. dialogs may be nil.
func newController(cfg *config.Config, dialogs shell.Dialogs, logger *log.Logger) (*editor.Controller, error) {
	recent, err := shell.NewRecent(cfg.Files.RecentLimit, cfg.Files.Recent)
	if err != nil {
		return nil, err
	}
	sh := shell.New(shell.PolicyFromConfig(cfg.Files), dialogs, recent, logger)
	store := logbook.New(logbook.Options{ProgramName: cfg.Editor.ProgramName})
	return editor.New(store, sh, logger), nil
}

// openLog loads path into a controller without native dialogs
func openLog(ctx context.Context, path string) (*editor.Controller, error) {
	ctrl, err := newController(configFrom(ctx), nil, log.FromContext(ctx))
	if err != nil {
		return nil, err
	}
	if _, err := ctrl.Open(path); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// rowIDs maps 1-based positions, as printed by show, to row IDs
func rowIDs(store *logbook.Store, positions []string) ([]string, error) {
	ids := make([]string, 0, len(positions))
	for _, p := range positions {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid QSO number %q", p)
		}
		id, err := store.IDAt(n - 1)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
