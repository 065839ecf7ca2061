package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ssargent/logmacster/pkg/editor"
	"github.com/ssargent/logmacster/pkg/grid"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/ssargent/logmacster/pkg/query"
	"github.com/ssargent/logmacster/pkg/shell"
)

// App is the terminal grid editor
type App struct {
	ctrl   *editor.Controller
	menu   *shell.Menu
	engine *query.Engine
	logger *log.Logger
	state  *AppState
	screen tcell.Screen
}

// New creates the terminal editor for ctrl. File menu actions are posted
// to menu, whose notifications ctrl consumes.
func New(ctrl *editor.Controller, menu *shell.Menu, logger *log.Logger) *App {
	return &App{
		ctrl:   ctrl,
		menu:   menu,
		engine: query.NewEngine(nil),
		logger: logger,
		state:  NewState(),
	}
}

// Run shows the grid until the user quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))

	return a.run(ctx, screen)
}

func (a *App) run(ctx context.Context, screen tcell.Screen) error {
	a.screen = screen
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The controller runs on its own goroutine and wakes the screen up
	// whenever the store changes or a notification fails.
	a.ctrl.OnChange(func() { a.wake(nil) })
	a.ctrl.OnError(func(err error) { a.wake(err) })
	defer a.ctrl.OnChange(nil)
	defer a.ctrl.OnError(nil)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := a.ctrl.Run(gctx, a.menu.Events())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		return a.loop(gctx)
	})
	return g.Wait()
}

func (a *App) loop(ctx context.Context) error {
	a.refresh()
	a.state.SetStatus("%d QSOs loaded. Enter=Edit Space=Select d=Delete n=New /=Filter s=Sort ^S=Save ^O=Open q=Quit", a.ctrl.Store().Len())

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		render(a.screen, a.state, a.title())
		a.screen.Show()

		var ev tcell.Event
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			ev = e
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if err, ok := ev.Data().(error); ok && err != nil {
				a.state.SetStatus("Error: %v", err)
			}
			a.refresh()
		case *tcell.EventKey:
			if a.apply(ctx, handleKey(keyFromEvent(ev), a.state)) == ActionQuit {
				return nil
			}
		}
	}
}

// apply carries out an action against the store
func (a *App) apply(ctx context.Context, action Action) Action {
	store := a.ctrl.Store()
	s := a.state

	switch action {
	case ActionCommit:
		row, ok := s.CurrentRow()
		field := s.CurrentColumn().Field
		raw := s.Input()
		s.endInput()
		if !ok {
			break
		}
		value, err := grid.Commit(store, row.ID, field, raw)
		var ce *grid.CommitError
		switch {
		case errors.As(err, &ce):
			s.SetStatus("%v", ce)
		case err != nil:
			s.SetStatus("Error: %v", err)
		default:
			s.SetStatus("%s set to %q", s.CurrentColumn().Header, value)
		}
		a.refresh()

	case ActionDelete:
		n := store.Delete(s.pending...)
		s.pending = nil
		s.selected = map[string]bool{}
		s.SetStatus("Deleted %d QSO(s)", n)
		a.refresh()

	case ActionNew:
		a.post(ctx, a.menu.NewEntry)

	case ActionSave:
		a.post(ctx, a.menu.Save)

	case ActionOpen:
		if a.ctrl.Shell().Dialogs() == nil {
			s.SetStatus("No file dialog available; start with: logmacster edit <file>")
			break
		}
		a.post(ctx, a.menu.Open)

	case ActionFilter:
		text := s.Input()
		queries, err := query.ParseFieldQueries(text)
		if err != nil {
			s.SetStatus("Error: %v", err)
			break
		}
		s.endInput()
		s.filter = text
		a.refresh()
		if len(queries) == 0 {
			s.SetStatus("Filter cleared")
		} else {
			s.SetStatus("%d of %d QSOs match %s", len(s.rows), store.Len(), text)
		}

	case ActionSort:
		a.refresh()
		dir := "ascending"
		if s.sortDesc {
			dir = "descending"
		}
		s.SetStatus("Sorted by %s, %s", s.CurrentColumn().Header, dir)
	}
	return action
}

func (a *App) post(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		a.state.SetStatus("Error: %v", err)
	}
}

// refresh reloads the visible rows from the store, applying the filter
// and sort order
func (a *App) refresh() {
	rows := a.ctrl.Store().Rows()
	if queries, err := query.ParseFieldQueries(a.state.filter); err == nil && len(queries) > 0 {
		rows = a.engine.Filter(rows, queries...)
	}
	if a.state.sortField != "" {
		a.engine.Sort(rows, a.state.sortField, a.state.sortDesc)
	}
	a.state.SetRows(rows)
}

func (a *App) title() string {
	store := a.ctrl.Store()
	title := shell.Title(store.Path())
	if store.Modified() {
		title += " *"
	}
	return fmt.Sprintf("%s  (%d QSOs)", title, store.Len())
}

func (a *App) wake(data any) {
	if a.screen == nil {
		return
	}
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		a.logger.Warn("dropped screen update", "error", err)
	}
}
