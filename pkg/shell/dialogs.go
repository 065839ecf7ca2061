package shell

import (
	"context"
	"errors"

	"github.com/ncruces/zenity"
)

// Dialogs shows the native dialogs used by the File menu
type Dialogs interface {
	SelectOpen(ctx context.Context, policy Policy) (string, error)
	SelectSave(ctx context.Context, suggested string, policy Policy) (string, error)
	ShowError(title, message string)
	Confirm(ctx context.Context, message string) (bool, error)
}

// ZenityDialogs implements Dialogs with native dialogs
type ZenityDialogs struct{}

func (ZenityDialogs) filters(policy Policy) zenity.FileFilters {
	return zenity.FileFilters{
		{
			Name:     "ADIF Files",
			Patterns: policy.patterns(),
		},
		{
			Name:     "All Files",
			Patterns: []string{"*"},
		},
	}
}

func (d ZenityDialogs) SelectOpen(ctx context.Context, policy Policy) (string, error) {
	path, err := zenity.SelectFile(
		zenity.Context(ctx),
		zenity.Title("Open ADIF Log"),
		d.filters(policy),
	)
	return path, mapCancel(err)
}

func (d ZenityDialogs) SelectSave(ctx context.Context, suggested string, policy Policy) (string, error) {
	if suggested == "" {
		suggested = "log.adi"
	}
	path, err := zenity.SelectFileSave(
		zenity.Context(ctx),
		zenity.Title("Save ADIF Log"),
		zenity.ConfirmOverwrite(),
		zenity.Filename(suggested),
		d.filters(policy),
	)
	return path, mapCancel(err)
}

func (ZenityDialogs) ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title))
}

func (ZenityDialogs) Confirm(ctx context.Context, message string) (bool, error) {
	err := zenity.Question(message, zenity.Context(ctx), zenity.Title("LogMacster"))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, zenity.ErrCanceled):
		return false, nil
	}
	return false, err
}

func mapCancel(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return ErrCanceled
	}
	return err
}
