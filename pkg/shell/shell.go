// Package shell is the boundary between LogMacster and the desktop: file
// dialogs, reading and writing log files under a size and extension policy,
// the File menu notifications and the recent file list.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssargent/logmacster/pkg/log"
)

const baseTitle = "LogMacster - ADIF Log Editor"

// OpenResult is the outcome of opening a file
type OpenResult struct {
	Success  bool   `json:"success"`
	Canceled bool   `json:"canceled,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	Content  string `json:"content,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SaveResult is the outcome of saving a file
type SaveResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Shell reads and writes log files on behalf of the editing surfaces
type Shell struct {
	policy  Policy
	dialogs Dialogs
	recent  *Recent
	logger  *log.Logger
}

// New creates a shell. dialogs may be nil when no desktop is available,
// in which case Open and SaveAs report ErrCanceled.
func New(policy Policy, dialogs Dialogs, recent *Recent, logger *log.Logger) *Shell {
	return &Shell{
		policy:  policy,
		dialogs: dialogs,
		recent:  recent,
		logger:  logger,
	}
}

// Policy returns the file policy in force
func (s *Shell) Policy() Policy {
	return s.policy
}

// Dialogs returns the dialog provider, which may be nil
func (s *Shell) Dialogs() Dialogs {
	return s.dialogs
}

// Recent returns the recent file list, which may be nil
func (s *Shell) Recent() *Recent {
	return s.recent
}

// Open asks the user for a file and reads it
func (s *Shell) Open(ctx context.Context) (OpenResult, error) {
	if s.dialogs == nil {
		return OpenResult{Canceled: true}, ErrCanceled
	}
	path, err := s.dialogs.SelectOpen(ctx, s.policy)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return OpenResult{Canceled: true}, err
		}
		return OpenResult{Error: err.Error()}, fmt.Errorf("open dialog: %w", err)
	}
	return s.OpenPath(path)
}

// OpenPath reads path after checking it against the policy. The content
// is returned as read; a byte order mark is left for the parser.
func (s *Shell) OpenPath(path string) (OpenResult, error) {
	abs, err := s.policy.resolve(path)
	if err != nil {
		return openFailed(err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return openFailed(fmt.Errorf("failed to stat %s: %w", abs, err))
	}
	if !info.Mode().IsRegular() {
		return openFailed(fmt.Errorf("%s: %w", abs, ErrNotFile))
	}
	if s.policy.MaxOpenBytes > 0 && info.Size() > s.policy.MaxOpenBytes {
		return openFailed(fmt.Errorf("%s is %d bytes, limit %d: %w", abs, info.Size(), s.policy.MaxOpenBytes, ErrTooLarge))
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return openFailed(fmt.Errorf("failed to read %s: %w", abs, err))
	}

	if s.recent != nil {
		s.recent.Add(abs)
	}
	s.logger.Info("file opened", "path", abs, "bytes", len(data))

	return OpenResult{
		Success:  true,
		FilePath: abs,
		Content:  string(data),
	}, nil
}

// Save writes content verbatim to path after checking it against the
// policy
func (s *Shell) Save(path, content string) (SaveResult, error) {
	abs, err := s.policy.resolve(path)
	if err != nil {
		return saveFailed(err)
	}
	if s.policy.MaxSaveBytes > 0 && int64(len(content)) > s.policy.MaxSaveBytes {
		return saveFailed(fmt.Errorf("content is %d bytes, limit %d: %w", len(content), s.policy.MaxSaveBytes, ErrTooLarge))
	}
	if info, err := os.Stat(abs); err == nil && !info.Mode().IsRegular() {
		return saveFailed(fmt.Errorf("%s: %w", abs, ErrNotFile))
	}

	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return saveFailed(fmt.Errorf("failed to write %s: %w", abs, err))
	}

	if s.recent != nil {
		s.recent.Add(abs)
	}
	s.logger.Info("file saved", "path", abs, "bytes", len(content))

	return SaveResult{Success: true, FilePath: abs}, nil
}

// SelectSavePath asks the user where to save, starting from suggested
func (s *Shell) SelectSavePath(ctx context.Context, suggested string) (string, error) {
	if s.dialogs == nil {
		return "", ErrCanceled
	}
	path, err := s.dialogs.SelectSave(ctx, suggested, s.policy)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return "", err
		}
		return "", fmt.Errorf("save dialog: %w", err)
	}
	return path, nil
}

// ReportError shows err to the user when a desktop is available and logs it
func (s *Shell) ReportError(title string, err error) {
	s.logger.Error(title, "error", err)
	if s.dialogs != nil {
		s.dialogs.ShowError(title, err.Error())
	}
}

// Title returns the window title for a log at path
func Title(path string) string {
	if path == "" {
		return baseTitle
	}
	return filepath.Base(path) + " - " + baseTitle
}

func openFailed(err error) (OpenResult, error) {
	return OpenResult{Error: err.Error()}, err
}

func saveFailed(err error) (SaveResult, error) {
	return SaveResult{Error: err.Error()}, err
}
