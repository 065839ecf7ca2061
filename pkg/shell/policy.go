package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ssargent/logmacster/pkg/config"
)

// Errors
var (
	ErrCanceled  = errors.New("canceled")
	ErrExtension = errors.New("unsupported file extension")
	ErrTooLarge  = errors.New("file too large")
	ErrNotFile   = errors.New("not a regular file")
)

// Policy limits which files may be opened and saved
type Policy struct {
	AllowedExtensions []string
	MaxOpenBytes      int64
	MaxSaveBytes      int64
}

// DefaultPolicy allows .adi, .adif and .txt files up to 50 MB on open and
// 10 MB on save
func DefaultPolicy() Policy {
	return PolicyFromConfig(config.DefaultConfig().Files)
}

// PolicyFromConfig builds a policy from the files section of the
// configuration
func PolicyFromConfig(files config.Files) Policy {
	return Policy{
		AllowedExtensions: append([]string(nil), files.AllowedExtensions...),
		MaxOpenBytes:      files.MaxOpenBytes,
		MaxSaveBytes:      files.MaxSaveBytes,
	}
}

// resolve cleans path, makes it absolute and checks its extension
func (p Policy) resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty path: %w", ErrNotFile)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(abs))
	for _, allowed := range p.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return abs, nil
		}
	}
	return "", fmt.Errorf("%s (allowed: %s): %w", filepath.Base(abs), strings.Join(p.AllowedExtensions, ", "), ErrExtension)
}

func (p Policy) patterns() []string {
	out := make([]string, len(p.AllowedExtensions))
	for i, ext := range p.AllowedExtensions {
		out[i] = "*" + ext
	}
	return out
}
