package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialogs struct {
	openPath string
	savePath string
	err      error
	confirm  bool
	errors   []string
}

func (f *fakeDialogs) SelectOpen(ctx context.Context, policy Policy) (string, error) {
	return f.openPath, f.err
}

func (f *fakeDialogs) SelectSave(ctx context.Context, suggested string, policy Policy) (string, error) {
	return f.savePath, f.err
}

func (f *fakeDialogs) ShowError(title, message string) {
	f.errors = append(f.errors, title+": "+message)
}

func (f *fakeDialogs) Confirm(ctx context.Context, message string) (bool, error) {
	return f.confirm, f.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, []string{".adi", ".adif", ".txt"}, p.AllowedExtensions)
	assert.Equal(t, int64(50*1024*1024), p.MaxOpenBytes)
	assert.Equal(t, int64(10*1024*1024), p.MaxSaveBytes)
	assert.Equal(t, []string{"*.adi", "*.adif", "*.txt"}, p.patterns())
}

func TestShell_OpenPath(t *testing.T) {
	dir := t.TempDir()
	s := New(DefaultPolicy(), nil, nil, nil)

	t.Run("reads allowed file", func(t *testing.T) {
		path := writeFile(t, dir, "log.ADI", "\uFEFF<CALL:4>W1AW<EOR>")

		res, err := s.OpenPath(path)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, path, res.FilePath)
		assert.True(t, strings.HasPrefix(res.Content, "\uFEFF"))
	})

	t.Run("relative path resolved", func(t *testing.T) {
		path := writeFile(t, dir, "rel.adif", "x")
		wd, err := os.Getwd()
		require.NoError(t, err)
		rel, err := filepath.Rel(wd, path)
		require.NoError(t, err)

		res, err := s.OpenPath(rel)
		require.NoError(t, err)
		assert.Equal(t, path, res.FilePath)
	})

	t.Run("rejects extension", func(t *testing.T) {
		path := writeFile(t, dir, "log.csv", "x")

		res, err := s.OpenPath(path)
		assert.ErrorIs(t, err, ErrExtension)
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("rejects directory", func(t *testing.T) {
		sub := filepath.Join(dir, "folder.adi")
		require.NoError(t, os.Mkdir(sub, 0750))

		_, err := s.OpenPath(sub)
		assert.ErrorIs(t, err, ErrNotFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := s.OpenPath(filepath.Join(dir, "missing.adi"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := s.OpenPath("  ")
		assert.Error(t, err)
	})
}

func TestShell_OpenSizeLimit(t *testing.T) {
	dir := t.TempDir()
	policy := DefaultPolicy()
	policy.MaxOpenBytes = 8
	s := New(policy, nil, nil, nil)

	_, err := s.OpenPath(writeFile(t, dir, "big.adi", "123456789"))
	assert.ErrorIs(t, err, ErrTooLarge)

	res, err := s.OpenPath(writeFile(t, dir, "ok.adi", "12345678"))
	require.NoError(t, err)
	assert.Equal(t, "12345678", res.Content)
}

func TestShell_Save(t *testing.T) {
	dir := t.TempDir()
	policy := DefaultPolicy()
	policy.MaxSaveBytes = 16
	recent, err := NewRecent(5, nil)
	require.NoError(t, err)
	s := New(policy, nil, recent, nil)

	path := filepath.Join(dir, "out.adif")
	res, err := s.Save(path, "<EOH>\n")
	require.NoError(t, err)
	assert.True(t, res.Success)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<EOH>\n", string(data))
	assert.Equal(t, []string{path}, recent.Paths())

	_, err = s.Save(path, strings.Repeat("x", 17))
	assert.ErrorIs(t, err, ErrTooLarge)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<EOH>\n", string(data), "failed save must leave the file alone")

	_, err = s.Save(filepath.Join(dir, "out.json"), "x")
	assert.ErrorIs(t, err, ErrExtension)

	_, err = s.Save(filepath.Join(dir, "missing", "out.adi"), "x")
	assert.Error(t, err)
}

func TestShell_OpenWithDialogs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "log.txt", "<CALL:4>W1AW<EOR>")
	dialogs := &fakeDialogs{openPath: path}
	s := New(DefaultPolicy(), dialogs, nil, nil)

	res, err := s.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, res.FilePath)

	dialogs.err = ErrCanceled
	res, err = s.Open(context.Background())
	assert.ErrorIs(t, err, ErrCanceled)
	assert.True(t, res.Canceled)

	dialogs.err = errors.New("no display")
	_, err = s.Open(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCanceled)
}

func TestShell_NoDialogs(t *testing.T) {
	s := New(DefaultPolicy(), nil, nil, nil)

	res, err := s.Open(context.Background())
	assert.ErrorIs(t, err, ErrCanceled)
	assert.True(t, res.Canceled)

	_, err = s.SelectSavePath(context.Background(), "")
	assert.ErrorIs(t, err, ErrCanceled)

	assert.NotPanics(t, func() { s.ReportError("x", errors.New("y")) })
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "LogMacster - ADIF Log Editor", Title(""))
	assert.Equal(t, "field-day.adi - LogMacster - ADIF Log Editor", Title("/logs/2024/field-day.adi"))
}

func TestRecent(t *testing.T) {
	r, err := NewRecent(3, []string{"/c.adi", "/b.adi", "/a.adi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/c.adi", "/b.adi", "/a.adi"}, r.Paths())

	r.Add("/a.adi")
	assert.Equal(t, []string{"/a.adi", "/c.adi", "/b.adi"}, r.Paths())

	r.Add("/d.adi")
	assert.Equal(t, []string{"/d.adi", "/a.adi", "/c.adi"}, r.Paths())

	r.Remove("/a.adi")
	assert.Equal(t, []string{"/d.adi", "/c.adi"}, r.Paths())

	_, err = NewRecent(0, nil)
	assert.Error(t, err)
}

func TestMenu_Notifications(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "log.adi", "<CALL:4>W1AW<EOR>")
	save := filepath.Join(dir, "copy.adi")
	dialogs := &fakeDialogs{openPath: path, savePath: save}
	m := NewMenu(New(DefaultPolicy(), dialogs, nil, nil), 4)
	ctx := context.Background()

	require.NoError(t, m.Open(ctx))
	require.NoError(t, m.Save(ctx))
	require.NoError(t, m.SaveAs(ctx, "log.adi"))
	require.NoError(t, m.NewEntry(ctx))
	m.Close()

	var got []Event
	for ev := range m.Events() {
		got = append(got, ev)
	}
	require.Len(t, got, 4)
	assert.Equal(t, FileOpened{Path: path, Content: "<CALL:4>W1AW<EOR>"}, got[0])
	assert.Equal(t, SaveRequested{}, got[1])
	assert.Equal(t, SaveAsRequested{Path: save}, got[2])
	assert.Equal(t, NewEntryRequested{}, got[3])
}

func TestMenu_CanceledDialogPostsNothing(t *testing.T) {
	dialogs := &fakeDialogs{err: ErrCanceled}
	m := NewMenu(New(DefaultPolicy(), dialogs, nil, nil), 1)

	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.SaveAs(context.Background(), ""))
	assert.Len(t, m.events, 0)
	assert.Empty(t, dialogs.errors)
}

func TestMenu_OpenFailureReported(t *testing.T) {
	dir := t.TempDir()
	dialogs := &fakeDialogs{openPath: writeFile(t, dir, "log.csv", "x")}
	m := NewMenu(New(DefaultPolicy(), dialogs, nil, nil), 1)

	err := m.Open(context.Background())
	assert.ErrorIs(t, err, ErrExtension)
	require.Len(t, dialogs.errors, 1)
	assert.Contains(t, dialogs.errors[0], "Failed to open file")
}

func TestMenu_OpenRecentForgetsMissing(t *testing.T) {
	recent, err := NewRecent(3, []string{"/nowhere/gone.adi"})
	require.NoError(t, err)
	m := NewMenu(New(DefaultPolicy(), nil, recent, nil), 1)

	assert.Error(t, m.OpenRecent(context.Background(), "/nowhere/gone.adi"))
	assert.Empty(t, recent.Paths())
}

func TestMenu_PostHonoursContext(t *testing.T) {
	m := NewMenu(New(DefaultPolicy(), nil, nil, nil), 0)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := m.NewEntry(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
