package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/api"
	"github.com/ssargent/logmacster/pkg/config"
	"github.com/ssargent/logmacster/pkg/di"
	"github.com/ssargent/logmacster/pkg/editor"
	"github.com/ssargent/logmacster/pkg/grid"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/ssargent/logmacster/pkg/logbook"
	"github.com/ssargent/logmacster/pkg/tui"
)

const sampleLog = "Sample log\n<EOH>\n" +
	"<CALL:4>W1AW<QSO_DATE:8>20240115<TIME_ON:6>143000<BAND:3>20m<MODE:3>SSB<FREQ:6>14.250<EOR>\n" +
	"<CALL:4>K1AB<QSO_DATE:8>20240116<BAND:3>40m<MODE:2>CW<FREQ:5>7.030<EOR>\n"

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.adi")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readLog(t *testing.T, path string) *adif.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return adif.Parse(string(data))
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx := context.WithValue(context.Background(), configKey, config.DefaultConfig())
	ctx = context.WithValue(ctx, configPathKey, filepath.Join(t.TempDir(), "config.yaml"))
	return log.NewContext(ctx, log.Discard())
}

func withContainer(t *testing.T, c *di.Container) {
	t.Helper()
	previous := container
	SetContainer(c)
	t.Cleanup(func() { SetContainer(previous) })
}

func TestRunShow_Table(t *testing.T) {
	path := writeLog(t, sampleLog)
	var out bytes.Buffer

	require.NoError(t, runShow(testContext(t), &out, path, showOptions{Format: "table"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Call Sign")
	assert.Contains(t, lines[0], "Frequency")
	assert.True(t, strings.HasPrefix(lines[1], "1"))
	assert.Contains(t, lines[1], "W1AW")
	assert.Contains(t, lines[1], "2024-01-15")
	assert.Contains(t, lines[1], "14:30:00")
	assert.Contains(t, lines[2], "K1AB")
}

func TestRunShow_FilterSortJSON(t *testing.T) {
	path := writeLog(t, sampleLog)
	var out bytes.Buffer

	err := runShow(testContext(t), &out, path, showOptions{
		Format: "json",
		Filter: "FREQ>5",
		Sort:   "FREQ",
	})
	require.NoError(t, err)

	var rows []struct {
		Index  int               `json:"index"`
		ID     string            `json:"id"`
		Record map[string]string `json:"record"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "K1AB", rows[0].Record["CALL"])
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "W1AW", rows[1].Record["CALL"])
	assert.Equal(t, 1, rows[1].Index)
}

func TestRunShow_NoMatches(t *testing.T) {
	path := writeLog(t, sampleLog)
	var out bytes.Buffer

	require.NoError(t, runShow(testContext(t), &out, path, showOptions{Filter: "BAND=6m"}))
	assert.Equal(t, "No QSOs found\n", out.String())
}

func TestRunShow_Errors(t *testing.T) {
	path := writeLog(t, sampleLog)
	ctx := testContext(t)

	assert.Error(t, runShow(ctx, &bytes.Buffer{}, path, showOptions{Filter: "BAND"}))
	assert.Error(t, runShow(ctx, &bytes.Buffer{}, path, showOptions{Format: "xml"}))
	assert.Error(t, runShow(ctx, &bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.adi"), showOptions{}))
}

func TestRunValidate(t *testing.T) {
	t.Run("valid log", func(t *testing.T) {
		path := writeLog(t, sampleLog)
		var out bytes.Buffer

		require.NoError(t, runValidate(testContext(t), &out, path))
		assert.Equal(t, "All 2 QSO(s) valid\n", out.String())
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeLog(t, "<CALL:4>W1AW<QSO_DATE:10>2024-01-15<EOR>"+
			"<CALL:4>K1AB<TIME_ON:4>1430<GRIDSQUARE:4>ZZ99<EOR>"+
			"<CALL:5>VE3XX<FREQ:4>7.03<EOR>")
		var out bytes.Buffer

		err := runValidate(testContext(t), &out, path)
		assert.ErrorIs(t, err, errInvalidLog)

		text := out.String()
		assert.Contains(t, text, `QSO 1 (W1AW): Date "2024-01-15": Date must be in YYYYMMDD format`)
		assert.Contains(t, text, `QSO 2 (K1AB): Time On "1430": Time must be in HHMMSS format`)
		assert.Contains(t, text, `QSO 2 (K1AB): Grid Square "ZZ99": Invalid grid square format`)
		assert.Contains(t, text, "3 invalid value(s) in 2 of 3 QSO(s)")
	})
}

func TestRunFmt(t *testing.T) {
	messy := "Sample log\n<EOH>\n<call:4>W1AW <band:3>20m <name:0> <EOR>\n\n<Call>K1AB<eor>"

	t.Run("stdout", func(t *testing.T) {
		path := writeLog(t, messy)
		var out bytes.Buffer

		require.NoError(t, runFmt(testContext(t), &out, path, false))
		assert.Equal(t, "Sample log\n<EOH><CALL:4>W1AW<BAND:3>20m<EOR>\n<CALL:4>K1AB<EOR>\n", out.String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, messy, string(data))
	})

	t.Run("write", func(t *testing.T) {
		path := writeLog(t, messy)
		var out bytes.Buffer

		require.NoError(t, runFmt(testContext(t), &out, path, true))
		assert.Contains(t, out.String(), "Formatted 2 QSO(s)")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Sample log\n<EOH><CALL:4>W1AW<BAND:3>20m<EOR>\n<CALL:4>K1AB<EOR>\n", string(data))
	})
}

func TestRunAdd(t *testing.T) {
	path := writeLog(t, sampleLog)
	var out bytes.Buffer

	err := runAdd(testContext(t), &out, path, []string{"CALL=VE3XX", "QSO_DATE=2024-02-01", "gridsquare=fn03"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Added QSO 3")

	doc := readLog(t, path)
	require.Len(t, doc.Records, 3)
	added := doc.Records[2]
	assert.Equal(t, "VE3XX", added.Value("CALL"))
	assert.Equal(t, "20240201", added.Value("QSO_DATE"))
	assert.Equal(t, "FN03", added.Value("GRIDSQUARE"))
	assert.Equal(t, "59", added.Value("RST_SENT"))
	assert.Equal(t, "N", added.Value("QSL_SENT"))
	assert.Equal(t, "Sample log\n<EOH>", doc.Header)
}

func TestRunAdd_InvalidLeavesFileAlone(t *testing.T) {
	path := writeLog(t, sampleLog)

	err := runAdd(testContext(t), &bytes.Buffer{}, path, []string{"CALL=VE3XX", "FREQ=lots"})
	var commitErr *grid.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "Invalid Frequency: Must be a valid number", err.Error())

	err = runAdd(testContext(t), &bytes.Buffer{}, path, []string{"CALL"})
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleLog, string(data))
}

func TestRunSet(t *testing.T) {
	path := writeLog(t, sampleLog)
	var out bytes.Buffer

	require.NoError(t, runSet(testContext(t), &out, path, "2", "time_on", "09:15:00"))
	assert.Equal(t, "Time On set to \"091500\" in QSO 2\n", out.String())

	doc := readLog(t, path)
	assert.Equal(t, "091500", doc.Records[1].Value("TIME_ON"))
	assert.Equal(t, "143000", doc.Records[0].Value("TIME_ON"))
}

func TestRunSet_Errors(t *testing.T) {
	path := writeLog(t, sampleLog)
	ctx := testContext(t)

	err := runSet(ctx, &bytes.Buffer{}, path, "3", "CALL", "W1AW")
	assert.ErrorIs(t, err, logbook.ErrRowNotFound)

	err = runSet(ctx, &bytes.Buffer{}, path, "one", "CALL", "W1AW")
	assert.Error(t, err)

	err = runSet(ctx, &bytes.Buffer{}, path, "1", "QSO_DATE", "Jan 15")
	var commitErr *grid.CommitError
	assert.ErrorAs(t, err, &commitErr)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, sampleLog, string(data))
}

func TestRunDelete(t *testing.T) {
	path := writeLog(t, sampleLog+"<CALL:5>VE3XX<EOR>\n")
	var out bytes.Buffer

	require.NoError(t, runDelete(testContext(t), &out, path, []string{"1", "3"}))
	assert.Equal(t, "Deleted 2 QSO(s), 1 remaining\n", out.String())

	doc := readLog(t, path)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "K1AB", doc.Records[0].Value("CALL"))
}

func TestRunInit(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "logmacster", "config.yaml")
	var out bytes.Buffer

	require.NoError(t, runInit(&out, configPath, false))
	assert.Contains(t, out.String(), "Configuration written to "+configPath)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Len(t, cfg.Security.APIKey, 64)

	out.Reset()
	require.NoError(t, runInit(&out, configPath, false))
	assert.Contains(t, out.String(), "already exists")

	again, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Security.APIKey, again.Security.APIKey)

	out.Reset()
	require.NoError(t, runInit(&out, configPath, true))
	forced, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.NotEqual(t, cfg.Security.APIKey, forced.Security.APIKey)
}

func TestRunEdit_RemembersRecentFiles(t *testing.T) {
	path := writeLog(t, sampleLog)
	ctx := testContext(t)
	configPath := configPathFrom(ctx)
	require.NoError(t, config.SaveConfig(config.DefaultConfig(), configPath))

	c := di.NewContainer()
	c.SetDialogs(nil)
	var got *tui.App
	c.SetEditorRunner(func(ctx context.Context, app *tui.App) error {
		got = app
		return nil
	})
	withContainer(t, c)

	var out bytes.Buffer
	require.NoError(t, runEdit(ctx, &out, path))

	assert.NotNil(t, got)
	assert.Empty(t, out.String())

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, cfg.Files.Recent)
}

func TestRunEdit_MissingFile(t *testing.T) {
	c := di.NewContainer()
	c.SetDialogs(nil)
	c.SetEditorRunner(func(ctx context.Context, app *tui.App) error {
		t.Fatal("editor should not start")
		return nil
	})
	withContainer(t, c)

	err := runEdit(testContext(t), &bytes.Buffer{}, filepath.Join(t.TempDir(), "none.adi"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type recordingStarter struct {
	config api.ServerConfig
	count  int
}

func (r *recordingStarter) StartServer(ctx context.Context, ctrl *editor.Controller, config api.ServerConfig, logger *log.Logger) error {
	r.config = config
	r.count = ctrl.Store().Len()
	return nil
}

type recordingFactory struct {
	starter *recordingStarter
}

func (f recordingFactory) CreateServerStarter() api.ServerStarter {
	return f.starter
}

func TestRunServe(t *testing.T) {
	path := writeLog(t, sampleLog)
	starter := &recordingStarter{}
	c := di.NewContainer()
	c.SetServerFactory(recordingFactory{starter: starter})
	withContainer(t, c)

	cfg := config.DefaultConfig()
	cfg.Port = 9090
	var out bytes.Buffer

	require.NoError(t, runServe(testContext(t), &out, cfg, path))

	assert.Equal(t, 9090, starter.config.Port)
	assert.Equal(t, "127.0.0.1", starter.config.Bind)
	assert.Len(t, starter.config.APIKey, 32)
	assert.Equal(t, 2, starter.count)
	assert.Contains(t, out.String(), "Generated API key: "+starter.config.APIKey)
	assert.Contains(t, out.String(), "Loaded 2 QSO(s)")
}

func TestRunServe_ConfiguredKey(t *testing.T) {
	starter := &recordingStarter{}
	c := di.NewContainer()
	c.SetServerFactory(recordingFactory{starter: starter})
	withContainer(t, c)

	cfg := config.DefaultConfig()
	cfg.Security.APIKey = "configured"
	var out bytes.Buffer

	require.NoError(t, runServe(testContext(t), &out, cfg, ""))
	assert.Equal(t, "configured", starter.config.APIKey)
	assert.NotContains(t, out.String(), "Generated API key")
	assert.Equal(t, 0, starter.count)
}

func TestRootCommand_Fields(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Logging.Dir = dir
	require.NoError(t, config.SaveConfig(cfg, configPath))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", configPath, "fields"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "FIELD"))
	assert.Contains(t, text, "GRIDSQUARE")
	assert.Equal(t, len(adif.Fields())+1, strings.Count(text, "\n"))
	assert.FileExists(t, filepath.Join(dir, "logmacster.slog"))
}
