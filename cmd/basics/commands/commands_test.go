package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedwangl/go-basics/pkg/demo"
	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/utils"
)

func run(t *testing.T, cfgFile string, args ...string) (int, string, string) {
	t.Helper()
	if cfgFile == "" {
		cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	}
	tool := NewTool("test", cfgFile)
	var out, errOut bytes.Buffer
	tool.SetOutput(&out, &errOut)
	t.Cleanup(func() {
		_ = zapx.Close()
		zapx.Reset()
	})
	// nil 会让 cobra 回退到 os.Args
	if args == nil {
		args = []string{}
	}
	code := tool.ExecuteArgs(args)
	return code, out.String(), errOut.String()
}

func demoText(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, demo.Run(&buf))
	return buf.String()
}

func TestRootRunsDemo(t *testing.T) {
	code, out, _ := run(t, "")
	require.Equal(t, 0, code)
	assert.Equal(t, demoText(t), out)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 12)
}

func TestDemoCommand(t *testing.T) {
	code, out, _ := run(t, "", "demo")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "3\n3\n5\nfalse\ntrue\n965\n-1\n"))
	assert.True(t, strings.HasSuffix(out, "Hello Joanna\nStarts with H\nLame\nEnds with A\n"))
}

func TestDemoJSONAndLabels(t *testing.T) {
	code, out, _ := run(t, "", "demo", "--format", "json")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, `{"name":"successor","input":"2","value":3}`+"\n"))

	code, out, _ = run(t, "", "demo", "-l")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "successor(2): 3\n"))
}

func TestDemoRejectsUnknownFormat(t *testing.T) {
	code, out, errOut := run(t, "", "demo", "--format", "xml")
	assert.Equal(t, 1, code)
	assert.NotContains(t, out, "965")
	assert.Contains(t, errOut, "format")
}

func TestDemoFormatFromConfigAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\nlog:\n  level: error\n"), 0o644))

	code, out, _ := run(t, cfg)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "{"))

	t.Setenv("BASICS_FORMAT", "text")
	t.Setenv("BASICS_LABELS", "true")
	code, out, _ = run(t, cfg)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "successor(2): 3\n"))
}

func TestNumberCommands(t *testing.T) {
	turns, err := utils.Turns(10, 50, 5)
	require.NoError(t, err)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"successor", "2"}, "3"},
		{[]string{"successor2", "3"}, "5"},
		{[]string{"even", "1"}, "false"},
		{[]string{"even", "2"}, "true"},
		{[]string{"odd", "--", "-1"}, "true"},
		{[]string{"difference", "999", "34"}, "965"},
		{[]string{"difference", "34", "999"}, "965"},
		{[]string{"signum", "--", "-26"}, "-1"},
		{[]string{"signum", "0"}, "0"},
		{[]string{"signum", "5"}, "1"},
		{[]string{"turns", "--start", "10", "--end", "50", "--radius", "5"}, demo.Format(turns)},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, errOut := run(t, "", tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestNumberCommandErrors(t *testing.T) {
	code, _, errOut := run(t, "", "even", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "不是整数")

	code, _, errOut = run(t, "", "turns", "--start", "10", "--end", "50")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "radius 必须为正数")

	code, _, _ = run(t, "", "difference", "1")
	assert.Equal(t, 1, code)
}

func TestStringCommands(t *testing.T) {
	code, out, _ := run(t, "", "hello", "--name", "joanna")
	require.Equal(t, 0, code)
	assert.Equal(t, "Hello Joanna\n", out)

	for in, want := range map[string]string{
		"Hello world": "Starts with H",
		"Joanna":      "Lame",
		"JoannA":      "Ends with A",
	} {
		code, out, _ = run(t, "", "stringman", in)
		require.Equal(t, 0, code)
		assert.Equal(t, want+"\n", out)
	}
}

func TestHelloRequiresName(t *testing.T) {
	code, out, errOut := run(t, "", "hello")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "name 不能为空")
	assert.Contains(t, errOut, "Usage:")
}

func TestHelloAcceptsBlankName(t *testing.T) {
	want, err := utils.HelloName(" ")
	require.NoError(t, err)

	code, out, _ := run(t, "", "hello", "--name", " ")
	require.Equal(t, 0, code)
	assert.Equal(t, want+"\n", out)
	assert.Equal(t, "Hello  \n", out)
}

func TestFileLoggingFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	logDir := filepath.Join(dir, "logs")
	content := "log:\n  mode: file\n  path: " + logDir + "\n  level: info\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o644))

	code, _, _ := run(t, cfg, "signum", "5")
	require.Equal(t, 0, code)
	require.NoError(t, zapx.Close())

	data, err := os.ReadFile(filepath.Join(logDir, "access.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id")
	assert.Contains(t, string(data), "basics signum")
}

func TestConfigChangeReappliesLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	logDir := filepath.Join(dir, "logs")
	writeConf := func(level string) {
		content := "log:\n  mode: file\n  path: " + logDir + "\n  level: " + level + "\n"
		require.NoError(t, os.WriteFile(cfg, []byte(content), 0o644))
	}
	writeConf("error")

	code, _, _ := run(t, cfg, "signum", "5")
	require.Equal(t, 0, code)

	zapx.Debugw("before reload")
	writeConf("debug")

	accessLog := filepath.Join(logDir, "access.log")
	require.Eventually(t, func() bool {
		zapx.Debugw("after reload")
		data, err := os.ReadFile(accessLog)
		return err == nil && strings.Contains(string(data), "after reload")
	}, 3*time.Second, 50*time.Millisecond)

	data, err := os.ReadFile(accessLog)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "before reload")
}

func TestDebugFlagOverridesConfigLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	logDir := filepath.Join(dir, "logs")
	content := "log:\n  mode: file\n  path: " + logDir + "\n  level: error\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o644))

	code, _, _ := run(t, cfg, "--debug", "successor", "2")
	require.Equal(t, 0, code)
	require.NoError(t, zapx.Close())

	data, err := os.ReadFile(filepath.Join(logDir, "access.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"successor"`)
}

func TestTree(t *testing.T) {
	code, out, _ := run(t, "", "tree")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[numbers]")
	assert.Contains(t, out, "[strings]")
	assert.Contains(t, out, "stringman")
}
