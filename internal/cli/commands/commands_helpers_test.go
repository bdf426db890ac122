package commands

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"DrivenPass/internal/config"
)

// newTestConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/почта) создавались в temp.
func newTestConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(dir, "token"),
	}
}

// captureOut подменяет Out на буфер и возвращает его.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}
