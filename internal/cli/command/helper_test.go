package command

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/yndnr/jsettings-go/internal/telemetry/logger"
)

const testSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "db": {
      "type": "object",
      "properties": {
        "port": {"type": "integer"},
        "password": {"type": "string"}
      }
    }
  },
  "required": ["name"]
}`

const testSettings = `{"name": "svc", "db": {"port": 5432, "password": "hunter2"}}`

// syncBuffer is a bytes.Buffer safe for the watcher goroutine and the test
// to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// writeFixture writes a settings and a schema document into a temp dir.
func writeFixture(t *testing.T, settings, schema string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	settingsFile := filepath.Join(dir, "settings.json")
	schemaFile := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(settingsFile, []byte(settings), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	if err := os.WriteFile(schemaFile, []byte(schema), 0644); err != nil {
		t.Fatalf("Failed to write schema: %v", err)
	}
	return settingsFile, schemaFile
}

// keepLogger restores the process loggers the Before hook replaces.
func keepLogger(t *testing.T) {
	t.Helper()
	prev := logger.Default()
	prevSlog := slog.Default()
	prevLevel := logger.GetLevel()
	t.Cleanup(func() {
		logger.SetDefault(prev)
		slog.SetDefault(prevSlog)
		logger.SetLevel(prevLevel)
	})
}

// runApp runs the CLI with args and returns what it wrote.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	keepLogger(t)

	var out, errOut syncBuffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut

	err = app.Run(append([]string{"jsettings"}, args...))
	return out.String(), errOut.String(), err
}
