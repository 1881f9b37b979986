package command

import (
	"context"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/jsettings-go/internal/telemetry/logger"
	"github.com/yndnr/jsettings-go/internal/telemetry/metric"
	"github.com/yndnr/jsettings-go/pkg/jsettings"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestReloader(t *testing.T) {
	keepLogger(t)
	var logs syncBuffer
	log, err := logger.New(logger.Config{Level: "info", Format: "text", Output: &logs})
	if err != nil {
		t.Fatalf("logger.New() error = %v", err)
	}
	logger.SetDefault(log)

	settingsFile, schemaFile := writeFixture(t, testSettings, testSchema)
	reg := metric.NewRegistry()
	l := jsettings.New(
		jsettings.WithSettingsFile(settingsFile),
		jsettings.WithSchemaFile(schemaFile),
		jsettings.WithSink(reg.CountingSink(jsettings.LoggerSink{L: logger.Default()})),
	)
	r := &reloader{ctx: context.Background(), loader: l, metrics: reg}

	r.reload("startup")
	r.reload("test")

	out := logs.String()
	if strings.Count(out, "settings loaded") != 1 {
		t.Errorf("want one loaded entry, logs:\n%s", out)
	}
	if !strings.Contains(out, "settings unchanged") {
		t.Errorf("want an unchanged entry, logs:\n%s", out)
	}
	if strings.Count(out, "load_id=") != 2 {
		t.Errorf("every reload should carry a load id, logs:\n%s", out)
	}

	if err := os.WriteFile(settingsFile, []byte(`{"name": 1}`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	r.reload("test")

	if got := testutil.ToFloat64(reg.LoadsTotal.WithLabelValues(metric.ResultSuccess)); got != 2 {
		t.Errorf("successful loads = %v, want 2", got)
	}
	if got := testutil.ToFloat64(reg.LoadsTotal.WithLabelValues(metric.ResultFailure)); got != 1 {
		t.Errorf("failed loads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(reg.ReportsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("error reports = %v, want 1", got)
	}
	if !strings.Contains(logs.String(), "settings load failed") {
		t.Errorf("want a failure entry, logs:\n%s", logs.String())
	}
}

func TestReloader_RecoveryAfterFailure(t *testing.T) {
	keepLogger(t)
	var logs syncBuffer
	log, err := logger.New(logger.Config{Level: "info", Format: "text", Output: &logs})
	if err != nil {
		t.Fatalf("logger.New() error = %v", err)
	}
	logger.SetDefault(log)

	settingsFile, schemaFile := writeFixture(t, testSettings, testSchema)
	reg := metric.NewRegistry()
	l := jsettings.New(
		jsettings.WithSettingsFile(settingsFile),
		jsettings.WithSchemaFile(schemaFile),
		jsettings.WithSink(jsettings.LoggerSink{L: logger.Default()}),
	)
	r := &reloader{ctx: context.Background(), loader: l, metrics: reg}

	r.reload("startup")
	if err := os.WriteFile(settingsFile, []byte(`{"name": `), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	r.reload("broken")
	if err := os.WriteFile(settingsFile, []byte(testSettings), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	r.reload("restored")

	out := logs.String()
	if strings.Count(out, "msg=\"settings loaded\"") != 2 {
		t.Errorf("restoring the same content should log a fresh load, logs:\n%s", out)
	}
	if strings.Contains(out, "settings unchanged") {
		t.Errorf("a recovery must not be logged as unchanged, logs:\n%s", out)
	}
}

func TestWatch(t *testing.T) {
	keepLogger(t)
	settingsFile, schemaFile := writeFixture(t, testSettings, testSchema)

	var out, errOut syncBuffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.RunContext(ctx, []string{
			"jsettings",
			"--settings", settingsFile,
			"--schema", schemaFile,
			"watch",
			"--interval", "10ms",
			"--metrics", "127.0.0.1:0",
		})
	}()

	waitFor(t, "watch to start", func() bool {
		return strings.Contains(errOut.String(), "watching settings")
	})

	if err := os.WriteFile(settingsFile, []byte(`{"name": "renamed"}`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	waitFor(t, "reload", func() bool {
		return strings.Count(errOut.String(), "msg=\"settings loaded\"") >= 2
	})

	m := regexp.MustCompile(`addr=(\S+)`).FindStringSubmatch(errOut.String())
	if m == nil {
		t.Fatalf("metrics address not logged:\n%s", errOut.String())
	}
	resp, err := http.Get("http://" + m[1] + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `jsettings_loads_total{result="success"}`) {
		t.Errorf("metrics body missing loads counter:\n%s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch returned error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
	if !strings.Contains(errOut.String(), "watch stopped") {
		t.Errorf("want a stop entry, logs:\n%s", errOut.String())
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, schemaFile := writeFixture(t, testSettings, testSchema)

	_, _, err := runApp(t, "--settings", "/nonexistent/dir/settings.json", "--schema", schemaFile, "watch")
	if err == nil || !strings.Contains(err.Error(), "watch /nonexistent/dir/settings.json") {
		t.Errorf("Run() error = %v, want a watch error", err)
	}
}
