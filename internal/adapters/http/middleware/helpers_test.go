package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

// testLogger writes debug-level text records to buf, including the
// attributes stored in the request context.
func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(logging.ContextHandler(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// jsonLogger is testLogger with a JSON handler, for tests that inspect
// records field by field.
func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(logging.ContextHandler(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// record returns the first JSON record in buf whose msg is msg.
func record(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line %q is not JSON: %v", line, err)
		}
		if rec[slog.MessageKey] == msg {
			return rec
		}
	}
	t.Fatalf("no %q record in:\n%s", msg, buf.String())
	return nil
}
