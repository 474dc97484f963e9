package recovery

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestRecoverToError(t *testing.T) {
	logger, buf := testLogger()

	err := RecoverToError(logger, "Encode", func() error {
		panic("unknown node")
	})
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", err)
	}
	var pe *PanicError
	if !errors.As(err, &pe) || pe.Operation != "Encode" || pe.Value != "unknown node" {
		t.Errorf("unexpected panic error %#v", err)
	}
	if !strings.Contains(buf.String(), "operation=Encode") {
		t.Errorf("panic was not logged: %s", buf.String())
	}

	want := errors.New("plain")
	if err := RecoverToError(logger, "Encode", func() error { return want }); err != want {
		t.Errorf("expected passthrough error, got %v", err)
	}
}

func TestRecoverToValue(t *testing.T) {
	logger, _ := testLogger()

	v, err := RecoverToValue(logger, "Pack", func() ([]byte, error) {
		var m map[string]int
		m["x"] = 1
		return []byte("unreachable"), nil
	})
	if v != nil || !errors.Is(err, ErrPanic) {
		t.Errorf("expected zero value and ErrPanic, got %q, %v", v, err)
	}

	n, err := RecoverToValue(nil, "Count", func() (int, error) { return 3, nil })
	if n != 3 || err != nil {
		t.Errorf("expected 3, nil, got %d, %v", n, err)
	}
}

func TestRecover(t *testing.T) {
	logger, buf := testLogger()

	Recover(logger, "Close", func() { panic("boom") })
	if !strings.Contains(buf.String(), "Panic recovered in cleanup") {
		t.Errorf("panic was not logged: %s", buf.String())
	}
}
