package seqbuffer

import (
	"os"
	"strings"
	"testing"
)

type testWriter struct {
	message string
	t       testing.TB
}

func (w *testWriter) Write(b []byte) (int, error) {
	s := string(b)
	if !strings.Contains(s, w.message) {
		w.t.Error("expected log'", string(b), "' to contain", w.message)
	}

	return len(b), nil
}

func TestSetLogWriters(t *testing.T) {
	defer SetLogWriters(os.Stdout)

	cases := []string{
		"a",
		"abcdefghijklmnopqrstuvwxyz",
		"aaaaaaaaaaaaaaaaaaaaaaaaaa",
		"abcdefghijklmnopqrstuvwxyabcdefghijklmnopqrstuvwxyabcdefghijklmnopqrstuvwxyabcdefghijklmnopqrstuvwxy",
	}

	for _, s := range cases {
		w := &testWriter{s, t}
		SetLogWriters(w)

		if len(logSinks) != 1 {
			t.Error("expected the length of logSinks to be 1")
		}

		logger.Info(s)
	}
}

func TestAddLogWriters(t *testing.T) {
	defer SetLogWriters(os.Stdout)

	SetLogWriters(&testWriter{"", t})

	AddLogWriter(&testWriter{"a", t})

	if len(logSinks) != 2 {
		t.Error("expected the length of logSinks to be 2")
	}

	AddLogWriter(&testWriter{"b", t})

	if len(logSinks) != 3 {
		t.Error("expected the length of logSinks to be 3")
	}

	logger.Info("ab")
}

func TestLoggingDisabledByDefault(t *testing.T) {
	defer SetLogWriters(os.Stdout)

	if logging {
		t.Skip("logging enabled through the environment")
	}

	SetLogWriters(&testWriter{"never", t})

	b := MustNewSequentialBuffer(1, WithAutoGrow(true))
	b.MustWriteUint64BE(1)
}

func TestLoggerName(t *testing.T) {
	defer SetLogWriters(os.Stdout)

	SetLogWriters(&testWriter{"seqbuffer", t})
	logger.Info("named")
}
