package run

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := map[string]Result{
		"PASS":                           Pass,
		"FAIL":                           Fail,
		"panic: boom":                    Fail,
		"fatal error: out of memory":     Fail,
		"failed to print to hstderr: x":  Fail,
		"--- PASS: TestWriteAll (0.00s)": Pending,
		"ok":                             Pending,
		"":                               Pending,
	}
	for line, expected := range tests {
		if got := Classify(line); got != expected {
			t.Errorf("%q: expected %v, got %v", line, expected, got)
		}
	}
}

func TestScan(t *testing.T) {
	tests := map[string]struct {
		output string
		result Result
		logged string
	}{
		"pass":     {"=== RUN TestA\r\n--- PASS: TestA\r\nPASS\r\ntrailing\r\n", Pass, "=== RUN TestA\n--- PASS: TestA\nPASS\ntrailing\n"},
		"panic":    {"panic: boom\nPASS\n", Fail, "panic: boom\nPASS\n"},
		"noResult": {"hello\n", Pending, "hello\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			calls := 0
			logger := log.New(&buf, "", 0)
			got := Scan(strings.NewReader(tc.output), logger, func(r Result) {
				calls++
				if r != tc.result {
					t.Errorf("done called with %v", r)
				}
			})
			if got != tc.result {
				t.Fatalf("expected %v, got %v", tc.result, got)
			}
			if buf.String() != tc.logged {
				t.Fatalf("expected log %q, got %q", tc.logged, buf.String())
			}
			if tc.result != Pending && calls != 1 {
				t.Fatalf("expected a single done call, got %d", calls)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if Pass.ExitCode() != 0 || Fail.ExitCode() != 1 || Pending.ExitCode() != 1 {
		t.Fatal("unexpected exit codes")
	}
}
