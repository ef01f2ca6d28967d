// Package testutil holds small test-only helpers shared across this
// module's test suites, following the MustXxx helper convention used by
// the retrieval pack's test-support packages (e.g. sqldef's
// testutil.MustExecute).
package testutil

import (
	"testing"

	"github.com/shapestone/wsv/pkg/wsv"
)

// MustParse parses s and fails the test immediately if parsing errors,
// so callers building fixture documents don't have to check err in
// every test body. tb accepts both *testing.T and *testing.B.
func MustParse(tb testing.TB, s string) []wsv.Row {
	tb.Helper()
	rows, err := wsv.Parse(s)
	if err != nil {
		tb.Fatalf("testutil.MustParse(%q): %v", s, err)
	}
	return rows
}

// MustWrite writes rows and fails the test immediately if the writer
// returns an error (an invalid Alignment in opts).
func MustWrite(tb testing.TB, rows []wsv.Row, opts wsv.WriterOptions) string {
	tb.Helper()
	out, err := wsv.Write(rows, opts)
	if err != nil {
		tb.Fatalf("testutil.MustWrite: %v", err)
	}
	return out
}
