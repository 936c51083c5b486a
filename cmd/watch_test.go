package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/infra/logger"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := &watchSession{
		rec: calc.New(nil),
		out: &out,
		log: logger.NopLogger{},
		id:  "test-session",
	}
	if err := s.run(strings.NewReader(input)); err != nil {
		t.Fatalf("session error: %v", err)
	}
	return out.String()
}

func TestWatchSessionInitialRender(t *testing.T) {
	out := runSession(t, "quit\n")

	for _, want := range []string{
		"OWID, 100 km, 1 aboard",
		"MODE",
		"gasoline car",
		"17.0",
		"n/a",
		watchHelp,
		"> ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestWatchSessionDistanceChange(t *testing.T) {
	out := runSession(t, "distance 200\nquit\n")

	if !strings.Contains(out, "OWID, 200 km, 1 aboard") {
		t.Fatalf("distance change did not re-render:\n%s", out)
	}
	if !strings.Contains(out, "34.0") {
		t.Fatalf("expected the gasoline car at 34.0 kg:\n%s", out)
	}
}

func TestWatchSessionStepDistance(t *testing.T) {
	out := runSession(t, "+\nquit\n")

	if !strings.Contains(out, "OWID, 110 km, 1 aboard") {
		t.Fatalf("step did not advance the distance:\n%s", out)
	}
}

func TestWatchSessionDatasetAndPassengers(t *testing.T) {
	out := runSession(t, "ds psi\np 2\nquit\n")

	if !strings.Contains(out, "PSI, 100 km, 2 aboard") {
		t.Fatalf("dataset and passenger changes did not re-render:\n%s", out)
	}
	// electric car: 0.11 * 100 km shared by 2
	if !strings.Contains(out, "5.5") {
		t.Fatalf("expected the electric car at 5.5 kg:\n%s", out)
	}
}

func TestWatchSessionRejectsOutOfRange(t *testing.T) {
	out := runSession(t, "distance 999\nshow\nquit\n")

	if !strings.Contains(out, "error:") {
		t.Fatalf("expected an error line:\n%s", out)
	}
	if strings.Contains(out, "999 km") {
		t.Fatalf("rejected distance must not render:\n%s", out)
	}
	if !strings.Contains(out, "OWID, 100 km, 1 aboard") {
		t.Fatalf("panel state should stay at the default:\n%s", out)
	}
}

func TestWatchSessionUnknownCommand(t *testing.T) {
	out := runSession(t, "bogus\nquit\n")

	if !strings.Contains(out, `unknown command "bogus"`) {
		t.Fatalf("expected an unknown command error:\n%s", out)
	}
}

func TestWatchSessionNoOpDoesNotRerender(t *testing.T) {
	out := runSession(t, "dataset owid\nquit\n")

	if n := strings.Count(out, "OWID, 100 km, 1 aboard"); n != 1 {
		t.Fatalf("no-op change re-rendered, %d headers:\n%s", n, out)
	}
}

func TestWatchSessionEndsOnEOF(t *testing.T) {
	out := runSession(t, "show\n")

	if n := strings.Count(out, "OWID, 100 km, 1 aboard"); n != 2 {
		t.Fatalf("expected the initial render plus one show, got %d:\n%s", n, out)
	}
}
