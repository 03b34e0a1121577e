package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records dispatched commands and their arguments.
type stubExec struct {
	calls []string
}

func (s *stubExec) record(call string) error {
	s.calls = append(s.calls, call)
	return nil
}

func (s *stubExec) ListUploads(context.Context) error  { return s.record("list") }
func (s *stubExec) AddUpload(context.Context) error    { return s.record("add") }
func (s *stubExec) SaveLocation(context.Context) error { return s.record("saveloc") }
func (s *stubExec) ListLocations(context.Context) error {
	return s.record("locations")
}
func (s *stubExec) SetLocation(context.Context) error       { return s.record("setloc") }
func (s *stubExec) UseDeviceLocation(context.Context) error { return s.record("here") }
func (s *stubExec) ClearAll(context.Context) error          { return s.record("clear") }

func (s *stubExec) ShowUpload(_ context.Context, id string) error {
	return s.record("show:" + id)
}
func (s *stubExec) EditUpload(_ context.Context, id string) error {
	return s.record("edit:" + id)
}
func (s *stubExec) DeleteUpload(_ context.Context, id string) error {
	return s.record("delete:" + id)
}
func (s *stubExec) RemoveLocation(_ context.Context, name string) error {
	return s.record("removeloc:" + name)
}
func (s *stubExec) Weather(_ context.Context, q string) error {
	return s.record("weather:" + q)
}
func (s *stubExec) HourlyWeather(_ context.Context, date string) error {
	return s.record("hours:" + date)
}
func (s *stubExec) History(_ context.Context, date string) error {
	return s.record("history:" + date)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &lines
}

func runScript(t *testing.T, script string) (*stubExec, *[]string) {
	t.Helper()
	out := captureOutput(t)
	stub := &stubExec{}
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader(script)))
	return stub, out
}

func TestREPL_Dispatch(t *testing.T) {
	stub, _ := runScript(t, strings.Join([]string{
		"list",
		"show abc",
		"delete abc",
		"removeloc Old Dock",
		"weather London",
		"hours 2026-08-29",
		"history 2026-08-20",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"list",
		"show:abc",
		"delete:abc",
		"removeloc:Old Dock",
		"weather:London",
		"hours:2026-08-29",
		"history:2026-08-20",
	}, stub.calls)
}

func TestREPL_UsageWithoutArgs(t *testing.T) {
	stub, out := runScript(t, "show\nedit\ndelete\nremoveloc\nhours\nhistory\nexit\n")

	assert.Empty(t, stub.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Usage: show <id>")
	assert.Contains(t, joined, "Usage: history <YYYY-MM-DD>")
}

func TestREPL_UnknownCommand(t *testing.T) {
	_, out := runScript(t, "paint\nexit\n")
	assert.Contains(t, strings.Join(*out, "\n"), "Unknown command: paint")
}

func TestREPL_HelpAndEOF(t *testing.T) {
	// no exit: the loop must stop at EOF
	_, out := runScript(t, "help\n")
	assert.Contains(t, strings.Join(*out, "\n"), "Available commands")
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	stub, _ := runScript(t, "\n\nlist\nexit\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}
