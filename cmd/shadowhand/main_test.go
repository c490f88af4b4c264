package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, name := range []string{"SHADOWHAND_DELAY", "SHADOWHAND_BACKEND", "SHADOWHAND_LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoArguments(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Usage: shadowhand") {
		t.Errorf("stderr should show usage, got %q", stderr)
	}
}

func TestRun_Help(t *testing.T) {
	isolate(t)

	code, stdout, _ := runCLI(t, "-help")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "-record") {
		t.Errorf("help should list flags, got %q", stdout)
	}
}

func TestRun_Version(t *testing.T) {
	isolate(t)

	code, stdout, _ := runCLI(t, "-version")
	if code != 0 || !strings.HasPrefix(stdout, "shadowhand dev") {
		t.Errorf("version: code %d, stdout %q", code, stdout)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	isolate(t)

	if code, _, _ := runCLI(t, "-bogus", "x.txt"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRun_TooManyFiles(t *testing.T) {
	isolate(t)

	if code, _, _ := runCLI(t, "a.txt", "b.txt"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRun_MissingFile(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, filepath.Join(t.TempDir(), "nope.txt"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Instruction file given doesn't exist.") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_ParseError(t *testing.T) {
	isolate(t)
	path := writeScript(t, "mouse_move_to 1 2\nmouse_move_to 1\n")

	code, stdout, stderr := runCLI(t, "-n", "-delay", "0", path)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "line 2") || !strings.Contains(stderr, "mouse_move") {
		t.Errorf("stderr should name the line and verb, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("nothing should execute on a parse error, got %q", stdout)
	}
}

func TestRun_Check(t *testing.T) {
	isolate(t)
	path := writeScript(t, "mouse_move_to 1 2\nkey_click {tab}\n")

	code, stdout, _ := runCLI(t, "-check", path)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "2 instructions OK") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_DryRun(t *testing.T) {
	isolate(t)
	path := writeScript(t, "mouse_move_to 5 6\nkey_sequence hello\n")

	start := time.Now()
	code, stdout, stderr := runCLI(t, "-dry-run", "-delay", "0s", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("zero delay should not sleep")
	}
	if !strings.Contains(stdout, "moveMouseTo(5, 6)") || !strings.Contains(stdout, `typeText("hello")`) {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_InvalidBackend(t *testing.T) {
	isolate(t)
	path := writeScript(t, "mouse_click\n")

	code, _, stderr := runCLI(t, "-backend", "x11", path)
	if code != 1 || !strings.Contains(stderr, "actuator.backend") {
		t.Errorf("code %d, stderr %q", code, stderr)
	}
}

func TestParseFlags_DelayOnlyWhenSet(t *testing.T) {
	var buf bytes.Buffer

	opts, _, done := parseFlags([]string{"x.txt"}, &buf, &buf)
	if done {
		t.Fatal("unexpected early exit")
	}
	if opts.Delay != nil {
		t.Errorf("Delay = %v, want nil when -delay is absent", *opts.Delay)
	}

	opts, _, _ = parseFlags([]string{"-delay", "250ms", "x.txt"}, &buf, &buf)
	if opts.Delay == nil || *opts.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", opts.Delay)
	}
	if opts.ScriptPath != "x.txt" {
		t.Errorf("ScriptPath = %q", opts.ScriptPath)
	}
}
