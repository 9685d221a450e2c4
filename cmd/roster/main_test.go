package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	oldConfig, oldDebug := configPath, debugLogs
	t.Cleanup(func() {
		configPath, debugLogs = oldConfig, oldDebug
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootRunsShell(t *testing.T) {
	out, _, err := runRoot(t, "add Jane Doe to Engineering\nlist\nexit\n")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	want := "Enter command.\nOK\n" +
		"Enter command.\nAll Employees\n-------------\nJane Doe\n-------------\n" +
		"Enter command.\nExiting\n"
	if out != want {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRootUsesConfigPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	if err := os.WriteFile(path, []byte(`{"prompt": "roster>"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err := runRoot(t, "exit\n", "--config", path)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "roster>\nExiting\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRootDebugLogsToStderr(t *testing.T) {
	out, errOut, err := runRoot(t, "add A to B\n", "--debug")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if strings.Contains(out, "membership added") {
		t.Fatalf("debug logs leaked to stdout: %q", out)
	}
	if !strings.Contains(errOut, "membership added") {
		t.Fatalf("expected debug log on stderr, got %q", errOut)
	}
}

func TestRootBadConfig(t *testing.T) {
	_, _, err := runRoot(t, "", "--config", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRootIgnoresBadEnvironment(t *testing.T) {
	t.Setenv("ROSTER_DEBUG", "yes please")
	t.Setenv("ROSTER_HISTORY_LIMIT", "0")

	out, _, err := runRoot(t, "exit\n")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "Enter command.\nExiting\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
