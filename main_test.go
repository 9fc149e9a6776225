package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args in an isolated home.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEDDINGSTORY_RSVP_TOKEN", "")
	t.Chdir(t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand_RequiresTerminal(t *testing.T) {
	_, err := runCLI(t)
	if err == nil {
		t.Fatal("expected an error when stdout is not a terminal")
	}
	if !errors.Is(err, errNoTerminal) {
		t.Errorf("err = %v, want errNoTerminal", err)
	}
}

func TestLinksCommand(t *testing.T) {
	out, err := runCLI(t, "links")
	if err != nil {
		t.Fatalf("links: %v", err)
	}

	for _, want := range []string{
		"Invitation: https://koketso-neo.wedding",
		"WhatsApp:   https://wa.me/?text=",
		"Map:        https://maps.google.com/?q=Letsholathebe%2CBotswana",
		"Calendar:   https://calendar.google.com/calendar/render?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLinksCommand_QR(t *testing.T) {
	out, err := runCLI(t, "links", "--qr")
	if err != nil {
		t.Fatalf("links --qr: %v", err)
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Error("expected a QR code made of block characters")
	}
}

func TestLinksCommand_ContentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("thank_you:\n  share_link: https://example.invalid/us\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--content", path, "links")
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	if !strings.Contains(out, "https://example.invalid/us") {
		t.Errorf("override not applied:\n%s", out)
	}
}

func TestICSCommand_WritesFile(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "ics", "--dir", dir)
	if err != nil {
		t.Fatalf("ics: %v", err)
	}

	path := strings.TrimSpace(out)
	if path != filepath.Join(dir, "koketso-neo-wedding.ics") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "BEGIN:VCALENDAR\r\n") {
		t.Errorf("unexpected payload start: %q", string(data[:min(len(data), 20)]))
	}
}

func TestICSCommand_Stdout(t *testing.T) {
	out, err := runCLI(t, "ics", "--stdout")
	if err != nil {
		t.Fatalf("ics --stdout: %v", err)
	}
	if !strings.Contains(out, "DTSTART:20251206T050000Z") {
		t.Errorf("missing DTSTART:\n%s", out)
	}
}

func TestICSCommand_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[story\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "--config", path, "ics", "--stdout"); err == nil {
		t.Error("expected a config parse error")
	}
}
