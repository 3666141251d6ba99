package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"celebrate/internal/core"
	"celebrate/internal/engine"
	"celebrate/internal/log"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		table  string
		signal float64
		want   engine.Tier
	}{
		{TableBirthday, 0, "today"},
		{TableBirthday, 3, "urgent"},
		{TableBirthday, 7, "soon"},
		{TableBirthday, 42, "normal"},
		{TableDiscount, 0, "none"},
		{TableDiscount, 12, "discount"},
		{TableDiscount, 20, "deal"},
		{TableGreeting, 9, "morning"},
		{TableGreeting, 12, "afternoon"},
		{TableGreeting, 16, "afternoon"},
		{TableGreeting, 17, "evening"},
		{TableHighlight, 0, "highlight"},
		{TableHighlight, 1, "highlight"},
		{TableHighlight, 3, "upcoming"},
	}
	for _, tt := range tests {
		table, err := th.Table(tt.table)
		if err != nil {
			t.Fatalf("Table(%q): %v", tt.table, err)
		}
		got, err := table.Classify(tt.signal)
		if err != nil || got != tt.want {
			t.Errorf("%s.Classify(%v) = %q, %v; want %q", tt.table, tt.signal, got, err, tt.want)
		}
	}

	greeting, _ := th.Table(TableGreeting)
	var ie *core.InvalidInputError
	if _, err := greeting.Classify(-1); !errors.As(err, &ie) {
		t.Errorf("greeting table should reject negative hours, got %v", err)
	}
}

func TestParseThresholds(t *testing.T) {
	raw := []byte(`
birthday:
  tiers:
    - max: 0
      tier: today
    - max: 1
      tier: tomorrow
  default: later
  negative: label
  negative_tier: passed
rating:
  tiers:
    - max: 3.9
      tier: ok
  default: great
`)
	th, err := ParseThresholds(raw)
	if err != nil {
		t.Fatalf("ParseThresholds: %v", err)
	}

	birthday, _ := th.Table(TableBirthday)
	for signal, want := range map[float64]engine.Tier{-3: "passed", 0: "today", 1: "tomorrow", 5: "later"} {
		if got, err := birthday.Classify(signal); err != nil || got != want {
			t.Errorf("birthday.Classify(%v) = %q, %v; want %q", signal, got, err, want)
		}
	}

	rating, err := th.Table("rating")
	if err != nil {
		t.Fatalf("expected custom table: %v", err)
	}
	if got, _ := rating.Classify(4.8); got != "great" {
		t.Errorf("rating.Classify(4.8) = %q, want great", got)
	}

	// Tables absent from the file keep their defaults.
	if _, err := th.Table(TableDiscount); err != nil {
		t.Errorf("expected default discount table: %v", err)
	}
}

func TestParseThresholds_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"not yaml", "birthday: [", "parse thresholds"},
		{"missing default", "birthday:\n  tiers:\n    - max: 1\n      tier: a\n", `"birthday"`},
		{"unknown negative policy", "birthday:\n  default: a\n  negative: wrap\n", "unknown negative policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseThresholds([]byte(tt.raw))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ParseThresholds error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadThresholds(t *testing.T) {
	th, err := LoadThresholds("", log.Discard())
	if err != nil || len(th) != 4 {
		t.Fatalf("LoadThresholds(\"\") = %v, %v", th, err)
	}

	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	if err := os.WriteFile(path, []byte("greeting:\n  default: hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	th, err = LoadThresholds(path, log.Discard())
	if err != nil {
		t.Fatalf("LoadThresholds: %v", err)
	}
	greeting, _ := th.Table(TableGreeting)
	if got, _ := greeting.Classify(8); got != "hello" {
		t.Errorf("greeting.Classify(8) = %q, want hello", got)
	}

	if _, err := LoadThresholds(filepath.Join(t.TempDir(), "missing.yaml"), log.Discard()); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := th.Table("nope"); err == nil {
		t.Errorf("expected error for unknown table")
	}
}

func TestLoadThresholdsLogsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	raw := "highlight:\n  tiers:\n    - {max: 2, tier: highlight}\n  default: upcoming\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := log.New(log.Config{Handler: slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})})
	th, err := LoadThresholds(path, logger)
	if err != nil {
		t.Fatalf("LoadThresholds: %v", err)
	}

	highlight, _ := th.Table(TableHighlight)
	if highlight.Name() != TableHighlight {
		t.Errorf("Name = %q, want %q", highlight.Name(), TableHighlight)
	}
	if got, _ := highlight.Classify(2); got != "highlight" {
		t.Errorf("highlight.Classify(2) = %q", got)
	}
	for _, want := range []string{"component=config", "Loaded threshold overrides", "table=highlight", "count=4"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestDefaultTablesAreNamed(t *testing.T) {
	th := DefaultThresholds()
	for _, name := range th.Names() {
		if th[name].Name() != name {
			t.Errorf("table %q is named %q", name, th[name].Name())
		}
	}
}
