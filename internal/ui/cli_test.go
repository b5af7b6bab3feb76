package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/vivek-dodia/fast/internal/config"
)

func TestNewApp_Commands(t *testing.T) {
	app := NewApp(config.Default())

	var names []string
	for _, cmd := range app.root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"version", "setup"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q (have %v)", want, names)
		}
	}

	if flag := app.root.Flags().Lookup("days"); flag == nil {
		t.Error("missing --days flag")
	} else if flag.DefValue != "30" {
		t.Errorf("--days default = %s, want 30", flag.DefValue)
	}
}

func TestRunQuery_InvalidConfig(t *testing.T) {
	// No credentials at all: the pipeline must refuse before making any
	// network calls.
	app := NewApp(config.Default())
	err := app.runQuery(context.Background(), "how was my last run?")
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
	if !strings.Contains(err.Error(), "missing configuration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "activity", "activities"); got != "1 activity" {
		t.Errorf("plural(1) = %q", got)
	}
	if got := plural(3, "activity", "activities"); got != "3 activities" {
		t.Errorf("plural(3) = %q", got)
	}
}

func TestRenderScopePanel(t *testing.T) {
	DisableColor()
	panel := renderScopePanel("last 5 run activities", 5)
	if !strings.Contains(panel, "Focus: last 5 run activities") {
		t.Errorf("panel missing focus line: %q", panel)
	}
	if !strings.Contains(panel, "5 activities") {
		t.Errorf("panel missing count: %q", panel)
	}
}
