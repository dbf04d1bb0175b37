package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mhuels/starrecap/pkg/snapshot"
	"github.com/mhuels/starrecap/pkg/stars"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommand(t *testing.T) {
	root := testCLI().RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage = false, want true")
	}

	want := []string{"recap", "report", "update", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestReportCommand(t *testing.T) {
	lang := "Go"
	path := filepath.Join(t.TempDir(), "snap.json")
	_, err := snapshot.Export([]stars.Record{
		{Name: "a/b", URL: "https://x", Language: &lang, Stars: 7, Topics: []string{}},
	}, path, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"report", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "GITHUB STARRED REPOS RECAP") {
		t.Error("report output missing header panel")
	}
	if !strings.Contains(rendered, "Total: 1 repositories") {
		t.Error("report output missing total count")
	}
}

func TestReportCommandMissingFile(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"report", filepath.Join(t.TempDir(), "nope.json")})

	if err := root.Execute(); err == nil {
		t.Error("expected error for missing snapshot")
	}
}

func TestRecapCommandNoUsername(t *testing.T) {
	for _, key := range []string{"GITHUB_USERNAME", "GITHUB_TOKEN"} {
		t.Setenv(key, "")
	}

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"recap"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "no username") {
		t.Errorf("got %v, want missing-username error", err)
	}
}
