package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	t.Cleanup(func() { showEdits = false })

	err := rootCmd.ExecuteContext(context.Background())
	// post-run hooks are skipped when RunE fails
	if rt != nil {
		rt.Close()
		rt = nil
	}
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestDiffCommand(t *testing.T) {
	old := writeFile(t, "old.yaml", `spots:
  - id: 1
    name: Squirrel Watchers
  - id: 2
    name: Pre-Vet Club
`)
	updated := writeFile(t, "new.yaml", `spots:
  - id: 2
    name: Pre-Vet Club
  - id: 3
    name: Illini Star Gazers
`)

	out, err := execute(t, "diff", old, updated)
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	for _, want := range []string{"remove", "insert", "Illini Star Gazers"} {
		if !contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDiffCommand_DuplicateID(t *testing.T) {
	old := writeFile(t, "old.yaml", "spots:\n  - id: 1\n    name: a\n  - id: 1\n    name: b\n")
	updated := writeFile(t, "new.yaml", "spots:\n  - id: 1\n    name: a\n")

	_, err := execute(t, "diff", old, updated)
	if err == nil || !contains(err.Error(), "duplicate id") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

func TestDeckCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	out, err := execute(t, "--db", db, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !contains(out, "Squirrel Watchers") {
		t.Errorf("expected builtin spots in output, got:\n%s", out)
	}

	out, err = execute(t, "--db", db, "--edits", "add-first", "2")
	if err != nil {
		t.Fatalf("add-first failed: %v", err)
	}
	if !contains(out, "+2 -0") {
		t.Errorf("expected summary in output, got:\n%s", out)
	}
	if !contains(out, "insert") {
		t.Errorf("expected edit rows in output, got:\n%s", out)
	}

	if _, err := execute(t, "--db", db, "add-first", "0"); err == nil {
		t.Error("expected error for count 0")
	}

	if _, err := execute(t, "--db", db, "like"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	out, err = execute(t, "--db", db, "likes")
	if err != nil {
		t.Fatalf("likes failed: %v", err)
	}
	if !contains(out, "like") {
		t.Errorf("expected a liked spot, got:\n%s", out)
	}
}

func TestAccountCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	out, err := execute(t, "--db", db, "register", "illini", "-p", "secret1", "--confirm", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !contains(out, "created account illini") {
		t.Errorf("expected confirmation, got:\n%s", out)
	}

	_, err = execute(t, "--db", db, "register", "illini", "-p", "secret1", "--confirm", "secret1")
	if err == nil || !contains(err.Error(), "is taken") {
		t.Errorf("expected taken username error, got %v", err)
	}

	_, err = execute(t, "--db", db, "register", "other", "-p", "secret1", "--confirm", "secret2")
	if err == nil || !contains(err.Error(), "does not match") {
		t.Errorf("expected mismatch error, got %v", err)
	}

	out, err = execute(t, "--db", db, "login", "illini", "-p", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !contains(out, "Welcome back, illini") {
		t.Errorf("expected greeting, got:\n%s", out)
	}

	if _, err := execute(t, "--db", db, "login", "illini", "-p", "wrong1"); err == nil {
		t.Error("expected error for a wrong password")
	}
}
