package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sealbox/sealbox/internal/configs"
)

// withTempConfigDir redirects the user config directory for a test.
func withTempConfigDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	original := configs.UserSealboxSettings
	configs.UserSealboxSettings = &configs.UserSettings{
		UserKeysPath:    filepath.Join(tmpDir, "keys"),
		UserConfigsPath: filepath.Join(tmpDir, "configs"),
		Username:        "tester",
	}
	t.Cleanup(func() { configs.UserSealboxSettings = original })
	return tmpDir
}

func TestLogCreatesFile(t *testing.T) {
	withTempConfigDir(t)

	Log(Entry{
		User:      "tester",
		UserUUID:  "test-uuid",
		Operation: "encrypt",
		InputPath: "notes.txt",
	})

	if _, err := os.Stat(LogPath()); os.IsNotExist(err) {
		t.Fatal("audit log file was not created")
	}
}

func TestLogAppendsEntries(t *testing.T) {
	withTempConfigDir(t)

	Log(Entry{Operation: "keygen", KeyName: "work"})
	Log(Entry{Operation: "encrypt", InputPath: "a.txt"})

	data, err := os.ReadFile(LogPath())
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(lines))
	}

	var first Entry
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first entry is not valid JSON: %v", err)
	}
	if first.Operation != "keygen" || first.KeyName != "work" {
		t.Errorf("unexpected first entry: %+v", first)
	}
	if first.Timestamp == "" {
		t.Error("expected a timestamp to be set")
	}
}

func TestReadEntries(t *testing.T) {
	withTempConfigDir(t)

	// Missing file yields no entries and no error.
	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}

	Log(Entry{Operation: "encrypt", InputPath: "a.txt"})
	Log(Entry{Operation: "decrypt", InputPath: "a.txt.sealed"})

	// Inject a malformed line; it must be skipped, not fail the read.
	f, err := os.OpenFile(LogPath(), os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatalf("failed to append garbage: %v", err)
	}
	f.Close()

	entries, err = ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Operation != "decrypt" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestLogWithUserPopulatesIdentity(t *testing.T) {
	withTempConfigDir(t)

	entry := LogWithUser("keygen")
	if entry.Operation != "keygen" {
		t.Errorf("operation = %q, want keygen", entry.Operation)
	}
	if entry.UserUUID == "" {
		t.Error("expected a user UUID from EnsureUserConfig")
	}
	if entry.User != "tester" {
		t.Errorf("user = %q, want tester", entry.User)
	}
}
