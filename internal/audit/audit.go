package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sealbox/sealbox/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Name of user performing action.
	UserUUID  string `json:"uuid"` // UUID of user performing action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	InputPath   string `json:"input_path,omitempty"`  // For encrypt/decrypt/inspect.
	OutputPath  string `json:"output_path,omitempty"` // For encrypt/decrypt.
	KeyName     string `json:"key_name,omitempty"`    // For keygen.
	Fingerprint string `json:"fingerprint,omitempty"` // Public key fingerprint.
}

// Log appends an entry to the audit log.
// If logging fails, the operation proceeds anyway: operations should not
// fail just because audit logging failed.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	// Open file for appending (create if doesn't exist).
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser is a convenience function that populates user fields from config.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op}

	userConfig, err := configs.EnsureUserConfig()
	if err != nil {
		return entry
	}

	entry.User = userConfig.User.Name
	entry.UserUUID = userConfig.User.UUID

	return entry
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	configsPath := configs.UserSealboxSettings.UserConfigsPath
	if configsPath == "" {
		return ""
	}
	return filepath.Join(configsPath, "audit.jsonl")
}

// ReadEntries parses the audit log and returns its entries in order.
// Malformed lines are skipped to tolerate partial writes. A missing log
// file yields an empty slice.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, line := range splitLines(data) {
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
