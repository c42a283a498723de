// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealbox/sealbox/internal/configs"
	logger "github.com/sealbox/sealbox/internal/logging"
)

// setupTestEnvironment points user settings at temporary directories so
// commands never touch the real key store, config, or audit log.
func setupTestEnvironment(t *testing.T, tempUserDir string) {
	originalUserSettings := configs.UserSealboxSettings

	t.Cleanup(func() {
		configs.UserSealboxSettings = originalUserSettings
		ResetGlobalState()
	})

	configs.UserSealboxSettings = &configs.UserSettings{
		UserKeysPath:    filepath.Join(tempUserDir, "keys"),
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		Username:        "testuser",
	}
}

// runCommand executes the root command with the given arguments and returns
// the combined output.
func runCommand(args ...string) (string, error) {
	ResetGlobalState()
	Logger = logger.Logger{}
	RootCmd.SetArgs(args)
	return captureOutput(RootCmd.Execute)
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}
