// Package testutil provides test helpers and fixtures for the rocket CLI.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// Update returns true if golden files should be updated (go test -update).
func Update() bool {
	return *updateGolden
}

// GoldenPath returns the path of a golden file in the package's testdata dir.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares actual output against testdata/<name>.golden. With
// -update the golden file is rewritten instead.
//
//	func TestReport(t *testing.T) {
//	    testutil.Golden(t, "halted_report", render())
//	}
func Golden(t *testing.T, name string, actual []byte) {
	t.Helper()

	goldenPath := GoldenPath(name)

	if Update() {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, actual, 0644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("Output does not match golden file %s.\n"+
			"To update the golden file, run: go test -update ./...\n\n"+
			"Got:\n%s\n\nWant:\n%s",
			goldenPath, string(actual), string(expected))
	}
}

// GoldenString is a convenience wrapper for Golden that accepts a string.
func GoldenString(t *testing.T, name string, actual string) {
	t.Helper()
	Golden(t, name, []byte(actual))
}
