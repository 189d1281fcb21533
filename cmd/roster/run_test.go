package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpalmerr/roster"
	"github.com/spf13/pflag"
)

// executeRunCmd runs the run command over the scripted input and returns
// the captured output and any error.
func executeRunCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	// flag values persist between executions of the shared command tree
	runCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs(append([]string{"run"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunRun_SeedScenario(t *testing.T) {
	input := "1\nMartin\nPierre\n23\n3\nDoe\nJohn\n42\n2\n4\n"

	output, err := executeRunCmd(t, input)
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	expectedPhrases := []string{
		"This record is already present",
		"The name Doe was removed successfully",
		"Martin Pierre (23)",
		"Quit",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}

	listing := output[strings.LastIndex(output, "Listing all names:"):]
	if strings.Contains(listing, "Doe John (42)") {
		t.Errorf("removed record still listed\nGot: %s", listing)
	}
}

func TestRunRun_UnknownChoice(t *testing.T) {
	output, err := executeRunCmd(t, "5\n")
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	if !strings.HasSuffix(output, "Error\n") {
		t.Errorf("output should end with the error notice\nGot: %q", output)
	}
}

func TestRunRun_NoSeed(t *testing.T) {
	output, err := executeRunCmd(t, "2\n4\n", "--no-seed", "--no-demo")
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	if strings.Contains(output, "Doe John (42)") {
		t.Errorf("seed record listed with --no-seed\nGot: %s", output)
	}
}

func TestRunRun_FatalMissing(t *testing.T) {
	_, err := executeRunCmd(t, "3\nNobody\nHere\n0\n4\n", "--fatal-missing")
	if err == nil {
		t.Fatal("run command expected error for missing record, got nil")
	}
	if !errors.Is(err, roster.ErrNotFound) {
		t.Errorf("run command error = %v, want %v", err, roster.ErrNotFound)
	}
}

func TestRunRun_Demo(t *testing.T) {
	output, err := executeRunCmd(t, "4\n")
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	if !strings.Contains(output, "prenom:John") {
		t.Errorf("output missing the demo mapping\nGot: %s", output)
	}
	if strings.Index(output, "4 records:") > strings.Index(output, "Menu:") {
		t.Errorf("demo should be printed before the menu\nGot: %s", output)
	}
}

func TestRunRun_NoDemo(t *testing.T) {
	output, err := executeRunCmd(t, "4\n", "--no-demo")
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	if strings.Contains(output, "prenom") {
		t.Errorf("demo printed with --no-demo\nGot: %s", output)
	}
	if !strings.HasPrefix(output, "\nMenu:") {
		t.Errorf("output should start with the menu\nGot: %q", output)
	}
}

func TestRunRun_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "roster.yaml")

	configContent := `
seed: false
records:
  - last_name: Curie
    first_name: Marie
    age: 66
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	output, err := executeRunCmd(t, "2\n4\n", "-c", configPath, "--no-demo")
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	if !strings.Contains(output, "Curie Marie (66)") {
		t.Errorf("output missing configured record\nGot: %s", output)
	}
	if strings.Contains(output, "Doe John (42)") {
		t.Errorf("seed record listed with seed: false\nGot: %s", output)
	}
}

func TestRunRun_BadConfig(t *testing.T) {
	_, err := executeRunCmd(t, "4\n", "-c", "/nonexistent/path/roster.yaml")
	if err == nil {
		t.Fatal("run command expected error for missing config, got nil")
	}
	if !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("error should mention 'failed to load config', got: %v", err)
	}
}
