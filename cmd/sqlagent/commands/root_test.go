// ABOUTME: Tests for root CLI command structure
// ABOUTME: Verifies subcommands and global flags are registered
package commands

import "testing"

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "sqlagent" {
		t.Errorf("Use = %q, want sqlagent", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	want := []string{"query", "serve", "history", "seed", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
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

func TestRootCmdGlobalFlags(t *testing.T) {
	cmd := NewRootCmd()

	flag := cmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.Shorthand != "q" {
		t.Errorf("quiet shorthand = %q, want q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("quiet default = %q, want false", flag.DefValue)
	}
}
