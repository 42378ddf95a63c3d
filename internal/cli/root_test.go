package cli

import (
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "pidplot" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("root command should silence usage and errors")
	}

	for _, flag := range []string{"config", "verbose"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing persistent flag: %s", flag)
		}
	}

	want := map[string]bool{"pid": false, "twiddle": false, "validate": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}
}

func TestRootCommand_GlobalFlagsReachSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--config", "/nonexistent/pidplot.yaml", "pid", "-i", "run.txt"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
