package main

import (
	"reflect"
	"testing"
)

func TestShouldRewriteArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", nil, false},
		{"known subcommand", []string{"exec", "--", "ls"}, false},
		{"check subcommand", []string{"check"}, false},
		{"help", []string{"help"}, false},
		{"external command", []string{"flameshot", "gui"}, true},
		{"external command after flag", []string{"--verbose", "scrot", "-s"}, true},
		{"explicit separator", []string{"--", "flameshot"}, false},
		{"only flags", []string{"--verbose"}, false},
		{"display value skipped", []string{"--display", ":1", "scrot"}, true},
		{"display value before subcommand", []string{"--display", ":1", "exec", "--", "ls"}, false},
		{"config value skipped", []string{"--config", "nora.yaml", "import"}, true},
		{"equals form needs no skip", []string{"--display=:1", "scrot"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRewriteArgs(tt.args); got != tt.want {
				t.Errorf("shouldRewriteArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestInsertArgSeparator(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", nil, nil},
		{"bare command", []string{"flameshot", "gui"}, []string{"--", "flameshot", "gui"}},
		{
			"flag then command",
			[]string{"--verbose", "scrot", "-s"},
			[]string{"--verbose", "--", "scrot", "-s"},
		},
		{
			"flag value stays on nora's side",
			[]string{"--display", ":1", "import", "screen.png"},
			[]string{"--display", ":1", "--", "import", "screen.png"},
		},
		{
			"command flags stay with the command",
			[]string{"--display=:1", "scrot", "--delay", "3"},
			[]string{"--display=:1", "--", "scrot", "--delay", "3"},
		},
		{"only flags", []string{"--verbose"}, []string{"--verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insertArgSeparator(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("insertArgSeparator(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
