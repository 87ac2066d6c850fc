package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  Name
		wantArgs []string
		wantRest string
	}{
		{name: "empty", line: "", wantCmd: Empty},
		{name: "blank", line: "   \t ", wantCmd: Empty},
		{name: "bare command", line: "all", wantCmd: All},
		{name: "lowercases command", line: "HeLLo", wantCmd: Hello},
		{
			name:     "args split on whitespace",
			line:     "add  John\t1234567890 ",
			wantCmd:  Add,
			wantArgs: []string{"John", "1234567890"},
			wantRest: "John\t1234567890",
		},
		{
			name:     "args keep case",
			line:     "PHONE John Smith",
			wantCmd:  Phone,
			wantArgs: []string{"John", "Smith"},
			wantRest: "John Smith",
		},
		{
			name:     "tab after command",
			line:     "delete\tJane",
			wantCmd:  Delete,
			wantArgs: []string{"Jane"},
			wantRest: "Jane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, rest := Parse(tt.line)
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %q, want %q", cmd, tt.wantCmd)
			}
			if diff := cmp.Diff(tt.wantArgs, args, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}
