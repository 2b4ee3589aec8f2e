package cli

import (
	"testing"

	"github.com/tleaf/barnview/internal/chamber"
)

func TestBuildPayload(t *testing.T) {
	tests := []struct {
		name    string
		command chamber.Command
		args    []string
		want    any
		wantErr bool
	}{
		{"mode no args", chamber.CmdMode, nil, nil, false},
		{"mode rejects value", chamber.CmdMode, []string{"x"}, nil, true},
		{"reset no args", chamber.CmdReset, nil, nil, false},
		{"stage valid", chamber.CmdStage, []string{"LEAF_DRYING"}, chamber.StagePayload{Stage: "LEAF_DRYING"}, false},
		{"stage lowercased input", chamber.CmdStage, []string{"yellowing"}, chamber.StagePayload{Stage: "YELLOWING"}, false},
		{"stage unknown", chamber.CmdStage, []string{"DRYING"}, nil, true},
		{"stage missing", chamber.CmdStage, nil, nil, true},
		{"servo valid", chamber.CmdServo, []string{"90"}, chamber.ServoPayload{Angle: 90}, false},
		{"servo off list", chamber.CmdServo, []string{"30"}, nil, true},
		{"servo not a number", chamber.CmdServo, []string{"wide"}, nil, true},
		{"toggle no args", chamber.CmdFan1Toggle, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPayload(tt.command, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildPayload: %v", err)
			}
			if got != tt.want {
				t.Fatalf("payload = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSendableCommandsCoverEveryEndpoint(t *testing.T) {
	want := []chamber.Command{
		chamber.CmdMode, chamber.CmdReset, chamber.CmdStage, chamber.CmdServo,
		chamber.CmdFan1Toggle, chamber.CmdFan2Toggle,
		chamber.CmdHeater1Toggle, chamber.CmdHeater2Toggle,
	}
	for _, c := range want {
		found := false
		for _, mapped := range sendableCommands {
			if mapped == c {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q is not reachable from the CLI", c)
		}
	}
}
