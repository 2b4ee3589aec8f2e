package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tleaf/barnview/internal/chamber"
)

var sendableCommands = map[string]chamber.Command{
	"mode":           chamber.CmdMode,
	"reset":          chamber.CmdReset,
	"stage":          chamber.CmdStage,
	"servo":          chamber.CmdServo,
	"fan1_toggle":    chamber.CmdFan1Toggle,
	"fan2_toggle":    chamber.CmdFan2Toggle,
	"heater1_toggle": chamber.CmdHeater1Toggle,
	"heater2_toggle": chamber.CmdHeater2Toggle,
}

var sendCmd = &cobra.Command{
	Use:   "send <command> [value]",
	Short: "Send a single command to the controller and exit",
	Long: `Send one command to the controller. Most commands take no value;
stage takes a stage name and servo takes an angle in degrees.

Commands: mode, reset, stage <STAGE>, servo <ANGLE>, fan1_toggle,
fan2_toggle, heater1_toggle, heater2_toggle.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])
		command, ok := sendableCommands[name]
		if !ok {
			return fmt.Errorf("unknown command %q", args[0])
		}

		payload, err := buildPayload(command, args[1:])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Send(cmd.Context(), command, payload); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Command %q accepted by %s\n", name, client.Host())
		return nil
	},
}

func buildPayload(command chamber.Command, args []string) (any, error) {
	switch command {
	case chamber.CmdStage:
		if len(args) != 1 {
			return nil, fmt.Errorf("stage requires a stage name, one of %s", strings.Join(chamber.Stages, ", "))
		}
		stage := strings.ToUpper(args[0])
		for _, s := range chamber.Stages {
			if s == stage {
				return chamber.StagePayload{Stage: stage}, nil
			}
		}
		return nil, fmt.Errorf("unknown stage %q, expected one of %s", args[0], strings.Join(chamber.Stages, ", "))

	case chamber.CmdServo:
		if len(args) != 1 {
			return nil, fmt.Errorf("servo requires an angle, one of %v", chamber.ServoAngles)
		}
		angle, err := strconv.Atoi(args[0])
		if err != nil || !chamber.ValidAngle(angle) {
			return nil, fmt.Errorf("invalid angle %q, expected one of %v", args[0], chamber.ServoAngles)
		}
		return chamber.ServoPayload{Angle: angle}, nil

	default:
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no value", command)
		}
		return nil, nil
	}
}
