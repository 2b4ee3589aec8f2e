package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tleaf/barnview/internal/chamber"
	"github.com/tleaf/barnview/internal/config"
	"github.com/tleaf/barnview/internal/prefs"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current controller status and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		status, err := client.FetchStatus(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Host:         %s\n", client.Host())
		fmt.Fprintf(out, "Mode:         %s\n", status.Mode)
		fmt.Fprintf(out, "Stage:        %s\n", chamber.DisplayStage(status.Stage))
		fmt.Fprintf(out, "Temperature:  %.1f °C\n", status.Temperature)
		fmt.Fprintf(out, "Humidity:     %.1f %%\n", status.Humidity)
		if status.Mode == chamber.ModeAuto {
			fmt.Fprintf(out, "Target:       %.1f °C\n", status.TargetTemp)
		}
		fmt.Fprintf(out, "Vent angle:   %d°\n", status.ServoAngle)
		fmt.Fprintf(out, "Fans:         %s / %s\n", onOff(status.FanOn), onOff(status.FanOn2))
		fmt.Fprintf(out, "Heaters:      %s / %s\n", onOff(status.HeaterOn), onOff(status.HeaterOn2))
		fmt.Fprintf(out, "Uptime:       %s\n", status.UptimeStr)
		fmt.Fprintf(out, "Next step:    %s\n", status.CountdownStr)
		if status.BuzzerOn {
			fmt.Fprintln(out, "ALARM:        buzzer is sounding")
		}
		return nil
	},
}

// newClient builds a controller client using the same host resolution as
// the dashboard: flag, then prefs, then config file.
func newClient() (*chamber.Client, error) {
	host := flagHost
	if host == "" {
		host = prefs.Load("").Host
	}
	if host == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		host = cfg.Host
	}
	return chamber.NewClient(host)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
