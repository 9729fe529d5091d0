package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtcadc/host/serial"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List serial ports and mark the likely sampler console",
	Args:  cobra.NoArgs,
	RunE:  list,
}

func list(cmd *cobra.Command, args []string) error {
	ports, err := serial.ListPorts()
	if err != nil {
		return err
	}
	console := serial.FindConsole(ports)
	for _, p := range ports {
		mark := " "
		if p.Device == console {
			mark = "*"
		}
		if p.USB {
			fmt.Printf("%s %-16s %s:%s %s %s\n", mark, p.Device, p.VID, p.PID, p.Serial, p.Product)
			continue
		}
		fmt.Printf("%s %s\n", mark, p.Device)
	}
	return nil
}
