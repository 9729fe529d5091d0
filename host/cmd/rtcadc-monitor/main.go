// rtcadc-monitor reads the sampler's serial console and checks the samples.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"rtcadc/core"
	"rtcadc/host/mcu"
	"rtcadc/host/serial"
)

var version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "rtcadc-monitor",
		Short: "rtcadc-monitor reads and checks samples from an nRF51 RTC/ADC sampler",
		Long: `Open the sampler's serial console, parse every "<raw> <lop> <lon>" line and
report status lines, out of range codes and a summary on exit.`,
		Args:    cobra.NoArgs,
		RunE:    monitor,
		Version: version,
	}
	opts = struct {
		Device      string
		Capture     string
		Baud        int
		Resolution  uint
		ReferenceMV uint
		Scaling     string
		Millivolts  bool
		Strict      bool
		Quiet       bool
		NumSamples  uint
	}{}
)

func init() {
	rootCmd.Flags().StringVarP(&opts.Device, "device", "d", "", "serial device of the sampler console (default: detect)")
	rootCmd.Flags().StringVarP(&opts.Capture, "capture", "c", "", "read a captured console log instead of a device")
	rootCmd.Flags().IntVarP(&opts.Baud, "baud", "b", serial.DefaultBaud, "console baud rate")
	rootCmd.Flags().UintVarP(&opts.Resolution, "resolution", "r", 10, "ADC resolution in bits (8, 9 or 10)")
	rootCmd.Flags().UintVar(&opts.ReferenceMV, "reference-mv", 3000, "supply or external reference voltage in mV")
	rootCmd.Flags().StringVarP(&opts.Scaling, "scaling", "s", "1/3", "input prescaling (1, 2/3, 1/3, vdd-2/3, vdd-1/3)")
	rootCmd.Flags().BoolVarP(&opts.Millivolts, "millivolts", "m", false, "print the pin voltage with each sample")
	rootCmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit on the first out of range sample")
	rootCmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "don't display samples")
	rootCmd.Flags().UintVarP(&opts.NumSamples, "num-samples", "n", 0, "exit after n samples")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rtcadc-monitor: %s\n", err)
		os.Exit(1)
	}
}

var scalings = map[string]core.InputScaling{
	"1":       core.InputNoPrescaling,
	"2/3":     core.InputTwoThirdsPrescaling,
	"1/3":     core.InputOneThirdPrescaling,
	"vdd-2/3": core.SupplyTwoThirdsPrescaling,
	"vdd-1/3": core.SupplyOneThirdPrescaling,
}

var resolutions = map[uint]core.Resolution{
	8:  core.Resolution8Bit,
	9:  core.Resolution9Bit,
	10: core.Resolution10Bit,
}

// samplerConfig builds the front end described by the flags, starting
// from the firmware defaults.
func samplerConfig() (core.SamplerConfig, error) {
	adc := core.DefaultConfig().ADC
	res, ok := resolutions[opts.Resolution]
	if !ok {
		return adc, fmt.Errorf("unsupported resolution %d", opts.Resolution)
	}
	sc, ok := scalings[strings.ToLower(opts.Scaling)]
	if !ok {
		return adc, fmt.Errorf("unknown scaling '%s'", opts.Scaling)
	}
	adc.Resolution = res
	adc.Scaling = sc
	adc.SupplyMillivolts = uint32(opts.ReferenceMV)
	return adc, nil
}

func open(m *mcu.MCU) error {
	if opts.Capture != "" {
		f, err := os.Open(opts.Capture)
		if err != nil {
			return err
		}
		m.Attach(f)
		return nil
	}
	device := opts.Device
	if device == "" {
		ports, err := serial.ListPorts()
		if err != nil {
			return err
		}
		if device = serial.FindConsole(ports); device == "" {
			return errors.New("no sampler console found, use --device")
		}
	}
	cfg := serial.DefaultConfig(device)
	cfg.Baud = opts.Baud
	return m.ConnectWithConfig(cfg)
}

var errDone = errors.New("sample limit reached")

func monitor(cmd *cobra.Command, args []string) error {
	adc, err := samplerConfig()
	if err != nil {
		return err
	}
	mon := mcu.NewMonitor(adc)
	mon.Strict = opts.Strict

	m := mcu.NewMCU()
	if err := open(m); err != nil {
		return err
	}
	defer m.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	count := uint(0)
	err = m.Stream(ctx, mon, func(line mcu.Line, err error) error {
		switch {
		case errors.Is(err, mcu.ErrOutOfRange):
			fmt.Fprintf(os.Stderr, "out of range: %d > %d\n", line.Record.Raw, adc.MaxValue())
			return err
		case err != nil:
			fmt.Fprintf(os.Stderr, "%s: %q\n", err, line.Text)
			return nil
		}
		switch line.Kind {
		case mcu.LineStatus, mcu.LineDebug:
			fmt.Fprintf(os.Stderr, "%-6s %s\n", line.Kind, line.Text)
		case mcu.LineSample:
			if !opts.Quiet {
				printSample(mon, line.Record)
			}
			count++
			if opts.NumSamples > 0 && count >= opts.NumSamples {
				return errDone
			}
		}
		return nil
	})
	printSummary(mon.Stats())
	if errors.Is(err, errDone) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printSample(mon *mcu.Monitor, rec core.SampleRecord) {
	if opts.Millivolts {
		fmt.Printf("%4d lop=%d lon=%d %5dmV\n", rec.Raw, flag(rec.LOP), flag(rec.LON), mon.Millivolts(rec))
		return
	}
	fmt.Printf("%4d lop=%d lon=%d\n", rec.Raw, flag(rec.LOP), flag(rec.LON))
}

func printSummary(st mcu.Stats) {
	fmt.Fprintf(os.Stderr, "samples:%d min:%d max:%d out-of-range:%d malformed:%d lop:%d lon:%d\n",
		st.Samples, st.Min, st.Max, st.OutOfRange, st.Malformed, st.LOPHigh, st.LONHigh)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
