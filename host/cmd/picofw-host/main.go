// Command picofw-host drives the fabric's peripherals from a Linux host and
// tails the firmware's debug UART.
//
//	picofw-host step -freq 440
//	picofw-host nco -freq 32768.5 -enable
//	picofw-host led -on=false
//	picofw-host monitor -device /dev/ttyUSB0
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"picofw/core"
	"picofw/host/devmem"
	"picofw/host/serial"
)

var (
	memPath = flag.String("mem", devmem.DefaultPath, "Physical memory device")
	verbose = flag.Bool("verbose", false, "Print driver debug output")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		core.SetDebugWriter(func(s string) { fmt.Println(s) })
		core.SetDebugEnabled(true)
	}

	os.Exit(run(flag.Args(), os.Stdout, os.Stderr))
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: picofw-host [flags] <command> [command flags]\n\n")
	fmt.Fprintf(out, "Commands:\n")
	fmt.Fprintf(out, "  step     - Print the phase step for a frequency\n")
	fmt.Fprintf(out, "  nco      - Program and enable the NCO\n")
	fmt.Fprintf(out, "  led      - Switch the LED\n")
	fmt.Fprintf(out, "  monitor  - Print the firmware's debug UART\n\n")
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}

// run dispatches one command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "Error: missing command\n")
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "step":
		err = cmdStep(rest, stdout)
	case "nco":
		err = cmdNCO(rest, stdout)
	case "led":
		err = cmdLED(rest, stdout)
	case "monitor":
		err = cmdMonitor(rest, stdout)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func cmdStep(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("step", flag.ContinueOnError)
	freq := fs.Float64("freq", 0, "Output frequency in Hz")
	if err := fs.Parse(args); err != nil {
		return err
	}

	printStep(stdout, float32(*freq))
	return nil
}

func printStep(w io.Writer, freq float32) {
	step := core.PhaseStep(freq)
	fmt.Fprintf(w, "freq=%g Hz phase_step=0x%08x (%d) actual=%.6f Hz\n",
		freq, step, step, core.Frequency(step))
	if freq < 0 || float64(freq) >= core.NCOClockFrequency {
		fmt.Fprintf(w, "warning: %g Hz is outside [0, %g) and wraps\n", freq, core.NCOClockFrequency)
	}
}

func cmdNCO(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("nco", flag.ContinueOnError)
	var (
		freq   = fs.Float64("freq", 0, "Output frequency in Hz (unset = keep current)")
		enable = fs.Bool("enable", true, "Enable the oscillator")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFreq := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "freq" {
			setFreq = true
		}
	})

	w, err := devmem.Open(*memPath, core.NCOBase, 8)
	if err != nil {
		return err
	}
	defer w.Close()

	nco, err := newNCO(w)
	if err != nil {
		return err
	}
	if setFreq {
		nco.SetFrequency(float32(*freq))
		printStep(stdout, float32(*freq))
	}
	nco.Enable(*enable)
	fmt.Fprintf(stdout, "nco: enable=%v\n", *enable)
	return nil
}

// newNCO binds an NCO driver to its registers inside w
func newNCO(w *devmem.Window) (*core.NCO, error) {
	ctrl, err := w.Register(core.NCOBase + core.NCOCtrlOffset)
	if err != nil {
		return nil, err
	}
	step, err := w.Register(core.NCOBase + core.NCOPhaseStepOffset)
	if err != nil {
		return nil, err
	}
	return core.NewNCO(ctrl, step), nil
}

func cmdLED(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("led", flag.ContinueOnError)
	on := fs.Bool("on", true, "LED state")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := devmem.Open(*memPath, core.LEDBase, 4)
	if err != nil {
		return err
	}
	defer w.Close()

	reg, err := w.Register(core.LEDBase)
	if err != nil {
		return err
	}
	core.NewLED(reg).Enable(*on)
	fmt.Fprintf(stdout, "led: on=%v\n", *on)
	return nil
}

func cmdMonitor(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("monitor", flag.ContinueOnError)
	var (
		device = fs.String("device", "/dev/ttyUSB0", "Serial device path")
		baud   = fs.Int("baud", core.UARTBaudRate, "Baud rate of the fabric UART")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(stdout, "Monitoring %s at %d baud (Ctrl-C to stop)\n", cfg.Device, cfg.Baud)
	err = serial.Monitor(ctx, port, func(line string) {
		fmt.Fprintln(stdout, line)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
