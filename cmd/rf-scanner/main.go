// rf-scanner is an IEEE 802.15.4 channel energy scanner for the CC2420
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/gousb"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/mcp2210"
	"github.com/openradio/cc2420/pkg/scanner"
	"github.com/openradio/cc2420/pkg/spibus"
)

var (
	channels  = flag.String("channels", "11-26", "Channels to sweep, e.g. '11-26' or '11,15,20'")
	threshold = flag.Float64("threshold", -77.0, "RSSI threshold in dBm for activity detection")
	dwell     = flag.Duration("dwell", 2*time.Millisecond, "Dwell time per channel")
	interval  = flag.Duration("interval", 250*time.Millisecond, "Delay between sweeps")
	duration  = flag.Duration("duration", 0, "Scan duration (0 = indefinite)")
	verbose   = flag.Bool("v", false, "Verbose output - show every sweep")
	quiet     = flag.Bool("q", false, "Quiet mode - only show active channels")

	spiName  = flag.String("spi", "", "SPI port name (default: first available)")
	sfdPin   = flag.String("sfd", "GPIO25", "GPIO pin wired to SFD")
	fifopPin = flag.String("fifop", "GPIO24", "GPIO pin wired to FIFOP")
	useUSB   = flag.Bool("usb", false, "Use an MCP2210 USB-to-SPI bridge")
	serial   = flag.String("serial", "", "MCP2210 serial number (default: first found)")
	sfdGP    = flag.Uint("sfd-gp", 6, "MCP2210 GP pin wired to SFD")
	fifopGP  = flag.Uint("fifop-gp", 4, "MCP2210 GP pin wired to FIFOP")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "IEEE 802.15.4 channel energy scanner for the CC2420\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                             # Sweep the whole band\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -channels 11,15,20,25       # Sweep the Zigbee primary channels\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -threshold -85 -q           # Only report channels above -85 dBm\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -duration 10s -v            # Show every sweep for 10 seconds\n", os.Args[0])
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	channelList, err := parseChannels(*channels)
	if err != nil {
		return err
	}

	radio, closer, err := openRadio()
	if err != nil {
		return err
	}
	defer closer()

	delay := cc2420.SleepDelay{}
	if err := radio.PowerUp(delay); err != nil {
		return fmt.Errorf("power up failed: %w", err)
	}
	defer radio.PowerDown()

	cfg := &scanner.ScanConfig{
		Channels:      channelList,
		RSSIThreshold: float32(*threshold),
		DwellTime:     *dwell,
		ScanInterval:  *interval,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *verbose {
		cfg.DebugLog = func(format string, args ...interface{}) {
			fmt.Printf("  [debug] "+format+"\n", args...)
		}
	}

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Channels:  %s\n", *channels)
	fmt.Printf("  Threshold: %.1f dBm\n", *threshold)
	fmt.Printf("  Dwell:     %v per channel\n", *dwell)
	fmt.Printf("  Interval:  %v between sweeps\n", *interval)
	fmt.Println()

	sc := scanner.New(radio, cfg)

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	go func() {
		<-sigChan
		cancel()
	}()

	results := make(chan *scanner.ScanResult, 4)
	errChan := make(chan error, 1)
	go func() {
		errChan <- sc.ScanContinuous(ctx, results)
	}()

	sweeps := 0
	for result := range results {
		sweeps++
		printResult(result, float32(*threshold))
	}

	err = <-errChan
	fmt.Printf("\n%d sweeps completed\n", sweeps)
	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return err
	}
	return nil
}

// printResult renders one sweep, either as a full bar chart or as
// active channels only in quiet mode.
func printResult(result *scanner.ScanResult, threshold float32) {
	if *quiet {
		for _, energy := range result.Channels {
			if energy.RSSI >= threshold {
				fmt.Printf("[%s] channel %d active: %.1f dBm\n",
					result.Timestamp.Format("15:04:05.000"), energy.Channel, energy.RSSI)
			}
		}
		return
	}

	fmt.Printf("[%s] sweep:\n", result.Timestamp.Format("15:04:05.000"))
	for _, energy := range result.Channels {
		marker := " "
		if energy.RSSI >= threshold {
			marker = "*"
		}
		fmt.Printf("  %s ch %2d (%d MHz): %6.1f dBm %s\n",
			marker, energy.Channel, scanner.ChannelFrequencyMHz(energy.Channel),
			energy.RSSI, bar(energy.RSSI))
	}
	if result.SignalDetected {
		fmt.Printf("  peak: channel %d @ %.1f dBm\n", result.PeakChannel, result.PeakRSSI)
	}
	fmt.Println()
}

// bar renders a crude RSSI bar between -100 and -40 dBm.
func bar(rssi float32) string {
	n := int((rssi + 100) / 2)
	if n < 0 {
		n = 0
	}
	if n > 30 {
		n = 30
	}
	return strings.Repeat("#", n)
}

// parseChannels accepts a range ("11-26") or a comma-separated list
// ("11,15,20").
func parseChannels(s string) ([]uint8, error) {
	if strings.Contains(s, "-") {
		parts := strings.SplitN(s, "-", 2)
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid channel range %q", s)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid channel range %q", s)
		}
		if lo > hi {
			return nil, fmt.Errorf("invalid channel range %q", s)
		}
		channels := make([]uint8, 0, hi-lo+1)
		for ch := lo; ch <= hi; ch++ {
			channels = append(channels, uint8(ch))
		}
		return channels, nil
	}

	var channels []uint8
	for _, field := range strings.Split(s, ",") {
		ch, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid channel %q", field)
		}
		channels = append(channels, uint8(ch))
	}
	return channels, nil
}

// openRadio sets up the selected transport and returns the radio plus
// a cleanup function.
func openRadio() (*cc2420.Radio, func(), error) {
	if *useUSB {
		ctx := gousb.NewContext()
		dev, err := mcp2210.OpenDevice(ctx, *serial)
		if err != nil {
			ctx.Close()
			return nil, nil, err
		}
		bus, err := mcp2210.NewSPIBus(dev, cc2420.MaxClockHz)
		if err != nil {
			dev.Close()
			ctx.Close()
			return nil, nil, err
		}
		sfd, err := mcp2210.NewGPIOPin(dev, uint8(*sfdGP))
		if err != nil {
			dev.Close()
			ctx.Close()
			return nil, nil, err
		}
		fifop, err := mcp2210.NewGPIOPin(dev, uint8(*fifopGP))
		if err != nil {
			dev.Close()
			ctx.Close()
			return nil, nil, err
		}
		closer := func() {
			dev.Close()
			ctx.Close()
		}
		return cc2420.New(bus, sfd, fifop), closer, nil
	}

	if err := spibus.Init(); err != nil {
		return nil, nil, err
	}
	bus, err := spibus.Open(*spiName, cc2420.MaxClockHz)
	if err != nil {
		return nil, nil, err
	}
	sfd, err := spibus.OpenPin(*sfdPin)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	fifop, err := spibus.OpenPin(*fifopPin)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	closer := func() { bus.Close() }
	return cc2420.New(bus, sfd, fifop), closer, nil
}
