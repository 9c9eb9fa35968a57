// load-config: Apply a saved configuration snapshot to a CC2420
//
// This tool loads a YAML snapshot produced by cc2420-info and writes
// it back to a connected radio. The radio is left idle; use send-recv
// or rf-scanner to put it on the air afterwards.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/gousb"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/config"
	"github.com/openradio/cc2420/pkg/mcp2210"
	"github.com/openradio/cc2420/pkg/spibus"
)

func main() {
	inputFile := flag.String("c", "", "Configuration snapshot to apply (required)")
	verbose := flag.Bool("v", false, "Verbose output")

	spiName := flag.String("spi", "", "SPI port name (default: first available)")
	sfdPin := flag.String("sfd", "GPIO25", "GPIO pin wired to SFD")
	fifopPin := flag.String("fifop", "GPIO24", "GPIO pin wired to FIFOP")
	useUSB := flag.Bool("usb", false, "Use an MCP2210 USB-to-SPI bridge")
	serial := flag.String("serial", "", "MCP2210 serial number (default: first found)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: Configuration file (-c) is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	snapshot, err := config.LoadFromFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load snapshot: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Snapshot loaded from: %s\n", *inputFile)
		fmt.Printf("  Sync Word:  0x%04X\n", snapshot.GetSyncWord())
		fmt.Printf("  Frequency:  %d MHz (channel %d)\n", snapshot.GetFrequencyMHz(), snapshot.GetChannel())
		fmt.Printf("  Short Addr: 0x%04X\n", snapshot.ShortAddress)
		fmt.Printf("  PAN ID:     0x%04X\n", snapshot.PANID)
	}

	radio, closer, err := openRadio(*useUSB, *spiName, *sfdPin, *fifopPin, *serial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	if err := radio.PowerUp(cc2420.SleepDelay{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Power up failed: %v\n", err)
		os.Exit(1)
	}

	if err := config.ApplyToDevice(radio, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to apply snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration applied")
}

func openRadio(useUSB bool, spiName, sfdPin, fifopPin, serial string) (*cc2420.Radio, func(), error) {
	if useUSB {
		ctx := gousb.NewContext()
		dev, err := mcp2210.OpenDevice(ctx, serial)
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
		sfd, err := mcp2210.NewGPIOPin(dev, 6)
		if err != nil {
			dev.Close()
			ctx.Close()
			return nil, nil, err
		}
		fifop, err := mcp2210.NewGPIOPin(dev, 4)
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
	bus, err := spibus.Open(spiName, cc2420.MaxClockHz)
	if err != nil {
		return nil, nil, err
	}
	sfd, err := spibus.OpenPin(sfdPin)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	fifop, err := spibus.OpenPin(fifopPin)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	closer := func() { bus.Close() }
	return cc2420.New(bus, sfd, fifop), closer, nil
}
