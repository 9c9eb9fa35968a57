// cc2420-info: Inspect a connected CC2420 radio
//
// This tool connects to a CC2420 over a native spidev bus (default) or
// an MCP2210 USB-to-SPI bridge, powers the radio up, and prints the
// chip identity and status. It can also dump the full register and
// address configuration to a YAML file for later restore.
//
// Examples:
//
//	# Identify the radio on the first SPI bus
//	./cc2420-info
//
//	# Use a specific bus and status pins
//	./cc2420-info -spi /dev/spidev0.0 -sfd GPIO25 -fifop GPIO24
//
//	# Go through an MCP2210 bridge instead
//	./cc2420-info -usb
//
//	# Dump the configuration to a file
//	./cc2420-info -o etc/radios/lab-node.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/gousb"
	"gopkg.in/yaml.v2"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/config"
	"github.com/openradio/cc2420/pkg/mcp2210"
	"github.com/openradio/cc2420/pkg/spibus"
)

func main() {
	// Transport selection
	spiName := flag.String("spi", "", "SPI port name (default: first available)")
	sfdPin := flag.String("sfd", "GPIO25", "GPIO pin wired to SFD")
	fifopPin := flag.String("fifop", "GPIO24", "GPIO pin wired to FIFOP")
	useUSB := flag.Bool("usb", false, "Use an MCP2210 USB-to-SPI bridge")
	serial := flag.String("serial", "", "MCP2210 serial number (default: first found)")
	sfdGP := flag.Uint("sfd-gp", 6, "MCP2210 GP pin wired to SFD")
	fifopGP := flag.Uint("fifop-gp", 4, "MCP2210 GP pin wired to FIFOP")

	outputFile := flag.String("o", "", "Dump configuration to this YAML file")
	yamlOutput := flag.Bool("yaml", false, "Dump configuration to stdout as YAML")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	radio, closer, err := openRadio(*useUSB, *spiName, *sfdPin, *fifopPin, *serial, uint8(*sfdGP), uint8(*fifopGP))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	delay := cc2420.SleepDelay{}

	if *verbose {
		fmt.Println("Powering up...")
	}
	if err := radio.PowerUp(delay); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Power up failed: %v\n", err)
		os.Exit(1)
	}

	part, err := radio.ReadPartInfo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to read part info: %v\n", err)
		os.Exit(1)
	}

	status, err := radio.Strobe(cc2420.StrobeNop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to read status: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chip:        %s\n", part)
	fmt.Printf("Oscillator:  stable=%v\n", status.XOSCStable)
	fmt.Printf("RSSI valid:  %v\n", status.RSSIValid)
	fmt.Printf("PLL lock:    %v\n", status.Lock)

	if *outputFile == "" && !*yamlOutput {
		return
	}

	if *verbose {
		fmt.Println("Reading device configuration...")
	}
	snapshot, err := config.DumpFromDevice(radio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to dump configuration: %v\n", err)
		os.Exit(1)
	}

	if *yamlOutput {
		data, err := yaml.Marshal(snapshot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to marshal configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if err := config.SaveToFile(snapshot, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to save configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Configuration saved to: %s\n", *outputFile)

	if *verbose {
		fmt.Println("\nConfiguration Summary:")
		fmt.Printf("  Sync Word:  0x%04X\n", snapshot.GetSyncWord())
		fmt.Printf("  Frequency:  %d MHz (channel %d)\n", snapshot.GetFrequencyMHz(), snapshot.GetChannel())
		fmt.Printf("  Short Addr: 0x%04X\n", snapshot.ShortAddress)
		fmt.Printf("  PAN ID:     0x%04X\n", snapshot.PANID)
	}
}

// openRadio sets up the selected transport and returns the radio plus
// a cleanup function.
func openRadio(useUSB bool, spiName, sfdPin, fifopPin, serial string, sfdGP, fifopGP uint8) (*cc2420.Radio, func(), error) {
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
		sfd, err := mcp2210.NewGPIOPin(dev, sfdGP)
		if err != nil {
			dev.Close()
			ctx.Close()
			return nil, nil, err
		}
		fifop, err := mcp2210.NewGPIOPin(dev, fifopGP)
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
