// radio-reset pulses the CC2420's chip-wide reset to recover from a
// wedged state, then reports the chip identity to confirm the serial
// interface is alive.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/gousb"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/mcp2210"
	"github.com/openradio/cc2420/pkg/spibus"
)

func main() {
	spiName := flag.String("spi", "", "SPI port name (default: first available)")
	sfdPin := flag.String("sfd", "GPIO25", "GPIO pin wired to SFD")
	fifopPin := flag.String("fifop", "GPIO24", "GPIO pin wired to FIFOP")
	useUSB := flag.Bool("usb", false, "Use an MCP2210 USB-to-SPI bridge")
	serial := flag.String("serial", "", "MCP2210 serial number (default: first found)")
	flag.Parse()

	radio, closer, err := openRadio(*useUSB, *spiName, *sfdPin, *fifopPin, *serial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	if err := radio.Reset(cc2420.SleepDelay{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Reset failed: %v\n", err)
		os.Exit(1)
	}

	part, err := radio.ReadPartInfo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Chip unreachable after reset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Reset OK: %s\n", part)
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
