// send-recv: Example program for sending and receiving 802.15.4 frames
//
// This tool configures a CC2420, verifies the configuration by
// read-back, and then either transmits a payload or sits in receive
// mode printing frames as they arrive.
//
// Examples:
//
//	# Receive mode - listen for frames and display them
//	./send-recv -m recv
//
//	# Send mode - transmit data from command line
//	./send-recv -m send -data "Hello World"
//
//	# Send mode - transmit hex data with clear channel assessment
//	./send-recv -m send -hex "DEADBEEF" -cca
//
//	# Use a saved configuration snapshot
//	./send-recv -m recv -c etc/radios/lab-node.yaml
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/gousb"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/config"
	"github.com/openradio/cc2420/pkg/mcp2210"
	"github.com/openradio/cc2420/pkg/spibus"
)

func main() {
	// Parse command line flags
	mode := flag.String("m", "", "Mode: 'send' or 'recv' (required)")
	configPath := flag.String("c", "", "Configuration snapshot to apply (optional)")
	verbose := flag.Bool("v", false, "Verbose output")

	// Transport selection
	spiName := flag.String("spi", "", "SPI port name (default: first available)")
	sfdPin := flag.String("sfd", "GPIO25", "GPIO pin wired to SFD")
	fifopPin := flag.String("fifop", "GPIO24", "GPIO pin wired to FIFOP")
	useUSB := flag.Bool("usb", false, "Use an MCP2210 USB-to-SPI bridge")
	serial := flag.String("serial", "", "MCP2210 serial number (default: first found)")
	sfdGP := flag.Uint("sfd-gp", 6, "MCP2210 GP pin wired to SFD")
	fifopGP := flag.Uint("fifop-gp", 4, "MCP2210 GP pin wired to FIFOP")

	// Addressing
	shortAddr := flag.Uint("addr", 0x1234, "16-bit short address")
	panID := flag.Uint("pan", 0x1234, "16-bit PAN identifier")

	// Send mode options
	dataStr := flag.String("data", "", "Data to send (ASCII string)")
	hexStr := flag.String("hex", "", "Data to send (hex encoded)")
	cca := flag.Bool("cca", false, "Gate transmission on clear channel assessment")
	repeat := flag.Uint("repeat", 0, "Number of times to repeat transmission (0 = once)")

	// Receive mode options
	count := flag.Int("count", 0, "Number of frames to receive (0 = infinite)")
	rawOutput := flag.Bool("raw", false, "Output raw hex only (for piping)")

	flag.Parse()

	// Validate required arguments
	if *mode == "" {
		fmt.Fprintln(os.Stderr, "Error: Mode (-m) is required. Use 'send' or 'recv'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	*mode = strings.ToLower(*mode)
	if *mode != "send" && *mode != "recv" {
		fmt.Fprintf(os.Stderr, "Error: Invalid mode '%s'. Use 'send' or 'recv'\n", *mode)
		os.Exit(1)
	}

	radio, closer, err := openRadio(*useUSB, *spiName, *sfdPin, *fifopPin, *serial, uint8(*sfdGP), uint8(*fifopGP))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	delay := cc2420.SleepDelay{}

	// Apply configuration
	if *verbose {
		fmt.Println("Applying radio configuration...")
	}

	cfg := cc2420.DefaultConfig()
	cfg.ShortAddress = uint16(*shortAddr)
	cfg.PANID = uint16(*panID)

	if err := radio.Configure(cfg, delay); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to configure radio: %v\n", err)
		os.Exit(1)
	}

	// Layer a saved snapshot on top if one was given
	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading snapshot from: %s\n", *configPath)
		}
		snapshot, err := config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load snapshot: %v\n", err)
			os.Exit(1)
		}
		if err := config.ApplyToDevice(radio, snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to apply snapshot: %v\n", err)
			os.Exit(1)
		}
	}

	if *verbose {
		part, err := radio.ReadPartInfo()
		if err == nil {
			fmt.Printf("Connected to: %s\n", part)
		}
		fmt.Printf("  Short Addr: 0x%04X\n", cfg.ShortAddress)
		fmt.Printf("  PAN ID:     0x%04X\n", cfg.PANID)
		fmt.Printf("  Sync Word:  0x%04X\n", cfg.SyncWord)
	}

	// Run appropriate mode
	switch *mode {
	case "send":
		runSendMode(radio, delay, *dataStr, *hexStr, *cca, *repeat, *verbose)
	case "recv":
		runRecvMode(radio, delay, *count, *verbose, *rawOutput)
	}
}

func runSendMode(radio *cc2420.Radio, delay cc2420.Delay, dataStr, hexStr string, cca bool, repeat uint, verbose bool) {
	// Determine data to send
	var data []byte

	if hexStr != "" {
		var err error
		data, err = hex.DecodeString(hexStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Invalid hex string: %v\n", err)
			os.Exit(1)
		}
	} else if dataStr != "" {
		data = []byte(dataStr)
	} else {
		fmt.Fprintln(os.Stderr, "Error: Must specify -data or -hex for send mode")
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Transmitting %d bytes", len(data))
		if repeat > 0 {
			fmt.Printf(" (repeat %d times)", repeat)
		}
		fmt.Println()
		fmt.Printf("Data (hex): %s\n", hex.EncodeToString(data))
	}

	transmissions := int(repeat) + 1
	for i := 0; i < transmissions; i++ {
		status, err := radio.Send(data, cca, delay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Transmit failed: %v\n", err)
			os.Exit(1)
		}
		if verbose && status.TxUnderflow {
			fmt.Fprintln(os.Stderr, "Warning: TX FIFO underflowed")
		}
	}

	fmt.Println("Transmission complete")
}

func runRecvMode(radio *cc2420.Radio, delay cc2420.Delay, count int, verbose, rawOutput bool) {
	// Set up signal handler for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Enter receive mode
	if verbose {
		fmt.Println("Entering receive mode...")
	}

	if _, err := radio.Strobe(cc2420.StrobeRxOn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to enter RX mode: %v\n", err)
		os.Exit(1)
	}

	if !rawOutput {
		fmt.Println("Listening for frames (Ctrl+C to stop)...")
		fmt.Println()
	}

	framesReceived := 0
	startTime := time.Now()
	buf := make([]byte, cc2420.MaxFrameSize+1)

	for {
		// Check for shutdown signal (non-blocking)
		select {
		case <-sigChan:
			if !rawOutput {
				fmt.Printf("\n\nReceived %d frames in %v\n",
					framesReceived, time.Since(startTime).Round(time.Second))
			}
			return
		default:
		}

		ready, err := radio.DataReady()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Data ready poll failed: %v\n", err)
			os.Exit(1)
		}
		if !ready {
			delay.Sleep(time.Millisecond)
			continue
		}

		status, err := radio.Receive(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Receive failed: %v\n", err)
			os.Exit(1)
		}

		// First byte of the FIFO stream is the frame length
		length := int(buf[0])
		if length > cc2420.MaxFrameSize {
			length = cc2420.MaxFrameSize
		}
		data := buf[1 : 1+length]

		// Drop the rest of the FIFO so the next frame starts clean
		if _, err := radio.Strobe(cc2420.StrobeFlushRx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: RX flush failed: %v\n", err)
			os.Exit(1)
		}

		framesReceived++
		timestamp := time.Now()

		if rawOutput {
			// Raw hex output for piping
			fmt.Println(hex.EncodeToString(data))
		} else {
			fmt.Printf("[%s] Frame #%d (%d bytes):\n",
				timestamp.Format("15:04:05.000"),
				framesReceived,
				length)
			if verbose {
				fmt.Printf("  RSSI valid: %v, PLL lock: %v\n", status.RSSIValid, status.Lock)
			}
			fmt.Printf("  Hex: %s\n", hex.EncodeToString(data))
			fmt.Printf("  ASCII: %s\n", makePrintable(data))
			fmt.Println()
		}

		// Check frame count limit
		if count > 0 && framesReceived >= count {
			if !rawOutput {
				fmt.Printf("Received requested %d frames\n", count)
			}
			return
		}
	}
}

// makePrintable converts bytes to a printable string, replacing non-printable characters
func makePrintable(data []byte) string {
	result := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b < 127 {
			result[i] = b
		} else {
			result[i] = '.'
		}
	}
	return string(result)
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
