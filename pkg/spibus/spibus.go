// Package spibus provides the radio transport over a native SPI port
// and GPIO lines through periph.io, for hosts where the radio hangs
// directly off a Linux spidev bus (Raspberry Pi and similar).
package spibus

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Init loads the periph host drivers. Call once before opening ports
// or pins.
func Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initialize host drivers: %w", err)
	}
	return nil
}

// Bus is an SPI port connection carrying the radio's serial interface.
type Bus struct {
	port spi.PortCloser
	conn spi.Conn
}

// Open opens the named SPI port ("" selects the first available one)
// and connects at the given clock in Hz, SPI mode 0, 8-bit words.
func Open(name string, clockHz int64) (*Bus, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open SPI port %q: %w", name, err)
	}
	conn, err := port.Connect(physic.Frequency(clockHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect SPI port %q: %w", name, err)
	}
	return &Bus{port: port, conn: conn}, nil
}

// Transfer clocks buf out and overwrites it in place with the bytes
// clocked in.
func (b *Bus) Transfer(buf []byte) error {
	rx := make([]byte, len(buf))
	if err := b.conn.Tx(buf, rx); err != nil {
		return fmt.Errorf("SPI transfer: %w", err)
	}
	copy(buf, rx)
	return nil
}

// Write clocks buf out, discarding the bytes clocked in.
func (b *Bus) Write(buf []byte) error {
	if err := b.conn.Tx(buf, nil); err != nil {
		return fmt.Errorf("SPI write: %w", err)
	}
	return nil
}

// Close releases the SPI port.
func (b *Bus) Close() error {
	return b.port.Close()
}

// Pin is a GPIO input line (the radio's SFD or FIFOP signal).
type Pin struct {
	pin gpio.PinIn
}

// OpenPin looks up the named GPIO pin and configures it as a plain
// input.
func OpenPin(name string) (*Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %q not found", name)
	}
	if err := p.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("configure GPIO pin %q: %w", name, err)
	}
	return &Pin{pin: p}, nil
}

// Read returns the pin's current level.
func (p *Pin) Read() (bool, error) {
	return p.pin.Read() == gpio.High, nil
}
