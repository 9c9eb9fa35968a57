package mcp2210

import "fmt"

// SPIBus adapts a Device's SPI engine to the radio transport interface.
type SPIBus struct {
	dev *Device
}

// NewSPIBus programs the bridge's SPI settings for the radio (given
// clock in Hz, mode 0) and returns the bus.
func NewSPIBus(dev *Device, clockHz uint32) (*SPIBus, error) {
	if err := dev.ConfigureSPI(clockHz, 0, 0); err != nil {
		return nil, fmt.Errorf("configure SPI engine: %w", err)
	}
	return &SPIBus{dev: dev}, nil
}

// Transfer clocks buf out and overwrites it in place with the bytes
// clocked in.
func (b *SPIBus) Transfer(buf []byte) error {
	rx, err := b.dev.SPITransfer(buf)
	if err != nil {
		return err
	}
	copy(buf, rx)
	return nil
}

// Write clocks buf out, discarding the bytes clocked in.
func (b *SPIBus) Write(buf []byte) error {
	_, err := b.dev.SPITransfer(buf)
	return err
}

// GPIOPin exposes one GP pin as a radio input line.
type GPIOPin struct {
	dev *Device
	pin uint8
}

// NewGPIOPin returns a Pin reading the given GP pin number.
func NewGPIOPin(dev *Device, pin uint8) (*GPIOPin, error) {
	if pin >= GPIOCount {
		return nil, fmt.Errorf("invalid GP pin %d", pin)
	}
	return &GPIOPin{dev: dev, pin: pin}, nil
}

// Read returns the pin's current level.
func (p *GPIOPin) Read() (bool, error) {
	return p.dev.GPIOValue(p.pin)
}
