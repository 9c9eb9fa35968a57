// Package mcp2210 drives the Microchip MCP2210 USB-to-SPI bridge over
// gousb and exposes its SPI engine and GP pins through the cc2420
// transport interfaces. The bridge speaks 64-byte command/response
// reports over a pair of interrupt endpoints.
package mcp2210

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/google/gousb"
)

// Device represents one open MCP2210 bridge.
type Device struct {
	usbDevice    *gousb.Device
	usbConfig    *gousb.Config
	usbInterface *gousb.Interface
	epIn         *gousb.InEndpoint
	epOut        *gousb.OutEndpoint
	Serial       string
	Manufacturer string
	Product      string
	Bus          int
	Address      int

	// One command/response exchange at a time.
	mu sync.Mutex
}

// FindAllDevices finds all connected MCP2210 bridges.
func FindAllDevices(ctx *gousb.Context) ([]*Device, error) {
	devices := []*Device{}

	usbDevices, err := ctx.OpenDevices(func(descriptor *gousb.DeviceDesc) bool {
		return descriptor.Vendor == gousb.ID(VendorID) && descriptor.Product == gousb.ID(ProductID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	for _, usbDev := range usbDevices {
		device, err := wrapDevice(usbDev)
		if err != nil {
			usbDev.Close()
			continue
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// OpenDevice opens one MCP2210 bridge, optionally matched by serial
// number.
func OpenDevice(ctx *gousb.Context, serial string) (*Device, error) {
	usbDev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(VendorID), gousb.ID(ProductID))
	if err != nil {
		return nil, fmt.Errorf("failed to open device: %w", err)
	}
	if usbDev == nil {
		return nil, fmt.Errorf("device not found")
	}

	device, err := wrapDevice(usbDev)
	if err != nil {
		usbDev.Close()
		return nil, err
	}

	if serial != "" && device.Serial != serial {
		device.Close()
		return nil, fmt.Errorf("device serial mismatch: wanted %s, got %s", serial, device.Serial)
	}

	return device, nil
}

func wrapDevice(usbDev *gousb.Device) (*Device, error) {
	manufacturer, _ := usbDev.Manufacturer()
	product, _ := usbDev.Product()
	serial, _ := usbDev.SerialNumber()

	usbDev.SetAutoDetach(true)

	config, err := usbDev.Config(1)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	iface, err := config.Interface(0, 0)
	if err != nil {
		config.Close()
		return nil, fmt.Errorf("failed to claim interface: %w", err)
	}

	epIn, err := iface.InEndpoint(1)
	if err != nil {
		iface.Close()
		config.Close()
		return nil, fmt.Errorf("failed to get IN endpoint: %w", err)
	}

	epOut, err := iface.OutEndpoint(1)
	if err != nil {
		iface.Close()
		config.Close()
		return nil, fmt.Errorf("failed to get OUT endpoint: %w", err)
	}

	desc := usbDev.Desc
	return &Device{
		usbDevice:    usbDev,
		usbConfig:    config,
		usbInterface: iface,
		epIn:         epIn,
		epOut:        epOut,
		Serial:       serial,
		Manufacturer: manufacturer,
		Product:      product,
		Bus:          desc.Bus,
		Address:      desc.Address,
	}, nil
}

// Close releases the interface, configuration and device handles.
func (d *Device) Close() error {
	if d.usbInterface != nil {
		d.usbInterface.Close()
	}
	if d.usbConfig != nil {
		d.usbConfig.Close()
	}
	if d.usbDevice != nil {
		return d.usbDevice.Close()
	}
	return nil
}

// String returns a human-readable description of the device.
func (d *Device) String() string {
	return fmt.Sprintf("%s %s (Serial: %s)", d.Manufacturer, d.Product, d.Serial)
}

// command performs one 64-byte command/response exchange. The request
// is padded to a full report; the returned slice is the full response
// report. The caller holds d.mu.
func (d *Device) command(request []byte, timeout time.Duration) ([]byte, error) {
	if timeout == 0 {
		timeout = USBDefaultTimeout
	}

	report := make([]byte, ReportSize)
	copy(report, request)

	writeCtx, writeCancel := context.WithTimeout(context.Background(), timeout)
	n, err := d.epOut.WriteContext(writeCtx, report)
	writeCancel()
	if err != nil {
		return nil, fmt.Errorf("failed to write command 0x%02X: %w", report[0], err)
	}
	if n != ReportSize {
		return nil, fmt.Errorf("short write: wrote %d of %d bytes", n, ReportSize)
	}

	response := make([]byte, ReportSize)
	readCtx, readCancel := context.WithTimeout(context.Background(), timeout)
	n, err = d.epIn.ReadContext(readCtx, response)
	readCancel()
	if err != nil {
		return nil, fmt.Errorf("failed to read response to 0x%02X: %w", report[0], err)
	}
	if n < 4 {
		return nil, fmt.Errorf("short response: %d bytes", n)
	}
	if response[0] != report[0] {
		return nil, fmt.Errorf("response command mismatch: sent 0x%02X, got 0x%02X", report[0], response[0])
	}
	return response, nil
}

// ConfigureSPI programs the volatile SPI transfer settings: bit rate in
// Hz, SPI mode and the expected bytes per transaction. Chip select is
// left under the bridge's control on GP0.
func (d *Device) ConfigureSPI(bitRate uint32, mode uint8, transferBytes uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	request := make([]byte, 21)
	request[0] = CmdSetSPISettings
	binary.LittleEndian.PutUint32(request[4:8], bitRate)
	binary.LittleEndian.PutUint16(request[8:10], 0x0001)  // CS idle: GP0 high
	binary.LittleEndian.PutUint16(request[10:12], 0x0000) // CS active: GP0 low
	binary.LittleEndian.PutUint16(request[18:20], transferBytes)
	request[20] = mode

	response, err := d.command(request, USBDefaultTimeout)
	if err != nil {
		return err
	}
	if response[1] != StatusOK {
		return fmt.Errorf("set SPI settings rejected: status 0x%02X", response[1])
	}
	return nil
}

// GPIOValue reads the level of one GP pin.
func (d *Device) GPIOValue(pin uint8) (bool, error) {
	if pin >= GPIOCount {
		return false, fmt.Errorf("invalid GP pin %d", pin)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	response, err := d.command([]byte{CmdGetGPIOValue}, USBDefaultTimeout)
	if err != nil {
		return false, err
	}
	if response[1] != StatusOK {
		return false, fmt.Errorf("get GPIO values rejected: status 0x%02X", response[1])
	}
	values := binary.LittleEndian.Uint16(response[4:6])
	return values&(1<<pin) != 0, nil
}

// spiTransferChunk submits up to SPITransferChunk bytes to the SPI
// engine and appends whatever the engine has clocked in so far to rx.
// It retries while the engine reports a transfer still in flight. The
// caller holds d.mu.
func (d *Device) spiTransferChunk(tx []byte, rx []byte) ([]byte, bool, error) {
	request := make([]byte, 4+len(tx))
	request[0] = CmdSPITransfer
	request[1] = byte(len(tx))
	copy(request[4:], tx)

	for {
		response, err := d.command(request, USBDefaultTimeout)
		if err != nil {
			return rx, false, err
		}
		switch response[1] {
		case StatusOK:
			received := int(response[2])
			rx = append(rx, response[4:4+received]...)
			finished := response[3] == EngineFinished
			return rx, finished, nil
		case StatusTransferInFlight:
			// Engine still busy with the previous chunk; ask again
			// with an empty payload to collect its output.
			request = request[:4]
			request[1] = 0
			time.Sleep(time.Millisecond)
		default:
			return rx, false, fmt.Errorf("SPI transfer rejected: status 0x%02X", response[1])
		}
	}
}

// SPITransfer clocks data out over SPI and returns the bytes clocked
// in, one per byte sent. The transaction is chunked to the engine's
// 60-byte command limit and drained until the engine reports finished.
func (d *Device) SPITransfer(data []byte) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.configureTransferLength(uint16(len(data))); err != nil {
		return nil, err
	}

	rx := make([]byte, 0, len(data))
	remaining := data
	var finished bool
	var err error
	for len(remaining) > 0 {
		chunk := remaining
		if len(chunk) > SPITransferChunk {
			chunk = chunk[:SPITransferChunk]
		}
		remaining = remaining[len(chunk):]
		rx, finished, err = d.spiTransferChunk(chunk, rx)
		if err != nil {
			return nil, err
		}
	}
	for !finished {
		rx, finished, err = d.spiTransferChunk(nil, rx)
		if err != nil {
			return nil, err
		}
	}
	if len(rx) != len(data) {
		return nil, fmt.Errorf("SPI transfer length mismatch: sent %d bytes, received %d", len(data), len(rx))
	}
	return rx, nil
}

// configureTransferLength updates only the bytes-per-transaction field
// of the volatile SPI settings, preserving the rest. The caller holds
// d.mu.
func (d *Device) configureTransferLength(length uint16) error {
	response, err := d.command([]byte{CmdGetSPISettings}, USBDefaultTimeout)
	if err != nil {
		return err
	}
	if response[1] != StatusOK {
		return fmt.Errorf("get SPI settings rejected: status 0x%02X", response[1])
	}
	if binary.LittleEndian.Uint16(response[18:20]) == length {
		return nil
	}

	request := make([]byte, 21)
	request[0] = CmdSetSPISettings
	copy(request[4:21], response[4:21])
	binary.LittleEndian.PutUint16(request[18:20], length)

	response, err = d.command(request, USBDefaultTimeout)
	if err != nil {
		return err
	}
	if response[1] != StatusOK {
		return fmt.Errorf("set SPI settings rejected: status 0x%02X", response[1])
	}
	return nil
}
