package mcp2210

import "time"

// USB device identifiers
const (
	VendorID  = 0x04D8 // Microchip Technology
	ProductID = 0x00DE // MCP2210 USB-to-SPI bridge
)

// USB endpoint configuration
const (
	EP1InAddr  = 0x81 // EP1 IN (device to host)
	EP1OutAddr = 0x01 // EP1 OUT (host to device)
	ReportSize = 64   // every command and response is one full report
)

// USB timeouts
const (
	USBDefaultTimeout = 1000 * time.Millisecond
)

// Command codes
const (
	CmdGetChipStatus   = 0x10 // Get chip status
	CmdCancelTransfer  = 0x11 // Cancel the current SPI transfer
	CmdSetChipSettings = 0x21 // Set current chip (GP pin) settings
	CmdGetChipSettings = 0x20 // Get current chip settings
	CmdSetGPIOValue    = 0x30 // Set GPIO pin values
	CmdGetGPIOValue    = 0x31 // Get GPIO pin values
	CmdSetGPIODir      = 0x32 // Set GPIO pin directions
	CmdGetGPIODir      = 0x33 // Get GPIO pin directions
	CmdSetSPISettings  = 0x40 // Set SPI transfer settings
	CmdGetSPISettings  = 0x41 // Get SPI transfer settings
	CmdSPITransfer     = 0x42 // Transfer SPI data
)

// Response status codes (byte 1 of every response)
const (
	StatusOK               = 0x00
	StatusBusNotAvailable  = 0xF7 // SPI bus owned by the external master
	StatusTransferInFlight = 0xF8 // a transfer is already in progress
)

// SPI engine status codes (byte 3 of an SPI transfer response)
const (
	EngineFinished    = 0x10 // transfer finished, no more data
	EngineStartedNoRx = 0x20 // transfer started, no data to receive yet
	EngineRxPending   = 0x30 // data received, transfer not finished
)

// SPITransferChunk is the most data one SPI transfer command carries.
const SPITransferChunk = 60

// Pin count of the GP port.
const GPIOCount = 9
