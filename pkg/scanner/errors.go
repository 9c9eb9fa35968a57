package scanner

import "errors"

// Scanner errors
var (
	// ErrScannerRunning indicates the scanner is already running
	ErrScannerRunning = errors.New("scanner is already running")

	// ErrScannerNotRunning indicates the scanner is not running
	ErrScannerNotRunning = errors.New("scanner is not running")

	// ErrNoChannels indicates no channels were specified for scanning
	ErrNoChannels = errors.New("no channels specified for scanning")

	// ErrChannelOutOfRange indicates a channel outside the 2.4 GHz band
	ErrChannelOutOfRange = errors.New("channel out of range, legal range 11..26")

	// ErrInvalidDwellTime indicates an invalid dwell time
	ErrInvalidDwellTime = errors.New("dwell time must be between 1-100 ms")

	// ErrRSSINotValid indicates the RSSI never became valid during a dwell
	ErrRSSINotValid = errors.New("RSSI did not become valid")
)
