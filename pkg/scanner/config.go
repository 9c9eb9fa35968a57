package scanner

import (
	"fmt"
	"time"
)

// Default scan parameters
const (
	DefaultRSSIThreshold = -77.0 // dBm, the 802.15.4 ED threshold ballpark
	DefaultDwellTime     = 2 * time.Millisecond
	DefaultScanInterval  = 250 * time.Millisecond
)

// ScanConfig defines runtime scanning parameters
type ScanConfig struct {
	// Channels to sweep, in order
	Channels []uint8

	// Scan parameters
	RSSIThreshold float32       // dBm - minimum signal detection threshold
	DwellTime     time.Duration // time to sit on a channel before reading RSSI
	ScanInterval  time.Duration // delay between sweep cycles

	// Callbacks (optional)
	OnChannelActive func(energy ChannelEnergy)

	// Debug callback (optional)
	DebugLog func(format string, args ...interface{})
}

// DefaultConfig returns a ScanConfig sweeping the whole band.
func DefaultConfig() *ScanConfig {
	return &ScanConfig{
		Channels:      DefaultChannels(),
		RSSIThreshold: DefaultRSSIThreshold,
		DwellTime:     DefaultDwellTime,
		ScanInterval:  DefaultScanInterval,
	}
}

// Validate checks the configuration for errors
func (c *ScanConfig) Validate() error {
	if len(c.Channels) == 0 {
		return ErrNoChannels
	}

	for _, ch := range c.Channels {
		if !IsValidChannel(ch) {
			return fmt.Errorf("%w: channel %d", ErrChannelOutOfRange, ch)
		}
	}

	if c.DwellTime < time.Millisecond || c.DwellTime > 100*time.Millisecond {
		return ErrInvalidDwellTime
	}

	return nil
}
