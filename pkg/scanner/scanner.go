// Package scanner performs IEEE 802.15.4 energy detection sweeps over
// the 2.4 GHz band channels using the radio's RSSI measurement.
package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/registers"
)

// Scanner provides channel energy scanning capabilities
type Scanner interface {
	// Lifecycle
	Start() error
	Stop() error
	IsRunning() bool

	// Configuration
	SetConfig(config *ScanConfig) error
	GetConfig() *ScanConfig

	// Scanning
	ScanOnce() (*ScanResult, error)
	ScanContinuous(ctx context.Context, results chan<- *ScanResult) error
}

// scanner implements the Scanner interface
type scanner struct {
	radio  *cc2420.Radio
	config *ScanConfig
	delay  cc2420.Delay

	// State
	mu       sync.RWMutex
	running  bool
	stopChan chan struct{}
}

// New creates a new Scanner over an already powered-up radio.
func New(radio *cc2420.Radio, config *ScanConfig) Scanner {
	if config == nil {
		config = DefaultConfig()
	}

	return &scanner{
		radio:    radio,
		config:   config,
		delay:    cc2420.SleepDelay{},
		stopChan: make(chan struct{}),
	}
}

// debug logs a debug message if the debug callback is set
func (s *scanner) debug(format string, args ...interface{}) {
	if s.config.DebugLog != nil {
		s.config.DebugLog(format, args...)
	}
}

// Start begins continuous scanning in the background
func (s *scanner) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrScannerRunning
	}

	s.running = true
	s.stopChan = make(chan struct{})
	return nil
}

// Stop stops the scanner
func (s *scanner) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrScannerNotRunning
	}

	close(s.stopChan)
	s.running = false
	return nil
}

// IsRunning returns true if the scanner is running
func (s *scanner) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// SetConfig updates the scanner configuration
func (s *scanner) SetConfig(config *ScanConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config
	return nil
}

// GetConfig returns the current configuration
func (s *scanner) GetConfig() *ScanConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// ScanOnce performs one sweep over the configured channels
func (s *scanner) ScanOnce() (*ScanResult, error) {
	s.mu.RLock()
	config := s.config
	s.mu.RUnlock()

	s.debug("ScanOnce: sweeping %d channels, threshold=%.1f dBm", len(config.Channels), config.RSSIThreshold)

	result := &ScanResult{
		Channels:  make([]ChannelEnergy, 0, len(config.Channels)),
		Timestamp: time.Now(),
		PeakRSSI:  -200.0,
	}

	for _, ch := range config.Channels {
		rssi, err := s.measureChannel(ch, config.DwellTime)
		if err != nil {
			s.debug("ScanOnce: channel %d - ERROR: %v", ch, err)
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}

		s.debug("ScanOnce: channel %d (%d MHz) = %.1f dBm", ch, ChannelFrequencyMHz(ch), rssi)

		energy := ChannelEnergy{Channel: ch, RSSI: rssi}
		result.Channels = append(result.Channels, energy)

		if rssi > result.PeakRSSI {
			result.PeakRSSI = rssi
			result.PeakChannel = ch
		}

		if rssi >= config.RSSIThreshold && config.OnChannelActive != nil {
			config.OnChannelActive(energy)
		}
	}

	result.SignalDetected = result.PeakRSSI >= config.RSSIThreshold

	s.debug("ScanOnce: complete - peak channel %d @ %.1f dBm, detected=%v",
		result.PeakChannel, result.PeakRSSI, result.SignalDetected)

	return result, nil
}

// ScanContinuous performs continuous scanning until context is cancelled
func (s *scanner) ScanContinuous(ctx context.Context, results chan<- *ScanResult) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	ticker := time.NewTicker(s.config.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			close(results)
			return ctx.Err()
		case <-s.stopChan:
			close(results)
			return nil
		case <-ticker.C:
			result, err := s.ScanOnce()
			if err != nil {
				// Log error but continue scanning
				continue
			}

			// Non-blocking send
			select {
			case results <- result:
			default:
				// Channel full, skip this result
			}
		}
	}
}

// measureChannel tunes the radio to a channel, turns on RX, waits for
// the RSSI to average and reads it back.
func (s *scanner) measureChannel(ch uint8, dwellTime time.Duration) (float32, error) {
	// 1. RF off while retuning
	if _, err := s.radio.Strobe(cc2420.StrobeRFOff); err != nil {
		return 0, fmt.Errorf("failed to idle radio: %w", err)
	}

	// 2. Tune the synthesizer
	if err := s.setChannel(ch); err != nil {
		return 0, fmt.Errorf("failed to tune: %w", err)
	}

	// 3. Enter RX (recalibrates the synthesizer on the new channel)
	if _, err := s.radio.Strobe(cc2420.StrobeRxOn); err != nil {
		return 0, fmt.Errorf("failed to enter RX: %w", err)
	}

	// 4. Dwell while the RSSI averages over the air
	s.delay.Sleep(dwellTime)

	// 5. Read RSSI, requiring the chip to report it valid
	rssi, status, err := s.radio.ReadRSSI()
	if err != nil {
		return 0, fmt.Errorf("failed to read RSSI: %w", err)
	}
	if !status.RSSIValid {
		return 0, ErrRSSINotValid
	}

	// 6. Back to idle
	if _, err := s.radio.Strobe(cc2420.StrobeRFOff); err != nil {
		return 0, fmt.Errorf("failed to idle radio: %w", err)
	}

	rssiDBm := RSSIToDBm(rssi)
	s.debug("measureChannel: %d -> raw=%d = %.1f dBm", ch, rssi, rssiDBm)

	return rssiDBm, nil
}

// setChannel programs the frequency synthesizer for a channel, keeping
// the register's other fields at their defaults.
func (s *scanner) setChannel(ch uint8) error {
	if !IsValidChannel(ch) {
		return fmt.Errorf("%w: channel %d", ErrChannelOutOfRange, ch)
	}

	fs := registers.DefaultFrequencySynthesizer()
	fs.Frequency = ChannelFrequencyWord(ch)
	if _, err := s.radio.RegisterWrite(&fs); err != nil {
		return err
	}
	return nil
}
