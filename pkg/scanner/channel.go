package scanner

import "time"

// IEEE 802.15.4 2.4 GHz band layout
const (
	// FirstChannel is the lowest 2.4 GHz band channel number
	FirstChannel = 11

	// LastChannel is the highest 2.4 GHz band channel number
	LastChannel = 26

	// BaseFrequencyMHz is the center frequency of channel 11
	BaseFrequencyMHz = 2405

	// ChannelSpacingMHz is the spacing between adjacent channels
	ChannelSpacingMHz = 5

	// FrequencyOffsetMHz is subtracted from the center frequency to
	// obtain the synthesizer's programmed frequency word
	FrequencyOffsetMHz = 2048

	// RSSIOffsetDBm converts the chip's raw RSSI reading to dBm at
	// the antenna
	RSSIOffsetDBm = -45
)

// ChannelEnergy is one channel's energy measurement.
type ChannelEnergy struct {
	Channel uint8   // 802.15.4 channel number, 11..26
	RSSI    float32 // dBm - averaged signal strength on the channel
}

// ScanResult holds the result of a single sweep over the configured
// channels.
type ScanResult struct {
	// Per-channel measurements in sweep order
	Channels []ChannelEnergy

	// Busiest channel of the sweep
	PeakChannel uint8
	PeakRSSI    float32

	// Metadata
	Timestamp      time.Time
	SignalDetected bool // true if the peak exceeded the threshold
}

// IsValidChannel checks if ch is a 2.4 GHz band channel number.
func IsValidChannel(ch uint8) bool {
	return ch >= FirstChannel && ch <= LastChannel
}

// ChannelFrequencyMHz returns the center frequency of a channel.
func ChannelFrequencyMHz(ch uint8) uint16 {
	return BaseFrequencyMHz + ChannelSpacingMHz*uint16(ch-FirstChannel)
}

// ChannelFrequencyWord returns the synthesizer frequency word that
// tunes the radio to a channel.
func ChannelFrequencyWord(ch uint8) uint16 {
	return ChannelFrequencyMHz(ch) - FrequencyOffsetMHz
}

// RSSIToDBm converts a raw RSSI register reading to dBm.
func RSSIToDBm(rssi int8) float32 {
	return float32(int(rssi) + RSSIOffsetDBm)
}

// DefaultChannels returns the full 2.4 GHz band channel list.
func DefaultChannels() []uint8 {
	channels := make([]uint8, 0, LastChannel-FirstChannel+1)
	for ch := uint8(FirstChannel); ch <= LastChannel; ch++ {
		channels = append(channels, ch)
	}
	return channels
}
