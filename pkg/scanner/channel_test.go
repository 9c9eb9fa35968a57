package scanner

import (
	"errors"
	"testing"
	"time"
)

func TestChannelFrequencies(t *testing.T) {
	tests := []struct {
		channel uint8
		mhz     uint16
		word    uint16
	}{
		{11, 2405, 357},
		{12, 2410, 362},
		{18, 2440, 392},
		{26, 2480, 432},
	}

	for _, tt := range tests {
		if got := ChannelFrequencyMHz(tt.channel); got != tt.mhz {
			t.Errorf("ChannelFrequencyMHz(%d) = %d, want %d", tt.channel, got, tt.mhz)
		}
		if got := ChannelFrequencyWord(tt.channel); got != tt.word {
			t.Errorf("ChannelFrequencyWord(%d) = %d, want %d", tt.channel, got, tt.word)
		}
	}
}

func TestIsValidChannel(t *testing.T) {
	for ch := uint8(11); ch <= 26; ch++ {
		if !IsValidChannel(ch) {
			t.Errorf("IsValidChannel(%d) = false, want true", ch)
		}
	}
	for _, ch := range []uint8{0, 10, 27, 255} {
		if IsValidChannel(ch) {
			t.Errorf("IsValidChannel(%d) = true, want false", ch)
		}
	}
}

func TestRSSIToDBm(t *testing.T) {
	tests := []struct {
		raw  int8
		want float32
	}{
		{0, -45},
		{-10, -55},
		{10, -35},
		{-83, -128},
	}

	for _, tt := range tests {
		if got := RSSIToDBm(tt.raw); got != tt.want {
			t.Errorf("RSSIToDBm(%d) = %.1f, want %.1f", tt.raw, got, tt.want)
		}
	}
}

func TestDefaultChannels(t *testing.T) {
	channels := DefaultChannels()
	if len(channels) != 16 {
		t.Fatalf("len = %d, want 16", len(channels))
	}
	if channels[0] != 11 || channels[15] != 26 {
		t.Errorf("channels = %v, want 11..26", channels)
	}
}

func TestScanConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	tests := []struct {
		name string
		cfg  ScanConfig
		want error
	}{
		{"no channels", ScanConfig{DwellTime: 2 * time.Millisecond}, ErrNoChannels},
		{"channel out of range", ScanConfig{Channels: []uint8{10}, DwellTime: 2 * time.Millisecond}, ErrChannelOutOfRange},
		{"dwell too short", ScanConfig{Channels: []uint8{11}, DwellTime: 100 * time.Microsecond}, ErrInvalidDwellTime},
		{"dwell too long", ScanConfig{Channels: []uint8{11}, DwellTime: time.Second}, ErrInvalidDwellTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
