package config

import (
	"path/filepath"
	"testing"
	"time"
)

func testSnapshot() *DeviceSnapshot {
	return &DeviceSnapshot{
		ManufacturerID: 0x33D,
		PartNumber:     2,
		Version:        3,
		Timestamp:      time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Registers: map[string]uint16{
			"SYNCWORD": 0xA70F,
			"FSCTRL":   0x4165, // channel 11
		},
		ShortAddress: 0xBEEF,
		PANID:        0x1234,
		IEEEAddress:  [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
}

func TestSnapshotAccessors(t *testing.T) {
	snapshot := testSnapshot()

	if got := snapshot.GetSyncWord(); got != 0xA70F {
		t.Errorf("GetSyncWord() = 0x%04X, want 0xA70F", got)
	}
	if got := snapshot.GetFrequencyMHz(); got != 2405 {
		t.Errorf("GetFrequencyMHz() = %d, want 2405", got)
	}
	if got := snapshot.GetChannel(); got != 11 {
		t.Errorf("GetChannel() = %d, want 11", got)
	}
}

func TestGetChannelOffGrid(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Registers["FSCTRL"] = 0x4166 // 2406 MHz, between channels

	if got := snapshot.GetChannel(); got != 0 {
		t.Errorf("GetChannel() = %d, want 0 for an off-grid frequency", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	snapshot := testSnapshot()
	path := filepath.Join(t.TempDir(), "radios", "test.yaml")

	if err := SaveToFile(snapshot, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if loaded.ManufacturerID != snapshot.ManufacturerID ||
		loaded.ShortAddress != snapshot.ShortAddress ||
		loaded.PANID != snapshot.PANID ||
		loaded.IEEEAddress != snapshot.IEEEAddress {
		t.Errorf("loaded snapshot differs: %+v", loaded)
	}
	if loaded.Registers["SYNCWORD"] != 0xA70F {
		t.Errorf("SYNCWORD = 0x%04X, want 0xA70F", loaded.Registers["SYNCWORD"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromFile() succeeded on a missing file")
	}
}

func TestGetConfigPath(t *testing.T) {
	want := filepath.Join("etc", "radios", "ABC123.yaml")
	if got := GetConfigPath("ABC123"); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}
