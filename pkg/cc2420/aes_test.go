package cc2420

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestEncryptExchange(t *testing.T) {
	var plaintext, ciphertext [BlockSize]byte
	for i := range plaintext {
		plaintext[i] = byte(i)
		ciphertext[i] = byte(0xF0 - i)
	}

	readBack := append([]byte{0x40, 0x00}, ciphertext[:]...)
	bus := &scriptBus{responses: [][]byte{
		{0x40},   // RAM write of the plaintext
		{0x40},   // SAES
		{0x50},   // SNOP: encryption busy
		{0x40},   // SNOP: done
		readBack, // RAM read of the ciphertext
	}}
	radio := newTestRadio(bus, &scriptPin{}, &scriptPin{})

	got, err := radio.Encrypt(plaintext, &countDelay{})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if got != ciphertext {
		t.Errorf("Encrypt() = % x, want % x", got, ciphertext)
	}

	// Plaintext in, SAES, two polls, ciphertext out.
	if len(bus.writes) != 5 {
		t.Fatalf("transport saw %d transfers, want 5", len(bus.writes))
	}
	if !bytes.Equal(bus.writes[0][2:], plaintext[:]) {
		t.Error("first transfer does not carry the plaintext")
	}
	if !bytes.Equal(bus.writes[1], []byte{0x0E}) {
		t.Errorf("second transfer = %x, want SAES", bus.writes[1])
	}
}

func TestEncryptBusyTimeout(t *testing.T) {
	// Encryption module never reports idle.
	bus := &scriptBus{responses: [][]byte{
		{0x40}, {0x40},
	}}
	for i := 0; i < 100; i++ {
		bus.responses = append(bus.responses, []byte{0x50})
	}
	radio := New(bus, &scriptPin{}, &scriptPin{},
		WithFrameTimeout(time.Millisecond), WithPollInterval(200*time.Microsecond))

	_, err := radio.Encrypt([BlockSize]byte{}, &countDelay{})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Encrypt() error = %v, want ErrTimeout", err)
	}
}

func TestKeyAndNonceSectors(t *testing.T) {
	bus := &scriptBus{}
	radio := newTestRadio(bus, &scriptPin{}, &scriptPin{})

	var key [KeySize]byte
	var nonce [NonceSize]byte

	if _, err := radio.LoadKey0(key); err != nil {
		t.Fatalf("LoadKey0() error = %v", err)
	}
	if _, err := radio.LoadKey1(key); err != nil {
		t.Fatalf("LoadKey1() error = %v", err)
	}
	if _, err := radio.LoadTxNonce(nonce); err != nil {
		t.Fatalf("LoadTxNonce() error = %v", err)
	}
	if _, err := radio.LoadRxNonce(nonce); err != nil {
		t.Fatalf("LoadRxNonce() error = %v", err)
	}

	wantFirst := []struct {
		b0, b1 byte
	}{
		{0x80, 0x80}, // key 0 at 0x100
		{0xB0, 0x80}, // key 1 at 0x130
		{0xC0, 0x80}, // TX nonce at 0x140
		{0x90, 0x80}, // RX nonce at 0x110
	}
	for i, want := range wantFirst {
		if bus.writes[i][0] != want.b0 || bus.writes[i][1] != want.b1 {
			t.Errorf("transfer %d address bytes = %02x %02x, want %02x %02x",
				i, bus.writes[i][0], bus.writes[i][1], want.b0, want.b1)
		}
	}
}

func TestInlineCryptoStrobes(t *testing.T) {
	bus := &scriptBus{}
	radio := newTestRadio(bus, &scriptPin{}, &scriptPin{})

	if _, err := radio.StartTxEncryption(); err != nil {
		t.Fatalf("StartTxEncryption() error = %v", err)
	}
	if _, err := radio.StartRxDecryption(); err != nil {
		t.Fatalf("StartRxDecryption() error = %v", err)
	}

	if !bytes.Equal(bus.writes[0], []byte{0x0D}) {
		t.Errorf("first transfer = %x, want STXENC", bus.writes[0])
	}
	if !bytes.Equal(bus.writes[1], []byte{0x0C}) {
		t.Errorf("second transfer = %x, want SRXDEC", bus.writes[1])
	}
}
