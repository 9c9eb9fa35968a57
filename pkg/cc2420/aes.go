package cc2420

import "fmt"

// KeySize is the length of the hardware AES-128 keys in bytes.
const KeySize = 16

// NonceSize is the length of the in-line security nonces in bytes.
const NonceSize = 16

// BlockSize is the stand-alone encryption block length in bytes.
const BlockSize = 16

// LoadKey0 stores key into RAM key slot 0, the reset-default in-line RX
// decryption key.
func (r *Radio) LoadKey0(key [KeySize]byte) (Status, error) {
	return r.RAMWrite(SectorKey0, key[:])
}

// LoadKey1 stores key into RAM key slot 1, the reset-default in-line TX
// encryption key.
func (r *Radio) LoadKey1(key [KeySize]byte) (Status, error) {
	return r.RAMWrite(SectorKey1, key[:])
}

// LoadTxNonce stores the in-line TX security nonce.
func (r *Radio) LoadTxNonce(nonce [NonceSize]byte) (Status, error) {
	return r.RAMWrite(SectorTxNonce, nonce[:])
}

// LoadRxNonce stores the in-line RX security nonce.
func (r *Radio) LoadRxNonce(nonce [NonceSize]byte) (Status, error) {
	return r.RAMWrite(SectorRxNonce, nonce[:])
}

// Encrypt runs one stand-alone AES-128 pass over block using the key
// selected by SECCTRL0, returning the ciphertext. The plaintext is
// written to the encryption buffer, the SAES strobe issued, the busy
// flag polled down and the buffer read back. The AES core is shared
// with in-line crypto, so the whole exchange holds the crypto lock.
func (r *Radio) Encrypt(block [BlockSize]byte, delay Delay) ([BlockSize]byte, error) {
	var out [BlockSize]byte

	r.aesMu.Lock()
	defer r.aesMu.Unlock()

	if _, err := r.RAMWrite(SectorEncryptionBuffer, block[:]); err != nil {
		return out, err
	}
	if _, err := r.Strobe(StrobeAES); err != nil {
		return out, err
	}
	if err := r.waitEncryptionDone(delay); err != nil {
		return out, err
	}
	if _, err := r.RAMRead(SectorEncryptionBuffer, out[:]); err != nil {
		return out, err
	}
	return out, nil
}

// StartTxEncryption kicks off in-line encryption of the TX FIFO without
// starting a transmission.
func (r *Radio) StartTxEncryption() (Status, error) {
	r.aesMu.Lock()
	defer r.aesMu.Unlock()
	return r.Strobe(StrobeTxEncrypt)
}

// StartRxDecryption kicks off in-line decryption of the RX FIFO.
func (r *Radio) StartRxDecryption() (Status, error) {
	r.aesMu.Lock()
	defer r.aesMu.Unlock()
	return r.Strobe(StrobeRxDecrypt)
}

// waitEncryptionDone polls the status byte until the encryption module
// reports idle, bounded by the frame timeout.
func (r *Radio) waitEncryptionDone(delay Delay) error {
	maxPolls := int(r.frameTimeout / r.pollInterval)
	for i := 0; ; i++ {
		status, err := r.Strobe(StrobeNop)
		if err != nil {
			return err
		}
		if !status.EncBusy {
			return nil
		}
		if i >= maxPolls {
			return fmt.Errorf("encryption module stayed busy: %w", ErrTimeout)
		}
		delay.Sleep(r.pollInterval)
	}
}
