package registers

// SyncWord is the SYNCWORD register (0x14). The word is processed from
// the least significant nibble to the most significant one; 0xF nibbles
// are replaced with zeros during modulation and not required for frame
// synchronization during demodulation. The reset value 0xA70F is
// 802.15.4 compliant.
type SyncWord struct {
	Word uint16
}

// DefaultSyncWord returns the register's reset value.
func DefaultSyncWord() SyncWord {
	return SyncWord{Word: 0xA70F}
}

// NewSyncWord validates r and returns it ready for use.
func NewSyncWord(r SyncWord) (*SyncWord, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: any 16-bit word is legal.
func (r *SyncWord) Validate() error { return nil }

func (r *SyncWord) Address() uint8 { return AddrSyncWord }

func (r *SyncWord) Value() uint16 { return r.Word }

func (r *SyncWord) SetValue(value uint16) { r.Word = value }
