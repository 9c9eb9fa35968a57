package registers

// OverrideSignals is the shared bit layout of the MANAND (0x21) and
// MANOR (0x22) manual override registers. Each bit forces (MANOR) or
// gates (MANAND) one internal power-down or control signal.
type OverrideSignals struct {
	VGAResetN  bool // resets the peak detectors in the VGA
	BiasPD     bool // global bias power-down
	BalunCtrl  bool // external PA biasing via the RX/TX output switch
	RxTx       bool // PA buffers instead of LO buffers
	PrePD      bool // prescaler power-down
	PANPD      bool // PA power-down, negative path
	PAPPD      bool // PA power-down, positive path
	DACLPFPD   bool // TX DAC power-down
	XOSC16MPD  bool // crystal oscillator power-down
	RxBPFCalPD bool // bandpass filter calibration oscillator power-down
	ChpPD      bool // charge pump power-down
	FSPD       bool // VCO, I/Q generator and LO buffer power-down
	ADCPD      bool // ADC power-down
	VGAPD      bool // VGA power-down
	RxBPFPD    bool // bandpass receive filter power-down
	LNAMixPD   bool // LNA, down-conversion mixer and front end bias power-down
}

func (s OverrideSignals) value() uint16 {
	bits := []bool{
		s.VGAResetN, s.BiasPD, s.BalunCtrl, s.RxTx,
		s.PrePD, s.PANPD, s.PAPPD, s.DACLPFPD,
		s.XOSC16MPD, s.RxBPFCalPD, s.ChpPD, s.FSPD,
		s.ADCPD, s.VGAPD, s.RxBPFPD, s.LNAMixPD,
	}
	var value uint16
	for i, b := range bits {
		if b {
			value |= 1 << (15 - i)
		}
	}
	return value
}

func overrideSignals(value uint16) OverrideSignals {
	bit := func(n uint) bool { return value&(1<<n) != 0 }
	return OverrideSignals{
		VGAResetN:  bit(15),
		BiasPD:     bit(14),
		BalunCtrl:  bit(13),
		RxTx:       bit(12),
		PrePD:      bit(11),
		PANPD:      bit(10),
		PAPPD:      bit(9),
		DACLPFPD:   bit(8),
		XOSC16MPD:  bit(7),
		RxBPFCalPD: bit(6),
		ChpPD:      bit(5),
		FSPD:       bit(4),
		ADCPD:      bit(3),
		VGAPD:      bit(2),
		RxBPFPD:    bit(1),
		LNAMixPD:   bit(0),
	}
}

// AndOverride is the MANAND register (0x21). Every signal defaults to 1
// so that nothing is forced low.
type AndOverride struct {
	OverrideSignals
}

// DefaultAndOverride returns the register's reset values (all ones).
func DefaultAndOverride() AndOverride {
	return AndOverride{OverrideSignals{
		VGAResetN: true, BiasPD: true, BalunCtrl: true, RxTx: true,
		PrePD: true, PANPD: true, PAPPD: true, DACLPFPD: true,
		XOSC16MPD: true, RxBPFCalPD: true, ChpPD: true, FSPD: true,
		ADCPD: true, VGAPD: true, RxBPFPD: true, LNAMixPD: true,
	}}
}

// NewAndOverride validates r and returns it ready for use.
func NewAndOverride(r AndOverride) (*AndOverride, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: every override field is a single bit.
func (r *AndOverride) Validate() error { return nil }

func (r *AndOverride) Address() uint8 { return AddrAndOverride }

func (r *AndOverride) Value() uint16 { return r.OverrideSignals.value() }

func (r *AndOverride) SetValue(value uint16) { r.OverrideSignals = overrideSignals(value) }

// OrOverride is the MANOR register (0x22). Every signal defaults to 0
// so that nothing is forced high.
type OrOverride struct {
	OverrideSignals
}

// DefaultOrOverride returns the register's reset values (all zeros).
func DefaultOrOverride() OrOverride {
	return OrOverride{}
}

// NewOrOverride validates r and returns it ready for use.
func NewOrOverride(r OrOverride) (*OrOverride, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: every override field is a single bit.
func (r *OrOverride) Validate() error { return nil }

func (r *OrOverride) Address() uint8 { return AddrOrOverride }

func (r *OrOverride) Value() uint16 { return r.OverrideSignals.value() }

func (r *OrOverride) SetValue(value uint16) { r.OverrideSignals = overrideSignals(value) }
