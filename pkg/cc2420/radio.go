// Package cc2420 drives the TI/Chipcon CC2420 2.4 GHz IEEE 802.15.4
// transceiver over a synchronous serial bus plus the SFD and FIFOP
// status lines.
//
// The package owns the register/RAM/strobe wire protocol and the
// configure, send, receive and power sequencing built on top of it.
// The physical transport is abstracted behind the Bus, Pin and Delay
// interfaces; see pkg/spibus and pkg/mcp2210 for implementations.
//
// A Radio is single-owner: no internal locking is provided beyond the
// AES core serialization, and concurrent callers must coordinate
// externally.
package cc2420

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openradio/cc2420/pkg/registers"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) { log = l }

// Radio is the controller for one CC2420 chip. It exclusively owns its
// bus and input lines.
type Radio struct {
	bus        Bus
	frameStart Pin // SFD: high while an outgoing frame is on the air
	dataReady  Pin // FIFOP: high when a received frame is ready

	writeSettle  time.Duration
	pollInterval time.Duration
	oscTimeout   time.Duration
	frameTimeout time.Duration

	// Serializes the hardware AES core between stand-alone
	// encryption and the in-line crypto strobes.
	aesMu sync.Mutex

	poweredUp bool
}

// Option adjusts a Radio's construction-time constants.
type Option func(*Radio)

// WithWriteSettle sets the pause between a configuration write and its
// read-back verification.
func WithWriteSettle(d time.Duration) Option {
	return func(r *Radio) { r.writeSettle = d }
}

// WithPollInterval sets the spacing of status and pin polls.
func WithPollInterval(d time.Duration) Option {
	return func(r *Radio) { r.pollInterval = d }
}

// WithOscillatorTimeout bounds the crystal oscillator stabilization
// wait.
func WithOscillatorTimeout(d time.Duration) Option {
	return func(r *Radio) { r.oscTimeout = d }
}

// WithFrameTimeout bounds the per-chunk SFD wait during chunked sends.
func WithFrameTimeout(d time.Duration) Option {
	return func(r *Radio) { r.frameTimeout = d }
}

// New returns a Radio over the given bus and input lines. frameStart is
// the SFD signal, dataReady the FIFOP signal.
func New(bus Bus, frameStart, dataReady Pin, opts ...Option) *Radio {
	r := &Radio{
		bus:          bus,
		frameStart:   frameStart,
		dataReady:    dataReady,
		writeSettle:  DefaultWriteSettle,
		pollInterval: DefaultPollInterval,
		oscTimeout:   DefaultOscillatorTimeout,
		frameTimeout: DefaultFrameTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PoweredUp reports whether the oscillator start-up sequence has
// completed since construction or the last PowerDown.
func (r *Radio) PoweredUp() bool { return r.poweredUp }

// Strobe issues a single-byte command and returns the status byte
// clocked back in its place.
func (r *Radio) Strobe(s Strobe) (Status, error) {
	buf := [1]byte{s.Opcode()}
	if err := r.bus.Transfer(buf[:]); err != nil {
		return Status{}, fmt.Errorf("strobe %s: %w", s, err)
	}
	log.WithFields(logrus.Fields{"strobe": s.String(), "status": fmt.Sprintf("0x%02X", buf[0])}).Debug("strobe")
	return DecodeStatus(buf[0]), nil
}

// RegisterWrite encodes reg and writes it to the chip, returning the
// status byte from the exchange.
func (r *Radio) RegisterWrite(reg registers.Register) (Status, error) {
	value := reg.Value()
	buf := [3]byte{reg.Address() | RegisterWriteBit, byte(value), byte(value >> 8)}
	if err := r.bus.Transfer(buf[:]); err != nil {
		return Status{}, fmt.Errorf("write register 0x%02X: %w", reg.Address(), err)
	}
	log.WithFields(logrus.Fields{"addr": fmt.Sprintf("0x%02X", reg.Address()), "value": fmt.Sprintf("0x%04X", value)}).Debug("register write")
	return DecodeStatus(buf[0]), nil
}

// RegisterRead reads the chip register at reg's address and decodes the
// wire value into reg's fields.
func (r *Radio) RegisterRead(reg registers.Register) (Status, error) {
	value, status, err := r.registerReadRaw(reg.Address())
	if err != nil {
		return Status{}, err
	}
	reg.SetValue(value)
	return status, nil
}

// ReadRegisterValue reads the raw 16-bit value of the register at addr
// without decoding it.
func (r *Radio) ReadRegisterValue(addr uint8) (uint16, Status, error) {
	return r.registerReadRaw(addr)
}

// WriteRegisterValue writes a raw 16-bit value to the register at addr
// without field validation. Prefer RegisterWrite with a typed register.
func (r *Radio) WriteRegisterValue(addr uint8, value uint16) (Status, error) {
	buf := [3]byte{addr | RegisterWriteBit, byte(value), byte(value >> 8)}
	if err := r.bus.Transfer(buf[:]); err != nil {
		return Status{}, fmt.Errorf("write register 0x%02X: %w", addr, err)
	}
	return DecodeStatus(buf[0]), nil
}

func (r *Radio) registerReadRaw(addr uint8) (uint16, Status, error) {
	buf := [3]byte{addr, 0, 0}
	if err := r.bus.Transfer(buf[:]); err != nil {
		return 0, Status{}, fmt.Errorf("read register 0x%02X: %w", addr, err)
	}
	value := binary.LittleEndian.Uint16(buf[1:])
	return value, DecodeStatus(buf[0]), nil
}

// RAMWrite stores data into the given RAM sector. The buffer length
// must equal the sector length exactly; mismatches fail before any
// transport I/O.
func (r *Radio) RAMWrite(sector Sector, data []byte) (Status, error) {
	if len(data) != sector.Length() {
		return Status{}, &LengthError{Expected: sector.Length(), Found: len(data)}
	}
	b0, b1 := sector.WriteAddress()
	buf := make([]byte, 0, 2+len(data))
	buf = append(buf, b0, b1)
	buf = append(buf, data...)
	if err := r.bus.Transfer(buf); err != nil {
		return Status{}, fmt.Errorf("write %s: %w", sector, err)
	}
	return DecodeStatus(buf[0]), nil
}

// RAMRead fills out with the contents of the given RAM sector. The
// buffer length must equal the sector length exactly; mismatches fail
// before any transport I/O.
func (r *Radio) RAMRead(sector Sector, out []byte) (Status, error) {
	if len(out) != sector.Length() {
		return Status{}, &LengthError{Expected: sector.Length(), Found: len(out)}
	}
	b0, b1 := sector.ReadAddress()
	buf := make([]byte, 2+sector.Length())
	buf[0], buf[1] = b0, b1
	if err := r.bus.Transfer(buf); err != nil {
		return Status{}, fmt.Errorf("read %s: %w", sector, err)
	}
	copy(out, buf[2:])
	return DecodeStatus(buf[0]), nil
}

// Configure applies cfg to the chip, verifying every write by reading
// it back, then runs the power-up sequence: oscillator on, wait for
// stable, start TX calibration. A read-back mismatch aborts with a
// StepError naming the failed step; the caller must re-run the whole
// sequence. No step is retried.
func (r *Radio) Configure(cfg Config, delay Delay) error {
	modem, err := registers.NewModemControl0(registers.ModemControl0{
		PanCoordinator: cfg.PANCoordinator,
		AddressDecode:  cfg.AddressDecoding,
		CCAHysteresis:  2,
		CCAMode:        3,
		AutoCRC:        cfg.EnableCRC,
		AutoAck:        cfg.AutoAck,
		PreambleLength: cfg.PreambleLength,
	})
	if err != nil {
		return err
	}
	if err := r.registerWriteVerified("modem control", modem, delay); err != nil {
		return err
	}

	syncWord := registers.SyncWord{Word: cfg.SyncWord}
	if err := r.registerWriteVerified("sync word", &syncWord, delay); err != nil {
		return err
	}

	var addr [2]byte
	binary.BigEndian.PutUint16(addr[:], cfg.ShortAddress)
	if err := r.ramWriteVerified("short address", SectorShortAddress, addr[:], delay); err != nil {
		return err
	}

	var pan [2]byte
	binary.BigEndian.PutUint16(pan[:], cfg.PANID)
	if err := r.ramWriteVerified("PAN identifier", SectorPanID, pan[:], delay); err != nil {
		return err
	}

	if err := r.ramWriteVerified("IEEE address", SectorIEEEAddress, cfg.IEEEAddress[:], delay); err != nil {
		return err
	}

	// Key slots follow SECCTRL0's reset key selection: TX from key 1,
	// RX from key 0.
	if err := r.ramWriteVerified("TX key", SectorKey1, cfg.TxKey[:], delay); err != nil {
		return err
	}
	if err := r.ramWriteVerified("RX key", SectorKey0, cfg.RxKey[:], delay); err != nil {
		return err
	}

	log.Info("configuration written and verified")
	return r.PowerUp(delay)
}

// registerWriteVerified writes reg, waits out the settle time and reads
// the register back, failing with a StepError when the raw values
// differ.
func (r *Radio) registerWriteVerified(step string, reg registers.Register, delay Delay) error {
	wrote := reg.Value()
	if _, err := r.RegisterWrite(reg); err != nil {
		return fmt.Errorf("configure %s: %w", step, err)
	}
	delay.Sleep(r.writeSettle)
	read, _, err := r.registerReadRaw(reg.Address())
	if err != nil {
		return fmt.Errorf("configure %s: %w", step, err)
	}
	if read != wrote {
		log.WithFields(logrus.Fields{"step": step, "wrote": fmt.Sprintf("0x%04X", wrote), "read": fmt.Sprintf("0x%04X", read)}).Error("read-back mismatch")
		return &StepError{Step: step}
	}
	return nil
}

// ramWriteVerified writes a sector, waits out the settle time and reads
// it back, failing with a StepError on any byte difference.
func (r *Radio) ramWriteVerified(step string, sector Sector, data []byte, delay Delay) error {
	if _, err := r.RAMWrite(sector, data); err != nil {
		return fmt.Errorf("configure %s: %w", step, err)
	}
	delay.Sleep(r.writeSettle)
	read := make([]byte, sector.Length())
	if _, err := r.RAMRead(sector, read); err != nil {
		return fmt.Errorf("configure %s: %w", step, err)
	}
	for i := range read {
		if read[i] != data[i] {
			return &StepError{Step: step}
		}
	}
	return nil
}

// PowerUp turns on the crystal oscillator, polls the status byte until
// it reports stable (bounded by the oscillator timeout) and starts TX
// frequency calibration.
func (r *Radio) PowerUp(delay Delay) error {
	if _, err := r.Strobe(StrobeXOSCOn); err != nil {
		return err
	}
	maxPolls := int(r.oscTimeout / r.pollInterval)
	for i := 0; ; i++ {
		status, err := r.Strobe(StrobeNop)
		if err != nil {
			return err
		}
		if status.XOSCStable {
			break
		}
		if i >= maxPolls {
			return fmt.Errorf("oscillator did not stabilize: %w", ErrTimeout)
		}
		delay.Sleep(r.pollInterval)
	}
	if _, err := r.Strobe(StrobeTxCal); err != nil {
		return err
	}
	r.poweredUp = true
	log.Info("radio powered up")
	return nil
}

// PowerDown disables RF and turns off the crystal oscillator.
func (r *Radio) PowerDown() error {
	if _, err := r.Strobe(StrobeRFOff); err != nil {
		return err
	}
	if _, err := r.Strobe(StrobeXOSCOff); err != nil {
		return err
	}
	r.poweredUp = false
	log.Info("radio powered down")
	return nil
}

// txStrobe selects the plain or CCA-gated transmit strobe.
func txStrobe(cca bool) Strobe {
	if cca {
		return StrobeTxOnCCA
	}
	return StrobeTxOn
}

// writeTxFifo clocks data into the TX FIFO behind the write opcode.
func (r *Radio) writeTxFifo(data []byte) (Status, error) {
	buf := make([]byte, 0, 1+len(data))
	buf = append(buf, StrobeTxFifo.Opcode())
	buf = append(buf, data...)
	if err := r.bus.Transfer(buf); err != nil {
		return Status{}, fmt.Errorf("write TX FIFO: %w", err)
	}
	return DecodeStatus(buf[0]), nil
}

// SendFrame transmits a single frame of at most MaxFrameSize bytes: the
// TX FIFO is flushed, the payload written and the transmit strobe
// (CCA-gated when cca is set) issued. Oversized payloads fail before
// any transport I/O.
func (r *Radio) SendFrame(data []byte, cca bool) (Status, error) {
	if len(data) == 0 {
		return Status{}, ErrEmptyPayload
	}
	if len(data) > MaxFrameSize {
		return Status{}, &LengthError{Expected: MaxFrameSize, Found: len(data)}
	}
	if _, err := r.Strobe(StrobeFlushTx); err != nil {
		return Status{}, err
	}
	if _, err := r.writeTxFifo(data); err != nil {
		return Status{}, err
	}
	return r.Strobe(txStrobe(cca))
}

// Send transmits data of any length by splitting it into MaxFrameSize
// chunks. Each intermediate chunk is written, transmitted and waited
// out on the SFD line before the next one; the final chunk's transmit
// strobe supplies the returned status. The final chunk is always 1 to
// MaxFrameSize bytes, so a payload that is an exact multiple of the
// chunk size never produces a zero-length FIFO write.
func (r *Radio) Send(data []byte, cca bool, delay Delay) (Status, error) {
	if len(data) == 0 {
		return Status{}, ErrEmptyPayload
	}
	if _, err := r.Strobe(StrobeFlushTx); err != nil {
		return Status{}, err
	}
	for len(data) > MaxFrameSize {
		chunk := data[:MaxFrameSize]
		data = data[MaxFrameSize:]
		if _, err := r.writeTxFifo(chunk); err != nil {
			return Status{}, err
		}
		if _, err := r.Strobe(txStrobe(cca)); err != nil {
			return Status{}, err
		}
		if err := r.waitFrameSent(delay); err != nil {
			return Status{}, err
		}
	}
	if _, err := r.writeTxFifo(data); err != nil {
		return Status{}, err
	}
	return r.Strobe(txStrobe(cca))
}

// waitFrameSent polls the SFD line until the in-flight frame has been
// transmitted: first for the line to go high (frame started), then for
// it to drop again (frame complete). Both phases are bounded by the
// frame timeout.
func (r *Radio) waitFrameSent(delay Delay) error {
	if err := r.waitFrameStart(delay, true); err != nil {
		return err
	}
	return r.waitFrameStart(delay, false)
}

func (r *Radio) waitFrameStart(delay Delay, level bool) error {
	maxPolls := int(r.frameTimeout / r.pollInterval)
	for i := 0; ; i++ {
		high, err := r.frameStart.Read()
		if err != nil {
			return fmt.Errorf("frame start line: %w", err)
		}
		if high == level {
			return nil
		}
		if i >= maxPolls {
			return fmt.Errorf("frame start line stuck %s: %w", pinLevel(high), ErrTimeout)
		}
		delay.Sleep(r.pollInterval)
	}
}

func pinLevel(high bool) string {
	if high {
		return "high"
	}
	return "low"
}

// Receive reads min(MaxFrameSize+1, len(buf)) bytes through the RX
// FIFO read opcode, strips the leading status byte and copies the
// payload into buf. The decoded status is returned.
func (r *Radio) Receive(buf []byte) (Status, error) {
	if len(buf) == 0 {
		return Status{}, ErrEmptyBuffer
	}
	n := len(buf)
	if n > MaxFrameSize+1 {
		n = MaxFrameSize + 1
	}
	xfer := make([]byte, n)
	xfer[0] = StrobeRxFifo.Opcode()
	if err := r.bus.Transfer(xfer); err != nil {
		return Status{}, fmt.Errorf("read RX FIFO: %w", err)
	}
	copy(buf, xfer[1:])
	return DecodeStatus(xfer[0]), nil
}

// DataReady reports the level of the FIFOP line: a received frame is
// waiting in the RX FIFO.
func (r *Radio) DataReady() (bool, error) {
	ready, err := r.dataReady.Read()
	if err != nil {
		return false, fmt.Errorf("data ready line: %w", err)
	}
	return ready, nil
}
