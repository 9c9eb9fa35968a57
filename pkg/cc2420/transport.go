package cc2420

import "time"

// Bus is the synchronous serial transport the radio is attached to.
// Implementations are provided by pkg/spibus (periph.io) and
// pkg/mcp2210 (USB bridge); tests supply in-memory doubles.
type Bus interface {
	// Transfer performs one full-duplex exchange: every byte of buf
	// is shifted out and the byte clocked in at the same position is
	// written back into buf.
	Transfer(buf []byte) error

	// Write shifts buf out, discarding whatever comes back.
	Write(buf []byte) error
}

// Pin is a digital input line. The radio reads two of them: the SFD
// (frame start) signal and the FIFOP (data ready) signal.
type Pin interface {
	Read() (bool, error)
}

// Delay provides the blocking waits used by configuration settling and
// poll loops. Injected so that tests run without real sleeping.
type Delay interface {
	Sleep(d time.Duration)
}

// SleepDelay implements Delay with time.Sleep.
type SleepDelay struct{}

func (SleepDelay) Sleep(d time.Duration) { time.Sleep(d) }
