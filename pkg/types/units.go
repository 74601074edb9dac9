package types

import (
	"fmt"
	"math"
)

// Decimal (SI) conversion factors. A gigabyte here is 10^9 bytes, not 2^30.
const (
	BitsPerGigabyte  = 8e9
	BitsPerMegabit   = 1e6
	SecondsPerHour   = 3600.0
	bitsPerKilobit   = 1e3
	bitsPerGigabit   = 1e9
	gigabytesPerTera = 1e3
)

// Gigabytes is a float64 wrapper representing a data size in decimal gigabytes.
type Gigabytes float64

// Bits returns the size in bits (1 GB = 8e9 bits).
func (g Gigabytes) Bits() float64 { return float64(g) * BitsPerGigabyte }

// Humanized returns a human-readable string with automatic unit (MB, GB, TB).
func (g Gigabytes) Humanized() string {
	v := float64(g)
	switch {
	case math.Abs(v) >= gigabytesPerTera:
		return fmt.Sprintf("%.2f TB", v/gigabytesPerTera)
	case math.Abs(v) >= 1 || v == 0:
		return fmt.Sprintf("%.2f GB", v)
	default:
		return fmt.Sprintf("%.2f MB", v*1e3)
	}
}

// Mbps is a float64 wrapper representing a link rate in megabits per second.
type Mbps float64

// BitsPerSecond returns the rate in bits per second (1 Mbps = 1e6 bps).
func (m Mbps) BitsPerSecond() float64 { return float64(m) * BitsPerMegabit }

// Humanized returns a human-readable rate with automatic unit (kbps, Mbps, Gbps).
func (m Mbps) Humanized() string {
	bps := m.BitsPerSecond()
	switch {
	case math.Abs(bps) >= bitsPerGigabit:
		return fmt.Sprintf("%.2f Gbps", bps/bitsPerGigabit)
	case math.Abs(bps) >= BitsPerMegabit || bps == 0:
		return fmt.Sprintf("%.2f Mbps", bps/BitsPerMegabit)
	default:
		return fmt.Sprintf("%.2f kbps", bps/bitsPerKilobit)
	}
}
