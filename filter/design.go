// SPDX-License-Identifier: MIT
// Package: anolib/filter
//
// design.go — biquad coefficient designer (bilinear transform, prewarped).
//
// Contract:
//   • Design(kind, fc, fs, q, gainDB) returns normalized Coefficients.
//   • Validation order: kind → fs → fc → q (q only for kinds that use it).
//   • Never panics; invalid input yields a wrapped sentinel.
//
// Notation:
//   K = tan(π·fc/fs)   (prewarped analog frequency)
//   V = 10^(|gainDB|/20)
//   Shelving and peaking kinds mirror their numerator and denominator
//   when gainDB < 0, so a cut is the exact inverse of the same boost.

package filter

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a response shape for Design.
type Kind int

const (
	// OnePoleLowpass is a single real pole, no zeros.
	OnePoleLowpass Kind = iota + 1
	// OnePoleHighpass is a single real pole mirrored about fs/4.
	OnePoleHighpass
	// Lowpass1P1Z is a first-order low-pass with a zero at Nyquist.
	Lowpass1P1Z
	// Highpass1P1Z is a first-order high-pass with a zero at DC.
	Highpass1P1Z
	// Lowpass is the second-order low-pass.
	Lowpass
	// Highpass is the second-order high-pass.
	Highpass
	// Bandpass is the constant 0 dB peak gain band-pass.
	Bandpass
	// Notch rejects fc.
	Notch
	// Peak boosts or cuts around fc by gainDB.
	Peak
	// LowShelf is the second-order low shelf.
	LowShelf
	// HighShelf is the second-order high shelf.
	HighShelf
	// LowShelf1st is the first-order low shelf.
	LowShelf1st
	// HighShelf1st is the first-order high shelf.
	HighShelf1st
	// Allpass is the second-order all-pass.
	Allpass
	// Allpass1st is the first-order all-pass.
	Allpass1st
)

var kindNames = map[Kind]string{
	OnePoleLowpass:  "one-pole-lp",
	OnePoleHighpass: "one-pole-hp",
	Lowpass1P1Z:     "lp-1p1z",
	Highpass1P1Z:    "hp-1p1z",
	Lowpass:         "lp",
	Highpass:        "hp",
	Bandpass:        "bp",
	Notch:           "notch",
	Peak:            "peak",
	LowShelf:        "low-shelf",
	HighShelf:       "high-shelf",
	LowShelf1st:     "low-shelf-1st",
	HighShelf1st:    "high-shelf-1st",
	Allpass:         "allpass",
	Allpass1st:      "allpass-1st",
}

// String returns the short name accepted by ParseKind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// usesQ reports whether the kind's design reads q.
func (k Kind) usesQ() bool {
	switch k {
	case Lowpass, Highpass, Bandpass, Notch, Peak, Allpass:
		return true
	}
	return false
}

// ParseKind maps a short name (case-insensitive) back to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, filterErrorf("ParseKind", ErrUnknownKind, "%q", name)
}

// Kinds lists every designable kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := OnePoleLowpass; k <= Allpass1st; k++ {
		out = append(out, k)
	}
	return out
}

// Design computes normalized biquad coefficients for kind at cutoff fc (Hz),
// sample rate fs (Hz), quality q and, for peaking/shelving kinds, gainDB.
func Design(kind Kind, fc, fs, q, gainDB float64) (Coefficients, error) {
	const method = "Design"
	if _, ok := kindNames[kind]; !ok {
		return Coefficients{}, filterErrorf(method, ErrUnknownKind, "%v", kind)
	}
	if err := validate(method, fs, fc, q, kind.usesQ()); err != nil {
		return Coefficients{}, err
	}

	var (
		c     Coefficients
		v     = math.Pow(10, math.Abs(gainDB)/20)
		k     = math.Tan(math.Pi * fc / fs)
		kk    = k * k
		sqrt2 = math.Sqrt2
		sqrtV = math.Sqrt(2 * v)
		boost = gainDB >= 0
		norm  float64
	)

	switch kind {
	case OnePoleLowpass:
		p := math.Exp(-2 * math.Pi * fc / fs)
		c = Coefficients{A0: 1 - p, B1: -p}

	case OnePoleHighpass:
		p := -math.Exp(-2 * math.Pi * (0.5 - fc/fs))
		c = Coefficients{A0: 1 + p, B1: -p}

	case Lowpass1P1Z:
		norm = 1 / (1/k + 1)
		c = Coefficients{A0: norm, A1: norm, B1: (1 - 1/k) * norm}

	case Highpass1P1Z:
		norm = 1 / (k + 1)
		c = Coefficients{A0: norm, A1: -norm, B1: (k - 1) * norm}

	case Lowpass:
		norm = 1 / (1 + k/q + kk)
		a0 := kk * norm
		c = Coefficients{A0: a0, A1: 2 * a0, A2: a0, B1: 2 * (kk - 1) * norm, B2: (1 - k/q + kk) * norm}

	case Highpass:
		norm = 1 / (1 + k/q + kk)
		c = Coefficients{A0: norm, A1: -2 * norm, A2: norm, B1: 2 * (kk - 1) * norm, B2: (1 - k/q + kk) * norm}

	case Bandpass:
		norm = 1 / (1 + k/q + kk)
		a0 := k / q * norm
		c = Coefficients{A0: a0, A2: -a0, B1: 2 * (kk - 1) * norm, B2: (1 - k/q + kk) * norm}

	case Notch:
		norm = 1 / (1 + k/q + kk)
		a1 := 2 * (kk - 1) * norm
		c = Coefficients{A0: (1 + kk) * norm, A1: a1, A2: (1 + kk) * norm, B1: a1, B2: (1 - k/q + kk) * norm}

	case Peak:
		if boost {
			norm = 1 / (1 + k/q + kk)
			a1 := 2 * (kk - 1) * norm
			c = Coefficients{A0: (1 + v/q*k + kk) * norm, A1: a1, A2: (1 - v/q*k + kk) * norm, B1: a1, B2: (1 - k/q + kk) * norm}
		} else {
			norm = 1 / (1 + v/q*k + kk)
			a1 := 2 * (kk - 1) * norm
			c = Coefficients{A0: (1 + k/q + kk) * norm, A1: a1, A2: (1 - k/q + kk) * norm, B1: a1, B2: (1 - v/q*k + kk) * norm}
		}

	case LowShelf:
		if boost {
			norm = 1 / (1 + sqrt2*k + kk)
			c = Coefficients{
				A0: (1 + sqrtV*k + v*kk) * norm,
				A1: 2 * (v*kk - 1) * norm,
				A2: (1 - sqrtV*k + v*kk) * norm,
				B1: 2 * (kk - 1) * norm,
				B2: (1 - sqrt2*k + kk) * norm,
			}
		} else {
			norm = 1 / (1 + sqrtV*k + v*kk)
			c = Coefficients{
				A0: (1 + sqrt2*k + kk) * norm,
				A1: 2 * (kk - 1) * norm,
				A2: (1 - sqrt2*k + kk) * norm,
				B1: 2 * (v*kk - 1) * norm,
				B2: (1 - sqrtV*k + v*kk) * norm,
			}
		}

	case HighShelf:
		if boost {
			norm = 1 / (1 + sqrt2*k + kk)
			c = Coefficients{
				A0: (v + sqrtV*k + kk) * norm,
				A1: 2 * (kk - v) * norm,
				A2: (v - sqrtV*k + kk) * norm,
				B1: 2 * (kk - 1) * norm,
				B2: (1 - sqrt2*k + kk) * norm,
			}
		} else {
			norm = 1 / (v + sqrtV*k + kk)
			c = Coefficients{
				A0: (1 + sqrt2*k + kk) * norm,
				A1: 2 * (kk - 1) * norm,
				A2: (1 - sqrt2*k + kk) * norm,
				B1: 2 * (kk - v) * norm,
				B2: (v - sqrtV*k + kk) * norm,
			}
		}

	case LowShelf1st:
		if boost {
			norm = 1 / (k + 1)
			c = Coefficients{A0: (k*v + 1) * norm, A1: (k*v - 1) * norm, B1: (k - 1) * norm}
		} else {
			norm = 1 / (k*v + 1)
			c = Coefficients{A0: (k + 1) * norm, A1: (k - 1) * norm, B1: (k*v - 1) * norm}
		}

	case HighShelf1st:
		if boost {
			norm = 1 / (k + 1)
			c = Coefficients{A0: (k + v) * norm, A1: (k - v) * norm, B1: (k - 1) * norm}
		} else {
			norm = 1 / (k + v)
			c = Coefficients{A0: (k + 1) * norm, A1: (k - 1) * norm, B1: (k - v) * norm}
		}

	case Allpass:
		norm = 1 / (1 + k/q + kk)
		a0 := (1 - k/q + kk) * norm
		a1 := 2 * (kk - 1) * norm
		c = Coefficients{A0: a0, A1: a1, A2: 1, B1: a1, B2: a0}

	case Allpass1st:
		a0 := (1 - k) / (1 + k)
		c = Coefficients{A0: a0, A1: -1, B1: -a0}
	}

	return c, nil
}
