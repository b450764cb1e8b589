package terrain

import "math"

// Rand is the random source consumed by the fault generator. *rand.Rand from
// math/rand/v2 and core.RNG both satisfy it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Fault is a randomly oriented plane that splits the world along a
// sinusoidal crest line. The derived coefficients are computed once in
// NewFault and never change afterwards.
type Fault struct {
	flag  bool
	alpha float64
	beta  float64
	shift float64
	tanB  float64
	xsi   float64
}

// NewFault builds a fault from explicit parameters. alpha and beta are plane
// angles in (-pi/2, pi/2) and shift is a phase offset in (-0.5, 0.5).
func NewFault(flag bool, alpha, beta, shift float64) Fault {
	return Fault{
		flag:  flag,
		alpha: alpha,
		beta:  beta,
		shift: shift,
		tanB:  math.Tan(math.Acos(math.Cos(alpha) * math.Cos(beta))),
		xsi:   0.5 - beta/math.Pi,
	}
}

// RandomFault samples a fault from rng. Draw order is alpha, beta, flag,
// shift.
func RandomFault(rng Rand) Fault {
	alpha := (rng.Float64() - 0.5) * math.Pi
	beta := (rng.Float64() - 0.5) * math.Pi
	flag := rng.IntN(2) == 1
	shift := rng.Float64() - 0.5
	return NewFault(flag, alpha, beta, shift)
}

// GenerateFaults samples count independent faults. A non-positive count
// yields an empty list.
func GenerateFaults(count int, rng Rand) []Fault {
	if count <= 0 {
		return []Fault{}
	}
	faults := make([]Fault, count)
	for i := range faults {
		faults[i] = RandomFault(rng)
	}
	return faults
}

// Flag reports the side of the crest that is raised.
func (f Fault) Flag() bool { return f.flag }

// Alpha returns the first plane angle.
func (f Fault) Alpha() float64 { return f.alpha }

// Beta returns the second plane angle.
func (f Fault) Beta() float64 { return f.beta }

// Shift returns the phase offset.
func (f Fault) Shift() float64 { return f.shift }

// TanB returns the effective slope tangent of the plane.
func (f Fault) TanB() float64 { return f.tanB }

// Xsi returns the phase term locating the crest along the x axis.
func (f Fault) Xsi() float64 { return f.xsi }

// sign is +1 for faults that raise rows on or below the crest and -1
// otherwise.
func (f Fault) sign() int32 {
	if f.flag {
		return 1
	}
	return -1
}

// crest returns the row at which the fault's contribution flips for column x
// of a w*h grid.
func (f Fault) crest(x, w, h int) float64 {
	fw := float64(w)
	sinArg := fw*(f.xsi+f.shift) - float64(x)
	phase := math.Sin(sinArg * 2 * math.Pi / fw)
	return float64(h)/math.Pi*math.Atan(phase*f.tanB) + float64(h)/2
}
