package probability

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Distribution builds a weight vector of length n over excerpt indices.
type Distribution func(n int) []float64

func Uniform(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = 1 / float64(n)
	}
	return res
}

// FirstOnly puts all mass on index 0, which in a library is the silence excerpt.
func FirstOnly(n int) []float64 {
	res := make([]float64, n)
	if n > 0 {
		res[0] = 1
	}
	return res
}

func LastOnly(n int) []float64 {
	res := make([]float64, n)
	if n > 0 {
		res[n-1] = 1
	}
	return res
}

// Binomial returns the Binomial(n-1, p) mass function over indices 0..n-1.
func Binomial(p float64) Distribution {
	return func(n int) []float64 {
		res := make([]float64, n)
		if n == 0 {
			return res
		}
		trials := n - 1
		coeff := 1.0
		for k := 0; k <= trials; k++ {
			if k > 0 {
				coeff = coeff * float64(trials-k+1) / float64(k)
			}
			res[k] = coeff * math.Pow(p, float64(k)) * math.Pow(1-p, float64(trials-k))
		}
		return res
	}
}

type Preset struct {
	Name string
	Dist Distribution
}

var presets []Preset

func init() {
	presets = []Preset{
		{Name: "Uniform", Dist: Uniform},
		{Name: "First Only", Dist: FirstOnly},
		{Name: "Last Only", Dist: LastOnly},
	}
	for i := 1; i <= 9; i++ {
		p := float64(i) / 10
		presets = append(presets, Preset{Name: fmt.Sprintf("Binomial, p=%.1f", p), Dist: Binomial(p)})
	}
}

// Presets returns the named presets in display order.
func Presets() []Preset {
	res := make([]Preset, len(presets))
	copy(res, presets)
	return res
}

func GetPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// FromKind resolves the short config names (uniform, first, last, binomial).
// p is only used by binomial.
func FromKind(kind string, p float64) (Distribution, error) {
	switch kind {
	case "", "uniform":
		return Uniform, nil
	case "first", "first_only":
		return FirstOnly, nil
	case "last", "last_only":
		return LastOnly, nil
	case "binomial":
		if p < 0 || p > 1 {
			return nil, errors.Errorf("binomial p must be within [0,1], got %v", p)
		}
		return Binomial(p), nil
	}
	if preset, ok := GetPreset(kind); ok {
		return preset.Dist, nil
	}
	return nil, errors.Errorf("unknown distribution %q", kind)
}

const Tolerance = 1e-9

// SumsToOne reports whether sum is within Tolerance of 1, absolute or relative.
func SumsToOne(sum float64) bool {
	return math.Abs(sum-1) <= Tolerance*math.Max(1, math.Abs(sum))
}
