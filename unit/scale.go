package unit

import (
	"math"

	"github.com/aidee-health/embodycodec/errs"
)

// Scale describes the affine relationship between a wire integer and its
// physical value: physical = offset + wire*factor.
type Scale struct {
	Factor float64
	Offset float64
}

// ToPhysical converts a decoded wire integer to its physical value.
func (s Scale) ToPhysical(wire int64) float64 {
	return s.Offset + float64(wire)*s.Factor
}

// ToWire converts a physical value back to its wire integer, rounding
// half-to-even, and reports RangeError if the result does not fit in
// [min, max].
func (s Scale) ToWire(physical float64, min, max int64, field string) (int64, error) {
	raw := (physical - s.Offset) / s.Factor
	rounded := math.RoundToEven(raw)

	if rounded < float64(min) || rounded > float64(max) {
		return 0, errs.RangeError(field, physical)
	}

	return int64(rounded), nil
}
