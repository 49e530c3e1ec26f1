package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hilldiv"
)

// Result field names used in warnings.
const (
	FieldLocalSimilarity  = "LocalSimilarity"
	FieldRegionSimilarity = "RegionSimilarity"
)

// LocalSimilarity returns the local overlap transform of beta for n sites:
//
//	q ≠ 1: ((1/β)^(q−1) − (1/n)^(q−1)) / (1 − (1/n)^(q−1))
//	q = 1: 1 − ln β / ln n
//
// The raw value is returned; see Bound for the [0,1] policy.
func LocalSimilarity(beta float64, n int, q float64) float64 {
	if q == 1 {
		return 1 - math.Log(beta)/math.Log(float64(n))
	}
	inv := 1 / float64(n)

	return (math.Pow(1/beta, q-1) - math.Pow(inv, q-1)) / (1 - math.Pow(inv, q-1))
}

// RegionSimilarity returns the regional overlap transform of beta for n sites:
//
//	q ≠ 1: ((1/β)^(1−q) − (1/n)^(1−q)) / (1 − (1/n)^(1−q))
//	q = 1: 1 − ln β / ln n
func RegionSimilarity(beta float64, n int, q float64) float64 {
	if q == 1 {
		return 1 - math.Log(beta)/math.Log(float64(n))
	}
	inv := 1 / float64(n)

	return (math.Pow(1/beta, 1-q) - math.Pow(inv, 1-q)) / (1 - math.Pow(inv, 1-q))
}

// Bound applies the [0,1] policy to a similarity value v:
//   - v in [0,1]: returned unchanged;
//   - v within eps outside: snapped to the nearest bound;
//   - otherwise (including NaN): NaN plus a warning describing the raw value.
func Bound(field string, v, eps float64, detail string) (float64, *hilldiv.Warning) {
	switch {
	case v >= 0 && v <= 1:
		return v, nil
	case v < 0 && v >= -eps:
		return 0, nil
	case v > 1 && v <= 1+eps:
		return 1, nil
	}

	return math.NaN(), &hilldiv.Warning{
		Kind:   hilldiv.ErrDegenerateResult,
		Field:  field,
		Value:  v,
		Detail: detail,
	}
}

func detailOf(q float64, n int) string {
	return fmt.Sprintf("q=%g sites=%d", q, n)
}
