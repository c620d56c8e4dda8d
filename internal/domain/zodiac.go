package domain

import "math"

// The twelve zodiac signs in ecliptic order, starting at 0° Aries.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// A point on the ecliptic expressed both as an absolute longitude
// and as a sign plus degrees within that sign.
type ZodiacPosition struct {
	Longitude    float64
	Sign         string
	DegreeInSign float64
}

// PositionFromLongitude maps an ecliptic longitude in degrees to its
// zodiac sign and in-sign degree. The input may be any finite value;
// it is reduced into [0, 360) first. Each sign spans exactly 30°.
func PositionFromLongitude(deg float64) ZodiacPosition {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}

	idx := int(deg / 30.0)
	// Guard against float rounding pushing 359.999... over the edge.
	if idx > 11 {
		idx = 11
	}

	return ZodiacPosition{
		Longitude:    deg,
		Sign:         SignNames[idx],
		DegreeInSign: deg - float64(idx)*30.0,
	}
}
