package enums

import "fmt"

// TrustLevel bands a lead's 0-100 trust score.
type TrustLevel string

const (
	TrustLevelLow    TrustLevel = "low"
	TrustLevelMedium TrustLevel = "medium"
	TrustLevelHigh   TrustLevel = "high"
)

var validTrustLevels = []TrustLevel{
	TrustLevelLow,
	TrustLevelMedium,
	TrustLevelHigh,
}

// String implements fmt.Stringer.
func (t TrustLevel) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TrustLevel.
func (t TrustLevel) IsValid() bool {
	for _, candidate := range validTrustLevels {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTrustLevel converts raw input into a TrustLevel.
func ParseTrustLevel(value string) (TrustLevel, error) {
	for _, candidate := range validTrustLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid trust level %q", value)
}

// TrustLevelForScore bands a trust score. Convention: a score of exactly 75
// is high, a score of exactly 40 is low.
func TrustLevelForScore(score int) TrustLevel {
	switch {
	case score >= 75:
		return TrustLevelHigh
	case score > 40:
		return TrustLevelMedium
	default:
		return TrustLevelLow
	}
}
