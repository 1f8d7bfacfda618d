package kernel

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingCodeLength is the fixed length of a public order tracking code.
const trackingCodeLength = 8

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not created
// through NewTrackingCode or TrackingCodeFromString.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode or TrackingCodeFromString",
)

// TrackingCode is the short, human-shareable token customers use to follow an
// order. It is generated once at order creation and is immutable thereafter.
// The code is the external lookup key; the internal UUID is never exposed.
//
// A code is 8 uppercase alphanumeric characters derived from a random v4 UUID,
// which gives a high-entropy token that is easy to read back over the counter.
// Collisions are possible at this length; uniqueness is enforced by the
// repository's unique constraint, with regeneration on conflict.
type TrackingCode struct {
	value string
}

// NewTrackingCode generates a fresh random tracking code.
func NewTrackingCode() TrackingCode {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return TrackingCode{value: strings.ToUpper(raw[:trackingCodeLength])}
}

// TrackingCodeFromString parses and validates a tracking code supplied by a
// caller or loaded from persistence. Input is upper-cased before validation,
// so customers may type codes in either case.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking code")
	}
	if len(v) != trackingCodeLength {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code",
			fmt.Errorf("%q is not %d characters long", s, trackingCodeLength),
		)
	}
	for _, r := range v {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
				"tracking code",
				fmt.Errorf("%q contains character %q", s, r),
			)
		}
	}
	return TrackingCode{value: v}, nil
}

// String returns the code as customers see it.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks that the code was created through a constructor.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
