package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCoupon(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		kind CouponKind
	}{
		{"SAVE10", true, CouponPercentage},
		{"  save10 ", true, CouponPercentage},
		{"Welcome20", true, CouponPercentage},
		{"flat5", true, CouponFixed},
		{"FREESHIP", false, ""},
		{"", false, ""},
	}
	for _, tc := range cases {
		c, ok := LookupCoupon(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.kind, c.Kind, tc.in)
	}
}
