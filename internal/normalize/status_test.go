package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/litigation-cli/internal/model"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want model.StatusGroup
	}{
		{"Case settled for $5M", model.StatusSettled},
		{"Dismissed without prejudice", model.StatusDismissedWithoutPrej},
		{"Dismissed with prejudice", model.StatusDismissed},
		{"Motion to dismiss denied", model.StatusMTDDenied},
		{"Motion to dismiss granted in part", model.StatusMTDGranted},
		{"Voluntarily withdrawn by plaintiff", model.StatusVoluntarilyDismissed},
		{"Voluntarily dismissed", model.StatusDismissed},
		{"On appeal to the Ninth Circuit", model.StatusOnAppeal},
		{"Class certified", model.StatusClassCertified},
		{"", model.StatusUnknown},
		{"nan", model.StatusUnknown},
		{"Status unknown", model.StatusUnknown},
		{"Closed", model.StatusOther},
		// Keyword matching is literal: any "pending" wins.
		{"Stayed pending arbitration", model.StatusPending},
		{"Appeal pending", model.StatusPending},
		// "settled" outranks everything else.
		{"Settled after motion to dismiss denied", model.StatusSettled},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := NormalizeStatus(tc.in)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		in   string
		want model.BadgeKind
	}{
		{"Settled ($2M)", model.BadgeSettled},
		{"Pending", model.BadgePending},
		{"Dismissed without prejudice", model.BadgeDismissed},
		{"Motion to dismiss denied", model.BadgeOther},
		{"", model.BadgeOther},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusBadge(tc.in))
		})
	}
}
