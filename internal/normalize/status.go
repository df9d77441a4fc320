package normalize

import (
	"strings"

	"github.com/sells-group/litigation-cli/internal/model"
)

// NormalizeStatus buckets a free-text litigation status. Rules are plain
// substring checks applied in priority order; the first match wins. Note
// that "pending" anywhere in the text (e.g. "stayed pending arbitration")
// classifies as Pending.
func NormalizeStatus(text string) model.StatusGroup {
	s := strings.ToLower(text)
	has := func(sub string) bool { return strings.Contains(s, sub) }

	switch {
	case has("settled"):
		return model.StatusSettled
	case has("pending"):
		return model.StatusPending
	case has("dismissed") && has("without"):
		return model.StatusDismissedWithoutPrej
	case has("dismissed"):
		return model.StatusDismissed
	case has("voluntarily"):
		return model.StatusVoluntarilyDismissed
	case has("motion") && has("denied"):
		return model.StatusMTDDenied
	case has("motion") && has("granted"):
		return model.StatusMTDGranted
	case has("appeal"):
		return model.StatusOnAppeal
	case has("class") && has("certified"):
		return model.StatusClassCertified
	case s == "" || s == "nan" || has("unknown"):
		return model.StatusUnknown
	default:
		return model.StatusOther
	}
}

// StatusBadge picks the badge shown next to a raw status string.
func StatusBadge(text string) model.BadgeKind {
	s := strings.ToLower(text)
	switch {
	case strings.Contains(s, "settled"):
		return model.BadgeSettled
	case strings.Contains(s, "pending"):
		return model.BadgePending
	case strings.Contains(s, "dismissed"):
		return model.BadgeDismissed
	default:
		return model.BadgeOther
	}
}
