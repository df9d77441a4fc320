package model

import "strings"

// StatusGroup is the fixed bucket a free-text litigation status maps to.
type StatusGroup string

const (
	StatusSettled              StatusGroup = "Settled"
	StatusPending              StatusGroup = "Pending"
	StatusDismissedWithoutPrej StatusGroup = "Dismissed (without prejudice)"
	StatusDismissed            StatusGroup = "Dismissed"
	StatusVoluntarilyDismissed StatusGroup = "Voluntarily Dismissed"
	StatusMTDDenied            StatusGroup = "MTD Denied"
	StatusMTDGranted           StatusGroup = "MTD Granted"
	StatusOnAppeal             StatusGroup = "On Appeal"
	StatusClassCertified       StatusGroup = "Class Certified"
	StatusUnknown              StatusGroup = "Unknown"
	StatusOther                StatusGroup = "Other"
)

// StatusGroups lists every valid status group.
var StatusGroups = []StatusGroup{
	StatusSettled,
	StatusPending,
	StatusDismissedWithoutPrej,
	StatusDismissed,
	StatusVoluntarilyDismissed,
	StatusMTDDenied,
	StatusMTDGranted,
	StatusOnAppeal,
	StatusClassCertified,
	StatusUnknown,
	StatusOther,
}

// Valid reports whether s is a member of the enumeration.
func (s StatusGroup) Valid() bool {
	for _, g := range StatusGroups {
		if g == s {
			return true
		}
	}
	return false
}

// IsDismissal reports whether the group is one of the dismissal outcomes
// counted together on the overview ("Dismissed", "Dismissed (without
// prejudice)", "Voluntarily Dismissed").
func (s StatusGroup) IsDismissal() bool {
	return strings.Contains(string(s), "Dismissed")
}

// BadgeKind is the display category of a raw status string.
type BadgeKind string

const (
	BadgeSettled   BadgeKind = "settled"
	BadgePending   BadgeKind = "pending"
	BadgeDismissed BadgeKind = "dismissed"
	BadgeOther     BadgeKind = "other"
)
