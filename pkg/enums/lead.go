package enums

import "fmt"

// LeadType categorizes a classified-ad lead.
type LeadType string

const (
	LeadTypeMoto     LeadType = "moto"
	LeadTypeParts    LeadType = "parts"
	LeadTypeWanted   LeadType = "wanted"
	LeadTypeExchange LeadType = "exchange"
)

var validLeadTypes = []LeadType{
	LeadTypeMoto,
	LeadTypeParts,
	LeadTypeWanted,
	LeadTypeExchange,
}

// String implements fmt.Stringer.
func (t LeadType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known LeadType.
func (t LeadType) IsValid() bool {
	for _, candidate := range validLeadTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseLeadType converts raw input into a LeadType.
func ParseLeadType(value string) (LeadType, error) {
	for _, candidate := range validLeadTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead type %q", value)
}

// LeadStatus tracks triage progress of a lead.
// Allowed transitions: new -> checked -> imported, and any -> ignored.
type LeadStatus string

const (
	LeadStatusNew      LeadStatus = "new"
	LeadStatusChecked  LeadStatus = "checked"
	LeadStatusImported LeadStatus = "imported"
	LeadStatusIgnored  LeadStatus = "ignored"
)

var validLeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusChecked,
	LeadStatusImported,
	LeadStatusIgnored,
}

// String implements fmt.Stringer.
func (s LeadStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LeadStatus.
func (s LeadStatus) IsValid() bool {
	for _, candidate := range validLeadStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLeadStatus converts raw input into a LeadStatus.
func ParseLeadStatus(value string) (LeadStatus, error) {
	for _, candidate := range validLeadStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead status %q", value)
}
