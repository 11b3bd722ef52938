package enums

import "fmt"

// SupportCategory classifies a support desk ticket.
type SupportCategory string

const (
	SupportCategoryRepair   SupportCategory = "REPAIR"
	SupportCategoryVirus    SupportCategory = "VIRUS"
	SupportCategorySoftware SupportCategory = "SOFTWARE"
	SupportCategoryCCTV     SupportCategory = "CCTV"
	SupportCategoryNetwork  SupportCategory = "NETWORK"
	SupportCategoryOther    SupportCategory = "OTHER"
)

var validSupportCategories = []SupportCategory{
	SupportCategoryRepair,
	SupportCategoryVirus,
	SupportCategorySoftware,
	SupportCategoryCCTV,
	SupportCategoryNetwork,
	SupportCategoryOther,
}

// String implements fmt.Stringer.
func (c SupportCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known SupportCategory.
func (c SupportCategory) IsValid() bool {
	for _, candidate := range validSupportCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseSupportCategory converts raw input into a SupportCategory.
func ParseSupportCategory(value string) (SupportCategory, error) {
	for _, candidate := range validSupportCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid support category %q", value)
}

// SupportPriority orders tickets in the queue.
type SupportPriority string

const (
	SupportPriorityLow    SupportPriority = "LOW"
	SupportPriorityMedium SupportPriority = "MEDIUM"
	SupportPriorityHigh   SupportPriority = "HIGH"
)

var validSupportPriorities = []SupportPriority{
	SupportPriorityLow,
	SupportPriorityMedium,
	SupportPriorityHigh,
}

// String implements fmt.Stringer.
func (p SupportPriority) String() string {
	return string(p)
}

// IsValid reports whether the value is a known SupportPriority.
func (p SupportPriority) IsValid() bool {
	for _, candidate := range validSupportPriorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseSupportPriority converts raw input into a SupportPriority.
func ParseSupportPriority(value string) (SupportPriority, error) {
	for _, candidate := range validSupportPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid support priority %q", value)
}

// SupportStatus tracks the support desk lifecycle.
type SupportStatus string

const (
	SupportStatusOpen            SupportStatus = "OPEN"
	SupportStatusInProgress      SupportStatus = "IN_PROGRESS"
	SupportStatusWaitingCustomer SupportStatus = "WAITING_CUSTOMER"
	SupportStatusResolved        SupportStatus = "RESOLVED"
	SupportStatusClosed          SupportStatus = "CLOSED"
)

var validSupportStatuses = []SupportStatus{
	SupportStatusOpen,
	SupportStatusInProgress,
	SupportStatusWaitingCustomer,
	SupportStatusResolved,
	SupportStatusClosed,
}

// String implements fmt.Stringer.
func (s SupportStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SupportStatus.
func (s SupportStatus) IsValid() bool {
	for _, candidate := range validSupportStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSupportStatus converts raw input into a SupportStatus.
func ParseSupportStatus(value string) (SupportStatus, error) {
	for _, candidate := range validSupportStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid support status %q", value)
}

// SenderType identifies which side of a support thread wrote a message.
type SenderType string

const (
	SenderTypeStaff    SenderType = "STAFF"
	SenderTypeCustomer SenderType = "CUSTOMER"
)

var validSenderTypes = []SenderType{
	SenderTypeStaff,
	SenderTypeCustomer,
}

// String implements fmt.Stringer.
func (s SenderType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SenderType.
func (s SenderType) IsValid() bool {
	for _, candidate := range validSenderTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSenderType converts raw input into a SenderType.
func ParseSenderType(value string) (SenderType, error) {
	for _, candidate := range validSenderTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sender type %q", value)
}
