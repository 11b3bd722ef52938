package enums

import "testing"

func TestTrustLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		want  TrustLevel
	}{
		{score: 100, want: TrustLevelHigh},
		{score: 80, want: TrustLevelHigh},
		{score: 75, want: TrustLevelHigh},
		{score: 74, want: TrustLevelMedium},
		{score: 50, want: TrustLevelMedium},
		{score: 41, want: TrustLevelMedium},
		{score: 40, want: TrustLevelLow},
		{score: 30, want: TrustLevelLow},
		{score: 0, want: TrustLevelLow},
	}
	for _, tc := range cases {
		if got := TrustLevelForScore(tc.score); got != tc.want {
			t.Fatalf("TrustLevelForScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestRepairTransitions(t *testing.T) {
	allowed := []struct{ from, to RepairStatus }{
		{RepairStatusReceived, RepairStatusChecking},
		{RepairStatusChecking, RepairStatusQuotation},
		{RepairStatusQuotation, RepairStatusRepairing},
		{RepairStatusQuotation, RepairStatusWaitingParts},
		{RepairStatusWaitingParts, RepairStatusRepairing},
		{RepairStatusRepairing, RepairStatusDone},
		{RepairStatusDone, RepairStatusDelivered},
		{RepairStatusReceived, RepairStatusCancelled},
		{RepairStatusDone, RepairStatusCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to RepairStatus }{
		{RepairStatusReceived, RepairStatusDone},
		{RepairStatusDelivered, RepairStatusRepairing},
		{RepairStatusCancelled, RepairStatusReceived},
		{RepairStatusDone, RepairStatusChecking},
	}
	for _, tc := range forbidden {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}

	if !RepairStatusDelivered.IsTerminal() || !RepairStatusCancelled.IsTerminal() {
		t.Fatal("DELIVERED and CANCELLED must be terminal")
	}
	if RepairStatusDone.IsTerminal() {
		t.Fatal("DONE is not terminal")
	}
}

func TestParseRoundTrips(t *testing.T) {
	if _, err := ParseItemStatus("available"); err != nil {
		t.Fatalf("ParseItemStatus: %v", err)
	}
	if _, err := ParseItemStatus("missing"); err == nil {
		t.Fatal("expected error for unknown item status")
	}
	if _, err := ParseLeadStatus("checked"); err != nil {
		t.Fatalf("ParseLeadStatus: %v", err)
	}
	if _, err := ParseMovementType("OUT"); err != nil {
		t.Fatalf("ParseMovementType: %v", err)
	}
	if _, err := ParseMovementType("out"); err == nil {
		t.Fatal("movement types are case-sensitive")
	}
	if _, err := ParsePaymentMethod("QR"); err != nil {
		t.Fatalf("ParsePaymentMethod: %v", err)
	}
	if _, err := ParseRepairStatus("WAITING_PARTS"); err != nil {
		t.Fatalf("ParseRepairStatus: %v", err)
	}
	if _, err := ParseSupportStatus("WAITING_CUSTOMER"); err != nil {
		t.Fatalf("ParseSupportStatus: %v", err)
	}
}
