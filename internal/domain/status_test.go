package domain

import "testing"

func TestOrderStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range allowedStatuses {
		if !s.Valid() {
			t.Fatalf("status %q must be valid", s)
		}
	}
	if OrderStatus("SHIPPED").Valid() {
		t.Fatal("unknown status must be invalid")
	}
	if OrderStatus("pending").Valid() {
		t.Fatal("status matching is case-sensitive")
	}
}

func TestOrderStatus_CanTransition_ForwardFlow(t *testing.T) {
	t.Parallel()

	flow := []OrderStatus{
		StatusPending, StatusAccepted, StatusPickedUp,
		StatusInTransit, StatusOutForDelivery, StatusDelivered,
	}
	for i := 0; i < len(flow)-1; i++ {
		if !flow[i].CanTransition(flow[i+1]) {
			t.Fatalf("%s -> %s must be allowed", flow[i], flow[i+1])
		}
	}
}

func TestOrderStatus_CanTransition_NoSkipping(t *testing.T) {
	t.Parallel()

	cases := []struct{ from, to OrderStatus }{
		{StatusPending, StatusPickedUp},
		{StatusPending, StatusDelivered},
		{StatusAccepted, StatusInTransit},
		{StatusPickedUp, StatusDelivered},
		{StatusInTransit, StatusAccepted},
	}
	for _, c := range cases {
		if c.from.CanTransition(c.to) {
			t.Fatalf("%s -> %s must be rejected", c.from, c.to)
		}
	}
}

func TestOrderStatus_CanTransition_TerminalAlternatives(t *testing.T) {
	t.Parallel()

	nonTerminal := []OrderStatus{
		StatusPending, StatusAccepted, StatusPickedUp,
		StatusInTransit, StatusOutForDelivery,
	}
	for _, from := range nonTerminal {
		if !from.CanTransition(StatusCancelled) {
			t.Fatalf("%s -> CANCELLED must be allowed", from)
		}
		if !from.CanTransition(StatusFailedDelivery) {
			t.Fatalf("%s -> FAILED_DELIVERY must be allowed", from)
		}
	}
}

func TestOrderStatus_CanTransition_TerminalIsFinal(t *testing.T) {
	t.Parallel()

	for _, from := range []OrderStatus{StatusDelivered, StatusCancelled, StatusFailedDelivery} {
		for _, to := range allowedStatuses {
			if from.CanTransition(to) {
				t.Fatalf("terminal %s must not transition to %s", from, to)
			}
		}
	}
}

func TestOrderStatus_CanTransition_SelfRejected(t *testing.T) {
	t.Parallel()

	for _, s := range allowedStatuses {
		if s.CanTransition(s) {
			t.Fatalf("%s -> %s must be rejected", s, s)
		}
	}
}

func TestEnums_Valid(t *testing.T) {
	t.Parallel()

	if !PriorityExpress.Valid() || PriorityLevel("OVERNIGHT").Valid() {
		t.Fatal("priority validation broken")
	}
	if !PackageEnvelope.Valid() || PackageType("BOX").Valid() {
		t.Fatal("package type validation broken")
	}
	if !RoleCourier.Valid() || UserRole("GUEST").Valid() {
		t.Fatal("role validation broken")
	}
}

func TestPricingRule_Estimate(t *testing.T) {
	t.Parallel()

	perKg := 0.5
	rule := PricingRule{
		BasePrice:          5,
		PricePerKm:         2,
		PricePerKg:         &perKg,
		PriorityMultiplier: 1.0,
	}

	// 5 + 2*10 + 0.5*4 = 27
	got := rule.Estimate(4, 10, PriorityStandard)
	if got != 27 {
		t.Fatalf("expected 27, got %v", got)
	}

	// SAME_DAY doubles
	got = rule.Estimate(4, 10, PrioritySameDay)
	if got != 54 {
		t.Fatalf("expected 54, got %v", got)
	}

	rule.PricePerKg = nil
	got = rule.Estimate(4, 10, PriorityStandard)
	if got != 25 {
		t.Fatalf("expected 25 without per-kg rate, got %v", got)
	}
}
