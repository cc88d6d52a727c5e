package contribution

import (
	"errors"
	"testing"
	"time"
)

func TestContribution_Approve(t *testing.T) {
	c := &Contribution{Status: StatusPending}
	at := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	if err := c.Approve("a1", at); err != nil {
		t.Fatalf("Approve err: %v", err)
	}
	if c.Status != StatusApproved || c.ApprovedBy != "a1" {
		t.Fatalf("contribution=%+v", c)
	}
	if c.ApprovedAt == nil || !c.ApprovedAt.Equal(at) {
		t.Fatal("approved_at not recorded")
	}
	// terminal rows are immutable
	if err := c.Approve("a2", at); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("want ErrInvalidState, got %v", err)
	}
}

func TestContribution_Reject_AppendsReason(t *testing.T) {
	at := time.Now().UTC()

	c := &Contribution{Status: StatusPending, Description: "monthly deposit"}
	if err := c.Reject("a1", "duplicate entry", at); err != nil {
		t.Fatalf("Reject err: %v", err)
	}
	if want := "monthly deposit | rejection reason: duplicate entry"; c.Description != want {
		t.Fatalf("description=%q", c.Description)
	}

	// empty original description
	c2 := &Contribution{Status: StatusPending}
	if err := c2.Reject("a1", "duplicate entry", at); err != nil {
		t.Fatalf("Reject err: %v", err)
	}
	if want := "rejection reason: duplicate entry"; c2.Description != want {
		t.Fatalf("description=%q", c2.Description)
	}

	// no reason given leaves the description alone
	c3 := &Contribution{Status: StatusPending, Description: "d"}
	if err := c3.Reject("a1", "", at); err != nil {
		t.Fatalf("Reject err: %v", err)
	}
	if c3.Description != "d" {
		t.Fatalf("description=%q", c3.Description)
	}
}

func TestContribution_RejectApproved(t *testing.T) {
	c := &Contribution{Status: StatusApproved}
	if err := c.Reject("a1", "late", time.Now().UTC()); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("want ErrInvalidState, got %v", err)
	}
}
