package models

import (
	"fmt"
	"time"
)

// InteractionKind identifies the concrete interaction variant.
type InteractionKind string

const (
	InteractionCall    InteractionKind = "Call"
	InteractionEmail   InteractionKind = "Email"
	InteractionMeeting InteractionKind = "Meeting"
)

// Interaction is an immutable record of one customer contact event.
// The kind tag is fixed at construction; duration is meaningful for
// calls and meetings, subject for emails, location for meetings.
type Interaction struct {
	Kind            InteractionKind
	OccurredAt      time.Time
	Content         string
	DurationMinutes int
	Subject         string
	Location        string
}

// NewCall builds a call record stamped at the given instant.
func NewCall(at time.Time, content string, durationMinutes int) Interaction {
	return Interaction{
		Kind:            InteractionCall,
		OccurredAt:      at,
		Content:         content,
		DurationMinutes: durationMinutes,
	}
}

// NewEmail builds an email record stamped at the given instant.
func NewEmail(at time.Time, content, subject string) Interaction {
	return Interaction{
		Kind:       InteractionEmail,
		OccurredAt: at,
		Content:    content,
		Subject:    subject,
	}
}

// NewMeeting builds a meeting record stamped at the given instant.
func NewMeeting(at time.Time, content, location string, durationMinutes int) Interaction {
	return Interaction{
		Kind:            InteractionMeeting,
		OccurredAt:      at,
		Content:         content,
		Location:        location,
		DurationMinutes: durationMinutes,
	}
}

const timestampLayout = "2006-01-02 15:04:05"

// Describe renders the interaction as a single human-readable line.
func (i Interaction) Describe() string {
	ts := i.OccurredAt.Format(timestampLayout)
	switch i.Kind {
	case InteractionCall:
		return fmt.Sprintf("Call on %s (Duration: %d minutes): %s", ts, i.DurationMinutes, i.Content)
	case InteractionEmail:
		return fmt.Sprintf("Email on %s (Subject: %s): %s", ts, i.Subject, i.Content)
	case InteractionMeeting:
		return fmt.Sprintf("Meeting on %s at %s (Duration: %d minutes): %s", ts, i.Location, i.DurationMinutes, i.Content)
	default:
		return fmt.Sprintf("Interaction on %s: %s", ts, i.Content)
	}
}

// CustomerKind identifies the concrete customer variant.
type CustomerKind string

const (
	CustomerRegular   CustomerKind = "Regular"
	CustomerVIP       CustomerKind = "VIP"
	CustomerCorporate CustomerKind = "Corporate"
)

// RegularProfile carries the fields specific to regular customers.
type RegularProfile struct {
	Segment string
}

// VIPProfile carries the fields specific to VIP customers. The loyalty
// balance starts at zero and only grows through AddLoyaltyPoints.
type VIPProfile struct {
	AccountManager string
	LoyaltyPoints  float64
}

// AddLoyaltyPoints credits the balance and returns the new total.
func (p *VIPProfile) AddLoyaltyPoints(points float64) float64 {
	p.LoyaltyPoints += points
	return p.LoyaltyPoints
}

// CorporateProfile carries the fields specific to corporate customers.
type CorporateProfile struct {
	CompanyName    string
	Employees      int
	AnnualContract float64
}

// RenewContract replaces the contract amount unconditionally and
// returns the previous amount. The new amount is not validated.
func (p *CorporateProfile) RenewContract(newAmount float64) (old float64) {
	old = p.AnnualContract
	p.AnnualContract = newAmount
	return old
}

// Customer is a tracked business contact: a shared base record plus
// exactly one kind-specific profile matching the Kind tag. The
// interaction log is append-only and kept in recording order.
type Customer struct {
	ID           int
	Name         string
	Email        string
	Phone        string
	Kind         CustomerKind
	Interactions []Interaction

	Regular   *RegularProfile
	VIP       *VIPProfile
	Corporate *CorporateProfile
}

// AddInteraction appends one record to the customer's log.
func (c *Customer) AddInteraction(in Interaction) {
	c.Interactions = append(c.Interactions, in)
}

// BaseInteractionMinutes sums call and meeting durations across the
// log. Emails contribute nothing.
func (c *Customer) BaseInteractionMinutes() int {
	total := 0
	for _, in := range c.Interactions {
		switch in.Kind {
		case InteractionCall, InteractionMeeting:
			total += in.DurationMinutes
		}
	}
	return total
}

// TotalInteractionMinutes is the kind-specific reporting aggregate:
// regular customers report the base sum, VIPs report it scaled by 1.2,
// corporate customers scale by a tier keyed on headcount (>1000 gets
// 1.5, >100 gets 1.3). Scaled results truncate toward zero.
func (c *Customer) TotalInteractionMinutes() int {
	base := c.BaseInteractionMinutes()
	switch c.Kind {
	case CustomerVIP:
		return int(float64(base) * 1.2)
	case CustomerCorporate:
		multiplier := 1.0
		if c.Corporate.Employees > 1000 {
			multiplier = 1.5
		} else if c.Corporate.Employees > 100 {
			multiplier = 1.3
		}
		return int(float64(base) * multiplier)
	default:
		return base
	}
}

// SpecificAction describes the kind-specific follow-up the business
// takes for this customer. Pure observation, no state change.
func (c *Customer) SpecificAction() string {
	switch c.Kind {
	case CustomerVIP:
		return fmt.Sprintf("Scheduling quarterly review with %s and account manager %s", c.Name, c.VIP.AccountManager)
	case CustomerCorporate:
		return fmt.Sprintf("Arranging corporate training session for %s with %d potential users", c.Corporate.CompanyName, c.Corporate.Employees)
	default:
		return fmt.Sprintf("Sending regular promotional materials to %s in segment %s", c.Name, c.Regular.Segment)
	}
}

// Loyalty exposes the loyalty-points sink when the customer has one.
// Only VIP customers do; every other kind returns nil.
func (c *Customer) Loyalty() *VIPProfile {
	if c.Kind == CustomerVIP {
		return c.VIP
	}
	return nil
}

// SalesRep is an agent holding a portfolio of customer identities in
// assignment order. The portfolio references customers owned by the
// coordinator; duplicate assignments are kept as duplicate entries.
type SalesRep struct {
	ID          int
	Name        string
	CustomerIDs []int
}

// CustomerSummary is one customer directory row in a report.
type CustomerSummary struct {
	ID   int
	Name string
	Kind CustomerKind
}

// RepSummary is one representative directory row in a report.
type RepSummary struct {
	ID        int
	Name      string
	Customers int
}

// CustomerMinutes is one row of a representative's interaction-time
// report.
type CustomerMinutes struct {
	CustomerID int
	Name       string
	Kind       CustomerKind
	Minutes    int
}

// RepReport lists interaction-time totals for one representative's
// portfolio, in assignment order.
type RepReport struct {
	RepID     int
	RepName   string
	Customers []CustomerMinutes
}

// KindCount is a per-kind customer tally.
type KindCount struct {
	Kind  CustomerKind
	Count int
}

// InteractionLog is one customer's full interaction history.
type InteractionLog struct {
	CustomerID   int
	CustomerName string
	Kind         CustomerKind
	Entries      []Interaction
}

// SystemReport is the system-wide aggregate: customer counts grouped by
// kind in ascending kind-label order, the minute total across all
// customers, and entity totals.
type SystemReport struct {
	TotalCustomers          int
	TotalReps               int
	CountsByKind            []KindCount
	TotalInteractionMinutes int
}

// Report bundles everything one reporting pass produces.
type Report struct {
	Customers  []CustomerSummary
	Reps       []RepSummary
	RepReports []RepReport
	Logs       []InteractionLog
	System     SystemReport
}
