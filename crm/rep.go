package crm

import (
	"fmt"

	"crm-tracker/errors"
	"crm-tracker/metrics"
	"crm-tracker/models"
)

// Loyalty credits applied when recording against a VIP customer.
const (
	loyaltyPerCallMinute    = 0.5
	loyaltyPerEmail         = 10
	loyaltyPerMeetingMinute = 2
)

// Rep is a handle scoped to one representative's portfolio. Recording
// and viewing operations resolve customer ids against the portfolio
// only, never the full registry.
type Rep struct {
	coord *Coordinator
	rep   *models.SalesRep
}

// Rep returns a portfolio-scoped handle for the given representative.
func (c *Coordinator) Rep(repID int) (*Rep, error) {
	rep, ok := c.reps[repID]
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("rep_lookup").Inc()
		return nil, &errors.NotFoundError{Scope: "registry", ID: repID, Err: errors.ErrRepNotFound}
	}
	return &Rep{coord: c, rep: rep}, nil
}

// ID returns the representative's identity.
func (r *Rep) ID() int { return r.rep.ID }

// Name returns the representative's name.
func (r *Rep) Name() string { return r.rep.Name }

// RecordResult reports the outcome of a successful recording. The
// loyalty fields are only set when the customer exposed a loyalty sink.
type RecordResult struct {
	Customer       *models.Customer
	LoyaltyAwarded float64
	LoyaltyTotal   float64
}

func (r *Rep) findCustomer(customerID int) *models.Customer {
	for _, id := range r.rep.CustomerIDs {
		if id == customerID {
			return r.coord.customers[id]
		}
	}
	return nil
}

// RecordCall records a call against a customer in this portfolio.
func (r *Rep) RecordCall(customerID int, content string, durationMinutes int) (*RecordResult, error) {
	in := models.NewCall(r.coord.now(), content, durationMinutes)
	return r.record(customerID, in, float64(durationMinutes)*loyaltyPerCallMinute)
}

// RecordEmail records an email against a customer in this portfolio.
func (r *Rep) RecordEmail(customerID int, content, subject string) (*RecordResult, error) {
	in := models.NewEmail(r.coord.now(), content, subject)
	return r.record(customerID, in, loyaltyPerEmail)
}

// RecordMeeting records a meeting against a customer in this portfolio.
func (r *Rep) RecordMeeting(customerID int, content, location string, durationMinutes int) (*RecordResult, error) {
	in := models.NewMeeting(r.coord.now(), content, location, durationMinutes)
	return r.record(customerID, in, float64(durationMinutes)*loyaltyPerMeetingMinute)
}

func (r *Rep) record(customerID int, in models.Interaction, credit float64) (*RecordResult, error) {
	cust := r.findCustomer(customerID)
	if cust == nil {
		metrics.NotFoundTotal.WithLabelValues("record").Inc()
		r.coord.log.Warn().
			Int("customer_id", customerID).
			Int("rep_id", r.rep.ID).
			Str("kind", string(in.Kind)).
			Msg("recording failed, customer not in portfolio")
		return nil, &errors.NotFoundError{
			Scope: fmt.Sprintf("portfolio of rep %d", r.rep.ID),
			ID:    customerID,
			Err:   errors.ErrCustomerNotFound,
		}
	}

	cust.AddInteraction(in)
	metrics.InteractionsRecordedTotal.WithLabelValues(string(in.Kind)).Inc()
	r.coord.log.Info().
		Int("customer_id", cust.ID).
		Int("rep_id", r.rep.ID).
		Str("kind", string(in.Kind)).
		Str("customer", cust.Name).
		Msg("interaction recorded")

	res := &RecordResult{Customer: cust}
	if loyalty := cust.Loyalty(); loyalty != nil {
		res.LoyaltyAwarded = credit
		res.LoyaltyTotal = loyalty.AddLoyaltyPoints(credit)
		metrics.LoyaltyPointsAwardedTotal.Add(credit)
		r.coord.log.Info().
			Int("customer_id", cust.ID).
			Float64("points", credit).
			Float64("total", res.LoyaltyTotal).
			Msg("loyalty points added")
	}
	return res, nil
}

// PerformCustomerActions runs the kind-specific action for every
// customer in the portfolio, in assignment order, and returns the
// action descriptions.
func (r *Rep) PerformCustomerActions() []string {
	actions := make([]string, 0, len(r.rep.CustomerIDs))
	for _, id := range r.rep.CustomerIDs {
		cust := r.coord.customers[id]
		msg := cust.SpecificAction()
		r.coord.log.Info().Int("customer_id", cust.ID).Msg(msg)
		actions = append(actions, msg)
	}
	return actions
}

// InteractionTimeReport computes total interaction minutes for every
// customer in the portfolio, in assignment order. Pure read.
func (r *Rep) InteractionTimeReport() models.RepReport {
	report := models.RepReport{
		RepID:   r.rep.ID,
		RepName: r.rep.Name,
	}
	for _, id := range r.rep.CustomerIDs {
		cust := r.coord.customers[id]
		report.Customers = append(report.Customers, models.CustomerMinutes{
			CustomerID: cust.ID,
			Name:       cust.Name,
			Kind:       cust.Kind,
			Minutes:    cust.TotalInteractionMinutes(),
		})
	}
	return report
}

// CustomerInteractions returns the full interaction history of one
// customer in this portfolio.
func (r *Rep) CustomerInteractions(customerID int) (models.InteractionLog, error) {
	cust := r.findCustomer(customerID)
	if cust == nil {
		metrics.NotFoundTotal.WithLabelValues("view").Inc()
		return models.InteractionLog{}, &errors.NotFoundError{
			Scope: fmt.Sprintf("portfolio of rep %d", r.rep.ID),
			ID:    customerID,
			Err:   errors.ErrCustomerNotFound,
		}
	}
	return models.InteractionLog{
		CustomerID:   cust.ID,
		CustomerName: cust.Name,
		Kind:         cust.Kind,
		Entries:      cust.Interactions,
	}, nil
}

// Portfolio lists the assigned customers in assignment order,
// duplicates included.
func (r *Rep) Portfolio() []models.CustomerSummary {
	out := make([]models.CustomerSummary, 0, len(r.rep.CustomerIDs))
	for _, id := range r.rep.CustomerIDs {
		cust := r.coord.customers[id]
		out = append(out, models.CustomerSummary{ID: cust.ID, Name: cust.Name, Kind: cust.Kind})
	}
	return out
}
