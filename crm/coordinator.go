// Package crm implements the customer-relationship engine: a registry
// that issues identities and owns every customer and representative,
// portfolio-scoped interaction recording, and the report folds over
// recorded interactions.
package crm

import (
	"time"

	"github.com/rs/zerolog"

	"crm-tracker/errors"
	"crm-tracker/metrics"
	"crm-tracker/models"
)

// Coordinator is the authoritative registry. Customers live in an arena
// keyed by id; representatives reference them by id only. Identity
// counters start at 1 and are never reused.
type Coordinator struct {
	customers     map[int]*models.Customer
	customerOrder []int
	reps          map[int]*models.SalesRep
	repOrder      []int

	nextCustomerID int
	nextRepID      int

	now func() time.Time
	log zerolog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock overrides the time source used to stamp interactions.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithLogger sets the logger that receives operation outcomes.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Coordinator) { c.log = log }
}

// New returns an empty Coordinator. Without options it stamps
// interactions with time.Now and discards log output.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		customers:      make(map[int]*models.Customer),
		reps:           make(map[int]*models.SalesRep),
		nextCustomerID: 1,
		nextRepID:      1,
		now:            time.Now,
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateRegularCustomer registers a regular customer under the next id.
func (c *Coordinator) CreateRegularCustomer(name, email, phone, segment string) *models.Customer {
	return c.register(&models.Customer{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Kind:    models.CustomerRegular,
		Regular: &models.RegularProfile{Segment: segment},
	})
}

// CreateVIPCustomer registers a VIP customer under the next id. The
// loyalty balance starts at zero.
func (c *Coordinator) CreateVIPCustomer(name, email, phone, accountManager string) *models.Customer {
	return c.register(&models.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
		Kind:  models.CustomerVIP,
		VIP:   &models.VIPProfile{AccountManager: accountManager},
	})
}

// CreateCorporateCustomer registers a corporate customer under the next id.
func (c *Coordinator) CreateCorporateCustomer(name, email, phone, company string, employees int, annualContract float64) *models.Customer {
	return c.register(&models.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
		Kind:  models.CustomerCorporate,
		Corporate: &models.CorporateProfile{
			CompanyName:    company,
			Employees:      employees,
			AnnualContract: annualContract,
		},
	})
}

func (c *Coordinator) register(cust *models.Customer) *models.Customer {
	cust.ID = c.nextCustomerID
	c.nextCustomerID++
	c.customers[cust.ID] = cust
	c.customerOrder = append(c.customerOrder, cust.ID)

	metrics.CustomersCreatedTotal.WithLabelValues(string(cust.Kind)).Inc()
	metrics.CustomersRegistered.Set(float64(len(c.customers)))
	c.log.Info().
		Int("customer_id", cust.ID).
		Str("kind", string(cust.Kind)).
		Str("name", cust.Name).
		Msg("customer created")
	return cust
}

// CreateSalesRep registers a representative under the next rep id.
func (c *Coordinator) CreateSalesRep(name string) *models.SalesRep {
	rep := &models.SalesRep{
		ID:   c.nextRepID,
		Name: name,
	}
	c.nextRepID++
	c.reps[rep.ID] = rep
	c.repOrder = append(c.repOrder, rep.ID)

	metrics.RepsCreatedTotal.Inc()
	metrics.RepsRegistered.Set(float64(len(c.reps)))
	c.log.Info().
		Int("rep_id", rep.ID).
		Str("name", rep.Name).
		Msg("sales rep created")
	return rep
}

// AssignCustomerToRep adds the customer's id to the representative's
// portfolio. Both ids must resolve against the registry; assigning the
// same pair twice stores a second reference.
func (c *Coordinator) AssignCustomerToRep(customerID, repID int) error {
	cust, ok := c.customers[customerID]
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("assign").Inc()
		c.log.Warn().Int("customer_id", customerID).Msg("assignment failed, customer not found")
		return &errors.NotFoundError{Scope: "registry", ID: customerID, Err: errors.ErrCustomerNotFound}
	}
	rep, ok := c.reps[repID]
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("assign").Inc()
		c.log.Warn().Int("rep_id", repID).Msg("assignment failed, rep not found")
		return &errors.NotFoundError{Scope: "registry", ID: repID, Err: errors.ErrRepNotFound}
	}

	rep.CustomerIDs = append(rep.CustomerIDs, cust.ID)
	metrics.AssignmentsTotal.Inc()
	c.log.Info().
		Int("customer_id", cust.ID).
		Int("rep_id", rep.ID).
		Str("customer", cust.Name).
		Str("rep", rep.Name).
		Msg("customer assigned to rep")
	return nil
}

// Customer resolves an id against the full registry.
func (c *Coordinator) Customer(id int) (*models.Customer, bool) {
	cust, ok := c.customers[id]
	return cust, ok
}

// Customers returns every registered customer in creation order.
func (c *Coordinator) Customers() []*models.Customer {
	out := make([]*models.Customer, 0, len(c.customerOrder))
	for _, id := range c.customerOrder {
		out = append(out, c.customers[id])
	}
	return out
}

// Reps returns every registered representative in creation order.
func (c *Coordinator) Reps() []*models.SalesRep {
	out := make([]*models.SalesRep, 0, len(c.repOrder))
	for _, id := range c.repOrder {
		out = append(out, c.reps[id])
	}
	return out
}

// RenewContract replaces a corporate customer's contract amount and
// returns the old and new values. The amount is stored as given.
func (c *Coordinator) RenewContract(customerID int, newAmount float64) (oldAmount, currentAmount float64, err error) {
	cust, ok := c.customers[customerID]
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("renew").Inc()
		c.log.Warn().Int("customer_id", customerID).Msg("renewal failed, customer not found")
		return 0, 0, &errors.NotFoundError{Scope: "registry", ID: customerID, Err: errors.ErrCustomerNotFound}
	}
	if cust.Kind != models.CustomerCorporate {
		c.log.Warn().Int("customer_id", customerID).Str("kind", string(cust.Kind)).Msg("renewal failed, not a corporate customer")
		return 0, 0, errors.ErrNotCorporate
	}

	old := cust.Corporate.RenewContract(newAmount)
	c.log.Info().
		Int("customer_id", cust.ID).
		Str("company", cust.Corporate.CompanyName).
		Float64("old_amount", old).
		Float64("new_amount", newAmount).
		Msg("contract renewed")
	return old, newAmount, nil
}
