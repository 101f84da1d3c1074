package models

// OpKind identifies one scripted CRM operation.
type OpKind string

const (
	OpCreateCustomer OpKind = "customer"
	OpCreateRep      OpKind = "rep"
	OpAssign         OpKind = "assign"
	OpRecordCall     OpKind = "call"
	OpRecordEmail    OpKind = "email"
	OpRecordMeeting  OpKind = "meeting"
	OpRenewContract  OpKind = "renew"
)

// ScenarioOp is one parsed row of a scenario file. Only the fields
// relevant to Kind are populated.
type ScenarioOp struct {
	Kind OpKind

	// customer / rep creation
	Customer       CustomerKind
	Name           string
	Email          string
	Phone          string
	Segment        string
	AccountManager string
	Company        string
	Employees      int
	Contract       float64

	// assignment, recording and renewal targets
	CustomerID int
	RepID      int

	// interaction payload
	Content         string
	Subject         string
	Location        string
	DurationMinutes int

	// contract renewal
	Amount float64
}
