package crm

import "crm-tracker/models"

// Run applies scripted operations in order. Not-found outcomes are
// already logged by the underlying operations and do not stop the
// sequence; subsequent operations proceed normally.
func (c *Coordinator) Run(ops []models.ScenarioOp) {
	for _, op := range ops {
		switch op.Kind {
		case models.OpCreateCustomer:
			switch op.Customer {
			case models.CustomerVIP:
				c.CreateVIPCustomer(op.Name, op.Email, op.Phone, op.AccountManager)
			case models.CustomerCorporate:
				c.CreateCorporateCustomer(op.Name, op.Email, op.Phone, op.Company, op.Employees, op.Contract)
			default:
				c.CreateRegularCustomer(op.Name, op.Email, op.Phone, op.Segment)
			}
		case models.OpCreateRep:
			c.CreateSalesRep(op.Name)
		case models.OpAssign:
			_ = c.AssignCustomerToRep(op.CustomerID, op.RepID)
		case models.OpRecordCall, models.OpRecordEmail, models.OpRecordMeeting:
			rep, err := c.Rep(op.RepID)
			if err != nil {
				continue
			}
			switch op.Kind {
			case models.OpRecordCall:
				_, _ = rep.RecordCall(op.CustomerID, op.Content, op.DurationMinutes)
			case models.OpRecordEmail:
				_, _ = rep.RecordEmail(op.CustomerID, op.Content, op.Subject)
			case models.OpRecordMeeting:
				_, _ = rep.RecordMeeting(op.CustomerID, op.Content, op.Location, op.DurationMinutes)
			}
		case models.OpRenewContract:
			_, _, _ = c.RenewContract(op.CustomerID, op.Amount)
		}
	}
}
