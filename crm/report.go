package crm

import (
	"sort"
	"time"

	"crm-tracker/metrics"
	"crm-tracker/models"
)

// SystemReport folds over every registered customer: counts grouped by
// kind in ascending kind-label order, plus the minute total across the
// whole registry. Pure read.
func (c *Coordinator) SystemReport() models.SystemReport {
	counts := make(map[models.CustomerKind]int)
	totalMinutes := 0
	for _, id := range c.customerOrder {
		cust := c.customers[id]
		counts[cust.Kind]++
		totalMinutes += cust.TotalInteractionMinutes()
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	report := models.SystemReport{
		TotalCustomers:          len(c.customerOrder),
		TotalReps:               len(c.repOrder),
		TotalInteractionMinutes: totalMinutes,
	}
	for _, kind := range kinds {
		report.CountsByKind = append(report.CountsByKind, models.KindCount{
			Kind:  models.CustomerKind(kind),
			Count: counts[models.CustomerKind(kind)],
		})
	}
	return report
}

// Report builds the full reporting bundle: customer and rep
// directories, per-rep interaction-time reports, per-customer
// interaction logs, and the system-wide aggregate.
func (c *Coordinator) Report() *models.Report {
	start := time.Now()
	metrics.ResetReportGauges()

	report := &models.Report{}
	for _, id := range c.customerOrder {
		cust := c.customers[id]
		report.Customers = append(report.Customers, models.CustomerSummary{
			ID:   cust.ID,
			Name: cust.Name,
			Kind: cust.Kind,
		})
		report.Logs = append(report.Logs, models.InteractionLog{
			CustomerID:   cust.ID,
			CustomerName: cust.Name,
			Kind:         cust.Kind,
			Entries:      cust.Interactions,
		})
	}
	for _, id := range c.repOrder {
		rep := c.reps[id]
		report.Reps = append(report.Reps, models.RepSummary{
			ID:        rep.ID,
			Name:      rep.Name,
			Customers: len(rep.CustomerIDs),
		})
		handle := &Rep{coord: c, rep: rep}
		report.RepReports = append(report.RepReports, handle.InteractionTimeReport())
	}
	report.System = c.SystemReport()

	metrics.ReportInteractionMinutes.Set(float64(report.System.TotalInteractionMinutes))
	metrics.ReportDurationSeconds.Observe(time.Since(start).Seconds())
	return report
}
