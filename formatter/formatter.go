package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"crm-tracker/models"
)

// ReportData is the prepared view of a report shared by all formatters.
type ReportData struct {
	Customers  []CustomerView  `json:"customers"`
	Reps       []RepView       `json:"sales_reps"`
	Logs       []LogView       `json:"interaction_logs,omitempty"`
	RepReports []RepReportView `json:"interaction_time_reports,omitempty"`
	System     SystemView      `json:"system"`
}

// CustomerView is one customer directory row.
type CustomerView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// RepView is one representative directory row.
type RepView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Customers int    `json:"customers"`
}

// LogView is one customer's rendered interaction history.
type LogView struct {
	CustomerID   int      `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	Kind         string   `json:"kind"`
	Entries      []string `json:"entries"`
}

// MinutesView is one row of a representative's interaction-time report.
type MinutesView struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Minutes    int    `json:"total_minutes"`
}

// RepReportView is one representative's interaction-time report.
type RepReportView struct {
	RepID     int           `json:"rep_id"`
	RepName   string        `json:"rep_name"`
	Customers []MinutesView `json:"customers"`
}

// KindCountView is a per-kind customer tally.
type KindCountView struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// SystemView is the system-wide aggregate.
type SystemView struct {
	TotalCustomers          int             `json:"total_customers"`
	TotalReps               int             `json:"total_sales_reps"`
	CountsByKind            []KindCountView `json:"customers_by_kind"`
	TotalInteractionMinutes int             `json:"total_interaction_minutes"`
}

// prepareReportData extracts and organizes report data for formatting.
func prepareReportData(report *models.Report) *ReportData {
	data := &ReportData{}

	for _, c := range report.Customers {
		data.Customers = append(data.Customers, CustomerView{ID: c.ID, Name: c.Name, Kind: string(c.Kind)})
	}
	for _, r := range report.Reps {
		data.Reps = append(data.Reps, RepView{ID: r.ID, Name: r.Name, Customers: r.Customers})
	}
	for _, log := range report.Logs {
		view := LogView{
			CustomerID:   log.CustomerID,
			CustomerName: log.CustomerName,
			Kind:         string(log.Kind),
		}
		for _, entry := range log.Entries {
			view.Entries = append(view.Entries, entry.Describe())
		}
		data.Logs = append(data.Logs, view)
	}
	for _, rr := range report.RepReports {
		view := RepReportView{RepID: rr.RepID, RepName: rr.RepName}
		for _, cm := range rr.Customers {
			view.Customers = append(view.Customers, MinutesView{
				CustomerID: cm.CustomerID,
				Name:       cm.Name,
				Kind:       string(cm.Kind),
				Minutes:    cm.Minutes,
			})
		}
		data.RepReports = append(data.RepReports, view)
	}

	data.System = SystemView{
		TotalCustomers:          report.System.TotalCustomers,
		TotalReps:               report.System.TotalReps,
		TotalInteractionMinutes: report.System.TotalInteractionMinutes,
	}
	for _, kc := range report.System.CountsByKind {
		data.System.CountsByKind = append(data.System.CountsByKind, KindCountView{
			Kind:  string(kc.Kind),
			Count: kc.Count,
		})
	}
	return data
}

// FormatText returns the text rendering of the report.
func FormatText(report *models.Report) string {
	data := prepareReportData(report)
	var sb strings.Builder

	sb.WriteString("All Customers:\n")
	if len(data.Customers) == 0 {
		sb.WriteString("  none\n")
	}
	for _, c := range data.Customers {
		sb.WriteString(fmt.Sprintf("  ID: %d, Name: %s, Type: %s\n", c.ID, c.Name, c.Kind))
	}

	sb.WriteString("All Sales Representatives:\n")
	if len(data.Reps) == 0 {
		sb.WriteString("  none\n")
	}
	for _, r := range data.Reps {
		sb.WriteString(fmt.Sprintf("  ID: %d, Name: %s, Customers: %d\n", r.ID, r.Name, r.Customers))
	}

	sb.WriteString("\n--- Customer Interactions ---\n")
	for _, log := range data.Logs {
		if len(log.Entries) == 0 {
			sb.WriteString(fmt.Sprintf("No interactions recorded for %s\n", log.CustomerName))
			continue
		}
		sb.WriteString(fmt.Sprintf("Interactions for %s (%s):\n", log.CustomerName, log.Kind))
		for _, entry := range log.Entries {
			sb.WriteString("  " + entry + "\n")
		}
	}

	for _, rr := range data.RepReports {
		sb.WriteString(fmt.Sprintf("\nInteraction Time Report for Sales Rep: %s\n", rr.RepName))
		sb.WriteString("----------------------------------------\n")
		for _, cm := range rr.Customers {
			sb.WriteString(fmt.Sprintf("Customer: %s (%s) - Total Interaction Time: %d minutes\n",
				cm.Name, cm.Kind, cm.Minutes))
		}
		sb.WriteString("----------------------------------------\n")
	}

	sb.WriteString("\n========== CRM SYSTEM REPORT ==========\n")
	sb.WriteString(fmt.Sprintf("Total Customers: %d\n", data.System.TotalCustomers))
	for _, kc := range data.System.CountsByKind {
		sb.WriteString(fmt.Sprintf("  %s Customers: %d\n", kc.Kind, kc.Count))
	}
	sb.WriteString(fmt.Sprintf("Total Sales Representatives: %d\n", data.System.TotalReps))
	sb.WriteString(fmt.Sprintf("Total Interaction Time: %d minutes\n", data.System.TotalInteractionMinutes))
	sb.WriteString("======================================\n")

	return sb.String()
}

// FormatJSON returns the JSON rendering of the report.
func FormatJSON(report *models.Report) string {
	data := prepareReportData(report)
	jsonBytes, _ := json.MarshalIndent(data, "", "  ")
	return string(jsonBytes)
}

// FormatCSV returns the CSV rendering of the interaction-time reports:
// one row per (representative, portfolio customer) pair.
func FormatCSV(report *models.Report) string {
	data := prepareReportData(report)
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{
		"Rep ID", "Rep Name", "Customer ID", "Customer Name", "Kind", "Total Minutes",
	})
	for _, rr := range data.RepReports {
		if len(rr.Customers) == 0 {
			writer.Write([]string{
				fmt.Sprintf("%d", rr.RepID), rr.RepName, "", "", "", "",
			})
			continue
		}
		for _, cm := range rr.Customers {
			writer.Write([]string{
				fmt.Sprintf("%d", rr.RepID),
				rr.RepName,
				fmt.Sprintf("%d", cm.CustomerID),
				cm.Name,
				cm.Kind,
				fmt.Sprintf("%d", cm.Minutes),
			})
		}
	}

	writer.Flush()
	return sb.String()
}
