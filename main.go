package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"

	"crm-tracker/config"
	"crm-tracker/crm"
	"crm-tracker/formatter"
	"crm-tracker/logx"
	"crm-tracker/metrics"
	"crm-tracker/parser"
)

// demoScenario mirrors the canonical walkthrough: three customers of
// different kinds, two reps, assignments, five interactions and a
// contract renewal.
const demoScenario = `# op, args...
customer, regular, John Doe, john@example.com, 555-1234, Small Business
customer, vip, Jane Smith, jane@example.com, 555-5678, Michael Johnson
customer, corporate, Bob Anderson, bob@megacorp.com, 555-9876, MegaCorp, 1500, 50000
rep, Alice Thompson
rep, David Wilson
assign, 1, 1
assign, 2, 1
assign, 3, 2
call, 1, 1, 15, Discussed new product features
email, 1, 2, VIP Exclusive Offer, Sending exclusive offer details
meeting, 1, 2, Headquarters, 60, Quarterly review meeting
call, 2, 3, 30, Technical support for recent installation
meeting, 2, 3, Client's Office, 90, Contract renewal discussion
renew, 3, 75000
`

func main() {
	// Define flags
	input := flag.String("input", "", "Input scenario CSV file (built-in demo scenario if omitted)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	cfg := config.Load()
	log := logx.New(logx.Config(cfg.Logger))

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				fmt.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	// Read scenario from file or fall back to the built-in demo
	var scenario io.Reader = strings.NewReader(demoScenario)
	if *input != "" {
		file, err := os.Open(*input)
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		scenario = file
	}

	ops, err := parser.Parse(scenario)
	if err != nil {
		fmt.Printf("Error parsing scenario: %v\n", err)
		os.Exit(1)
	}

	coord := crm.New(crm.WithLogger(log))
	coord.Run(ops)
	report := coord.Report()

	// Output based on format
	switch *format {
	case "json":
		fmt.Print(formatter.FormatJSON(report))
	case "csv":
		fmt.Print(formatter.FormatCSV(report))
	default: // "text"
		fmt.Print(formatter.FormatText(report))
		printActions(coord)
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "crm_tracker"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			fmt.Fprintf(os.Stderr, "Error pushing to Pushgateway: %v\n", err)
		} else {
			fmt.Println("\nMetrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}

// printActions runs the kind-specific follow-up for every rep's
// portfolio and prints the resulting action lines.
func printActions(coord *crm.Coordinator) {
	fmt.Println("\n--- Customer-Specific Actions ---")
	for _, r := range coord.Reps() {
		rep, err := coord.Rep(r.ID)
		if err != nil {
			continue
		}
		for _, action := range rep.PerformCustomerActions() {
			fmt.Println(action)
		}
	}
}
