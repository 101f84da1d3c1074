package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"crm-tracker/errors"
	"crm-tracker/metrics"
	"crm-tracker/models"
)

// Parse reads a CSV scenario from the reader and returns the ordered
// operations it scripts. Lines starting with '#' are headers/comments.
// The first field of each row is the operation code:
//
//	customer, regular,  name, email, phone, segment
//	customer, vip,      name, email, phone, account manager
//	customer, corporate,name, email, phone, company, employees, contract
//	rep,      name
//	assign,   customer id, rep id
//	call,     rep id, customer id, duration minutes, content
//	email,    rep id, customer id, subject, content
//	meeting,  rep id, customer id, location, duration minutes, content
//	renew,    customer id, new amount
//
// Durations must be non-negative integers and ids positive integers.
func Parse(r io.Reader) ([]models.ScenarioOp, error) {
	start := time.Now()
	defer func() {
		metrics.ParserDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var ops []models.ScenarioOp
	lineNum := 0

	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		if len(record) == 0 {
			return nil, fail(lineNum, record, errors.ErrEmptyRecord, nil)
		}
		if strings.HasPrefix(record[0], "#") {
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		op, err := parseOp(lineNum, record)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		metrics.ParserOpsTotal.Inc()
	}

	return ops, nil
}

func parseOp(line int, record []string) (models.ScenarioOp, error) {
	switch models.OpKind(record[0]) {
	case models.OpCreateCustomer:
		return parseCustomer(line, record)
	case models.OpCreateRep:
		if len(record) != 2 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		return models.ScenarioOp{Kind: models.OpCreateRep, Name: record[1]}, nil
	case models.OpAssign:
		if len(record) != 3 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		customerID, err := parseID(record[1])
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidID, err)
		}
		repID, err := parseID(record[2])
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidID, err)
		}
		return models.ScenarioOp{Kind: models.OpAssign, CustomerID: customerID, RepID: repID}, nil
	case models.OpRecordCall:
		if len(record) != 5 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		op := models.ScenarioOp{Kind: models.OpRecordCall, Content: record[4]}
		if err := parseRecordTarget(&op, record[1], record[2]); err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidID, err)
		}
		duration, err := parseDuration(record[3])
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidDuration, err)
		}
		op.DurationMinutes = duration
		return op, nil
	case models.OpRecordEmail:
		if len(record) != 5 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		op := models.ScenarioOp{Kind: models.OpRecordEmail, Subject: record[3], Content: record[4]}
		if err := parseRecordTarget(&op, record[1], record[2]); err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidID, err)
		}
		return op, nil
	case models.OpRecordMeeting:
		if len(record) != 6 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		op := models.ScenarioOp{Kind: models.OpRecordMeeting, Location: record[3], Content: record[5]}
		if err := parseRecordTarget(&op, record[1], record[2]); err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidID, err)
		}
		duration, err := parseDuration(record[4])
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidDuration, err)
		}
		op.DurationMinutes = duration
		return op, nil
	case models.OpRenewContract:
		if len(record) != 3 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		customerID, err := parseID(record[1])
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidID, err)
		}
		amount, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidAmount, err)
		}
		return models.ScenarioOp{Kind: models.OpRenewContract, CustomerID: customerID, Amount: amount}, nil
	default:
		return models.ScenarioOp{}, fail(line, record, errors.ErrUnknownOp, fmt.Errorf("%q", record[0]))
	}
}

func parseCustomer(line int, record []string) (models.ScenarioOp, error) {
	if len(record) < 2 {
		return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
	}
	op := models.ScenarioOp{Kind: models.OpCreateCustomer}

	switch strings.ToLower(record[1]) {
	case "regular":
		if len(record) != 6 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		op.Customer = models.CustomerRegular
		op.Name, op.Email, op.Phone = record[2], record[3], record[4]
		op.Segment = record[5]
	case "vip":
		if len(record) != 6 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		op.Customer = models.CustomerVIP
		op.Name, op.Email, op.Phone = record[2], record[3], record[4]
		op.AccountManager = record[5]
	case "corporate":
		if len(record) != 8 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidFieldCount, nil)
		}
		op.Customer = models.CustomerCorporate
		op.Name, op.Email, op.Phone = record[2], record[3], record[4]
		op.Company = record[5]

		employees, err := strconv.Atoi(record[6])
		if err != nil || employees <= 0 {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidEmployees, err)
		}
		op.Employees = employees

		contract, err := strconv.ParseFloat(record[7], 64)
		if err != nil {
			return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidAmount, err)
		}
		op.Contract = contract
	default:
		return models.ScenarioOp{}, fail(line, record, errors.ErrInvalidKind, fmt.Errorf("%q", record[1]))
	}
	return op, nil
}

func parseRecordTarget(op *models.ScenarioOp, repField, customerField string) error {
	repID, err := parseID(repField)
	if err != nil {
		return err
	}
	customerID, err := parseID(customerField)
	if err != nil {
		return err
	}
	op.RepID = repID
	op.CustomerID = customerID
	return nil
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

func parseDuration(value string) (int, error) {
	d, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be non-negative, got %d", d)
	}
	return d, nil
}

func fail(line int, record []string, sentinel, cause error) error {
	metrics.ParserErrorsTotal.WithLabelValues(sentinel.Error()).Inc()
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %v", sentinel, cause)
	}
	return &errors.ParseError{Line: line, Record: record, Err: err}
}
