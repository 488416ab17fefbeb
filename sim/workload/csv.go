package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inference-sim/schedsim/sim"
)

// LoadCSV reads a process set from CSV rows. Each row is one of
//
//	burst
//	arrival,burst
//	arrival,burst,priority
//
// Lines starting with '#' are comments. A first row whose leading field is not an
// integer is treated as a header and skipped. IDs are assigned 1..n in row order.
func LoadCSV(r io.Reader) ([]*sim.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var procs []*sim.Process
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV: %v", sim.ErrInvalidInput, err)
		}
		if row == 1 && isHeader(record) {
			continue
		}
		p, err := parseRow(record, len(procs)+1)
		if err != nil {
			return nil, fmt.Errorf("%w: CSV row %d: %v", sim.ErrInvalidInput, row, err)
		}
		procs = append(procs, p)
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("%w: CSV contains no processes", sim.ErrEmptyInput)
	}
	return procs, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	return err != nil
}

func parseRow(record []string, id int) (*sim.Process, error) {
	vals := make([]int64, len(record))
	for i, field := range record {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not an integer", i+1, field)
		}
		vals[i] = v
	}

	var arrival, burst, priority int64
	switch len(vals) {
	case 1:
		burst = vals[0]
	case 2:
		arrival, burst = vals[0], vals[1]
	case 3:
		arrival, burst, priority = vals[0], vals[1], vals[2]
	default:
		return nil, fmt.Errorf("expected 1 to 3 fields, got %d", len(vals))
	}

	p := sim.NewProcess(id, arrival, burst, priority)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// WriteCSV writes procs as arrival,burst,priority rows with a header.
func WriteCSV(w io.Writer, procs []*sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"arrival", "burst", "priority"}); err != nil {
		return err
	}
	for _, p := range procs {
		row := []string{
			strconv.FormatInt(p.ArrivalTime, 10),
			strconv.FormatInt(p.BurstTime, 10),
			strconv.FormatInt(p.Priority, 10),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
