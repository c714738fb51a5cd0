package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadCSV reads employee rows from r and adds them to the table. The header
// must contain the columns name, age, salary and role (any order, extra
// columns ignored). Malformed rows are skipped with a warning; the count of
// loaded rows is returned.
func (t *Table) LoadCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length checked per row below

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"name", "age", "salary", "role"} {
		if _, ok := colIdx[want]; !ok {
			return 0, fmt.Errorf("csv header missing column %q", want)
		}
	}

	count := 0
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			t.log.Warn("skipping unreadable csv row", "line", line, "error", err.Error())
			continue
		}
		if len(record) < len(header) {
			t.log.Warn("skipping short csv row", "line", line, "fields", len(record))
			continue
		}

		name := strings.TrimSpace(record[colIdx["name"]])
		age, ageErr := strconv.Atoi(strings.TrimSpace(record[colIdx["age"]]))
		salary, salErr := strconv.ParseFloat(strings.TrimSpace(record[colIdx["salary"]]), 64)
		role := Role(strings.ToLower(strings.TrimSpace(record[colIdx["role"]])))

		if name == "" || ageErr != nil || salErr != nil {
			t.log.Warn("skipping malformed csv row", "line", line)
			continue
		}
		if _, err := t.Add(name, age, salary, role); err != nil {
			t.log.Warn("skipping rejected csv row", "line", line, "error", err.Error())
			continue
		}
		count++
	}

	t.log.Info("csv load complete", "rows", count)
	return count, nil
}
