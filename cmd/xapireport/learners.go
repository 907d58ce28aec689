package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/service"
)

// collectLearners merges the learners file (if any) with positional emails,
// dropping blanks and case-insensitive duplicates. First occurrence wins.
func collectLearners(path string, emails []string) ([]service.Learner, error) {
	var all []service.Learner
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open learners file: %w", err)
		}
		defer f.Close()
		all, err = readLearners(f)
		if err != nil {
			return nil, fmt.Errorf("read learners file %s: %w", path, err)
		}
	}
	for _, e := range emails {
		all = append(all, service.Learner{Email: e})
	}

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, l := range all {
		l.Email = strings.TrimSpace(l.Email)
		key := strings.ToLower(l.Email)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out, nil
}

// readLearners parses email[,name] records. A first record whose email cell
// is literally "email" is a header.
func readLearners(r io.Reader) ([]service.Learner, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []service.Learner
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		email := strings.TrimSpace(rec[0])
		if line == 0 && strings.EqualFold(email, "email") {
			continue
		}
		l := service.Learner{Email: email}
		if len(rec) > 1 {
			l.Name = strings.TrimSpace(rec[1])
		}
		out = append(out, l)
	}
}
