// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/aclements/go-gg/table"
)

// readTable reads the numeric table in file.
func readTable(file string) (*table.Table, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseTable(file, data)
}

// parseTable parses a table of numbers separated by white space or
// commas. If the first row is not entirely numeric, it is a header
// naming the columns.
func parseTable(name string, data []byte) (*table.Table, error) {
	var header []string
	var rows [][]string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if header == nil && rows == nil && !numeric(fields) {
			if err := checkHeader(fields); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, line, err)
			}
			header = fields
			continue
		}
		want := len(header)
		if want == 0 && len(rows) > 0 {
			want = len(rows[0])
		}
		if want != 0 && len(fields) != want {
			return nil, fmt.Errorf("%s:%d: have %d fields, want %d", name, line, len(fields), want)
		}
		for _, f := range fields {
			if _, err := strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("%s:%d: %q is not a number", name, line, f)
			}
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data", name)
	}
	if header == nil {
		header = make([]string, len(rows[0]))
		for i := range header {
			header[i] = strconv.Itoa(i)
		}
	}
	return table.TableFromStrings(header, rows, true), nil
}

func numeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

func checkHeader(fields []string) error {
	seen := make(map[string]bool)
	for _, f := range fields {
		if seen[f] {
			return fmt.Errorf("duplicate column %q", f)
		}
		seen[f] = true
	}
	return nil
}
