// Package collector reads raw scraped records from the collector boundary.
// Collectors emit JSONL: one RawRecord document per line. Malformed lines
// are skipped with a diagnostic so one bad record never aborts a batch.
package collector

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jonathan/jobmarket/internal/schemas"
	"github.com/jonathan/jobmarket/internal/types"
)

// maxLineBytes bounds one JSONL line; job descriptions can be large.
const maxLineBytes = 4 * 1024 * 1024

// Read decodes JSONL raw records from r. Lines that are not valid JSON or
// fail schema validation are logged and skipped.
func Read(r io.Reader) ([]types.RawRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []types.RawRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := schemas.ValidateRawRecord([]byte(line)); err != nil {
			log.Printf("skipping line %d: %v", lineNo, err)
			continue
		}

		var rec types.RawRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("skipping line %d: %v", lineNo, err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}

// ReadFile reads JSONL raw records from a file.
func ReadFile(path string) ([]types.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}
