package postgres

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aqlanhadi/smstx/parser"
	"github.com/aqlanhadi/smstx/parser/common"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Messages  int
	Processed int
	Skipped   int
	Failed    int
	Mandates  int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Verbose bool // Enable verbose logging
}

// importRecord is one line of JSONL input: an SMS as exported from a phone
// backup.
type importRecord struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// ImportFile parses a single JSONL message log and stores the extracted
// transactions and mandates. Messages that are not transactions count as
// skipped, not failed.
func (db *DB) ImportFile(ctx context.Context, registry *parser.Registry, filePath string, opts ImportOptions) (*ImportResult, error) {
	fileName := filepath.Base(filePath)

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open file: %w", fileName, err)
	}
	defer f.Close()

	result := &ImportResult{}
	var batch []*common.Transaction

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		result.Messages++

		var rec importRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s:%d: malformed record: %v", fileName, line, err))
			continue
		}

		if tx := registry.Parse(rec.Message, rec.Sender, rec.Timestamp); tx != nil {
			batch = append(batch, tx)
			continue
		}
		if md, ok := registry.ParseMandate(rec.Message, rec.Sender); ok {
			if err := db.UpsertMandate(ctx, md); err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s:%d: %v", fileName, line, err))
				continue
			}
			result.Mandates++
			continue
		}
		result.Skipped++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: read error: %w", fileName, err)
	}

	inserted, err := db.CreateTransactions(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	result.Processed = inserted
	// Rows dropped by the natural-key conflict were seen before.
	result.Skipped += len(batch) - inserted

	if opts.Verbose {
		log.Printf("OK   %s (%d messages, %d transactions, %d mandates)",
			fileName, result.Messages, result.Processed, result.Mandates)
	}

	return result, nil
}

// ImportDirectory processes all JSONL files in a directory
func (db *DB) ImportDirectory(ctx context.Context, registry *parser.Registry, dirPath string, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var dataFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".jsonl") || strings.HasSuffix(lower, ".ndjson") {
			dataFiles = append(dataFiles, filepath.Join(dirPath, e.Name()))
		}
	}

	log.Printf("Scanning: %s", dirPath)
	log.Printf("Found %d files (JSONL)\n", len(dataFiles))

	for _, filePath := range dataFiles {
		fileResult, err := db.ImportFile(ctx, registry, filePath, opts)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		result.Messages += fileResult.Messages
		result.Processed += fileResult.Processed
		result.Skipped += fileResult.Skipped
		result.Failed += fileResult.Failed
		result.Mandates += fileResult.Mandates
		result.Errors = append(result.Errors, fileResult.Errors...)
	}

	return result, nil
}

// Import handles both file and directory imports
func (db *DB) Import(ctx context.Context, registry *parser.Registry, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		return db.ImportDirectory(ctx, registry, path, opts)
	}
	return db.ImportFile(ctx, registry, path, opts)
}
