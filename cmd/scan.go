package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aqlanhadi/smstx/parser/common"
)

// scanRecord is one line of JSONL input.
type scanRecord struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a JSONL file of SMS messages",
	Long: `Scans a JSON-lines file where each line is {"message": ..., "sender": ...,
"timestamp": ...} and prints the extracted transactions as a JSON array.
Non-transaction messages are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry()
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("error: %v", err)
		}

		f, err := os.Open(args[0])
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("error: %v", err)
		}
		defer f.Close()

		log.Println("Scanning", args[0])

		result := []*common.Transaction{}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			raw := scanner.Bytes()
			if len(raw) == 0 {
				continue
			}
			var rec scanRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				log.Printf("line %d: skipping malformed record: %v", line, err)
				continue
			}
			if tx := registry.Parse(rec.Message, rec.Sender, rec.Timestamp); tx != nil {
				result = append(result, tx)
			}
		}
		if err := scanner.Err(); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("error: %v", err)
		}

		log.Printf("Extracted %d transactions from %d messages", len(result), line)

		asJSON, _ := json.Marshal(result)
		fmt.Println(string(asJSON))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
