package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aqlanhadi/smstx/parser"
)

var (
	parseSender    string
	parseTimestamp int64
)

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse a single SMS message",
	Long: `Parses a single bank SMS message and prints the extracted transaction
as JSON. Prints {} when the sender is unsupported or the message is not a
completed transaction.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry()
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("error: %v", err)
		}

		tx := registry.Parse(args[0], parseSender, parseTimestamp)
		if tx == nil {
			fmt.Println("{}")
			return
		}

		asJSON, _ := json.Marshal(tx)
		fmt.Println(string(asJSON))
	},
}

// loadRegistry builds the default registry plus any configured custom
// institutions.
func loadRegistry() (*parser.Registry, error) {
	registry := parser.Default()
	if err := registry.LoadCustom(); err != nil {
		return nil, err
	}
	return registry, nil
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseSender, "sender", "s", "", "SMS sender ID (required)")
	parseCmd.Flags().Int64VarP(&parseTimestamp, "timestamp", "t", 0, "Message timestamp in Unix seconds")
	parseCmd.MarkFlagRequired("sender")
}
