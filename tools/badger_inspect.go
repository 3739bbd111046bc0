package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"messenger-lab/repositories"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./audit", "Path to the audit badger DB")
	scope := flag.String("scope", "general", `Scope to list: a channel name, or "@sender" for direct messages`)
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository, err := repositories.NewMessageRepository(db, slog.Default(), nil)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Timestamp", "Message ID", "Author", "Encrypted", "Content", "Records"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	messages, _, err := repository.GetMessages(*scope, nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range messages {
		records, err := repository.GetRecords(m.ID)
		if err != nil {
			// Keep listing the other messages
			fmt.Printf("Error reading records of %s: %v\n", m.ID, err)
			continue
		}
		states := make([]string, 0, len(records))
		for _, r := range records {
			states = append(states, fmt.Sprintf("%s:%s", r.RecipientID, r.State))
		}

		// First 8 characters of the ID are enough to read
		displayID := m.ID.String()[:8]

		table.Append([]string{
			m.At.Format("15:04:05"),
			displayID,
			m.Author,
			fmt.Sprintf("%t", m.Encrypted),
			m.Content,
			strings.Join(states, " "),
		})
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves a log that must be truncated: open once in write mode
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			// Close and reopen read-only
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
