package main

import (
	"fmt"
	"messenger-lab/projection"
	"messenger-lab/repositories"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func header(title string) {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf("  ====== %s ======", title)))
}

func newTable(columns ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(columns)
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
	return table
}

func printReport(r report, entries []projection.Entry) {
	header("Scenarios")
	table := newTable("Scenario", "Action", "Outcome")
	for _, s := range r.steps {
		table.Append([]string{s.scenario, s.action, s.outcome})
	}
	table.Render()

	header("Timeline")
	table = newTable("At", "Message", "Participant", "Transition")
	for _, e := range entries {
		messageID := ""
		if e.MessageID != uuid.Nil {
			messageID = shortID(e.MessageID.String())
		}
		table.Append([]string{e.At.Format("15:04:05.000"), messageID, e.Participant, e.Transition})
	}
	table.Render()
}

func printAudit(audit repositories.IMessageRepository, scopes []string) error {
	header("Audit log")
	table := newTable("Scope", "Message", "Author", "Recipients", "States")
	for _, scope := range scopes {
		var cursor *string
		for {
			messages, next, err := audit.GetMessages(scope, cursor)
			if err != nil {
				return err
			}
			for _, m := range messages {
				records, err := audit.GetRecords(m.ID)
				if err != nil {
					return err
				}
				states := make([]string, 0, len(records))
				for _, record := range records {
					states = append(states, record.RecipientID+":"+record.State)
				}
				table.Append([]string{scope, shortID(m.ID.String()), m.Author, strings.Join(m.Recipients, ","), strings.Join(states, " ")})
			}
			if len(messages) == 0 || next == nil {
				break
			}
			cursor = next
		}
	}
	table.Render()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
