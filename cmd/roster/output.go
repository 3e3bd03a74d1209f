package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/saltyorg/roster/internal/database"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func render(w io.Writer, format string, workers []database.Worker) error {
	switch format {
	case formatTable, "":
		return renderTable(w, workers)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(workers)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(workers); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, workers []database.Worker) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSURNAME\tNAME\tLASTNAME\tAGE\tCITY\tPOSITION")
	for _, wk := range workers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			wk.ID, wk.Surname, wk.Name, wk.Lastname, wk.Age, wk.City, wk.Position)
	}
	return tw.Flush()
}
