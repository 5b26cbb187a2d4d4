package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// tabPadding is the minimum padding between table columns.
const tabPadding = 2

// Table writes header-plus-rows output in aligned columns, with a dashed
// underline below the header row.
func Table(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	header := rows[0]
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	underline := make([]string, len(header))
	for i, h := range header {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(underline, "\t"))

	for _, row := range rows[1:] {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
