package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/defargs/internal/model"
)

func newTable(buf *bytes.Buffer, header []string, alignment []int) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)

	return table
}

func renderSummaries(summaries []m.CallableSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf,
		[]string{"Position", "Callable", "Wrapper", "Kind", "Required", "Defaults", "Variants"},
		[]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT,
		})

	total := 0

	for _, s := range summaries {
		table.Append([]string{
			s.Position,
			s.Name,
			s.Wrapper,
			s.Kind.String(),
			fmt.Sprintf("%d", s.Required),
			fmt.Sprintf("%d", s.Default),
			variantsCell(s.Variants),
		})

		if s.Variants > 0 {
			total += s.Variants
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Callables %d", len(summaries)), "", "", "", "", "",
		fmt.Sprintf("%d", total),
	})
	table.Render()

	return buf.String()
}

func variantsCell(variants int) string {
	if variants < 0 {
		return "invalid"
	}

	return fmt.Sprintf("%d", variants)
}

func renderReports(reports []m.Report) string {
	var buf bytes.Buffer

	table := newTable(&buf,
		[]string{"Source", "Output", "Wrappers", "Variants", "Status"},
		[]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
		})

	var wrappers, variants int

	for _, r := range reports {
		table.Append([]string{
			string(sourcePath(r.Source)),
			string(r.Output),
			fmt.Sprintf("%d", len(r.Callables)),
			fmt.Sprintf("%d", r.Variants),
			reportStatus(r),
		})

		wrappers += len(r.Callables)
		variants += r.Variants
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)), "",
		fmt.Sprintf("%d", wrappers),
		fmt.Sprintf("%d", variants),
		"",
	})
	table.Render()

	return buf.String()
}

func sourcePath(source m.Source) m.Path {
	if source.Origin == nil {
		return ""
	}

	return source.Origin.Path
}

func reportStatus(r m.Report) string {
	switch {
	case r.Error != nil:
		return "error: " + r.Error.Error()
	case r.Cached:
		return "cached"
	case r.Output == "":
		return "removed"
	default:
		return "generated"
	}
}

func renderDispatchTable(table m.DispatchTable) string {
	var buf bytes.Buffer

	c := table.Callable
	fmt.Fprintf(&buf, "%s %s (%s) → %s, %d variants\n\n", c.Kind, c.Name, c.Position, c.Wrapper, len(table.Entries))

	t := newTable(&buf,
		[]string{"#", "Accepts", "Calls"},
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, entry := range table.Entries {
		t.Append([]string{fmt.Sprintf("%d", i+1), acceptsText(entry), callText(c, entry)})
	}

	t.Render()

	return buf.String()
}

// acceptsText renders an acceptor pattern the way a caller writes it:
// positional names bare, named ones with a trailing "=" and the rest marker
// as "..".
func acceptsText(entry m.DispatchEntry) string {
	parts := make([]string, 0, len(entry.Acceptor))

	for _, tok := range entry.Acceptor {
		switch tok.Kind {
		case m.TokenPositional:
			parts = append(parts, tok.Name)
		case m.TokenNamed:
			parts = append(parts, tok.Name+"=")
		case m.TokenRest:
			parts = append(parts, "..")
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func callText(c m.Callable, entry m.DispatchEntry) string {
	args := make([]string, 0, len(entry.Call))

	for _, arg := range entry.Call {
		value := arg.Param.Name
		if !arg.Supplied() {
			value = arg.Default.String()
			if arg.Default.Kind == m.DefaultZero {
				value = "zero"
			}
		}

		if c.Kind == m.KindNamedAggregate {
			value = arg.Param.Name + ": " + value
		}

		args = append(args, value)
	}

	if c.Kind == m.KindFunction {
		return c.Name + "(" + strings.Join(args, ", ") + ")"
	}

	return c.Name + "{" + strings.Join(args, ", ") + "}"
}
