package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mgpai22/subsplit/internal/resegment"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_or_video_file]",
	Short: "Show how each entry would be resegmented",
	Long: `Run the resegmenter without writing anything and print a table with one
row per output line: the source entry, its script and budget, the new cue
number and its time range.

Examples:
  subsplit inspect movie.srt
  subsplit inspect movie.zh.srt -m 30 --chinese-ratio 0.6`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addResegmentFlags(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	document, err := loadDocument(cmd.Context(), cmd, args[0])
	if err != nil {
		return err
	}

	result := engine.Process(document)
	logAnomalies(result)

	out := cmd.OutOrStdout()
	if len(result.Entries) > 0 {
		fmt.Fprintln(out, renderInspection(result))
	}
	writeInspectionSummary(out, result)
	return nil
}

func renderInspection(result *resegment.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Entry", "Script", "Budget", "Cue", "Start", "End", "Text"})

	for _, entry := range result.Entries {
		source := strconv.Itoa(entry.Entry.Index)
		if entry.Entry.Malformed {
			source += "!"
		}
		if len(entry.Lines) == 0 {
			tw.AppendRow(table.Row{source, entry.Script, entry.Budget, "-", "", "", ""})
			continue
		}
		for i, line := range entry.Lines {
			row := table.Row{"", "", "", entry.FirstCue + i, line.StartTime, line.EndTime, line.Text}
			if i == 0 {
				row[0], row[1], row[2] = source, entry.Script, entry.Budget
			}
			tw.AppendRow(row)
		}
		tw.AppendSeparator()
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 7, WidthMax: 60},
	})
	return tw.Render()
}

func writeInspectionSummary(w io.Writer, result *resegment.Result) {
	fmt.Fprintf(w, "%d entries, %d cues", len(result.Entries), len(result.Cues))
	if n := len(result.Anomalies); n > 0 {
		fmt.Fprintf(w, ", %d anomalies (%d malformed, %d unsplittable)",
			n,
			result.Count(resegment.MalformedBlock),
			result.Count(resegment.UnsplittableToken),
		)
	}
	fmt.Fprintln(w)
}
