package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/jsonstore"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
	"github.com/Makepad-fr/todoboard/internal/ui"
)

const maxTitle = 60

func newListCmd(a *app) *cobra.Command {
	var format, sortDir string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the records once and print them",
		Long: `Fetch the records once and print them.

Formats:
  table - framed panel with role, title and completion (default)
  json  - the records as fetched, in the endpoint's field names
  yaml  - the same records as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := recordstore.New()
			src, err := a.source()
			if err != nil {
				return err
			}
			if err := store.Load(cmd.Context(), src); err != nil {
				return err
			}
			if sortDir != "" {
				dir, err := recordstore.ParseDirection(sortDir)
				if err != nil {
					return err
				}
				store.SortByTitle(dir)
			}
			a.log.Debug("listing", zap.Int("count", store.Len()), zap.String("format", format))
			return printRecords(cmd.OutOrStdout(), format, store.Records())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or yaml")
	cmd.Flags().StringVar(&sortDir, "sort", "", "sort by title: asc or desc")
	return cmd
}

func printRecords(w io.Writer, format string, recs []model.Record) error {
	switch format {
	case "table", "":
		ui.Panel(w, tableLines(recs))
		return nil
	case "json":
		return jsonstore.Encode(w, recs)
	case "yaml":
		return jsonstore.EncodeYAML(w, recs)
	}
	return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
}

func tableLines(recs []model.Record) []string {
	t := ui.Current()
	d, p := model.Stats(recs)
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render("Todos"),
			t.Success.Render(t.SymDone), d,
			t.Pending.Render(t.SymPending), p,
			t.Accent.Render("Total"), len(recs),
		),
		t.Muted.Render(ui.ProgressBar(d, d+p, 28)),
		"",
	}
	if len(recs) == 0 {
		return append(lines, t.Muted.Render("no records"))
	}
	for _, r := range recs {
		box, style := t.BoxUnchecked, t.Muted
		if r.Completed {
			box, style = t.BoxChecked, t.Success
		}
		title := r.Title
		if len([]rune(title)) > maxTitle {
			title = string([]rune(title)[:maxTitle-3]) + "..."
		}
		lines = append(lines, fmt.Sprintf("%4d  %-14s %s %s",
			r.ID, model.RoleLabel(r.OwnerID), style.Render(box), title))
	}
	return lines
}
