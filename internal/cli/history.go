package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stocktracker/journal"
)

var errNoJournal = errors.New("no journal configured (use --journal or journal.path)")

func newHistoryCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse reports archived in the journal",
		Long: `Query reports archived in the SQLite journal.

Subcommands:
  list         - List archived reports, newest first (--org for full detail)
  show <id>    - Show one archived report with its rows

Examples:
  tracker --journal ./tracker.sqlite history list
  tracker --journal ./tracker.sqlite history show 01HQZX3V9K2M4N5P6Q7R8S9T0V`,
	}

	var org bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List archived reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(e)
			if err != nil {
				return err
			}
			defer j.Close()

			snaps, err := j.ListSnapshots(cmd.Context())
			if err != nil {
				return fmt.Errorf("list snapshots: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(out, "No reports archived yet.")
				return nil
			}

			if org {
				full := make([]journal.Snapshot, 0, len(snaps))
				for _, s := range snaps {
					withRows, err := j.GetSnapshot(cmd.Context(), s.ID)
					if err != nil {
						return fmt.Errorf("get snapshot: %w", err)
					}
					full = append(full, withRows)
				}
				fmt.Fprint(out, journal.FormatSnapshotsOrg(full))
				return nil
			}

			for _, s := range snaps {
				fmt.Fprintf(out, "%s  %s  %10d  %s\n",
					s.ID, s.SavedAt.Local().Format("2006-01-02 15:04:05"), s.Report.Total, s.File)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&org, "org", false, "Print every report with its rows as Org-mode blocks")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one archived report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(e)
			if err != nil {
				return err
			}
			defer j.Close()

			s, err := j.GetSnapshot(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get snapshot: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatSnapshotOrg(s))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func openJournal(e *env) (*journal.SQLite, error) {
	if e.cfg == nil || e.cfg.Journal.Path == "" {
		return nil, errNoJournal
	}
	j, err := journal.OpenSQLite(e.cfg.Journal.Path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}
