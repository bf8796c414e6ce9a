package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/stsysd/notebook/config"
	"github.com/stsysd/notebook/export"
	"github.com/stsysd/notebook/model"
	"github.com/stsysd/notebook/notebook"
	"github.com/stsysd/notebook/store"
)

// newRootCmd はルートコマンドを生成します。フラグの既定値は設定から取ります。
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "notebook",
		Short:         "Keep an ordered list of course assignments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "data directory")
	root.PersistentFlags().StringVar(&cfg.Backend, "backend", cfg.Backend, "store backend (sqlite, bolt, memory)")
	root.PersistentFlags().StringVar(&cfg.SlotKey, "key", cfg.SlotKey, "key the list is stored under")

	root.AddCommand(
		newListCmd(cfg),
		newAddCmd(cfg),
		newDeleteCmd(cfg),
		newMoveCmd(cfg),
		newExportCmd(cfg),
	)
	return root
}

// withManager はストアを開いてManagerを用意し、fn の実行後にストアを閉じます。
func withManager(cmd *cobra.Command, cfg *config.Config, fn func(m *notebook.Manager) error) error {
	s, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	adapter := notebook.NewAdapter(s, notebook.WithKey(cfg.SlotKey))
	return fn(notebook.New(cmd.Context(), adapter))
}

func newListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show assignments in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withManager(cmd, cfg, func(m *notebook.Manager) error {
				printList(cmd.OutOrStdout(), m.Assignments())
				return nil
			})
		},
	}
}

func printList(w io.Writer, list []model.Assignment) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No assignments.")
		return
	}
	for i, a := range list {
		fmt.Fprintf(w, "%d  %s\n", i, a.Course)
		if a.Description != "" {
			fmt.Fprintf(w, "   %s\n", a.Description)
		}
		fmt.Fprintf(w, "   Due: %s\n", a.DueDate.Format(export.ShortDate))
	}
}

func newAddCmd(cfg *config.Config) *cobra.Command {
	var course, description, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dueDate, err := model.NewDueDate(due)
			if err != nil {
				return err
			}
			return withManager(cmd, cfg, func(m *notebook.Manager) error {
				a := m.Create(cmd.Context(), course, description, dueDate.Time())
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s at position %d\n", a.ID, m.Len()-1)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&course, "course", "c", "", "course name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "assignment description")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD or RFC3339, default now)")
	return cmd
}

func newDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [--] POSITION...",
		Short: "Delete the assignments at the given positions",
		Long: "Delete the assignments at the given positions.\n" +
			"Out-of-range positions are ignored. Put negative positions after \"--\".",
		Example: "  notebook delete 1 3\n  notebook delete 1,3\n  notebook delete -- -1 0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := parseSelection(args)
			if err != nil {
				return err
			}
			return withManager(cmd, cfg, func(m *notebook.Manager) error {
				m.DeleteAt(cmd.Context(), positions.Values()...)
				printList(cmd.OutOrStdout(), m.Assignments())
				return nil
			})
		},
	}
}

// parseSelection は位置引数を解析し、位置が一つもない場合はエラーにします。
func parseSelection(args []string) (*model.Positions, error) {
	positions, err := model.ParsePositions(args)
	if err != nil {
		return nil, err
	}
	if positions.IsEmpty() {
		return nil, errors.New("no positions given")
	}
	return positions, nil
}

func newMoveCmd(cfg *config.Config) *cobra.Command {
	var to int

	cmd := &cobra.Command{
		Use:   "move --to N [--] POSITION...",
		Short: "Move the assignments at the given positions to start at N",
		Long: "Move the assignments at the given positions so they start at index N\n" +
			"of the resulting list. N is clamped to the list bounds.\n" +
			"Put negative positions after \"--\".",
		Example: "  notebook move --to 3 0 2\n  notebook move --to 0 -- -1 4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := parseSelection(args)
			if err != nil {
				return err
			}
			return withManager(cmd, cfg, func(m *notebook.Manager) error {
				m.Move(cmd.Context(), positions.Values(), to)
				printList(cmd.OutOrStdout(), m.Assignments())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&to, "to", 0, "destination index in the resulting list")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newExportCmd(cfg *config.Config) *cobra.Command {
	var format, out, from, to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the list as json, csv, pdf or svg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromDate, err := parseBound(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			toDate, err := parseBound(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			return withManager(cmd, cfg, func(m *notebook.Manager) error {
				data, err := export.NewExporter(m).WithRange(fromDate, toDate).Export(format)
				if err != nil {
					return err
				}
				if out == "" || out == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(out, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (" + strings.Join(export.Formats, ", ") + ")")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&from, "from", "", "first day of the svg calendar (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day of the svg calendar (YYYY-MM-DD)")
	return cmd
}

// parseBound は空文字列をゼロ値（範囲指定なし）として日付を解析します。
func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := model.NewDueDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(), nil
}
