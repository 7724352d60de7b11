package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/seed"
	"github.com/Annany2002/querygate/internal/storage"
)

func newSeedCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the college tables with fake rows for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 {
				return errors.New("--rows must be positive")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			db, err := storage.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			inserted, err := seed.NewSeeder(db, cfg.DB.Driver, rows).Run(ctx, seed.CollegeTables())
			if err != nil {
				return err
			}

			data := pterm.TableData{{"table", "rows"}}
			for _, table := range []string{"departments", "professors", "students", "courses", "enrollments"} {
				data = append(data, []string{table, fmt.Sprint(inserted[table])})
			}
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 25, "rows to insert into each table")
	return cmd
}
