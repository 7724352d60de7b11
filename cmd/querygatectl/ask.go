package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/gateway"
	"github.com/Annany2002/querygate/internal/nl2sql"
	"github.com/Annany2002/querygate/internal/prompt"
	"github.com/Annany2002/querygate/internal/storage"
)

func newAskCmd() *cobra.Command {
	var execute bool

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Generate a SELECT statement for a question, optionally running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			generator, err := nl2sql.NewGenerator(ctx, cfg.LLM)
			if err != nil {
				return fmt.Errorf("create %s generator: %w", cfg.LLM.Provider, err)
			}
			opts := gateway.Options{GenerationTimeout: cfg.LLM.Timeout, QueryTimeout: cfg.DB.QueryTimeout}
			builder := prompt.NewBuilder(prompt.DialectForDriver(cfg.DB.Driver))

			if !execute {
				svc := gateway.NewService(builder, generator, nil, opts)
				query, err := svc.Translate(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), query)
				return nil
			}

			db, err := storage.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := gateway.NewService(builder, generator, storage.NewExecutor(db), opts)
			result, err := svc.Ask(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Query)
			if len(result.Results) == 0 {
				pterm.Info.Println("No rows returned.")
				return nil
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData(result.Results)).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&execute, "execute", false, "run the generated statement against the database")
	return cmd
}

// tableData lays rows out under a sorted header. Missing columns render empty.
func tableData(rows []map[string]any) pterm.TableData {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for col := range row {
			seen[col] = struct{}{}
		}
	}
	header := make([]string, 0, len(seen))
	for col := range seen {
		header = append(header, col)
	}
	sort.Strings(header)

	data := pterm.TableData{header}
	for _, row := range rows {
		line := make([]string, len(header))
		for i, col := range header {
			if v, ok := row[col]; ok && v != nil {
				line[i] = fmt.Sprint(v)
			} else if ok {
				line[i] = "NULL"
			}
		}
		data = append(data, line)
	}
	return data
}
