package main

import (
	"fmt"
	"strconv"

	"movieland/loader"

	"github.com/spf13/cobra"
)

func newInitDBCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the database file and all tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLoader(func(l *loader.Loader) error {
				if _, err := l.InitSchema(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Database and tables created successfully.")
				return nil
			})
		},
	}
}

func newSeedDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-demo",
		Short: "Insert a handful of demo movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLoader(func(l *loader.Loader) error {
				n, err := l.SeedDemo(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d demo movies.\n", n)
				return nil
			})
		},
	}
}

func newLoadCSVCommand(ctx *commandContext) *cobra.Command {
	opts := loader.DefaultCSVOptions()

	cmd := &cobra.Command{
		Use:   "load-csv <path>",
		Short: "Load movies from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLoader(func(l *loader.Loader) error {
				res, err := l.ImportCSVFile(cmd.Context(), args[0], opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d movies from CSV.\n", res.Inserted)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.TitleColumn, "source-title-column", opts.TitleColumn, "Column containing the movie title")
	cmd.Flags().StringVar(&opts.YearColumn, "source-year-column", opts.YearColumn, "Column with year or YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.DescriptionColumn, "source-description-column", opts.DescriptionColumn, "Column with movie description (empty to skip)")
	cmd.Flags().IntVar(&opts.MaxRows, "max-rows", opts.MaxRows, "Maximum number of rows to import (0 = no limit)")

	return cmd
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLoader(func(l *loader.Loader) error {
				movies, err := l.ListMovies(cmd.Context())
				if err != nil {
					return err
				}
				if len(movies) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies stored.")
					return nil
				}

				rows := make([][]string, 0, len(movies))
				for _, m := range movies {
					desc := ""
					if m.Description != nil {
						desc = *m.Description
					}
					rows = append(rows, []string{strconv.FormatInt(m.ID, 10), m.Title, strconv.Itoa(m.Year), desc})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Year", "Description"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}
