package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garagehq/garage/internal/graph"
	"github.com/garagehq/garage/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over vehicles",
	Long: `Searches vehicle names and manufacturers. Query string syntax applies:

  garage search mustang
  garage search 'manufacturer:ford'
  garage search 'mod*'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := graph.NewResolver(store, jokeSvc, logger)
		hits, err := resolver.SearchVehicles(context.Background(), struct{ Query string }{Query: args[0]})
		if err != nil {
			return fmt.Errorf("searching vehicles: %w", err)
		}

		if len(hits) == 0 {
			fmt.Println(ui.Muted.Render("No matches."))
			return nil
		}
		for _, v := range hits {
			fmt.Printf("%s  %s  %s %s\n",
				ui.ID.Render(string(v.ID())),
				ui.Title.Render(v.Name()),
				ui.Manufacturer.Render(v.Manufacturer()),
				ui.Year.Render(fmt.Sprintf("%d", v.Year())),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
