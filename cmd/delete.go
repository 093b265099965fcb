package cmd

import (
	"context"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/spf13/cobra"

	"github.com/garagehq/garage/internal/graph"
	"github.com/garagehq/garage/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"rm"},
	Short:   "Remove a part from the inventory",
}

var deletePartCmd = &cobra.Command{
	Use:   "part <id>",
	Short: "Remove a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := graph.NewResolver(store, jokeSvc, logger)
		p, err := resolver.DeletePart(context.Background(), struct{ ID graphql.ID }{ID: graphql.ID(args[0])})
		if err != nil {
			return fmt.Errorf("deleting part: %w", err)
		}
		if p == nil {
			fmt.Println(ui.Muted.Render("No such part."))
			return nil
		}

		fmt.Printf("Deleted %s %s\n", ui.Title.Render(p.Name()), ui.ID.Render(string(p.ID())))
		return nil
	},
}

func init() {
	deleteCmd.AddCommand(deletePartCmd)
	rootCmd.AddCommand(deleteCmd)
}
