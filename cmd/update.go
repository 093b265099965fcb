package cmd

import (
	"context"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/spf13/cobra"

	"github.com/garagehq/garage/internal/graph"
	"github.com/garagehq/garage/internal/ui"
)

var (
	updateName         string
	updateManufacturer string
	updateYear         int32
)

var updateCmd = &cobra.Command{
	Use:   "update <vehicle-id>",
	Short: "Overwrite a vehicle's fields",
	Long: `Overwrites name, manufacturer and year of the given vehicle. All three
values are required; there is no partial update.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := graph.NewResolver(store, jokeSvc, logger)
		v, err := resolver.UpdateVehicle(context.Background(), struct {
			ID           graphql.ID
			Name         string
			Manufacturer string
			Year         int32
		}{ID: graphql.ID(args[0]), Name: updateName, Manufacturer: updateManufacturer, Year: updateYear})
		if err != nil {
			return fmt.Errorf("updating vehicle: %w", err)
		}
		if v == nil {
			fmt.Println(ui.Muted.Render("Nothing changed (vehicle not found, or values already identical)."))
			return nil
		}

		fmt.Printf("%s %s %s %s\n",
			ui.ID.Render(string(v.ID())),
			ui.Title.Render(v.Name()),
			ui.Manufacturer.Render(v.Manufacturer()),
			ui.Year.Render(fmt.Sprintf("%d", v.Year())))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "New vehicle name")
	updateCmd.Flags().StringVarP(&updateManufacturer, "manufacturer", "m", "", "New manufacturer")
	updateCmd.Flags().Int32VarP(&updateYear, "year", "y", 0, "New model year")
	_ = updateCmd.MarkFlagRequired("name")
	_ = updateCmd.MarkFlagRequired("manufacturer")
	_ = updateCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(updateCmd)
}
