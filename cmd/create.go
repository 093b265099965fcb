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
	createManufacturer string
	createYear         int32
	createPrice        float64
	createVehicleID    string
)

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add", "new"},
	Short:   "Add a vehicle or part to the inventory",
}

var createVehicleCmd = &cobra.Command{
	Use:   "vehicle <name>",
	Short: "Add a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := graph.NewResolver(store, jokeSvc, logger)
		v, err := resolver.AddVehicle(context.Background(), struct {
			Name         string
			Manufacturer string
			Year         int32
		}{Name: args[0], Manufacturer: createManufacturer, Year: createYear})
		if err != nil {
			return fmt.Errorf("adding vehicle: %w", err)
		}

		fmt.Printf("%s %s\n", ui.Title.Render(v.Name()), ui.ID.Render(string(v.ID())))
		return nil
	},
}

var createPartCmd = &cobra.Command{
	Use:   "part <name>",
	Short: "Add a part",
	Long: `Adds a part referencing a vehicle by id.

The referenced vehicle is not checked for existence; a part may carry a
dangling reference.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := graph.NewResolver(store, jokeSvc, logger)
		p, err := resolver.AddPart(context.Background(), struct {
			Name      string
			Price     float64
			VehicleID graphql.ID
		}{Name: args[0], Price: createPrice, VehicleID: graphql.ID(createVehicleID)})
		if err != nil {
			return fmt.Errorf("adding part: %w", err)
		}

		fmt.Printf("%s %s %s\n",
			ui.Title.Render(p.Name()),
			ui.Price.Render(fmt.Sprintf("%.2f", p.Price())),
			ui.ID.Render(string(p.ID())))
		return nil
	},
}

func init() {
	createVehicleCmd.Flags().StringVarP(&createManufacturer, "manufacturer", "m", "", "Vehicle manufacturer")
	createVehicleCmd.Flags().Int32VarP(&createYear, "year", "y", 0, "Model year")
	_ = createVehicleCmd.MarkFlagRequired("manufacturer")
	_ = createVehicleCmd.MarkFlagRequired("year")

	createPartCmd.Flags().Float64VarP(&createPrice, "price", "p", 0, "Part price")
	createPartCmd.Flags().StringVar(&createVehicleID, "vehicle", "", "Vehicle id the part belongs to")
	_ = createPartCmd.MarkFlagRequired("price")
	_ = createPartCmd.MarkFlagRequired("vehicle")

	createCmd.AddCommand(createVehicleCmd)
	createCmd.AddCommand(createPartCmd)
	rootCmd.AddCommand(createCmd)
}
