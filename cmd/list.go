package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garagehq/garage/internal/ident"
	"github.com/garagehq/garage/internal/ui"
)

var (
	listParts bool
	listJSON  bool
	listQuiet bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List vehicles or parts",
	Long:    `Lists all vehicles in the inventory, or all parts with --parts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if listParts {
			return listAllParts(ctx)
		}
		return listAllVehicles(ctx)
	},
}

func listAllVehicles(ctx context.Context) error {
	vehicles, err := store.Vehicles(ctx)
	if err != nil {
		return fmt.Errorf("listing vehicles: %w", err)
	}

	if listJSON {
		type vehicleOut struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Manufacturer string `json:"manufacturer"`
			Year         int32  `json:"year"`
		}
		out := make([]vehicleOut, 0, len(vehicles))
		for _, v := range vehicles {
			out = append(out, vehicleOut{
				ID:           ident.Encode(v.ID),
				Name:         v.Name,
				Manufacturer: v.Manufacturer,
				Year:         v.Year,
			})
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	if listQuiet {
		for _, v := range vehicles {
			fmt.Println(ident.Encode(v.ID))
		}
		return nil
	}

	if len(vehicles) == 0 {
		fmt.Println(ui.Muted.Render("No vehicles found. Add one with: garage create vehicle <name>"))
		return nil
	}

	for _, v := range vehicles {
		fmt.Printf("%s  %s  %s %s\n",
			ui.ID.Render(ident.Encode(v.ID)),
			ui.Title.Render(v.Name),
			ui.Manufacturer.Render(v.Manufacturer),
			ui.Year.Render(fmt.Sprintf("%d", v.Year)),
		)
	}
	return nil
}

func listAllParts(ctx context.Context) error {
	parts, err := store.Parts(ctx)
	if err != nil {
		return fmt.Errorf("listing parts: %w", err)
	}

	if listJSON {
		type partOut struct {
			ID        string  `json:"id"`
			Name      string  `json:"name"`
			Price     float64 `json:"price"`
			VehicleID string  `json:"vehicleId"`
		}
		out := make([]partOut, 0, len(parts))
		for _, p := range parts {
			out = append(out, partOut{
				ID:        ident.Encode(p.ID),
				Name:      p.Name,
				Price:     p.Price,
				VehicleID: p.VehicleID,
			})
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	if listQuiet {
		for _, p := range parts {
			fmt.Println(ident.Encode(p.ID))
		}
		return nil
	}

	if len(parts) == 0 {
		fmt.Println(ui.Muted.Render("No parts found. Add one with: garage create part <name>"))
		return nil
	}

	for _, p := range parts {
		fmt.Printf("%s  %s  %s  %s\n",
			ui.ID.Render(ident.Encode(p.ID)),
			ui.Title.Render(p.Name),
			ui.Price.Render(fmt.Sprintf("%.2f", p.Price)),
			ui.Muted.Render("vehicle "+p.VehicleID),
		)
	}
	return nil
}

func init() {
	listCmd.Flags().BoolVar(&listParts, "parts", false, "List parts instead of vehicles")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only print IDs")
	rootCmd.AddCommand(listCmd)
}
