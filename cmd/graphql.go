package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/garagehq/garage/internal/graph"
)

var (
	queryJSON       bool
	queryVariables  string
	queryOperation  string
	querySchemaOnly bool
)

var graphqlCmd = &cobra.Command{
	Use:     "graphql <query>",
	Aliases: []string{"query"},
	Short:   "Execute a GraphQL query or mutation",
	Long: `Execute a GraphQL query or mutation against the inventory.

The argument should be a valid GraphQL query or mutation string.

Examples:
  # List all vehicles with parts and jokes
  garage graphql '{ vehicles { id name manufacturer year joke parts { name price } } }'

  # Get a specific vehicle
  garage graphql '{ vehicle(id: "65fa2b9e1c4ae5c1d2e3f4a5") { name year } }'

  # Filter by year range
  garage graphql '{ vehiclesByYearRange(startYear: 2000, endYear: 2010) { name year } }'

  # Add a vehicle
  garage graphql 'mutation { addVehicle(name: "Mustang", manufacturer: "Ford", year: 1969) { id } }'

  # Use variables
  garage graphql -V '{"id": "65fa..."}' 'query Get($id: ID!) { vehicle(id: $id) { name } }'

  # Read from stdin (useful for complex queries or escaping issues)
  echo '{ parts { name price } }' | garage graphql

  # Print the schema
  garage graphql --schema`,
	Args: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return nil
		}
		// Allow 0 args if stdin has data, or exactly 1 arg
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 argument (the GraphQL query)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Schema-only mode
		if querySchemaOnly {
			fmt.Print(graph.Schema)
			return nil
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return fmt.Errorf("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		var variables map[string]interface{}
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return fmt.Errorf("invalid variables JSON: %w", err)
			}
		}

		result, err := executeQuery(query, variables, queryOperation)
		if err != nil {
			return err
		}

		if queryJSON {
			fmt.Println(string(result))
		} else {
			prettyPrint(result)
		}

		return nil
	},
}

// readFromStdin reads the query from stdin if data is available.
func readFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// If stdin is a terminal (no pipe), return empty
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// executeQuery runs a GraphQL query against the inventory.
// On success, it returns just the data portion of the response.
func executeQuery(query string, variables map[string]interface{}, operationName string) ([]byte, error) {
	schema := graph.MustParseSchema(graph.NewResolver(store, jokeSvc, logger))

	resp := schema.Exec(context.Background(), query, operationName, variables)
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		if len(msgs) == 1 {
			return nil, fmt.Errorf("graphql: %s", msgs[0])
		}
		return nil, fmt.Errorf("graphql errors:\n  %s", strings.Join(msgs, "\n  "))
	}

	return resp.Data, nil
}

// prettyPrint outputs the JSON with colors and indentation.
func prettyPrint(data []byte) {
	fmt.Println(string(pretty.Color(pretty.Pretty(data), nil)))
}

func init() {
	graphqlCmd.Flags().BoolVar(&queryJSON, "json", false, "Output raw JSON (no formatting)")
	graphqlCmd.Flags().StringVarP(&queryVariables, "variables", "V", "", "Query variables as JSON string")
	graphqlCmd.Flags().StringVarP(&queryOperation, "operation", "o", "", "Operation name (for multi-operation documents)")
	graphqlCmd.Flags().BoolVar(&querySchemaOnly, "schema", false, "Print the GraphQL schema and exit")
	rootCmd.AddCommand(graphqlCmd)
}
