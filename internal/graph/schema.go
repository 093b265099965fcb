package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the GraphQL schema served at /graphql. Vehicle.parts and
// Vehicle.joke are derived per read; they are null on queries that return
// bare vehicle fields only.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		vehicles: [Vehicle!]!
		vehicle(id: ID!): Vehicle
		parts: [Part!]!
		vehiclesByManufacturer(manufacturer: String!): [Vehicle!]!
		partsByVehicle(vehicleId: ID!): [Part!]!
		vehiclesByYearRange(startYear: Int!, endYear: Int!): [Vehicle!]!
		searchVehicles(query: String!): [Vehicle!]!
	}

	type Mutation {
		addVehicle(name: String!, manufacturer: String!, year: Int!): Vehicle!
		addPart(name: String!, price: Float!, vehicleId: ID!): Part!
		updateVehicle(id: ID!, name: String!, manufacturer: String!, year: Int!): Vehicle
		deletePart(id: ID!): Part
	}

	type Vehicle {
		id: ID!
		name: String!
		manufacturer: String!
		year: Int!
		joke: String
		parts: [Part!]
	}

	type Part {
		id: ID!
		name: String!
		price: Float!
		vehicleId: ID!
	}
`

// MustParseSchema parses Schema against the given resolver, panicking on
// mismatch. Called once at startup.
func MustParseSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
