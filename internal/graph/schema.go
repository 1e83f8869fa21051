package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema assembles the executable schema from the query and mutation roots
func NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    newQueryRoot(),
		Mutation: newMutationRoot(),
	})
}
