// Package graph declares the GraphQL schema for steward: the entity object
// types, the creation and change input types, and the query and mutation
// roots. Types are built as code with lazy field thunks so the mutually
// referential User/Profile/MemberType graph has no declaration-order
// constraint.
package graph

import (
	"context"

	"github.com/graphql-go/graphql"

	"steward/internal/store"
)

type storeKey struct{}

// WithStore returns a context carrying the data-access layer. The request
// handler attaches it once per request; every resolver reads it back through
// resolver params rather than any global.
func WithStore(ctx context.Context, s *store.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// StoreFrom extracts the data-access layer from a resolver's context
func StoreFrom(ctx context.Context) *store.Store {
	s, _ := ctx.Value(storeKey{}).(*store.Store)
	return s
}

func storeFor(p graphql.ResolveParams) *store.Store {
	return StoreFrom(p.Context)
}
