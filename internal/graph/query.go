package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"steward/internal/store"
)

func newQueryRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: memberTypeIDEnum},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(string)
					if !ok {
						return nil, nil
					}
					mt, err := storeFor(p).GetMemberType(p.Context, id)
					if errors.Is(err, store.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return mt, nil
				},
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(memberTypeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return storeFor(p).ListMemberTypes(p.Context)
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: uuidType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(string)
					if !ok {
						return nil, nil
					}
					post, err := storeFor(p).GetPost(p.Context, id)
					if errors.Is(err, store.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return post, nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					posts, err := storeFor(p).ListPosts(p.Context)
					if err != nil {
						return nil, err
					}
					// Unlike the other collection queries, an empty post
					// collection resolves as null.
					if len(posts) == 0 {
						return nil, nil
					}
					return posts, nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: uuidType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(string)
					if !ok {
						return nil, nil
					}
					user, err := storeFor(p).GetUser(p.Context, id)
					if errors.Is(err, store.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return user, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return storeFor(p).ListUsers(p.Context)
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: uuidType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(string)
					if !ok {
						return nil, nil
					}
					profile, err := storeFor(p).GetProfile(p.Context, id)
					if errors.Is(err, store.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return profile, nil
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(profileType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return storeFor(p).ListProfiles(p.Context)
				},
			},
		},
	})
}
