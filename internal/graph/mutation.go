package graph

import (
	"github.com/graphql-go/graphql"

	"steward/internal/store"
)

func newMutationRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutations",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto := p.Args["dto"].(map[string]interface{})
					return storeFor(p).CreateUser(p.Context, store.CreateUserParams{
						Name:    dto["name"].(string),
						Balance: dto["balance"].(float64),
					})
				},
			},
			"changeUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changeUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto := p.Args["dto"].(map[string]interface{})
					return storeFor(p).UpdateUser(p.Context, p.Args["id"].(string), store.UpdateUserParams{
						Name:    optString(dto, "name"),
						Balance: optFloat(dto, "balance"),
					})
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := storeFor(p).DeleteUser(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"createProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProfileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto := p.Args["dto"].(map[string]interface{})
					return storeFor(p).CreateProfile(p.Context, store.CreateProfileParams{
						UserID:       dto["userId"].(string),
						MemberTypeID: dto["memberTypeId"].(string),
						IsMale:       dto["isMale"].(bool),
						YearOfBirth:  dto["yearOfBirth"].(int),
					})
				},
			},
			"changeProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changeProfileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto := p.Args["dto"].(map[string]interface{})
					return storeFor(p).UpdateProfile(p.Context, p.Args["id"].(string), store.UpdateProfileParams{
						MemberTypeID: optString(dto, "memberTypeId"),
						IsMale:       optBool(dto, "isMale"),
						YearOfBirth:  optInt(dto, "yearOfBirth"),
					})
				},
			},
			"deleteProfile": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := storeFor(p).DeleteProfile(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto := p.Args["dto"].(map[string]interface{})
					return storeFor(p).CreatePost(p.Context, store.CreatePostParams{
						AuthorID: dto["authorId"].(string),
						Content:  dto["content"].(string),
						Title:    dto["title"].(string),
					})
				},
			},
			"changePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changePostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto := p.Args["dto"].(map[string]interface{})
					return storeFor(p).UpdatePost(p.Context, p.Args["id"].(string), store.UpdatePostParams{
						AuthorID: optString(dto, "authorId"),
						Title:    optString(dto, "title"),
						Content:  optString(dto, "content"),
					})
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := storeFor(p).DeletePost(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"subscribeTo": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID := p.Args["userId"].(string)
					authorID := p.Args["authorId"].(string)
					s := storeFor(p)
					if err := s.Subscribe(p.Context, userID, authorID); err != nil {
						return nil, err
					}
					return s.GetUser(p.Context, userID)
				},
			},
			"unsubscribeFrom": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					err := storeFor(p).Unsubscribe(p.Context, p.Args["userId"].(string), p.Args["authorId"].(string))
					if err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})
}
