package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"steward/internal/store"
	"steward/pkg/models"
)

// memberTypeIDEnum is a plain var initializer so the input types can
// reference it; the object types are assigned in init so their field thunks
// can reference each other (User -> Profile -> MemberType and User -> User
// via subscriptions) without an ordering constraint.
var memberTypeIDEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "MemberTypeId",
	Values: graphql.EnumValueConfigMap{
		models.MemberTypeBasic: &graphql.EnumValueConfig{
			Value: models.MemberTypeBasic,
		},
		models.MemberTypeBusiness: &graphql.EnumValueConfig{
			Value: models.MemberTypeBusiness,
		},
	},
})

var (
	memberTypeType *graphql.Object
	postType       *graphql.Object
	userType       *graphql.Object
	profileType    *graphql.Object
)

func init() {
	memberTypeType = graphql.NewObject(graphql.ObjectConfig{
		Name: "MemberType",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: memberTypeIDEnum},
			"discount":           &graphql.Field{Type: graphql.Float},
			"postsLimitPerMonth": &graphql.Field{Type: graphql.Int},
		},
	})

	postType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: uuidType},
			"title":    &graphql.Field{Type: graphql.String},
			"content":  &graphql.Field{Type: graphql.String},
			"authorId": &graphql.Field{Type: graphql.String},
		},
	})

	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":      &graphql.Field{Type: uuidType},
				"name":    &graphql.Field{Type: graphql.String},
				"balance": &graphql.Field{Type: graphql.Float},
				"profile": &graphql.Field{
					Type:    profileType,
					Resolve: resolveUserProfile,
				},
				"posts": &graphql.Field{
					Type:    graphql.NewList(postType),
					Resolve: resolveUserPosts,
				},
				"subscribedToUser": &graphql.Field{
					Type:    graphql.NewList(userType),
					Resolve: resolveSubscribedToUser,
				},
				"userSubscribedTo": &graphql.Field{
					Type:    graphql.NewList(userType),
					Resolve: resolveUserSubscribedTo,
				},
			}
		}),
	})

	profileType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":           &graphql.Field{Type: uuidType},
				"isMale":       &graphql.Field{Type: graphql.Boolean},
				"yearOfBirth":  &graphql.Field{Type: graphql.Int},
				"userId":       &graphql.Field{Type: graphql.String},
				"memberTypeId": &graphql.Field{Type: graphql.String},
				"memberType": &graphql.Field{
					Type:    memberTypeType,
					Resolve: resolveProfileMemberType,
				},
			}
		}),
	})
}

// Relation resolvers. Each one issues its own store call per parent object;
// there is no batching or per-request caching across siblings.

func resolveUserProfile(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := userSource(p.Source)
	if !ok {
		return nil, nil
	}
	profile, err := storeFor(p).GetProfileByUserID(p.Context, parent.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func resolveUserPosts(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := userSource(p.Source)
	if !ok {
		return nil, nil
	}
	return storeFor(p).ListPostsByAuthor(p.Context, parent.ID)
}

func resolveSubscribedToUser(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := userSource(p.Source)
	if !ok {
		return nil, nil
	}
	return storeFor(p).ListSubscribers(p.Context, parent.ID)
}

func resolveUserSubscribedTo(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := userSource(p.Source)
	if !ok {
		return nil, nil
	}
	return storeFor(p).ListSubscribedTo(p.Context, parent.ID)
}

func resolveProfileMemberType(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := profileSource(p.Source)
	if !ok {
		return nil, nil
	}
	mt, err := storeFor(p).GetMemberType(p.Context, parent.MemberTypeID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mt, nil
}

// Single-entity resolvers receive pointers, list resolvers produce values.
// These helpers accept either shape.

func userSource(source interface{}) (models.User, bool) {
	switch v := source.(type) {
	case models.User:
		return v, true
	case *models.User:
		return *v, true
	}
	return models.User{}, false
}

func profileSource(source interface{}) (models.Profile, bool) {
	switch v := source.(type) {
	case models.Profile:
		return v, true
	case *models.Profile:
		return *v, true
	}
	return models.Profile{}, false
}
