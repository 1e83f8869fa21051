package graph

import (
	"github.com/graphql-go/graphql"
)

var (
	createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"balance": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	changeUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ChangeUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"balance": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	createProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateProfileInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"userId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(uuidType)},
			"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(memberTypeIDEnum)},
			"isMale":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			"yearOfBirth":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	// The user binding is immutable after creation, so ChangeProfileInput has
	// no userId field.
	changeProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ChangeProfileInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"memberTypeId": &graphql.InputObjectFieldConfig{Type: memberTypeIDEnum},
			"isMale":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"yearOfBirth":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	createPostInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(uuidType)},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	changePostInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ChangePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"authorId": &graphql.InputObjectFieldConfig{Type: uuidType},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
)

// Argument decoding helpers. Input objects arrive as map[string]interface{}
// with absent optional fields simply missing from the map.

func optString(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func optFloat(args map[string]interface{}, key string) *float64 {
	if v, ok := args[key].(float64); ok {
		return &v
	}
	return nil
}

func optInt(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}

func optBool(args map[string]interface{}, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}
