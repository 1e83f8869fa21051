package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// uuidType is the identifier scalar used for every entity id and id-valued
// argument. Coercion returns nil for absent, non-string, or malformed values,
// which the executor reports as a field-level error.
var uuidType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "UUID",
	Description: "A canonical UUID string, e.g. 6e3b8f1a-9c27-4f0e-b3d4-2f6d3a8e5c01.",
	Serialize:   coerceUUID,
	ParseValue:  coerceUUID,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if sv, ok := valueAST.(*ast.StringValue); ok {
			return coerceUUID(sv.Value)
		}
		return nil
	},
})

func coerceUUID(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return nil
	}
	return s
}
