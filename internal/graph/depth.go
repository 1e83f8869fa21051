package graph

import (
	"fmt"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
)

// DefaultMaxDepth is the number of nested selection levels a single operation
// may use.
const DefaultMaxDepth = 5

// CheckDepth walks every operation in the document and reports a single error
// for the first one whose selection nesting exceeds limit. Fragment spreads
// count at the depth where they are spread.
func CheckDepth(doc *ast.Document, limit int) []gqlerrors.FormattedError {
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, def := range doc.Definitions {
		if frag, ok := def.(*ast.FragmentDefinition); ok && frag.Name != nil {
			fragments[frag.Name.Value] = frag
		}
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		depth := selectionSetDepth(op.SelectionSet, fragments, make(map[string]bool))
		if depth > limit {
			return []gqlerrors.FormattedError{
				gqlerrors.NewFormattedError(fmt.Sprintf("operation exceeds maximum depth of %d", limit)),
			}
		}
	}
	return nil
}

func selectionSetDepth(set *ast.SelectionSet, fragments map[string]*ast.FragmentDefinition, visiting map[string]bool) int {
	if set == nil || len(set.Selections) == 0 {
		return 0
	}

	max := 0
	for _, selection := range set.Selections {
		depth := 0
		switch sel := selection.(type) {
		case *ast.Field:
			depth = 1 + selectionSetDepth(sel.SelectionSet, fragments, visiting)
		case *ast.InlineFragment:
			// Inline fragments do not add a level of their own.
			depth = selectionSetDepth(sel.SelectionSet, fragments, visiting)
		case *ast.FragmentSpread:
			if sel.Name == nil {
				continue
			}
			name := sel.Name.Value
			if visiting[name] {
				continue
			}
			frag, ok := fragments[name]
			if !ok {
				continue
			}
			visiting[name] = true
			depth = selectionSetDepth(frag.SelectionSet, fragments, visiting)
			delete(visiting, name)
		}
		if depth > max {
			max = depth
		}
	}
	return max
}
