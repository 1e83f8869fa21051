package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
	"github.com/prometheus/client_golang/prometheus"

	"steward/internal/graph"
	"steward/internal/store"
	"steward/pkg/logging"
	"steward/pkg/middleware"
)

var (
	st       *store.Store
	logger   logging.Logger
	schema   graphql.Schema
	maxDepth int

	gqlOperations *prometheus.CounterVec
	gqlDuration   *prometheus.HistogramVec
)

// Init initializes the handlers with the store, logger, and executable schema
func Init(s *store.Store, log logging.Logger, gqlSchema graphql.Schema, depth int) {
	st = s
	logger = log
	schema = gqlSchema
	maxDepth = depth
}

// SetMetrics wires the GraphQL operation metrics into the handler
func SetMetrics(operations *prometheus.CounterVec, duration *prometheus.HistogramVec) {
	gqlOperations = operations
	gqlDuration = duration
}

// GraphQLRequest is the POST / body. Variables are optional; no other
// properties are accepted.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQL accepts a GraphQL document plus optional variables, runs the
// parse/validate/execute pipeline, and returns the standard response
// envelope. Request-level failures (parse, validation, depth) return
// {errors} with no data key; execution results are returned verbatim.
func GraphQL(c middleware.Context) {
	var req GraphQLRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.WithError(err).Warn("Invalid GraphQL request body")
		c.JSON(http.StatusBadRequest, middleware.H{"error": err.Error()})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, middleware.H{"error": "query is required"})
		return
	}

	astDoc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{
			Body: []byte(req.Query),
			Name: "GraphQL request",
		}),
	})
	if err != nil {
		c.JSON(http.StatusOK, middleware.H{"errors": gqlerrors.FormatErrors(err)})
		return
	}

	// Schema validation and the depth rule report at most one error.
	if validation := graphql.ValidateDocument(&schema, astDoc, nil); !validation.IsValid {
		c.JSON(http.StatusOK, middleware.H{"errors": validation.Errors[:1]})
		return
	}
	if errs := graph.CheckDepth(astDoc, maxDepth); len(errs) > 0 {
		c.JSON(http.StatusOK, middleware.H{"errors": errs})
		return
	}

	operation := operationType(astDoc)
	start := time.Now()
	result := execute(c, astDoc, req.Variables)
	if gqlDuration != nil {
		gqlDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
	if gqlOperations != nil {
		status := "ok"
		if len(result.Errors) > 0 {
			status = "error"
		}
		gqlOperations.WithLabelValues(operation, status).Inc()
	}

	if result.Data == nil && len(result.Errors) > 0 {
		c.JSON(http.StatusOK, middleware.H{"errors": result.Errors})
		return
	}
	resp := middleware.H{"data": result.Data}
	if len(result.Errors) > 0 {
		resp["errors"] = result.Errors
	}
	c.JSON(http.StatusOK, resp)
}

// execute runs the document against the schema with the store attached to the
// request context. A panic that escapes the executor's own per-field recovery
// is converted into an error envelope instead of reaching the transport.
func execute(c middleware.Context, astDoc *ast.Document, variables map[string]interface{}) (result *graphql.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("GraphQL execution panic")
			result = &graphql.Result{
				Errors: gqlerrors.FormatErrors(errors.New("internal server error")),
			}
		}
	}()

	return graphql.Execute(graphql.ExecuteParams{
		Schema:  schema,
		AST:     astDoc,
		Args:    variables,
		Context: graph.WithStore(c.Request.Context(), st),
	})
}

func operationType(astDoc *ast.Document) string {
	for _, def := range astDoc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			return op.Operation
		}
	}
	return "unknown"
}
