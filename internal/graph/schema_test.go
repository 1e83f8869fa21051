package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/graphql-go/graphql"
	"github.com/lib/pq"

	"steward/internal/store"
	"steward/pkg/logging"
)

const (
	aliceID = "9b2e7a10-68b1-4f0e-8c60-2d3c5a1b4e90"
	bobID   = "4d5e6f70-8192-4d3e-afb0-2c3d4e5f6071"
)

// newTestExec builds the schema and a sqlmock-backed store, returning a run
// function that executes a request the way the HTTP handler does.
func newTestExec(t *testing.T) (sqlmock.Sqlmock, func(query string, vars map[string]interface{}) *graphql.Result) {
	t.Helper()

	schema, err := NewSchema()
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	mock.MatchExpectationsInOrder(false)

	s := store.New(db, logging.NewLogger())
	run := func(query string, vars map[string]interface{}) *graphql.Result {
		return graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  query,
			VariableValues: vars,
			Context:        WithStore(context.Background(), s),
		})
	}
	return mock, run
}

func dataMap(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()
	data, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map data, got %T (%v)", result.Data, result.Errors)
	}
	return data
}

func TestQueryUserNotFoundIsNull(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectQuery("SELECT id, name, balance").
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}))

	result := run(`{ user(id: "`+aliceID+`") { id name } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	if dataMap(t, result)["user"] != nil {
		t.Fatalf("expected null user, got %v", result.Data)
	}
}

func TestEmptyCollectionAsymmetry(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectQuery("SELECT id, title, content, author_id FROM posts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id"}))
	mock.ExpectQuery("SELECT id, name, balance FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}))

	result := run(`{ posts { id } users { id } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	data := dataMap(t, result)
	if data["posts"] != nil {
		t.Fatalf("expected posts to resolve as null when empty, got %v", data["posts"])
	}
	users, ok := data["users"].([]interface{})
	if !ok || len(users) != 0 {
		t.Fatalf("expected users to resolve as empty list, got %v", data["users"])
	}
}

func TestQueryMemberTypes(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectQuery("SELECT id, discount, posts_limit_per_month FROM member_types").
		WillReturnRows(sqlmock.NewRows([]string{"id", "discount", "posts_limit_per_month"}).
			AddRow("basic", 0.0, 20).
			AddRow("business", 7.5, 100))

	result := run(`{ memberTypes { id discount postsLimitPerMonth } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	memberTypes, ok := dataMap(t, result)["memberTypes"].([]interface{})
	if !ok || len(memberTypes) != 2 {
		t.Fatalf("expected two member types, got %v", result.Data)
	}
}

func TestCreateUserRoundTrip(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "Alice", 100.5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result := run(`mutation { createUser(dto: { name: "Alice", balance: 100.5 }) { id name balance } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	user, ok := dataMap(t, result)["createUser"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected created user, got %v", result.Data)
	}
	if user["name"] != "Alice" || user["balance"] != 100.5 {
		t.Fatalf("unexpected created user: %v", user)
	}
	if user["id"] == nil || user["id"] == "" {
		t.Fatal("expected generated id in response")
	}
}

func TestUserProfileNullWhenAbsent(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectQuery("SELECT id, name, balance").
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(aliceID, "Alice", 100.5))
	mock.ExpectQuery("SELECT id, is_male, year_of_birth, user_id, member_type_id").
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_male", "year_of_birth", "user_id", "member_type_id"}))

	result := run(`{ user(id: "`+aliceID+`") { id profile { id } } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	user, ok := dataMap(t, result)["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user, got %v", result.Data)
	}
	if user["profile"] != nil {
		t.Fatalf("expected null profile, got %v", user["profile"])
	}
}

func TestProfileMemberTypeRelation(t *testing.T) {
	mock, run := newTestExec(t)
	profileID := "2b3c4d5e-6f70-4b1c-8d9e-0f1a2b3c4d5e"
	mock.ExpectQuery("SELECT id, is_male, year_of_birth, user_id, member_type_id").
		WithArgs(profileID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_male", "year_of_birth", "user_id", "member_type_id"}).
			AddRow(profileID, true, 1990, aliceID, "business"))
	mock.ExpectQuery("SELECT id, discount, posts_limit_per_month").
		WithArgs("business").
		WillReturnRows(sqlmock.NewRows([]string{"id", "discount", "posts_limit_per_month"}).
			AddRow("business", 7.5, 100))

	result := run(`{ profile(id: "`+profileID+`") { id memberType { id discount } } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	profile := dataMap(t, result)["profile"].(map[string]interface{})
	memberType, ok := profile["memberType"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected member type, got %v", profile)
	}
	if memberType["id"] != "business" || memberType["discount"] != 7.5 {
		t.Fatalf("unexpected member type: %v", memberType)
	}
}

func TestSubscribeToReturnsSubscriber(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs(aliceID, bobID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name, balance").
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(aliceID, "Alice", 100.5))

	result := run(`mutation { subscribeTo(userId: "`+aliceID+`", authorId: "`+bobID+`") { id name } }`, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	user, ok := dataMap(t, result)["subscribeTo"].(map[string]interface{})
	if !ok || user["id"] != aliceID {
		t.Fatalf("expected subscriber back, got %v", result.Data)
	}
}

func TestUnsubscribeFromMissingEdgeFails(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectExec("DELETE FROM subscriptions").
		WithArgs(aliceID, bobID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result := run(`mutation { unsubscribeFrom(userId: "`+aliceID+`", authorId: "`+bobID+`") }`, nil)
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	if dataMap(t, result)["unsubscribeFrom"] != nil {
		t.Fatalf("expected null result for failed unsubscribe, got %v", result.Data)
	}
}

func TestCreateProfileDuplicateFails(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(sqlmock.AnyArg(), true, 1990, aliceID, "basic").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "profiles_user_id_key"})

	result := run(`mutation {
		createProfile(dto: { userId: "`+aliceID+`", memberTypeId: basic, isMale: true, yearOfBirth: 1990 }) { id }
	}`, nil)
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Message, "already exists") {
		t.Fatalf("unexpected error message: %q", result.Errors[0].Message)
	}
}

func TestChangeUserWithVariables(t *testing.T) {
	mock, run := newTestExec(t)
	mock.ExpectQuery("UPDATE users").
		WithArgs("Alice Cooper", nil, aliceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(aliceID, "Alice Cooper", 100.5))

	result := run(
		`mutation($id: UUID!, $dto: ChangeUserInput!) { changeUser(id: $id, dto: $dto) { id name balance } }`,
		map[string]interface{}{
			"id":  aliceID,
			"dto": map[string]interface{}{"name": "Alice Cooper"},
		},
	)
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	user := dataMap(t, result)["changeUser"].(map[string]interface{})
	if user["name"] != "Alice Cooper" || user["balance"] != 100.5 {
		t.Fatalf("unexpected updated user: %v", user)
	}
}

func TestInvalidUUIDArgumentIsCoercionError(t *testing.T) {
	_, run := newTestExec(t)

	result := run(`{ user(id: "not-a-uuid") { id } }`, nil)
	if len(result.Errors) == 0 {
		t.Fatal("expected a coercion error for malformed UUID")
	}
}
