package models

// Member type identifiers. The set is fixed; no mutation creates new ones.
const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

// MemberType represents a subscription tier
type MemberType struct {
	ID                 string  `json:"id" db:"id"`
	Discount           float64 `json:"discount" db:"discount"`
	PostsLimitPerMonth int     `json:"postsLimitPerMonth" db:"posts_limit_per_month"`
}

// User represents an account holder
type User struct {
	ID      string  `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Balance float64 `json:"balance" db:"balance"`
}

// Profile represents a user's profile. Each user owns at most one profile and
// the user_id binding is immutable after creation.
type Profile struct {
	ID           string `json:"id" db:"id"`
	IsMale       bool   `json:"isMale" db:"is_male"`
	YearOfBirth  int    `json:"yearOfBirth" db:"year_of_birth"`
	UserID       string `json:"userId" db:"user_id"`
	MemberTypeID string `json:"memberTypeId" db:"member_type_id"`
}

// Post represents a piece of authored content
type Post struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	AuthorID string `json:"authorId" db:"author_id"`
}
