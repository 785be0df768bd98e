package model

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID         – primary key identifier of the user.
//  Name       – display name of the user.
//  Phone      – optional phone number (nil when not provided).
//  Email      – unique email address.
//  IsAdmin    – whether the user holds administrator rights.
//  AdminToken – unique admin token (nil unless the user is an admin
//               that has been issued a token).
type User struct {
	ID         uint64  // users.id
	Name       string  // users.name
	Phone      *string // users.phone (nullable)
	Email      string  // users.email
	IsAdmin    bool    // users.is_admin
	AdminToken *string // users.admin_token (nullable)
}
