package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account row.
// PasswordHash is only set when authentication is local.
type User struct {
	ID           uuid.UUID `db:"id"`
	CreatedAt    time.Time `db:"created_at"`
	Flags        UserFlags `db:"flags"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ToAuthUser converts the row into the principal representation.
func (u User) ToAuthUser() AuthUser {
	return AuthUser{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		Flags:     u.Flags,
		Username:  u.Username,
	}
}

// AuthUser is the authenticated principal. It is also the body served by
// GET /users/@me, which lets one instance act as the auth service of another.
type AuthUser struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Flags     UserFlags `json:"flags"`
	Username  string    `json:"username"`
}

// ReceivedUser is the body of a user creation request. The username
// comes from the request path.
type ReceivedUser struct {
	Flags    UserFlags `json:"flags"`
	Password string    `json:"password"`
}

// UserUpdate is the body of PATCH /users/@me.
type UserUpdate struct {
	Username Optional[string] `json:"username,omitzero"`
	Password Optional[string] `json:"password,omitzero"`
}

// IsEmpty reports whether no field was supplied.
func (u UserUpdate) IsEmpty() bool {
	return !u.Username.IsSet() && !u.Password.IsSet()
}

// UserPatch is the storage-level partial update of a user row.
type UserPatch struct {
	Username     Optional[string]
	PasswordHash Optional[string]
	Flags        Optional[UserFlags]
}

// Credentials are the Basic auth credentials of a request.
type Credentials struct {
	Username string
	Password string
}
