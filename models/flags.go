package models

// UserFlags is the permission bitmask stored on every user.
type UserFlags int64

const (
	FlagNone UserFlags = 0
	// FlagAdmin grants every other flag.
	FlagAdmin UserFlags = 1 << 1
	// FlagCreateUser allows creating new users.
	FlagCreateUser UserFlags = 1 << 2
)

// Has reports whether all bits of required are set, or the ADMIN bit is set.
func (f UserFlags) Has(required UserFlags) bool {
	if f&FlagAdmin == FlagAdmin {
		return true
	}
	return f&required == required
}

// HasAny reports whether f satisfies at least one of the options.
// An ADMIN principal satisfies any set of options.
func (f UserFlags) HasAny(options ...UserFlags) bool {
	if f&FlagAdmin == FlagAdmin {
		return true
	}
	for _, option := range options {
		if f&option == option {
			return true
		}
	}
	return false
}

// Permissions is the bitmask granted per message to other users and to
// shareable links.
type Permissions int16

const (
	PermissionRead  Permissions = 1 << 0
	PermissionEdit  Permissions = 1 << 1
	PermissionFiles Permissions = 1 << 2

	PermissionAll = PermissionRead | PermissionEdit | PermissionFiles
)

// Has reports whether every bit of required is granted.
func (p Permissions) Has(required Permissions) bool {
	return p&required == required
}
