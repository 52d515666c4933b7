package user

// Role is a global capability a user holds. Workflow guards combine roles
// with per-article assignment; a role alone does not grant access to an
// article's documents.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleReviewer Role = "reviewer"
	RoleAuthor   Role = "author"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleReviewer, RoleAuthor:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

func HasRole(roles []Role, want Role) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
