package services

// Role is the closed set of user roles. The stored value is a select field
// on the users auth collection; screens gate on the parsed role instead of
// comparing raw strings.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWorker Role = "worker"
	RoleViewer Role = "viewer"
)

// Roles lists every assignable role.
var Roles = []Role{RoleOwner, RoleWorker, RoleViewer}

// ParseRole maps a stored role string to a Role. Unknown or empty values
// fall back to viewer, the least privileged role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOwner:
		return RoleOwner
	case RoleWorker:
		return RoleWorker
	default:
		return RoleViewer
	}
}

// CanManageBusiness reports whether the role may create and edit clients,
// rooms, quotations and procurement records.
func (r Role) CanManageBusiness() bool {
	return r == RoleOwner
}

// CanUpdateProgress reports whether the role may move assigned rooms through
// the progress states.
func (r Role) CanUpdateProgress() bool {
	return r == RoleOwner || r == RoleWorker
}
