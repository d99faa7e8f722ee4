package model

// UnknownRole is shown for any owner id outside the role table.
const UnknownRole = "Unknown user"

var roleLabels = map[int]string{
	1: "Admin",
	2: "Tester",
}

// RoleLabel maps an owner id to its display label. Display only.
func RoleLabel(ownerID int) string {
	if l, ok := roleLabels[ownerID]; ok {
		return l
	}
	return UnknownRole
}
