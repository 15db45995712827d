package models

// RoleAdmin is the sole role the route guard accepts.
const RoleAdmin = "ADMIN"

// Session is the administrator identity returned by the backend at login.
// A zero Session means "not logged in"; a token may exist with a non-admin
// role, which the guard treats as unauthenticated.
type Session struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// IsAdmin reports whether the session authorizes admin screens.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
