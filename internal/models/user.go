package models

// User identifies the already-authenticated session owner. Authentication
// itself happens outside this application; the identity arrives ready-made.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
