package auth

// Identity is the minimal user record attached to an authenticated
// request. The username is the user's login email; the password hash
// never leaves the repository layer.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
