package usersrepo

// User is the main entity type. The store assigns the id; a client-supplied
// id is never honored.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser contains the fields for creating a user, the draft submitted
// before an id exists.
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
