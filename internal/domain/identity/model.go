package identity

// User maps to one entry of the users collection. Credentials are stored
// and compared as plain, case-sensitive strings; there is no hashing
// anywhere in this system.
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	BadgeNumber int    `json:"badge_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Enabled     bool   `json:"enabled"`
	Role        string `json:"role"`
}

// GetID returns the surrogate id.
func (u *User) GetID() int { return u.ID }

// SetID sets the surrogate id.
func (u *User) SetID(v int) { u.ID = v }
