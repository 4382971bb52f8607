package domain

// Preferences are the per-user display settings carried on both the user
// record and the session snapshot.
type Preferences struct {
	Theme         Theme    `json:"theme"`
	Language      Language `json:"language"`
	Notifications bool     `json:"notifications"`
}

// DefaultPreferences returns the preferences assigned to new registrations.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: LanguageEN, Notifications: true}
}

// User is a demo account. The credential is an opaque string compared by
// exact match; it never leaves the user list.
type User struct {
	ID          int         `json:"id"`
	Email       string      `json:"email"`
	Password    string      `json:"-"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	CreatedAt   string      `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
}

// Session is the detached snapshot of the logged-in user: public fields only,
// no credential. It is what gets persisted under the currentUser key.
type Session struct {
	UserID      int         `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Preferences Preferences `json:"preferences"`
}

// SessionFor builds the detached session snapshot for a user.
func SessionFor(u User) Session {
	return Session{
		UserID:      u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Preferences: u.Preferences,
	}
}
