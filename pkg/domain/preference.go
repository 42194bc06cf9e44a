package domain

import "time"

// Preference holds the display preferences of a user.
type Preference struct {
	UserID    UserID
	DarkMode  bool
	UpdatedAt time.Time
}
