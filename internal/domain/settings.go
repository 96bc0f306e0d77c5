package domain

// UserSettings are per-user application preferences.
type UserSettings struct {
	Notifications    bool   `json:"notifications"`
	EmailUpdates     bool   `json:"email_updates"`
	ShowOnlineStatus bool   `json:"show_online_status"`
	Language         string `json:"language"`
	DarkMode         bool   `json:"dark_mode"`
}

// DefaultSettings mirror a fresh account.
func DefaultSettings() UserSettings {
	return UserSettings{
		Notifications:    true,
		EmailUpdates:     true,
		ShowOnlineStatus: true,
		Language:         "en",
	}
}
