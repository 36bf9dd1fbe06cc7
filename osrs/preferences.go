package osrs

// Preferences is the small persisted user-settings record.
type Preferences struct {
	AllowEditingPlayerStats  bool `json:"allow_editing_player_stats"`
	AllowEditingMonsterStats bool `json:"allow_editing_monster_stats"`
	RememberUsername         bool `json:"remember_username"`
}

// DefaultPreferences returns the first-run defaults, used until a persisted
// record is loaded over them.
func DefaultPreferences() Preferences {
	return Preferences{
		RememberUsername: true,
	}
}

// UIState is transient interface state. It is never persisted and resets on
// every session.
type UIState struct {
	ShowPreferencesModal bool `json:"show_preferences_modal"`
}
