package model

// SettingOption is a client-side preference toggle. Options are fixed;
// the back office does not persist them.
type SettingOption struct {
	Key         string
	Label       string
	Description string
	Enabled     bool
}

// DefaultSettings returns the built-in preference list.
func DefaultSettings() []SettingOption {
	return []SettingOption{
		{
			Key:         "notifications",
			Label:       "Email notifications",
			Description: "Receive notifications about new requests and status changes",
			Enabled:     true,
		},
		{
			Key:         "darkMode",
			Label:       "Dark theme",
			Description: "Enable the dark interface theme",
			Enabled:     false,
		},
	}
}
