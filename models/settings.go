package models

// SettingsSection names one of the opaque settings blobs persisted in
// the store. The service never inspects their contents.
type SettingsSection string

const (
	SettingsAccount       SettingsSection = "account"
	SettingsAdmin         SettingsSection = "admin"
	SettingsNotifications SettingsSection = "notifications"
)

func (s SettingsSection) Valid() bool {
	switch s {
	case SettingsAccount, SettingsAdmin, SettingsNotifications:
		return true
	}
	return false
}

func (s SettingsSection) StorageKey() string {
	return string(s) + "Settings"
}
