package models

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

func (u Units) Valid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// UserPreference is a user's display settings. Units is kept as a plain
// string: the store accepts any non-empty value unless strict units are on.
type UserPreference struct {
	Notifications bool   `json:"notifications" example:"true"`
	Units         string `json:"units" example:"metric"`
}

// SeedPreferences returns the records present at process start.
func SeedPreferences() map[string]UserPreference {
	return map[string]UserPreference{
		"userId1": {Notifications: true, Units: string(UnitsMetric)},
		"userId2": {Notifications: false, Units: string(UnitsImperial)},
	}
}
