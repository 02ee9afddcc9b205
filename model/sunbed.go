package model

type SunbedStatus string

const (
	SunbedAvailable   SunbedStatus = "available"
	SunbedOccupied    SunbedStatus = "occupied"
	SunbedComingSoon  SunbedStatus = "coming-soon"
	SunbedMaintenance SunbedStatus = "maintenance"
)

type Sunbed struct {
	ID          string       `json:"id"`
	Zone        string       `json:"zone"`
	Status      SunbedStatus `json:"status"`
	Description string       `json:"description,omitempty"`
}

type Booking struct {
	SunbedID        string `json:"sunbedId"`
	DurationSeconds int    `json:"durationSeconds"`
}
