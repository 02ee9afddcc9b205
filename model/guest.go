package model

type GuestInfo struct {
	UserName    string `json:"userName"`
	HotelName   string `json:"hotelName"`
	RoomNumber  string `json:"roomNumber"`
	SunbedQuota int    `json:"sunbedQuota"`
}
