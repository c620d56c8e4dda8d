package dto

type PlaceCandidateResponse struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	TZ          string  `json:"tz"`
}
