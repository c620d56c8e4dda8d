package dto

type ChartRequest struct {
	LocalDateTime string  `json:"local_datetime"`
	TZ            string  `json:"tz"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	HouseSystem   string  `json:"house_system"`
}

type ZodiacPositionResponse struct {
	Longitude    float64 `json:"longitude"`
	Sign         string  `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
}

type ChartInputResponse struct {
	LocalDateTime string  `json:"local_datetime"`
	TZ            string  `json:"tz"`
	UTCDateTime   string  `json:"utc_datetime"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	HouseSystem   string  `json:"house_system"`
	JulianDayUT   float64 `json:"jd_ut"`
	EphePath      string  `json:"ephe_path"`
}

type ChartAnglesResponse struct {
	Asc *ZodiacPositionResponse `json:"Asc,omitempty"`
	MC  *ZodiacPositionResponse `json:"MC,omitempty"`
}

type ChartResponse struct {
	Input      ChartInputResponse                `json:"input"`
	Angles     ChartAnglesResponse               `json:"angles"`
	Planets    map[string]ZodiacPositionResponse `json:"planets"`
	HouseCusps map[string]ZodiacPositionResponse `json:"house_cusps"`
}
