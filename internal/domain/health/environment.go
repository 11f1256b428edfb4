package health

import "time"

// EnvironmentalSnapshot is a transient reading of local conditions. It is never stored on its own.
type EnvironmentalSnapshot struct {
	Pollen      float64   `json:"pollen"`
	AQI         float64   `json:"aqi"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Weather     string    `json:"weather"`
	ObservedAt  time.Time `json:"observed_at"`
}

// Factors converts the snapshot into the shape stored on symptom entries.
func (s EnvironmentalSnapshot) Factors() EnvironmentalFactors {
	return EnvironmentalFactors{
		PollenCount:       s.Pollen,
		AirQualityIndex:   s.AQI,
		WeatherConditions: s.Weather,
		Temperature:       s.Temperature,
		Humidity:          s.Humidity,
	}
}
