package weather

// Response types cover the subset of the weatherapi.com payload the app
// renders: current conditions plus forecast days with day/astro/hour
// sub-objects. Unknown fields are ignored on decode.

type Forecast struct {
	Location Place        `json:"location"`
	Current  Current      `json:"current"`
	Forecast ForecastDays `json:"forecast"`
}

type ForecastDays struct {
	Days []ForecastDay `json:"forecastday"`
}

type Place struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type Current struct {
	TempC      float64   `json:"temp_c"`
	FeelsLikeC float64   `json:"feelslike_c"`
	WindKph    float64   `json:"wind_kph"`
	WindDir    string    `json:"wind_dir"`
	PrecipMm   float64   `json:"precip_mm"`
	Humidity   int       `json:"humidity"`
	Cloud      int       `json:"cloud"`
	UV         float64   `json:"uv"`
	Condition  Condition `json:"condition"`
}

type ForecastDay struct {
	Date  string `json:"date"`
	Day   Day    `json:"day"`
	Astro Astro  `json:"astro"`
	Hours []Hour `json:"hour"`
}

type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	TotalPrecipMm     float64   `json:"totalprecip_mm"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
}

type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type Hour struct {
	TimeEpoch    int64     `json:"time_epoch"`
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	WindKph      float64   `json:"wind_kph"`
	PrecipMm     float64   `json:"precip_mm"`
	ChanceOfRain int       `json:"chance_of_rain"`
	Condition    Condition `json:"condition"`
}
