package config

// WMATAConfig contains WMATA API client configuration
type WMATAConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	APIKeyEnv string `yaml:"apiKeyEnv"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// GTFSRTConfig contains the optional GTFS-Realtime position source
type GTFSRTConfig struct {
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
}

// StorageConfig contains output snapshot storage configuration
type StorageConfig struct {
	Dir string `yaml:"dir"`
}

// WardsConfig contains the boundary dataset and the fixed ward id range
type WardsConfig struct {
	GeoJSONPath string `yaml:"geojsonPath"`
	MinID       int    `yaml:"minID" validate:"gte=0"`
	MaxID       int    `yaml:"maxID" validate:"gtefield=MinID"`
}

// IDs returns the full fixed ward id set, ascending.
func (w WardsConfig) IDs() []int {
	out := make([]int, 0, w.MaxID-w.MinID+1)
	for id := w.MinID; id <= w.MaxID; id++ {
		out = append(out, id)
	}
	return out
}

// OnTimeBand is the closed deviation interval counted as on time, in minutes
type OnTimeBand struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max" validate:"gtefield=Min"`
}

// LiveWindow selects position samples by elapsed days
type LiveWindow struct {
	Key  string `yaml:"key" validate:"required"`
	Days int    `yaml:"days" validate:"gt=0"`
}

// ReportWindow selects monthly report rows by recency; 0 months means the whole table
type ReportWindow struct {
	Key    string `yaml:"key" validate:"required"`
	Months int    `yaml:"months" validate:"gte=0"`
}

// PeriodsConfig enumerates the rolling windows both aggregation paths produce
type PeriodsConfig struct {
	Live   []LiveWindow   `yaml:"live" validate:"omitempty,dive"`
	Report []ReportWindow `yaml:"report" validate:"omitempty,dive"`
}

// MetadataConfig controls the stop/route snapshot refresh decision
type MetadataConfig struct {
	RefreshDays int `yaml:"refreshDays" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	WMATA    WMATAConfig    `yaml:"wmata"`
	GTFSRT   GTFSRTConfig   `yaml:"gtfsrt"`
	Storage  StorageConfig  `yaml:"storage"`
	Wards    WardsConfig    `yaml:"wards"`
	OnTime   OnTimeBand     `yaml:"onTime"`
	Metadata MetadataConfig `yaml:"metadata"`
	Periods  PeriodsConfig  `yaml:"periods"`
}
