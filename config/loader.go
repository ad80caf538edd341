package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error: the defaults describe a full
// working setup for the DC ward layout.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./deploy/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		Config = Defaults()
		return nil
	}
	cfg, err := parseAppConfig(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

func parseAppConfig(data []byte) (AppConfig, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Defaults returns the built-in configuration: DC's eight wards, the WMATA
// on-time band of 2 minutes early to 5 minutes late, weekly metadata refresh,
// one live window and the five report-backed windows.
func Defaults() AppConfig {
	return AppConfig{
		WMATA: WMATAConfig{
			BaseURL:   "https://api.wmata.com",
			APIKeyEnv: "WMATA_API_KEY",
			TimeoutMS: 30000,
		},
		Storage: StorageConfig{Dir: "public"},
		Wards: WardsConfig{
			GeoJSONPath: "dc-wards.geojson",
			MinID:       1,
			MaxID:       8,
		},
		OnTime:   OnTimeBand{Min: -2.0, Max: 5.0},
		Metadata: MetadataConfig{RefreshDays: 7},
		Periods: PeriodsConfig{
			Live: []LiveWindow{{Key: "1d", Days: 1}},
			Report: []ReportWindow{
				{Key: "1m", Months: 1},
				{Key: "3m", Months: 3},
				{Key: "6m", Months: 6},
				{Key: "1y", Months: 12},
				{Key: "5y", Months: 0},
			},
		},
	}
}

// applyDefaults fills zero values a partial config file left out.
func applyDefaults(cfg *AppConfig) {
	def := Defaults()
	if cfg.WMATA.BaseURL == "" {
		cfg.WMATA.BaseURL = def.WMATA.BaseURL
	}
	if cfg.WMATA.APIKeyEnv == "" {
		cfg.WMATA.APIKeyEnv = def.WMATA.APIKeyEnv
	}
	if cfg.WMATA.TimeoutMS == 0 {
		cfg.WMATA.TimeoutMS = def.WMATA.TimeoutMS
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = def.Storage.Dir
	}
	if cfg.Wards.GeoJSONPath == "" {
		cfg.Wards.GeoJSONPath = def.Wards.GeoJSONPath
	}
	if cfg.Wards.MinID == 0 && cfg.Wards.MaxID == 0 {
		cfg.Wards.MinID = def.Wards.MinID
		cfg.Wards.MaxID = def.Wards.MaxID
	}
	if cfg.OnTime.Min == 0 && cfg.OnTime.Max == 0 {
		cfg.OnTime = def.OnTime
	}
	if cfg.Metadata.RefreshDays == 0 {
		cfg.Metadata.RefreshDays = def.Metadata.RefreshDays
	}
	if len(cfg.Periods.Live) == 0 {
		cfg.Periods.Live = def.Periods.Live
	}
	if len(cfg.Periods.Report) == 0 {
		cfg.Periods.Report = def.Periods.Report
	}
}
