package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Scenario   ScenarioConfig `json:"scenario" yaml:"scenario" toml:"scenario"`
	ReportName string         `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string       `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string         `json:"dir" yaml:"dir" toml:"dir"`
	S3Bucket   string         `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix   string         `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	Locale     string         `json:"locale" yaml:"locale" toml:"locale"`
	Trend      bool           `json:"trend" yaml:"trend" toml:"trend"`
}

// ScenarioConfig carries optional parameter values. A nil field keeps whatever
// value the parameters already have.
type ScenarioConfig struct {
	HorizonMonths *int    `json:"horizon_months,omitempty" yaml:"horizon_months,omitempty" toml:"horizon_months,omitempty"`
	StartDate     *string `json:"start_date,omitempty" yaml:"start_date,omitempty" toml:"start_date,omitempty"`

	UnitCost             *float64 `json:"unit_cost,omitempty" yaml:"unit_cost,omitempty" toml:"unit_cost,omitempty"`
	UnitSellPrice        *float64 `json:"unit_sell_price,omitempty" yaml:"unit_sell_price,omitempty" toml:"unit_sell_price,omitempty"`
	SalesCostPerUnit     *float64 `json:"sales_cost_per_unit,omitempty" yaml:"sales_cost_per_unit,omitempty" toml:"sales_cost_per_unit,omitempty"`
	LogisticsCostPerUnit *float64 `json:"logistics_cost_per_unit,omitempty" yaml:"logistics_cost_per_unit,omitempty" toml:"logistics_cost_per_unit,omitempty"`
	UnitsPerDisplay      *int     `json:"units_per_display,omitempty" yaml:"units_per_display,omitempty" toml:"units_per_display,omitempty"`

	BasePartnersPerMonth *int `json:"base_partners_per_month,omitempty" yaml:"base_partners_per_month,omitempty" toml:"base_partners_per_month,omitempty"`
	GrowthIntervalMonths *int `json:"growth_interval_months,omitempty" yaml:"growth_interval_months,omitempty" toml:"growth_interval_months,omitempty"`
	GrowthIncrement      *int `json:"growth_increment,omitempty" yaml:"growth_increment,omitempty" toml:"growth_increment,omitempty"`

	ReorderRate        *float64 `json:"reorder_rate,omitempty" yaml:"reorder_rate,omitempty" toml:"reorder_rate,omitempty"`
	ReorderCycleMonths *int     `json:"reorder_cycle_months,omitempty" yaml:"reorder_cycle_months,omitempty" toml:"reorder_cycle_months,omitempty"`

	LicenseOneGrossPerUnit  *float64 `json:"license_one_gross_per_unit,omitempty" yaml:"license_one_gross_per_unit,omitempty" toml:"license_one_gross_per_unit,omitempty"`
	PostcardCostPerUnit     *float64 `json:"postcard_cost_per_unit,omitempty" yaml:"postcard_cost_per_unit,omitempty" toml:"postcard_cost_per_unit,omitempty"`
	GraphicShareCostPerUnit *float64 `json:"graphic_share_cost_per_unit,omitempty" yaml:"graphic_share_cost_per_unit,omitempty" toml:"graphic_share_cost_per_unit,omitempty"`
	LicenseTwoFeePerUnit    *float64 `json:"license_two_fee_per_unit,omitempty" yaml:"license_two_fee_per_unit,omitempty" toml:"license_two_fee_per_unit,omitempty"`
	LicenseTwoThreshold     *int     `json:"license_two_threshold,omitempty" yaml:"license_two_threshold,omitempty" toml:"license_two_threshold,omitempty"`
}

// ServerConfig holds the settings of the HTTP API, read by viper.
type ServerConfig struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Cache struct {
		RedisAddr  string `mapstructure:"redis_addr"`
		TTLSeconds int    `mapstructure:"ttl_seconds"`
	} `mapstructure:"cache"`
}
