package config

import "github.com/spf13/viper"

type Config struct {
	Storage       string `mapstructure:"MAPTY_STORAGE"`
	DBPath        string `mapstructure:"MAPTY_DB_PATH"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisPrefix   string `mapstructure:"REDIS_PREFIX"`
	HTTPAddress   string `mapstructure:"HTTP_ADDRESS"`
	UIDir         string `mapstructure:"UI_DIR"`
	MapZoom       int    `mapstructure:"MAP_ZOOM"`
	TileURL       string `mapstructure:"TILE_URL"`

	// Home is where the map centers on startup. Only set when both
	// HOME_LAT and HOME_LNG are present.
	HomeLat float64
	HomeLng float64
	HasHome bool
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("MAPTY_STORAGE", "sqlite")
	v.SetDefault("MAPTY_DB_PATH", "mapty.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_PREFIX", "mapty:")
	v.SetDefault("HTTP_ADDRESS", ":8222")
	v.SetDefault("UI_DIR", "./ui")
	v.SetDefault("MAP_ZOOM", 13)
	v.SetDefault("TILE_URL", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")

	var cfg Config
	_ = v.Unmarshal(&cfg)

	if v.IsSet("HOME_LAT") && v.IsSet("HOME_LNG") {
		cfg.HomeLat = v.GetFloat64("HOME_LAT")
		cfg.HomeLng = v.GetFloat64("HOME_LNG")
		cfg.HasHome = true
	}
	return cfg
}
