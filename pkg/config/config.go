package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"deadliner/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	Database         string            `mapstructure:"database"`
	SoonWindowDays   int               `mapstructure:"soon_window_days"`
	MaxCellSummaries int               `mapstructure:"max_cell_summaries"`
	KeyMap           map[string]string `mapstructure:"keymap"`
	Styles           Styles            `mapstructure:"styles"`
}

// Styles holds the application colors
type Styles struct {
	BorderColor       string `mapstructure:"border_color"`
	AccentColor       string `mapstructure:"accent_color"`
	NormalTextColor   string `mapstructure:"normal_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	SelectedBgColor   string `mapstructure:"selected_bg_color"`
	ErrorColor        string `mapstructure:"error_color"`
	DimColor          string `mapstructure:"dim_color"`
	OverdueColor      string `mapstructure:"overdue_color"`
	SoonColor         string `mapstructure:"soon_color"`
	CompletedColor    string `mapstructure:"completed_color"`
}

// Default returns the built-in configuration without touching the disk
func Default() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return Config{
		Database:         filepath.Join(homeDir, ".config", "deadliner", "deadlines.db"),
		SoonWindowDays:   7,
		MaxCellSummaries: 3,
		KeyMap:           keymaps.GetDefaultKeyMappings(),
		Styles: Styles{
			BorderColor:       "240",
			AccentColor:       "205",
			NormalTextColor:   "86",
			SelectedTextColor: "229",
			SelectedBgColor:   "57",
			ErrorColor:        "9",
			DimColor:          "240",
			OverdueColor:      "9",
			SoonColor:         "11",
			CompletedColor:    "242",
		},
	}
}

// Load reads the configuration from the given path, falling back to
// ~/.config/deadliner/config.json. A missing file is created with defaults.
func Load(configPath string) (Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return cfg, err
	}
	configDir := filepath.Join(homeDir, ".config", "deadliner")

	v := viper.New()
	v.SetConfigType("json")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	v.SetDefault("database", cfg.Database)
	v.SetDefault("soon_window_days", cfg.SoonWindowDays)
	v.SetDefault("max_cell_summaries", cfg.MaxCellSummaries)
	v.SetDefault("keymap", cfg.KeyMap)
	v.SetDefault("styles.border_color", cfg.Styles.BorderColor)
	v.SetDefault("styles.accent_color", cfg.Styles.AccentColor)
	v.SetDefault("styles.normal_text_color", cfg.Styles.NormalTextColor)
	v.SetDefault("styles.selected_text_color", cfg.Styles.SelectedTextColor)
	v.SetDefault("styles.selected_bg_color", cfg.Styles.SelectedBgColor)
	v.SetDefault("styles.error_color", cfg.Styles.ErrorColor)
	v.SetDefault("styles.dim_color", cfg.Styles.DimColor)
	v.SetDefault("styles.overdue_color", cfg.Styles.OverdueColor)
	v.SetDefault("styles.soon_color", cfg.Styles.SoonColor)
	v.SetDefault("styles.completed_color", cfg.Styles.CompletedColor)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		}
		// Config file not found, create it with the defaults
		if configPath == "" {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return cfg, err
			}
			if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return cfg, err
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
