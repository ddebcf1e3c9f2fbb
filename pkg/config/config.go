package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the screening service. The asset
// file names default to the ones produced by the training pipeline, so a
// fresh checkout only needs the artifacts dropped into assets_dir.
type Config struct {
	ListenAddress string `mapstructure:"listen_address"`
	AssetsDir     string `mapstructure:"assets_dir"`
	ModelFile     string `mapstructure:"model_file"`
	ScalerFile    string `mapstructure:"scaler_file"`
	ColumnsFile   string `mapstructure:"columns_file"`
	LogLevel      string `mapstructure:"log_level"`
	Debug         bool   `mapstructure:"debug"`
}

// The global, read-only config variable.
var (
	cfg     *Config
	loadErr error
	once    sync.Once
)

// LoadConfig reads the optional config file, applies defaults, and
// initializes the global cfg variable. It ensures the configuration is set
// only once; a failed load keeps its error so later calls report the real
// cause instead of a generic one.
func LoadConfig(configFile string) (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load(configFile)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

func load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("model_file", "my_obesity_model.json")
	v.SetDefault("scaler_file", "my_scaler.json")
	v.SetDefault("columns_file", "ready_train.csv")
	v.SetDefault("log_level", "info")
	v.SetDefault("debug", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// PORT is honored for parity with the usual container setup.
	if port := os.Getenv("PORT"); port != "" {
		configuration.ListenAddress = "0.0.0.0:" + port
	}

	if err := configuration.validate(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

func (c *Config) validate() error {
	if c.ListenAddress == "" {
		return errors.New("listen_address is required")
	}
	if c.AssetsDir == "" {
		return errors.New("assets_dir is required")
	}
	if c.ModelFile == "" || c.ScalerFile == "" || c.ColumnsFile == "" {
		return errors.New("model_file, scaler_file and columns_file are required")
	}
	return nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}

// ModelPath returns the full path of the serialized classifier.
func (c *Config) ModelPath() string {
	return filepath.Join(c.AssetsDir, c.ModelFile)
}

// ScalerPath returns the full path of the serialized feature scaler.
func (c *Config) ScalerPath() string {
	return filepath.Join(c.AssetsDir, c.ScalerFile)
}

// ColumnsPath returns the full path of the reference CSV whose header row
// fixes the feature column order.
func (c *Config) ColumnsPath() string {
	return filepath.Join(c.AssetsDir, c.ColumnsFile)
}
