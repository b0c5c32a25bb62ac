package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configName = "gamepadview"
	configType = "yaml"
	envPrefix  = "GAMEPADVIEW"

	keyWindowWidth     = "window.width"
	keyWindowHeight    = "window.height"
	keyWindowTitle     = "window.title"
	keyWindowResizable = "window.resizable"
	keyTheme           = "theme"
	keyWatchTheme      = "watch_theme"
	keyLogLevel        = "log_level"
	keyDebug           = "debug"
	keyTPS             = "tps"

	defaultWindowWidth  = 800
	defaultWindowHeight = 450
	defaultWindowTitle  = "gamepad input viewer"
	defaultLogLevel     = "info"
	defaultTPS          = 60
)

// Config is the resolved application configuration.
type Config struct {
	Window struct {
		Width     int
		Height    int
		Title     string
		Resizable bool
	}

	ThemePath  string
	WatchTheme bool
	LogLevel   zapcore.Level
	Debug      bool
	TPS        int

	// File is the config file that was read, empty when only defaults apply.
	File string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyWindowWidth, defaultWindowWidth)
	v.SetDefault(keyWindowHeight, defaultWindowHeight)
	v.SetDefault(keyWindowTitle, defaultWindowTitle)
	v.SetDefault(keyWindowResizable, false)
	v.SetDefault(keyTheme, "")
	v.SetDefault(keyWatchTheme, true)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyTPS, defaultTPS)

	return v
}

// Load resolves configuration from path, or from gamepadview.yaml in the
// working directory when path is empty. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return populate(v)
}

func populate(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ThemePath:  v.GetString(keyTheme),
		WatchTheme: v.GetBool(keyWatchTheme),
		Debug:      v.GetBool(keyDebug),
		TPS:        v.GetInt(keyTPS),
		File:       v.ConfigFileUsed(),
	}
	cfg.Window.Width = v.GetInt(keyWindowWidth)
	cfg.Window.Height = v.GetInt(keyWindowHeight)
	cfg.Window.Title = v.GetString(keyWindowTitle)
	cfg.Window.Resizable = v.GetBool(keyWindowResizable)

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("config: window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("config: tps must be positive, got %d", cfg.TPS)
	}

	level, err := zapcore.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", keyLogLevel, err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// NewLogger builds the application logger. Debug mode uses the console
// development encoder.
func (c *Config) NewLogger() (*zap.SugaredLogger, error) {
	var zc zap.Config
	if c.Debug {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return logger.Sugar(), nil
}
