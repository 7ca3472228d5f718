package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config - Demo configuration as read from a TOML file
//   - Capacity is the fixed number of buckets in the table
//   - Technique is either "separate-chaining" or "linear-probing"
//   - Ids and Names are the keys and values to populate the table with, pairwise. Ids may be integers or strings.
//   - Log configures the zap logger
type Config struct {
	Capacity  int64     `toml:"capacity"`
	Technique string    `toml:"technique"`
	Ids       []any     `toml:"ids"`
	Names     []string  `toml:"names"`
	Log       LogConfig `toml:"log"`
}

// LogConfig - Logger configuration, an empty Filename logs to stderr
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

func defaultConfig() Config {
	return Config{
		Capacity:  31,
		Technique: "separate-chaining",
		Ids:       []any{"1138", "1742", "1698", "1100", "0000", "1234", "9762", "1842", "9900", "2222"},
		Names:     []string{"John", "Bob", "Sue", "Alice", "Jan", "Marcia", "Steven", "Negan", "Carl", "Doug"},
		Log: LogConfig{
			Level:   zapcore.InfoLevel.String(),
			Format:  "console",
			MaxSize: 64,
		},
	}
}

// loadConfig - Returns the default configuration overlaid with whatever the TOML file at path sets.
// An empty path returns the defaults.
func loadConfig(path string) (cfg Config, err error) {
	cfg = defaultConfig()
	if path == "" {
		return
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %s", path, err)
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
		return
	}

	err = cfg.validate()

	return
}

func (C Config) validate() error {
	if C.Capacity <= 0 {
		return fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
	}
	if len(C.Ids) != len(C.Names) {
		return fmt.Errorf("got %d ids but %d names", len(C.Ids), len(C.Names))
	}
	if len(C.Ids) == 0 {
		return fmt.Errorf("no ids to populate the table with")
	}
	if _, err := C.technique(); err != nil {
		return err
	}
	if _, err := C.keys(); err != nil {
		return err
	}

	return nil
}

// keys - Turns the configured ids into table keys
func (C Config) keys() (keys []keyed.Key, err error) {
	keys = make([]keyed.Key, len(C.Ids))
	for i, id := range C.Ids {
		keys[i], err = keyed.FromAny(id)
		if err != nil {
			err = fmt.Errorf("error while reading id #%d: %w", i, err)
			return
		}
	}

	return
}

// technique - Maps the configured technique name to a crt constant
func (C Config) technique() (int, error) {
	switch strings.ToLower(C.Technique) {
	case "separate-chaining", "chaining":
		return crt.SeparateChaining, nil
	case "linear-probing", "probing":
		return crt.LinearProbing, nil
	default:
		return 0, fmt.Errorf("unknown technique %q", C.Technique)
	}
}

// newLogger - Builds a zap logger from the log configuration, rotating through lumberjack when logging to file
func newLogger(conf LogConfig) (logger *zap.Logger, err error) {
	var level zapcore.Level
	if err = level.UnmarshalText([]byte(conf.Level)); err != nil {
		err = fmt.Errorf("error while parsing log level: %s", err)
		return
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		err = fmt.Errorf("unsupported log format %q", conf.Format)
		return
	}

	var sink zapcore.WriteSyncer
	if conf.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize,
			MaxAge:     conf.MaxDays,
			MaxBackups: conf.MaxBackups,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	logger = zap.New(zapcore.NewCore(encoder, sink, level))

	return
}
