package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

type Custom struct {
	Calc struct {
		MaxDenominator int64 `toml:"max-denominator"`
		DecimalPlaces  int32 `toml:"decimal-places"`
	} `toml:"calc"`
	RPC struct {
		Port    int  `toml:"port"`
		Runtime bool `toml:"runtime"`
	} `toml:"rpc"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if config.Calc.MaxDenominator == 0 {
		config.Calc.MaxDenominator = DefaultMaxDenominator
	}
	if config.Calc.DecimalPlaces == 0 {
		config.Calc.DecimalPlaces = DefaultDecimalPlaces
	}
	if config.RPC.Port == 0 {
		config.RPC.Port = DefaultRPCPort
	}
	if config.Log.Level == 0 {
		config.Log.Level = 2
	}
	return &config, nil
}
