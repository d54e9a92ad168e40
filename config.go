package fxdesk

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// CurrencyConfig seeds one currency of the registry.
type CurrencyConfig struct {
	Code          string  `mapstructure:"code"`
	Reserve       float64 `mapstructure:"reserve"`
	CriticalMin   float64 `mapstructure:"critical_min"`
	Buy           float64 `mapstructure:"buy"`
	Sell          float64 `mapstructure:"sell"`
	Denominations []int64 `mapstructure:"denominations"`
}

// Config is the desk configuration: where the ledger lives and which
// currencies the desk opens with.
type Config struct {
	DataDir    string           `mapstructure:"data_dir"`
	Base       string           `mapstructure:"base"`
	Currencies []CurrencyConfig `mapstructure:"currencies"`
}

// DefaultConfig returns the stock desk: LOC as base currency plus USD,
// EUR, GBP and JPY, with their opening reserves, rates, critical
// minimums and denomination tables.
func DefaultConfig() Config {
	return Config{
		DataDir: ".",
		Base:    "LOC",
		Currencies: []CurrencyConfig{
			{Code: "LOC", Reserve: 50000, CriticalMin: 10000, Buy: 1, Sell: 1,
				Denominations: []int64{200, 100, 50, 20, 10, 5, 2, 1}},
			{Code: "USD", Reserve: 10000, CriticalMin: 2000, Buy: 41.36, Sell: 41.45,
				Denominations: []int64{100, 50, 20, 10, 5, 2, 1}},
			{Code: "EUR", Reserve: 8000, CriticalMin: 1500, Buy: 48.38, Sell: 48.60,
				Denominations: []int64{500, 200, 100, 50, 20, 10, 5}},
			{Code: "GBP", Reserve: 3000, CriticalMin: 500, Buy: 55.91, Sell: 56.26,
				Denominations: []int64{50, 20, 10, 5, 2, 1}},
			{Code: "JPY", Reserve: 1000000, CriticalMin: 200000, Buy: 0.27, Sell: 0.28,
				Denominations: []int64{10000, 5000, 2000, 1000, 500, 100, 50}},
		},
	}
}

// LoadConfig loads the desk configuration. When path is empty it looks
// for fxdesk.yaml in the working directory; a missing file yields the
// defaults. Every key can also be overridden through FXDESK_*
// environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fxdesk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetDefault("data_dir", ".")
	v.SetEnvPrefix("FXDESK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if cfg.Base == "" {
		return Config{}, fmt.Errorf("configuration has no base currency")
	}
	return cfg, nil
}

// Registry builds a seeded registry from the configuration. The base
// currency must be part of the currency table.
func (c Config) Registry() (*Registry, error) {
	reg := NewRegistry(c.Base)
	for _, cc := range c.Currencies {
		cur := Currency{
			Code:          cc.Code,
			Reserve:       cc.Reserve,
			CriticalMin:   cc.CriticalMin,
			BuyToBase:     cc.Buy,
			SellToBase:    cc.Sell,
			Denominations: cc.Denominations,
		}
		if err := reg.Add(cur); err != nil {
			return nil, err
		}
	}
	if !reg.Has(c.Base) {
		return nil, fmt.Errorf("%w: base currency %q is not in the currency table", ErrUnknownCurrency, c.Base)
	}
	return reg, nil
}
