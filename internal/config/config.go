package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"severance-engine/internal/settlement"
	"severance-engine/internal/tax"
)

// Config holds all severance engine configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Taxes   TaxConfig     `yaml:"taxes"`
	Policy  PolicyConfig  `yaml:"policy"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// TaxConfig carries the single INSS and IRRF tables in effect. When
// RegistryURL is set, the tables published there for the current year
// replace the local ones.
type TaxConfig struct {
	RegistryURL    string               `yaml:"registry_url,omitempty" json:"-"`
	SocialSecurity SocialSecurityConfig `yaml:"social_security" json:"social_security"`
	IncomeTax      IncomeTaxConfig      `yaml:"income_tax" json:"income_tax"`
}

type SocialSecurityConfig struct {
	Ceiling  decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	Brackets []BracketConfig `yaml:"brackets" json:"brackets"`
}

type IncomeTaxConfig struct {
	DependentAllowance decimal.Decimal `yaml:"dependent_allowance" json:"dependent_allowance"`
	Brackets           []BracketConfig `yaml:"brackets" json:"brackets"`
}

// BracketConfig is one table row. A missing upper_bound marks the open top
// bracket.
type BracketConfig struct {
	UpperBound *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
	Deduction  decimal.Decimal  `yaml:"deduction,omitempty" json:"deduction,omitempty"`
}

type PolicyConfig struct {
	FundRate                          decimal.Decimal `yaml:"fund_rate"`
	RequireFullYearForExpiredVacation bool            `yaml:"require_full_year_for_expired_vacation"`
}

// DefaultConfig returns the built-in tables and policy.
func DefaultConfig() *Config {
	policy := settlement.DefaultPolicy()
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Logging: LoggingConfig{Level: "info"},
		Taxes: TaxConfig{
			SocialSecurity: SocialSecurityConfig{
				Ceiling:  tax.SocialSecurity.Ceiling,
				Brackets: fromBrackets(tax.SocialSecurity.Brackets),
			},
			IncomeTax: IncomeTaxConfig{
				DependentAllowance: tax.IncomeTax.DependentAllowance,
				Brackets:           fromBrackets(tax.IncomeTax.Brackets),
			},
		},
		Policy: PolicyConfig{
			FundRate:                          policy.FundRate,
			RequireFullYearForExpiredVacation: policy.RequireFullYearForExpiredVacation,
		},
	}
}

func fromBrackets(brackets []tax.Bracket) []BracketConfig {
	out := make([]BracketConfig, len(brackets))
	for i, b := range brackets {
		out[i] = BracketConfig{
			Rate:      b.Rate,
			Deduction: b.Deduction,
		}
		if !b.Unbounded {
			upper := b.UpperBound
			out[i].UpperBound = &upper
		}
	}
	return out
}

func toBrackets(brackets []BracketConfig) []tax.Bracket {
	out := make([]tax.Bracket, len(brackets))
	for i, b := range brackets {
		out[i] = tax.Bracket{
			Rate:      b.Rate,
			Deduction: b.Deduction,
			Unbounded: b.UpperBound == nil,
		}
		if b.UpperBound != nil {
			out[i].UpperBound = *b.UpperBound
		}
	}
	return out
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if level := os.Getenv("SEVERANCE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if url := os.Getenv("TAX_REGISTRY_URL"); url != "" {
		c.Taxes.RegistryURL = url
	}
}

// Validate checks the tables and policy before they reach the engine.
func (c *Config) Validate() error {
	if err := c.Taxes.Validate(); err != nil {
		return fmt.Errorf("taxes.%w", err)
	}
	if c.Policy.FundRate.IsNegative() || c.Policy.FundRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("policy.fund_rate %v must be between 0 and 1", c.Policy.FundRate)
	}
	return nil
}

// Validate checks both tables. Errors are prefixed with the offending key.
func (t TaxConfig) Validate() error {
	if err := t.SocialSecurityTable().Validate(); err != nil {
		return fmt.Errorf("social_security: %w", err)
	}
	if !t.SocialSecurity.Ceiling.IsPositive() {
		return errors.New("social_security.ceiling must be positive")
	}
	if err := t.IncomeTaxTable().Validate(); err != nil {
		return fmt.Errorf("income_tax: %w", err)
	}
	if t.IncomeTax.DependentAllowance.IsNegative() {
		return errors.New("income_tax.dependent_allowance cannot be negative")
	}
	return nil
}

func (t TaxConfig) SocialSecurityTable() tax.CumulativeTable {
	return tax.CumulativeTable{
		Brackets: toBrackets(t.SocialSecurity.Brackets),
		Ceiling:  t.SocialSecurity.Ceiling,
	}
}

func (t TaxConfig) IncomeTaxTable() tax.MarginalTable {
	return tax.MarginalTable{
		Brackets:           toBrackets(t.IncomeTax.Brackets),
		DependentAllowance: t.IncomeTax.DependentAllowance,
	}
}

func (c *Config) SocialSecurityTable() tax.CumulativeTable { return c.Taxes.SocialSecurityTable() }

func (c *Config) IncomeTaxTable() tax.MarginalTable { return c.Taxes.IncomeTaxTable() }

// Settler builds the settlement service described by this configuration.
func (c *Config) Settler() *settlement.Settler {
	return settlement.New(c.SocialSecurityTable(), c.IncomeTaxTable(), settlement.Policy{
		FundRate:                          c.Policy.FundRate,
		RequireFullYearForExpiredVacation: c.Policy.RequireFullYearForExpiredVacation,
	})
}
