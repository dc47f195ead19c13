package config

import (
	"errors"
	"strings"
	"time"

	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/spf13/viper"
)

// ProxyConfig optional HTTP proxy between the SDK and the gateway
type ProxyConfig struct {
	Address  string `mapstructure:"address"`
	Port     int    `mapstructure:"port"`
	Logon    string `mapstructure:"logon"`
	Password string `mapstructure:"password"`
}

// CredentialsConfig the merchant login sent with every request
type CredentialsConfig struct {
	User     string `mapstructure:"user"`
	Vendor   string `mapstructure:"vendor"`
	Partner  string `mapstructure:"partner"`
	Password string `mapstructure:"password"`
}

// Config data structure that represent a valid configuration file
type Config struct {
	Host        string            `mapstructure:"host"`
	Port        int               `mapstructure:"port"`
	Timeout     int               `mapstructure:"timeout"` // seconds
	Proxy       ProxyConfig       `mapstructure:"proxy"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	LogLevel    string            `mapstructure:"loglevel"`
	AuditDSN    string            `mapstructure:"auditdsn"`
}

// EnvPrefix is prepended to every environment override, PAYFLOW_HOST,
// PAYFLOW_CREDENTIALS_VENDOR and so on.
const EnvPrefix = "PAYFLOW"

var defaults = map[string]interface{}{
	"host":                 "pilot-payflowpro.paypal.com",
	"port":                 443,
	"timeout":              45,
	"proxy.address":        "",
	"proxy.port":           0,
	"proxy.logon":          "",
	"proxy.password":       "",
	"credentials.user":     "",
	"credentials.vendor":   "",
	"credentials.partner":  "PayPal",
	"credentials.password": "",
	"loglevel":             "info",
	"auditdsn":             "",
}

// ReadApplicationConfig will load the configuration from known places on the
// disk or environment. configFile, when set, is read instead of searching.
// A missing config file is not an error: defaults and environment apply.
func ReadApplicationConfig(configFile string) (*Config, error) {
	conf := viper.New()
	conf.SetConfigName("payflow")

	conf.AddConfigPath("/etc/payflow/")
	conf.AddConfigPath("../configs/")
	conf.AddConfigPath("./")

	if configFile != "" {
		conf.SetConfigFile(configFile)
	}

	for key, value := range defaults {
		conf.SetDefault(key, value)
	}

	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	err := conf.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err = conf.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TimeoutDuration is Timeout as a time.Duration
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Validate ensure we have enough to reach the gateway. Every problem is
// recorded in ctx, which may be nil; the first one is returned.
func (c *Config) Validate(ctx *sdkerr.Context) error {
	var issues []string

	if c.Host == "" {
		issues = append(issues, "host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		issues = append(issues, "port must be between 1 and 65535")
	}
	if c.Timeout <= 0 {
		issues = append(issues, "timeout must be positive")
	}
	if c.Credentials.Vendor == "" {
		issues = append(issues, "credentials.vendor is required")
	}
	if c.Credentials.Partner == "" {
		issues = append(issues, "credentials.partner is required")
	}
	if c.Credentials.Password == "" {
		issues = append(issues, "credentials.password is required")
	}
	if c.Proxy.Address != "" && c.Proxy.Port <= 0 {
		issues = append(issues, "proxy.port is required when proxy.address is set")
	}

	if len(issues) == 0 {
		return nil
	}

	for _, issue := range issues {
		if ctx != nil {
			ctx.Add(sdkerr.SeverityFatal, sdkerr.CodeConfig, issue)
		}
	}
	return sdkerr.Config(sdkerr.CodeConfig, strings.Join(issues, "; "))
}
