// Package server holds the daemon configuration.
//
// Configuration comes from a YAML file; environment variables override
// the file so that deployments can inject credentials without writing
// them to disk.
package server

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	// Port the API server listens on.
	Port string `yaml:"port"`

	// SigningSecret signs session tokens. Required.
	SigningSecret string `yaml:"signingSecret"`

	// StaticRoot is a directory of frontend assets served at "/".
	// Empty disables static serving.
	StaticRoot string `yaml:"staticRoot"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig locates the postgres instance. When URI is set it wins;
// otherwise the URI is composed from the parts.
type DatabaseConfig struct {
	URI      string `yaml:"uri"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ConnectionString gives the postgres URI to dial.
//
// error: when neither URI nor all of host/port/name/user/password are set.
func (d DatabaseConfig) ConnectionString() (string, error) {
	if d.URI != "" {
		return d.URI, nil
	}
	for _, part := range []struct{ name, value string }{
		{"host", d.Host}, {"port", d.Port}, {"name", d.Name},
		{"user", d.User}, {"password", d.Password},
	} {
		if part.value == "" {
			return "", fmt.Errorf("database config: missing %s", part.name)
		}
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password),
		d.Host, d.Port, d.Name,
	), nil
}

func LoadServerConfig(filepath string) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	conf, err := Unmarshal(content)
	if err != nil {
		return nil, err
	}
	conf.applyEnvironment()
	if conf.SigningSecret == "" {
		return nil, fmt.Errorf("config %s: signingSecret is not set", filepath)
	}
	return conf, nil
}

func Unmarshal(conf []byte) (*ServerConfig, error) {
	out := ServerConfig{Port: "8080"}
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ServerConfig) applyEnvironment() {
	overrides := []struct {
		env  string
		dest *string
	}{
		{"DATABASE_URI", &c.Database.URI},
		{"DB_HOST", &c.Database.Host},
		{"DB_PORT", &c.Database.Port},
		{"DB_NAME", &c.Database.Name},
		{"DB_USER", &c.Database.User},
		{"DB_PASSWORD", &c.Database.Password},
		{"JWT_SECRET_KEY", &c.SigningSecret},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.env); ok {
			*o.dest = value
		}
	}
}
