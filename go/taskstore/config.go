package taskstore

import (
	"fmt"
	"net/url"
)

// Config is the database connection configuration of the Store.
// It's embedded as a go-flags group with env-namespace DB, which yields the
// contractual DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME variables.
type Config struct {
	Host     string `long:"host" env:"HOST" required:"true" description:"Database host"`
	Port     uint16 `long:"port" env:"PORT" required:"true" description:"Database port"`
	User     string `long:"user" env:"USER" required:"true" description:"Database user"`
	Password string `long:"password" env:"PASSWORD" required:"true" description:"Database password"`
	DBName   string `long:"name" env:"NAME" required:"true" description:"Database name"`
}

// Validate the configuration.
func (c *Config) Validate() error {
	var requiredProperties = [][]string{
		{"host", c.Host},
		{"user", c.User},
		{"password", c.Password},
		{"name", c.DBName},
	}
	for _, req := range requiredProperties {
		if req[1] == "" {
			return fmt.Errorf("missing '%s'", req[0])
		}
	}
	return nil
}

// ToURI converts the Config to a DSN string.
func (c *Config) ToURI() string {
	var host = c.Host
	if c.Port != 0 {
		host = fmt.Sprintf("%s:%d", host, c.Port)
	}
	var uri = url.URL{
		Scheme: "postgres",
		Host:   host,
		User:   url.UserPassword(c.User, c.Password),
	}
	if c.DBName != "" {
		uri.Path = "/" + c.DBName
	}
	return uri.String()
}
