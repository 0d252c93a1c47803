package config

import "errors"

// validate checks that the merged configuration is complete enough to start
// the server: the shared API key must be present and the database must be
// reachable either through a DSN or through discrete connection fields.
func (c *StructuredConfig) validate() error {
	var err error

	if c.App.APIKey == "" {
		err = errors.Join(err, ErrNoAPIKey)
	}

	if c.Storage.DB.DSN == "" && (c.Storage.DB.Host == "" || c.Storage.DB.Name == "") {
		err = errors.Join(err, ErrNoDatabaseSettings)
	}

	return err
}
