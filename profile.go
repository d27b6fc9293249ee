package funkydapper

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sqladapter "github.com/rahicks26/FunkyDapper/adapter/sql"
	"github.com/rahicks26/FunkyDapper/types"
)

// Profile describes a database connection loaded from YAML configuration.
//
// Example:
//
//	driver: sqlite3
//	dsn: "file:app.db?cache=shared"
//	max_open_conns: 10
//	max_idle_conns: 5
//	conn_max_lifetime_seconds: 300
type Profile struct {
	// Driver is a registered database/sql driver name.
	Driver string `yaml:"driver"`

	// DSN is the connection string; validated before any open attempt.
	DSN string `yaml:"dsn"`

	// MaxOpenConns limits open connections in the pool. Zero means unlimited.
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns limits idle connections kept in the pool.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// ConnMaxLifetimeSeconds bounds how long a pooled connection may be
	// reused. Zero means forever.
	ConnMaxLifetimeSeconds int `yaml:"conn_max_lifetime_seconds"`
}

// LoadProfile reads and validates a connection profile from a YAML file.
//
// Parameters:
//   - path: Path to the YAML profile
//
// Returns:
//   - *Profile: The parsed, validated profile
//   - error: File, parse, or validation error
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("funkydapper: read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("funkydapper: parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks that the profile can produce a usable connection.
//
// Returns:
//   - error: *types.ValidationError describing the first violated rule
func (p *Profile) Validate() error {
	if p.Driver == "" {
		return types.NewInvalidConnString("driver cannot be empty")
	}

	_, err := types.NewConnString(p.DSN)

	return err
}

// Open opens a database handle from the profile, applies the pool limits,
// and wraps it in a Client.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new client owning the opened handle
//   - error: Validation or driver error
func (p *Profile) Open(opts ...Option) (*Client, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open(p.Driver, p.DSN)
	if err != nil {
		return nil, &types.CallError{Op: "open", Cause: err}
	}

	if p.MaxOpenConns > 0 {
		db.SetMaxOpenConns(p.MaxOpenConns)
	}
	if p.MaxIdleConns > 0 {
		db.SetMaxIdleConns(p.MaxIdleConns)
	}
	if p.ConnMaxLifetimeSeconds > 0 {
		db.SetConnMaxLifetime(time.Duration(p.ConnMaxLifetimeSeconds) * time.Second)
	}

	return NewClient(sqladapter.NewDBAdapter(db), opts...)
}
