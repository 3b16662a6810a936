package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Sync.validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if c.Server.SyncRateLimit < 0 {
		return fmt.Errorf("server.sync_rate_limit must not be negative (got %d)", c.Server.SyncRateLimit)
	}

	if strings.TrimSpace(c.Local.Path) == "" {
		return fmt.Errorf("local.path must not be empty")
	}

	if c.Database.RemoteEnabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func (s *SyncConfig) validate() error {
	if _, err := uuid.Parse(s.OwnerID); err != nil {
		return fmt.Errorf("owner_id must be a UUID: %w", err)
	}
	if !tableName.MatchString(s.SelfTable) {
		return fmt.Errorf("self_table %q is not a plain identifier", s.SelfTable)
	}
	if !tableName.MatchString(s.DependentTable) {
		return fmt.Errorf("dependent_table %q is not a plain identifier", s.DependentTable)
	}
	if s.SelfTable == s.DependentTable {
		return fmt.Errorf("self_table and dependent_table must differ (both %q)", s.SelfTable)
	}
	if s.BatchSize < 1 || s.BatchSize > 1000 {
		return fmt.Errorf("batch_size must be in [1, 1000] (got %d)", s.BatchSize)
	}
	return nil
}
