package permission

import (
	"fmt"

	"github.com/kindredhq/kindred/internal/shared/logger"
)

// InitDefaultPolicies seeds the role policies the platform ships with.
// AddPolicy is idempotent for existing rules, so this runs on every boot.
func InitDefaultPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Moderators review the reported queue and act on content and users.
		{"moderator", "dilemma", "moderate"},
		{"moderator", "user", "warn"},
		{"moderator", "user", "ban"},
		{"moderator", "user", "read_status"},

		// Admins additionally manage helper accounts.
		{"admin", "dilemma", "moderate"},
		{"admin", "user", "warn"},
		{"admin", "user", "ban"},
		{"admin", "user", "read_status"},
		{"admin", "helper", "review_application"},
		{"admin", "helper", "change_role"},
	}

	for _, policy := range policies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("default permission policies initialized")
	return nil
}
