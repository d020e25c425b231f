package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kindredhq/kindred/internal/infrastructure/auth"
	"github.com/kindredhq/kindred/internal/infrastructure/config"
	"github.com/kindredhq/kindred/internal/shared/authorization"
	"github.com/kindredhq/kindred/internal/shared/id"
)

var (
	env     string
	subject string
	role    string
)

// NewCommand issues a signed bearer token for local development and
// operational tooling. Production identities come from the external
// identity provider, not from this command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token",
		Long:  `Generate a signed JWT for a given subject and role, useful for local testing against a running server.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject ID (defaults to a fresh anonymous seeker token)")
	cmd.Flags().StringVarP(&role, "role", "r", "community", "Role (community, certified, moderator, admin)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if subject == "" {
		generated, err := id.GenerateWithPrefix("anon", 24)
		if err != nil {
			return fmt.Errorf("failed to generate seeker token: %w", err)
		}
		subject = generated
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	signed, err := jwtService.Generate(subject, authorization.ParseRole(role))
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Printf("subject: %s\nrole:    %s\ntoken:   %s\n", subject, role, signed)
	return nil
}
