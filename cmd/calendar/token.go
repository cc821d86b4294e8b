package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/spf13/cobra"
)

type tokenFlags struct {
	secret string
	userID uint
	role   string
	email  string
	ttl    time.Duration
}

// newTokenCmd issues development tokens. Production tokens come from the
// login service.
func newTokenCmd(opts *options) *cobra.Command {
	f := tokenFlags{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a JWT for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd.OutOrStdout(), opts, f)
		},
	}
	cmd.Flags().StringVar(&f.secret, "secret", "", "signing secret (defaults to jwt.secret from --config)")
	cmd.Flags().UintVar(&f.userID, "user-id", 1, "user id claim")
	cmd.Flags().StringVar(&f.role, "role", string(model.Student), "student, teacher or admin")
	cmd.Flags().StringVar(&f.email, "email", "", "email claim")
	cmd.Flags().DurationVar(&f.ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func runToken(w io.Writer, opts *options, f tokenFlags) error {
	role := model.UserRole(f.role)
	switch role {
	case model.Student, model.Teacher, model.Admin:
	default:
		return fmt.Errorf("unknown role %q", f.role)
	}
	if f.userID == 0 {
		return errors.New("--user-id must be positive")
	}
	if f.ttl <= 0 {
		return errors.New("--ttl must be positive")
	}

	secret := f.secret
	if secret == "" {
		cfg, err := opts.loadConfig()
		if err != nil {
			return err
		}
		if cfg != nil {
			secret = cfg.JWT.Secret
		}
	}
	if secret == "" {
		return errors.New("no signing secret: pass --secret or --config")
	}

	token, err := util.GenerateJWT(f.userID, role, f.email, secret, f.ttl)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}
	fmt.Fprintln(w, token)
	return nil
}
