package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/config"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	secret string
	expiry time.Duration
	userID int64
	role   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&secret, "secret", "s", "", "JWT signing secret (defaults to JWT_SECRET)")

	tokenCmd.Flags().Int64VarP(&userID, "user-id", "u", 0, "User id to put in the token")
	tokenCmd.Flags().StringVarP(&role, "role", "r", string(model.RoleMember), "Role to put in the token: admin or member")
	tokenCmd.Flags().DurationVarP(&expiry, "expiry", "e", 0, "Token lifetime (defaults to JWT_EXPIRY)")
	tokenCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ukmctl",
	Short: "ukmctl is an operator tool for the UKM API",
	Long:  `ukmctl issues and inspects access tokens accepted by the UKM API.`,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token",
	Long:  `Issue a signed access token for a user, for local testing and operator scripts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := model.Role(role)
		if r != model.RoleAdmin && r != model.RoleMember {
			return fmt.Errorf("unknown role %q", role)
		}

		tm, err := tokenManager()
		if err != nil {
			return err
		}

		token, err := tm.Generate(userID, r)
		if err != nil {
			return fmt.Errorf("generating token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [token]",
	Short: "Verify an access token",
	Long:  `Verify an access token and print the identity it carries.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tm, err := tokenManager()
		if err != nil {
			return err
		}

		claims, err := tm.Validate(args[0])
		if err != nil {
			return fmt.Errorf("invalid token: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "user_id: %d\n", claims.UserID)
		fmt.Fprintf(out, "role:    %s\n", claims.Role)
		if claims.ExpiresAt != nil {
			fmt.Fprintf(out, "expires: %s\n", claims.ExpiresAt.Time.Format(time.RFC3339))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the ukmctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

// tokenManager builds a TokenManager from flags, falling back to the
// API's environment configuration.
func tokenManager() (*auth.TokenManager, error) {
	cfg := config.Load()
	if secret == "" {
		secret = cfg.JWT.Secret
	}
	if expiry <= 0 {
		expiry = cfg.JWT.ExpiryPeriod
	}
	return auth.NewTokenManager(secret, expiry)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
