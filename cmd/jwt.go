package main

import (
	"context"
	"fmt"
	"pricewatch/internal/config"
	"pricewatch/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that mints an RS256 token for the
// runs API. The subject must be a user UUID; a random one is used when the
// flag is omitted.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a bearer token for the runs API",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			if subject == "" {
				subject = uuid.NewString()
			} else if _, err := uuid.Parse(subject); err != nil {
				logger.Fatal(ctx, "subject must be a UUID", zap.Error(err))
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
				Subject:   subject,
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
			}).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			logger.Info(ctx, "token minted", zap.String("subject", subject), zap.Time("expiresAt", now.Add(TTL)))
			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User UUID; random when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}
