package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/spf13/cobra"
)

var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret",
	Short: "Hash an API client secret for the server config",
	Long: `Print a bcrypt hash of a client secret for use as "secret_hash" in the "server.clients" section of config.json.

A fresh client ID is printed as well unless --client-id is given.`,
	RunE: runHashSecret,
}

var (
	hashSecret   string
	hashCost     int
	hashClientID string
)

func init() {
	hashSecretCmd.Flags().StringVar(&hashSecret, "secret", "", "Client secret to hash")
	hashSecretCmd.Flags().IntVar(&hashCost, "cost", config.DefaultSecretCost, "bcrypt cost")
	hashSecretCmd.Flags().StringVar(&hashClientID, "client-id", "", "Existing client ID (UUID) to print alongside the hash")

	_ = hashSecretCmd.MarkFlagRequired("secret")

	rootCmd.AddCommand(hashSecretCmd)
}

func runHashSecret(cmd *cobra.Command, _ []string) error {
	if len(hashSecret) < 16 {
		return fmt.Errorf("secret must be at least 16 characters")
	}

	clientID := uuid.New()
	if hashClientID != "" {
		parsed, err := uuid.Parse(hashClientID)
		if err != nil {
			return fmt.Errorf("invalid --client-id: %w", err)
		}
		clientID = parsed
	}

	hash, err := config.HashSecret(hashSecret, hashCost)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "client_id:   %s\n", clientID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "secret_hash: %s\n", hash)
	return nil
}
