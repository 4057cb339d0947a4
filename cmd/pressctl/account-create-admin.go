package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/pressroom/pkg/config"
	"github.com/pressroom/pressroom/pkg/db"
	"github.com/pressroom/pressroom/pkg/model"
)

// accountCreateAdminCmd represents the account create-admin command
var accountCreateAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long: `Create an administrator account.

Administrators cannot register through the API; they are provisioned with
this command. The account is created approved and can log in immediately.

If --password is not given, a random password is generated and printed
to STDOUT.

Example:
  pressctl account create-admin --email admin@example.com
  pressctl account create-admin --email admin@example.com --name "Night Editor"`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			fmt.Fprintln(os.Stderr, "--email is required")
			os.Exit(1)
		}
		if name == "" {
			name = "admin"
		}

		generated := password == ""
		if generated {
			var err error
			password, err = randomPassword()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate password: %v\n", err)
				os.Exit(1)
			}
		}

		if err := createAdmin(name, email, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create admin: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created admin account '%s'\n", email)
		if generated {
			fmt.Printf("Password for %s: %s\n", email, password)
		}
	},
}

func init() {
	accountCmd.AddCommand(accountCreateAdminCmd)
	accountCreateAdminCmd.Flags().StringP("email", "e", "", "admin email address")
	accountCreateAdminCmd.Flags().StringP("name", "n", "", "admin display name (default: 'admin')")
	accountCreateAdminCmd.Flags().String("password", "", "admin password (default: generated)")
}

func randomPassword() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

func createAdmin(name, email, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (set DATABASE_URL)")
	}

	database, err := db.Connect(db.Config{URL: cfg.DatabaseURL, LogLevel: cfg.LogLevel})
	if err != nil {
		return err
	}

	var existing model.Account
	if err := database.Where("email = ?", email).First(&existing).Error; err == nil {
		return fmt.Errorf("account '%s' already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := model.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsApproved:   true,
	}

	if err := database.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	return nil
}
