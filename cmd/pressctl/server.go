package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pressroom/pressroom/pkg/audit"
	"github.com/pressroom/pressroom/pkg/config"
	"github.com/pressroom/pressroom/pkg/db"
	"github.com/pressroom/pressroom/pkg/server"
	"github.com/pressroom/pressroom/pkg/server/endpoints"
	gormstore "github.com/pressroom/pressroom/pkg/server/store/gorm"
	"github.com/pressroom/pressroom/pkg/token"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Pressroom application server",
	Long: `Run the Pressroom application server.

To run the server requires the DATABASE_URL and PRESSROOM_TOKEN_SECRET
settings, from the environment or from the config file.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		// Flags win over config file and environment
		if cmd.Flags().Changed("bind-address") {
			cfg.BindAddress, _ = cmd.Flags().GetString("bind-address")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(cfg.DatabaseURL); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL, LogLevel: cfg.LogLevel})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		accounts := gormstore.NewAccountsStore(database, nil)
		articles := gormstore.NewArticlesStore(database)
		health := gormstore.NewHealthStore(database)
		issuer := token.NewIssuer([]byte(cfg.TokenSecret), cfg.TokenTTL)
		auditLogger := audit.NewLogger(os.Stdout)

		s := server.NewServer(database, accounts, articles, health, issuer, auditLogger, cfg.BindAddress, cfg.Port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s...\n", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "8000", "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", "0.0.0.0", "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
