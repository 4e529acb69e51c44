package cmd

import (
	"log"

	"github.com/gordonhealth/staff-portal/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	RunE:  runMigration,
	Use:   "migrate",
	Short: "create or update the blob storage schema",
}

func runMigration(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.OpenDB(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		log.Fatalf("failed to migrate store: %v", err)
	}

	log.Println("storage schema up to date")
	return nil
}
