package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/gordonhealth/staff-portal/internal/store"
	"github.com/gordonhealth/staff-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with the first-run collections",
	Long:  `Write the seed roster and calendar into the blob store. Existing collections are kept unless --clear is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := store.OpenDB(cfg.Storage)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		if err := store.Migrate(db); err != nil {
			log.Fatalf("failed to migrate store: %v", err)
		}

		blobs := store.New(db, logger.LoggerWrapper())

		if clearData {
			if err := blobs.SaveUsers(store.SeedUsers()); err != nil {
				log.Fatalf("failed to seed users: %v", err)
			}
			if err := blobs.SaveEvents(store.SeedEvents(time.Now())); err != nil {
				log.Fatalf("failed to seed events: %v", err)
			}
			fmt.Println("Replaced stored collections with seed data")
			return
		}

		// Without --clear, loading and saving materializes the seed only
		// where nothing is stored yet.
		users, err := blobs.LoadUsers()
		if err != nil {
			log.Fatalf("failed to load users: %v", err)
		}
		if err := blobs.SaveUsers(users); err != nil {
			log.Fatalf("failed to seed users: %v", err)
		}

		events, err := blobs.LoadEvents()
		if err != nil {
			log.Fatalf("failed to load events: %v", err)
		}
		if err := blobs.SaveEvents(events); err != nil {
			log.Fatalf("failed to seed events: %v", err)
		}

		fmt.Printf("Seeded store: %d users, %d events\n", len(users), len(events))
	},
}
