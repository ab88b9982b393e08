// Command seed writes the built-in match fixtures into a SQLite database that
// the web server can load with CATALOG_DB.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/AdamBeresnev/futsal-cup/internal/db"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/AdamBeresnev/futsal-cup/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	path := flag.String("db", "fixtures.db", "SQLite file to write")
	flag.Parse()

	database, err := db.Open("file:" + *path + "?_journal_mode=WAL")
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	catalog := fixture.Default()
	if err := store.NewMatchStore(database).SeedCatalog(context.Background(), catalog); err != nil {
		log.Fatal("Failed to seed matches: ", err)
	}

	log.Printf("Wrote %d matches to %s", catalog.Len(), *path)
}
