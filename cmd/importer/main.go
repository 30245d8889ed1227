package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"tour-optimizer-api/internal/config"
	"tour-optimizer-api/internal/dataset"
	"tour-optimizer-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "Path to the delivery point CSV to import (default: embedded dataset)")
	flag.Parse()

	ds, err := loadDataset(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d delivery points, depot: %s\n", ds.Len(), ds.Depot().Address)

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not configured")
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)

	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// IDs are positions, so the depot must be the first row of an empty table.
	existing, err := repo.CountLocations(ctx)
	if err != nil {
		fmt.Printf("Error counting existing rows: %v\n", err)
		os.Exit(1)
	}
	if existing > 0 {
		fmt.Printf("Error: delivery_points already holds %d rows\n", existing)
		os.Exit(1)
	}

	written, err := repo.CopyLocations(ctx, ds.Locations())
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	count, err := repo.CountLocations(ctx)
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}
	if count != ds.Len() {
		fmt.Printf("Error verifying import: record count mismatch: expected %d, got %d\n", ds.Len(), count)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", written)
}

// loadDataset reads path, or the embedded dataset when path is empty.
func loadDataset(path string) (*dataset.Dataset, error) {
	if path == "" {
		return dataset.Load()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	locations, err := dataset.ParseCSV(f)
	if err != nil {
		return nil, err
	}
	return dataset.New(locations)
}
