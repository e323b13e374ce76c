package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dataset"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/config"
	firestoreclient "github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/firestore"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/repository"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// import-responses copies the cleaned survey CSV into Firestore, one document
// per row. Rows the loader would reject are skipped unless -all is set.
func main() {
	file := flag.String("file", "", "CSV file to import (defaults to DATASET_PATH)")
	dryRun := flag.Bool("dry-run", false, "Validate and report without writing")
	all := flag.Bool("all", false, "Import rejected rows too")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	path := *file
	if path == "" {
		path = cfg.DatasetPath
	}

	table, err := dataset.NewCSVSource(path).Rows(ctx)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceNotFound) {
			log.Fatalf("CSV not found: %s", path)
		}
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	records, report, err := dataset.Build(table, dataset.BuildOptions{})
	if err != nil {
		log.Fatalf("Failed to validate %s: %v", path, err)
	}
	fmt.Printf("Read %d rows from %s: %d valid, %d rejected\n",
		report.Rows, path, len(records), report.Rows-report.Accepted)
	for col, n := range report.Warnings {
		fmt.Printf("  warning: %s disagrees on %d rows\n", col, n)
	}

	rows := table.Rows
	if !*all {
		rows = acceptedRows(table.Rows, report)
	}

	if *dryRun {
		fmt.Printf("Dry run: would upsert %d documents into %s\n", len(rows), cfg.FirestoreCollection)
		return
	}

	if err := cfg.ValidateFirestore(); err != nil {
		log.Fatalf("Firestore not configured: %v", err)
	}
	client, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()
	log.Printf("Connected to Firestore project %s using %s credentials", cfg.FirebaseProjectID, credsSource)

	repo := repository.NewResponseRepository(client, cfg.FirestoreCollection)
	if err := repo.BatchUpsert(ctx, rows); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Upserted %d documents into %s\n", len(rows), cfg.FirestoreCollection)
}

func acceptedRows(rows []model.RawRow, report model.LoadReport) []model.RawRow {
	rejected := make(map[int]struct{}, len(report.Rejected))
	for _, e := range report.Rejected {
		rejected[e.Line] = struct{}{}
	}
	out := make([]model.RawRow, 0, len(rows))
	for _, r := range rows {
		if _, bad := rejected[r.Line]; !bad {
			out = append(out, r)
		}
	}
	return out
}
