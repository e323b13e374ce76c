package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/config"
	firestoreclient "github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/firestore"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/repository"
)

func main() {
	sample := flag.Int("sample", 1, "Number of documents to print")
	flag.Parse()

	ctx := context.Background()
	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateFirestore(); err != nil {
		log.Fatalf("Firestore not configured: %v", err)
	}

	client, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()

	if err := firestoreclient.Ping(ctx, client, cfg.FirestoreCollection); err != nil {
		log.Fatalf("Firestore ping failed: %v", err)
	}
	fmt.Printf("Connected to project %s using %s credentials\n", cfg.FirebaseProjectID, credsSource)

	repo := repository.NewResponseRepository(client, cfg.FirestoreCollection)
	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count %s: %v", cfg.FirestoreCollection, err)
	}
	fmt.Printf("Collection %s holds %d responses\n", cfg.FirestoreCollection, count)

	if *sample <= 0 || count == 0 {
		return
	}
	rows, err := repo.FetchAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read responses: %v", err)
	}
	if len(rows) > *sample {
		rows = rows[:*sample]
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal: %v", err)
	}
	fmt.Println(string(out))
}
