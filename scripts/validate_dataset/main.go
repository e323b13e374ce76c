package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dataset"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/util"
)

func main() {
	file := flag.String("file", "", "CSV file to check (defaults to DATASET_PATH)")
	strict := flag.Bool("strict", false, "Exit non-zero when any row is rejected")
	limit := flag.Int("limit", 20, "Maximum rejected rows to list")
	flag.Parse()

	_ = godotenv.Load(".env.local", ".env")

	path := *file
	if path == "" {
		path = os.Getenv("DATASET_PATH")
	}
	if path == "" {
		log.Fatal("no CSV given: pass -file or set DATASET_PATH")
	}

	table, err := dataset.NewCSVSource(path).Rows(context.Background())
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	fmt.Printf("Checking %s\n", path)
	fmt.Println("========================================")

	dirty := make(map[string]int)
	for _, row := range table.Rows {
		for col, v := range row.Fields {
			if util.NeedsCleanup(v) {
				dirty[col]++
			}
		}
	}

	records, report, err := dataset.Build(table, dataset.BuildOptions{Strict: *strict})

	fmt.Printf("Rows:     %d\n", report.Rows)
	fmt.Printf("Accepted: %d\n", report.Accepted)
	fmt.Printf("Rejected: %d\n", report.Rows-report.Accepted)

	for i, e := range report.Rejected {
		if i == *limit {
			fmt.Printf("  ... %d more\n", len(report.Rejected)-i)
			break
		}
		fmt.Printf("  line %d %s: %s\n", e.Line, e.Column, e.Reason)
	}

	printCounts("Label warnings", report.Warnings)
	printCounts("Cells needing cleanup", dirty)

	if err != nil {
		log.Fatalf("Validation failed: %v", err)
	}
	fmt.Printf("OK: %d records ready to serve\n", len(records))
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	cols := make([]string, 0, len(counts))
	for c := range counts {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	fmt.Printf("%s:\n", title)
	for _, c := range cols {
		fmt.Printf("  %-28s %d\n", c, counts[c])
	}
}
