// Command manage runs operational tasks against the job-board database:
//
//	manage migrate   create missing tables
//	manage seed      load starter companies, categories, locations, and jobs
//	manage reset     drop everything and recreate the schema
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/Emannuh254/server-jobs/internal/config"
	"github.com/Emannuh254/server-jobs/internal/database"
	"github.com/Emannuh254/server-jobs/internal/domain/job"
	"github.com/Emannuh254/server-jobs/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:          cfg.PostgresDSN,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
	defer db.Close()

	ctx := context.Background()
	switch os.Args[1] {
	case "migrate":
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("migrate failed: %v", err)
		}
		log.Println("migrations completed successfully")
	case "seed":
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("migrate failed: %v", err)
		}
		if err := seed(ctx, db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Println("database seeding completed successfully")
	case "reset":
		if err := database.ResetSchema(ctx, db); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		log.Println("database reset completed successfully")
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: manage [command]

commands:
  migrate    create missing tables
  seed       seed the database with sample data
  reset      drop all tables and recreate them`)
}

func seed(ctx context.Context, db *sql.DB) error {
	companies := []struct{ name, description string }{
		{"Tech Innovations Ltd", "Leading tech company in Kenya"},
		{"Digital Solutions Africa", "Providing digital solutions across Africa"},
		{"Kenya Software Developers", "Top software development company"},
	}
	for _, c := range companies {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO companies (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			c.name, c.description); err != nil {
			return fmt.Errorf("seed company %q: %w", c.name, err)
		}
	}

	referenceRepo := postgres.NewReferenceRepository(db)
	for _, category := range []string{"Engineering", "Design", "Marketing", "Sales"} {
		if _, err := referenceRepo.ResolveCategory(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", category, err)
		}
	}
	for _, location := range []string{"Nairobi, Kenya", "Mombasa, Kenya", "Kisumu, Kenya", "Remote, Kenya"} {
		if _, err := referenceRepo.ResolveLocation(ctx, location); err != nil {
			return fmt.Errorf("seed location %q: %w", location, err)
		}
	}

	jobRepo := postgres.NewJobRepository(db, referenceRepo)
	salaryMin, salaryMax := 80000.0, 120000.0
	designMin, designMax := 60000.0, 90000.0
	sampleJobs := []job.CreateInput{
		{
			Title:            "Senior Python Developer",
			Company:          "Tech Innovations Ltd",
			Location:         "Nairobi, Kenya",
			Type:             "full-time",
			Description:      "We are looking for an experienced Python developer...",
			Requirements:     "5+ years of Python experience, Django framework knowledge",
			SalaryMin:        &salaryMin,
			SalaryMax:        &salaryMax,
			SalaryCurrency:   "KSh",
			Tags:             "Python, Django, PostgreSQL, REST API",
			ApplicationEmail: "hr@techinnovations.co.ke",
			Category:         "Engineering",
		},
		{
			Title:          "UI/UX Designer",
			Company:        "Digital Solutions Africa",
			Location:       "Remote, Kenya",
			Type:           "full-time",
			Description:    "Join our design team to create amazing user experiences...",
			Requirements:   "3+ years of design experience, proficiency in Figma",
			SalaryMin:      &designMin,
			SalaryMax:      &designMax,
			SalaryCurrency: "KSh",
			Tags:           "UI, UX, Figma, Design Thinking",
			ApplicationURL: "https://apply.example.com/ux-designer",
			Category:       "Design",
		},
	}
	for _, input := range sampleJobs {
		id, err := jobRepo.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("seed job %q: %w", input.Title, err)
		}
		log.Printf("added job: %s (ID: %d)", input.Title, id)
	}
	return nil
}
