package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestResolveCompanyInsertsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO companies (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id")).
		WithArgs("Tech Innovations Ltd").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	repo := NewReferenceRepository(db)
	id, err := repo.ResolveCompany(context.Background(), "Tech Innovations Ltd")
	if err != nil {
		t.Fatalf("ResolveCompany: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestResolveCompanyFallsBackToLookupOnConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// DO NOTHING suppressed the insert: RETURNING yields no row.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO companies")).
		WithArgs("Tech Innovations Ltd").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM companies WHERE name = $1")).
		WithArgs("Tech Innovations Ltd").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	repo := NewReferenceRepository(db)
	id, err := repo.ResolveCompany(context.Background(), "Tech Innovations Ltd")
	if err != nil {
		t.Fatalf("ResolveCompany: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want the existing row's id 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestResolveCategoryDefaultsAndSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_categories (name, slug)")).
		WithArgs("General", "general").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_categories (name, slug)")).
		WithArgs("Software Engineering", "software-engineering").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	repo := NewReferenceRepository(db)
	if _, err := repo.ResolveCategory(context.Background(), ""); err != nil {
		t.Fatalf("ResolveCategory(\"\"): %v", err)
	}
	if _, err := repo.ResolveCategory(context.Background(), "Software Engineering"); err != nil {
		t.Fatalf("ResolveCategory: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestResolveLocationParsesInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		city    string
		country string
		remote  bool
	}{
		{"city and country", "Nairobi, Kenya", "Nairobi", "Kenya", false},
		{"empty input maps to remote sentinel", "", "Remote", "Kenya", true},
		{"remote city", "Remote, Germany", "Remote", "Germany", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock: %v", err)
			}
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_locations (city, country, remote)")).
				WithArgs(tt.city, tt.country, tt.remote).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

			repo := NewReferenceRepository(db)
			id, err := repo.ResolveLocation(context.Background(), tt.raw)
			if err != nil {
				t.Fatalf("ResolveLocation(%q): %v", tt.raw, err)
			}
			if id != 5 {
				t.Errorf("id = %d, want 5", id)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestResolveLocationIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// First call inserts, second finds the conflict row via lookup.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_locations")).
		WithArgs("Nairobi", "Kenya", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_locations")).
		WithArgs("Nairobi", "Kenya", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM job_locations WHERE city = $1 AND country = $2")).
		WithArgs("Nairobi", "Kenya").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	repo := NewReferenceRepository(db)
	first, err := repo.ResolveLocation(context.Background(), "Nairobi, Kenya")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := repo.ResolveLocation(context.Background(), "Nairobi, Kenya")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first != second {
		t.Errorf("ids differ across resolutions: %d vs %d", first, second)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
