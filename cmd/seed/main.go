// seed inserts a demo user and a small sample catalog into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/abakirov/mflix-api/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

type movieSpec struct {
	title  string
	year   int
	plot   string
	genres []string
}

var movies = []movieSpec{
	{"The Great Train Robbery", 1903, "A group of bandits stage a brazen train hold-up.", []string{"Short", "Western"}},
	{"A Corner in Wheat", 1909, "A greedy tycoon decides to corner the world market in wheat.", []string{"Short", "Drama"}},
	{"Traffic in Souls", 1913, "A woman battles a vice ring in New York.", []string{"Crime", "Drama"}},
	{"Gertie the Dinosaur", 1914, "The earliest animated cartoon character with a distinct personality.", []string{"Animation", "Short"}},
	{"Regeneration", 1915, "A gangster grows up in the slums of New York.", []string{"Biography", "Crime"}},
}

type theaterSpec struct {
	theaterID int
	street    string
	city      string
	state     string
	zipcode   string
}

var theaters = []theaterSpec{
	{1000, "340 W Market", "Bloomington", "MN", "55425"},
	{1001, "591 San Jacinto Blvd", "Austin", "TX", "78701"},
	{1002, "45235 Worth Ave", "California", "MD", "20619"},
	{1003, "5072 Pinnacle Sq", "Birmingham", "AL", "35235"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert the demo user so re-runs keep working.
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, 'user')
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var moviesInserted int
	for _, spec := range movies {
		tag, err := pool.Exec(ctx, `
			INSERT INTO movies (title, year, plot, genres)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM movies WHERE title = $1 AND year = $2)`,
			spec.title, spec.year, spec.plot, spec.genres,
		)
		if err != nil {
			log.Fatalf("insert movie %q: %v", spec.title, err)
		}
		moviesInserted += int(tag.RowsAffected())
	}

	var theatersInserted int
	for _, spec := range theaters {
		tag, err := pool.Exec(ctx, `
			INSERT INTO theaters (theater_id, street, city, state, zipcode)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (SELECT 1 FROM theaters WHERE theater_id = $1)`,
			spec.theaterID, spec.street, spec.city, spec.state, spec.zipcode,
		)
		if err != nil {
			log.Fatalf("insert theater %d: %v", spec.theaterID, err)
		}
		theatersInserted += int(tag.RowsAffected())
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:              %s / %s\n", seedEmail, seedPassword)
	fmt.Printf("  User ID:           %s\n", userID)
	fmt.Printf("  Movies inserted:   %d  (of %d, rest already present)\n", moviesInserted, len(movies))
	fmt.Printf("  Theaters inserted: %d  (of %d, rest already present)\n", theatersInserted, len(theaters))
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println()
	fmt.Println("    # → {\"status\":200,\"message\":\"Login successful\",\"data\":{\"token\":\"eyJ...\"}}")
	fmt.Println()
	fmt.Println("  Step 2 — list movies with the token:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/api/movies -H \"Authorization: Bearer $JWT\"")
}
