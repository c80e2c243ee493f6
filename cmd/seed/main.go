// Command seed populates the database with sample artists and artworks
// for local development. Existing usernames are skipped, so running it
// twice is safe.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/kunsthaus/canvas-bids/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type sampleUser struct {
	username   string
	email      string
	password   string
	artistName string
	bio        string
	specialty  string
}

type sampleArtwork struct {
	title       string
	description string
	category    string
	price       float64
	imageURL    string
}

var sampleUsers = []sampleUser{
	{
		username:   "sarah_mitchell",
		email:      "sarah@example.com",
		password:   "password123",
		artistName: "Sarah Mitchell",
		bio:        "Abstract expressionist with a passion for color and emotion",
		specialty:  "Abstract Expressionism",
	},
	{
		username:   "david_chen",
		email:      "david@example.com",
		password:   "password123",
		artistName: "David Chen",
		bio:        "Urban contemporary artist capturing city life",
		specialty:  "Contemporary Urban",
	},
	{
		username:   "elena_rodriguez",
		email:      "elena@example.com",
		password:   "password123",
		artistName: "Elena Rodriguez",
		bio:        "Surreal landscape painter exploring dreams and reality",
		specialty:  "Surreal Landscapes",
	},
}

var sampleArtworks = []sampleArtwork{
	{
		title:       "Sunset Dreams",
		description: "A vibrant exploration of color and emotion capturing the essence of twilight.",
		category:    "abstract",
		price:       3200,
		imageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop",
	},
	{
		title:       "Urban Poetry",
		description: "Street art meets fine art in this powerful urban composition.",
		category:    "contemporary",
		price:       1800,
		imageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
	},
	{
		title:       "Ocean Depths",
		description: "Dive into the mysterious beauty of the deep ocean.",
		category:    "landscape",
		price:       2750,
		imageURL:    "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=400&h=300&fit=crop",
	},
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	_ = godotenv.Load(*configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	port, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		port,
		getEnv("POSTGRES_DB", "kunsthaus"),
	)

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := seed(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func seed(ctx context.Context, db *sqlx.DB) error {
	userRead := repositories.NewUserReadRepository(db)
	userWrite := repositories.NewUserWriteRepository(db)
	artistWrite := repositories.NewArtistWriteRepository(db)
	artworkWrite := repositories.NewArtworkWriteRepository(db)

	created := 0
	for i, su := range sampleUsers {
		exists, err := userRead.ExistsByUsername(ctx, su.username)
		if err != nil {
			return err
		}
		if exists {
			fmt.Printf("user %s already exists, skipping\n", su.username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user, err := userWrite.Save(ctx, su.username, su.email, string(hash), true)
		if err != nil {
			return err
		}

		artist, err := artistWrite.Save(ctx, user.ID, su.artistName, su.bio, su.specialty)
		if err != nil {
			return err
		}

		if i < len(sampleArtworks) {
			aw := sampleArtworks[i]
			if _, err := artworkWrite.Save(ctx, aw.title, aw.description, aw.category, aw.price, aw.imageURL, user.ID, artist.ID); err != nil {
				return err
			}
		}

		created++
		fmt.Printf("created artist %s with one artwork\n", su.artistName)
	}

	fmt.Printf("seeding done, %d artists created\n", created)
	return nil
}
