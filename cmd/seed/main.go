package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/harentsoaR/legalbook-api/internal/config"
	"github.com/harentsoaR/legalbook-api/internal/database"
	"github.com/harentsoaR/legalbook-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultSeedFile = "seed/users.json"

func main() {
	path := defaultSeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	users, err := readUsers(f)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Client().Disconnect(ctx)

	store := database.NewMongoUserStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	for i := range users {
		if err := store.Insert(ctx, &users[i]); err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		fmt.Printf("Inserted %s <%s> as %s\n", users[i].Name, users[i].Email, users[i].ID.Hex())
	}

	fmt.Printf("Seeded %d users into %s.%s\n", len(users), cfg.MongoDatabase, database.UsersCollection)
	return nil
}

// readUsers decodes a JSON array of users. Ids in the input are ignored so
// every seeded document gets a fresh one.
func readUsers(r io.Reader) ([]models.User, error) {
	var users []models.User
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].ID = primitive.NilObjectID
	}
	return users, nil
}
