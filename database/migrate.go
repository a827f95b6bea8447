// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"hangman/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Level{},
		&models.Word{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ Migrations completed successfully")
}

// createIndexes creates indexes the query paths depend on
func createIndexes() {
	db := GetDB()

	// Directory and ledger queries filter games by owner and status
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_user_status ON games(user_id, game_over)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC)")

	// History retrieval walks a game's levels in order
	db.Exec("CREATE INDEX IF NOT EXISTS idx_levels_game_number ON levels(game_key, number)")

	// Rankings order users by average score
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_average ON users(average_score DESC)")
}
