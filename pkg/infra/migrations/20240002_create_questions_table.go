package migrations

import (
	"github.com/NeuralTrust/qa-service/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240002_create_questions_table",
		Name: "Create questions table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS questions (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title      TEXT NOT NULL,
					content    TEXT NOT NULL,
					tags       TEXT[],
					account_id UUID NOT NULL REFERENCES accounts(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_questions_created_at
				ON questions (created_at, id);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS questions;`).Error
		},
	})
}
