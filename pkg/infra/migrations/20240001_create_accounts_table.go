package migrations

import (
	"github.com/NeuralTrust/qa-service/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240001_create_accounts_table",
		Name: "Create accounts table",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS accounts (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					email      TEXT NOT NULL UNIQUE,
					password   TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS accounts;`).Error
		},
	})
}
