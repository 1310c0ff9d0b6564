package migrations

import (
	"github.com/NeuralTrust/qa-service/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240003_create_answers_table",
		Name: "Create answers table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS answers (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					content     TEXT NOT NULL,
					question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
					account_id  UUID NOT NULL REFERENCES accounts(id),
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_answers_question_id
				ON answers (question_id);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS answers;`).Error
		},
	})
}
