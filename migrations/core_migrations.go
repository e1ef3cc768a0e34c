package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_02_000000_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Tournois
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS tournaments (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) UNIQUE NOT NULL,
						start_date TIMESTAMP NOT NULL,
						end_date TIMESTAMP NOT NULL,
						registration_deadline TIMESTAMP NOT NULL,
						max_participants INT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_tournaments_start_date ON tournaments(start_date);
					CREATE INDEX IF NOT EXISTS idx_tournaments_deleted_at ON tournaments(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Inscriptions : la paire (joueur, tournoi) est unique,
				// c'est la garantie finale contre le double enregistrement.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS registrations (
						id BIGSERIAL PRIMARY KEY,
						player_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						tournament_id BIGINT NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						registration_date TIMESTAMP NOT NULL DEFAULT NOW(),
						status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						CONSTRAINT idx_registrations_player_tournament UNIQUE (player_id, tournament_id)
					);
					CREATE INDEX IF NOT EXISTS idx_registrations_tournament_id ON registrations(tournament_id);
					CREATE INDEX IF NOT EXISTS idx_registrations_status ON registrations(status);
					CREATE INDEX IF NOT EXISTS idx_registrations_deleted_at ON registrations(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Matchs : le quintuplet identitaire est unique, un même
				// match ne peut pas être programmé deux fois.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						player1_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						player2_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						referee_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						tournament_id BIGINT NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						court_number INT NOT NULL,
						start_date TIMESTAMP NOT NULL,
						sets JSONB DEFAULT '[]'::jsonb,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						CONSTRAINT idx_matches_identity UNIQUE (player1_id, player2_id, referee_id, tournament_id, start_date)
					);
					CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_matches_tournament_id ON matches(tournament_id);
					CREATE INDEX IF NOT EXISTS idx_matches_referee_id ON matches(referee_id);
					CREATE INDEX IF NOT EXISTS idx_matches_player1_id ON matches(player1_id);
					CREATE INDEX IF NOT EXISTS idx_matches_player2_id ON matches(player2_id);
				`).Error; err != nil {
					return err
				}

				// Notifications
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS notifications (
						id BIGSERIAL PRIMARY KEY,
						user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						message TEXT NOT NULL,
						timestamp TIMESTAMP NOT NULL DEFAULT NOW(),
						read BOOLEAN NOT NULL DEFAULT FALSE,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id);
					CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read);
					CREATE INDEX IF NOT EXISTS idx_notifications_timestamp ON notifications(timestamp);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				for _, table := range []string{"notifications", "matches", "registrations", "tournaments"} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
