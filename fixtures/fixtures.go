package fixtures

import (
	"fmt"
	"log"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates a small realistic dataset: users for each role,
// a tournament, registrations in every state and a scheduled match.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	tournament, err := f.generateTournament()
	if err != nil {
		return fmt.Errorf("failed to generate tournament: %w", err)
	}

	if err := f.generateRegistrations(users, tournament); err != nil {
		return fmt.Errorf("failed to generate registrations: %w", err)
	}

	if err := f.generateMatches(users, tournament); err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	return nil
}

func (f *Fixtures) generateUsers() (map[string]authModels.User, error) {
	seeds := []struct {
		username string
		name     string
		role     string
	}{
		{"player1", "Rafael Costa", authModels.RolePlayer},
		{"player2", "Iga Nowak", authModels.RolePlayer},
		{"player3", "Carlos Munoz", authModels.RolePlayer},
		{"referee1", "Pascal Renard", authModels.RoleReferee},
		{"admin", "Alice Martin", authModels.RoleAdmin},
	}

	users := make(map[string]authModels.User, len(seeds))

	for _, seed := range seeds {
		hash, err := authUtils.HashPassword("password123")
		if err != nil {
			return nil, err
		}

		user := authModels.User{
			Username:     seed.username,
			Email:        fmt.Sprintf("%s@tennis-club.fr", seed.username),
			PasswordHash: hash,
			Role:         seed.role,
			Name:         seed.name,
		}

		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}

		users[seed.username] = user
		log.Printf("Created user: %s (role: %s)", seed.username, seed.role)
	}

	return users, nil
}

func (f *Fixtures) generateTournament() (models.Tournament, error) {
	now := time.Now()

	tournament := models.Tournament{
		Name:                 "Championship",
		StartDate:            now.AddDate(0, 1, 0),
		EndDate:              now.AddDate(0, 1, 14),
		RegistrationDeadline: now.AddDate(0, 0, 21),
		MaxParticipants:      32,
	}

	if err := f.db.Create(&tournament).Error; err != nil {
		return models.Tournament{}, err
	}

	log.Printf("Created tournament: %s (ID: %d)", tournament.Name, tournament.ID)
	return tournament, nil
}

func (f *Fixtures) generateRegistrations(users map[string]authModels.User, tournament models.Tournament) error {
	registrations := []models.Registration{
		{
			PlayerID:         users["player1"].ID,
			TournamentID:     tournament.ID,
			RegistrationDate: time.Now().AddDate(0, 0, -3),
			Status:           models.RegistrationApproved,
		},
		{
			PlayerID:         users["player2"].ID,
			TournamentID:     tournament.ID,
			RegistrationDate: time.Now().AddDate(0, 0, -2),
			Status:           models.RegistrationApproved,
		},
		{
			PlayerID:         users["player3"].ID,
			TournamentID:     tournament.ID,
			RegistrationDate: time.Now().AddDate(0, 0, -1),
			Status:           models.RegistrationPending,
		},
	}

	for i := range registrations {
		if err := f.db.Create(&registrations[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Created %d registrations for %s", len(registrations), tournament.Name)
	return nil
}

func (f *Fixtures) generateMatches(users map[string]authModels.User, tournament models.Tournament) error {
	match := models.Match{
		Player1ID:    users["player1"].ID,
		Player2ID:    users["player2"].ID,
		RefereeID:    users["referee1"].ID,
		TournamentID: tournament.ID,
		CourtNumber:  1,
		StartDate:    tournament.StartDate.Add(10 * time.Hour),
		Sets:         models.SetScores{},
	}

	if err := f.db.Create(&match).Error; err != nil {
		return err
	}

	log.Printf("Created match: player1 vs player2 on court %d", match.CourtNumber)
	return nil
}

// ClearAllData removes all fixture data
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.Notification{},
		&models.Match{},
		&models.Registration{},
		&models.Tournament{},
		&authModels.User{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	sequences := []string{
		"ALTER SEQUENCE users_id_seq RESTART WITH 1",
		"ALTER SEQUENCE tournaments_id_seq RESTART WITH 1",
		"ALTER SEQUENCE registrations_id_seq RESTART WITH 1",
		"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
		"ALTER SEQUENCE notifications_id_seq RESTART WITH 1",
	}

	for _, seq := range sequences {
		f.db.Exec(seq)
	}

	log.Println("All fixture data cleared!")
	return nil
}
