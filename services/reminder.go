// services/reminder.go - periodic reminders for users with unfinished games
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"hangman/models"

	"gorm.io/gorm"
)

// Reminder describes one user who should be nudged about active games.
type Reminder struct {
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	ActiveGames int    `json:"active_games"`
}

// ReminderService periodically scans for users with an email address and
// at least one unfinished game.
type ReminderService struct {
	db       *gorm.DB
	interval time.Duration
	stop     chan struct{}
}

var reminderService *ReminderService

// InitReminderService initializes the singleton reminder service.
func InitReminderService(db *gorm.DB) {
	hours := 24
	if v := os.Getenv("REMINDER_INTERVAL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	reminderService = &ReminderService{
		db:       db,
		interval: time.Duration(hours) * time.Hour,
		stop:     make(chan struct{}),
	}
}

// GetReminderService returns the initialized reminder service.
func GetReminderService() *ReminderService {
	return reminderService
}

// Start launches the periodic scan unless disabled via environment.
func (s *ReminderService) Start() {
	if v := os.Getenv("REMINDER_ENABLED"); v == "false" || v == "0" {
		log.Println("Reminder service disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.run()
			case <-s.stop:
				return
			}
		}
	}()
	log.Printf("Reminder service started (every %s)", s.interval)
}

// Stop halts the periodic scan.
func (s *ReminderService) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

func (s *ReminderService) run() {
	reminders, err := s.Scan()
	if err != nil {
		log.Printf("Reminder scan failed: %v", err)
		return
	}
	for _, r := range reminders {
		// TODO: deliver by email once an SMTP sender is configured
		log.Printf("Reminder: %s <%s> has %d unfinished game(s)", r.UserName, r.Email, r.ActiveGames)
	}
}

// Scan returns every user with an email and at least one active game.
func (s *ReminderService) Scan() ([]Reminder, error) {
	var users []models.User
	if err := s.db.Where("email IS NOT NULL").Find(&users).Error; err != nil {
		return nil, err
	}

	reminders := []Reminder{}
	for _, user := range users {
		var count int64
		err := s.db.Model(&models.Game{}).
			Where("user_id = ? AND game_over = ?", user.ID, false).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			continue
		}
		email := ""
		if user.Email != nil {
			email = *user.Email
		}
		reminders = append(reminders, Reminder{
			UserName:    user.Name,
			Email:       email,
			ActiveGames: int(count),
		})
	}
	return reminders, nil
}
