package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"standup-api-backend/internal/database/models"
	"standup-api-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the layout of a seed YAML file
type File struct {
	Teams []TeamData `yaml:"teams"`
}

// TeamData describes a team, its members and its standups
type TeamData struct {
	Name     string        `yaml:"name"`
	Members  []string      `yaml:"members"`
	Standups []StandupData `yaml:"standups,omitempty"`
}

// StandupData describes one standup. Chair names a member of the same team.
type StandupData struct {
	Time        time.Time      `yaml:"time"`
	Chair       string         `yaml:"chair"`
	MeetingLink string         `yaml:"meeting_link,omitempty"`
	Notes       string         `yaml:"notes,omitempty"`
	Activities  []ActivityData `yaml:"activities,omitempty"`
}

// ActivityData describes an activity. User names a member of the team.
type ActivityData struct {
	User    string `yaml:"user"`
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Comment string `yaml:"comment,omitempty"`
}

// Result counts the rows a seed run inserted
type Result struct {
	Teams      int
	Users      int
	Standups   int
	Activities int
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for _, team := range file.Teams {
		if team.Name == "" {
			return nil, errors.New("seed team without a name")
		}
	}
	return &file, nil
}

// Apply inserts the file's rows in one transaction. Rows that already exist
// (teams by name, users by name within a team, standups by team and time) are
// reused, so a file can be applied more than once.
func Apply(ctx context.Context, db *gorm.DB, file *File) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, td := range file.Teams {
			if err := applyTeam(tx, td, &res); err != nil {
				return fmt.Errorf("team %s: %w", td.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"teams":      res.Teams,
		"users":      res.Users,
		"standups":   res.Standups,
		"activities": res.Activities,
	}).Info("seed data applied")
	return res, nil
}

func applyTeam(tx *gorm.DB, td TeamData, res *Result) error {
	team := models.Team{Name: td.Name}
	created, err := firstOrCreate(tx, &team, "name = ?", td.Name)
	if err != nil {
		return err
	}
	if created {
		res.Teams++
	}

	users := make(map[string]int64, len(td.Members))
	for _, name := range td.Members {
		user := models.User{Name: name, TeamID: &team.ID}
		created, err := firstOrCreate(tx, &user, "name = ? AND team_id = ?", name, team.ID)
		if err != nil {
			return err
		}
		if created {
			res.Users++
		}
		users[name] = user.ID
	}

	for _, sd := range td.Standups {
		chairID, ok := users[sd.Chair]
		if !ok {
			return fmt.Errorf("chair %q is not a member", sd.Chair)
		}

		standup := models.Standup{
			TeamID:      team.ID,
			Time:        sd.Time.UTC(),
			ChairID:     chairID,
			MeetingLink: sd.MeetingLink,
			Notes:       sd.Notes,
		}
		created, err := firstOrCreate(tx, &standup, "team_id = ? AND time = ?", team.ID, standup.Time)
		if err != nil {
			return err
		}
		if !created {
			continue
		}
		res.Standups++

		for _, ad := range sd.Activities {
			userID, ok := users[ad.User]
			if !ok {
				return fmt.Errorf("activity user %q is not a member", ad.User)
			}
			activity := models.Activity{
				StandupID: standup.ID,
				UserID:    userID,
				Name:      ad.Name,
				URL:       ad.URL,
				Comment:   ad.Comment,
			}
			if err := tx.Create(&activity).Error; err != nil {
				return fmt.Errorf("failed to create activity: %w", err)
			}
			res.Activities++
		}
	}
	return nil
}

// firstOrCreate loads the row matching query into dst, or inserts dst when there is none
func firstOrCreate(tx *gorm.DB, dst interface{}, query string, args ...interface{}) (bool, error) {
	err := tx.Where(query, args...).First(dst).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(dst).Error; err != nil {
		return false, fmt.Errorf("failed to create %T: %w", dst, err)
	}
	return true, nil
}
