// Package settings holds runtime-mutable shop configuration: the Telegram
// group that receives order notifications, per-user locale choices, and the
// admin accounts for the panel.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/internal/jsondb"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

// Admin is one panel account. Password may be a bcrypt hash or, for seeded
// development accounts, plaintext.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Settings is the persisted document.
type Settings struct {
	OrderGroupID int64             `json:"order_group_id,omitempty"`
	UserLocales  map[string]string `json:"user_locales,omitempty"` // chat ID → "uz"|"ru"
	Admins       []Admin           `json:"admins,omitempty"`
}

// Store wraps the settings document.
type Store struct {
	file *jsondb.File
}

// NewStore opens the settings document inside dataDir.
func NewStore(dataDir string) *Store {
	return &Store{file: jsondb.Open(filepath.Join(dataDir, "settings.json"))}
}

// Load reads the current settings. Missing or corrupt documents degrade to
// zero settings with a warning.
func (s *Store) Load() Settings {
	var st Settings
	if _, err := s.file.Read(&st); err != nil {
		logger.Warn("settings: document unreadable, using defaults", "error", err)
		return Settings{}
	}
	return st
}

// OrderGroup resolves the notification destination: the persisted group (set
// via /setgroup) wins over the ORDER_GROUP_ID environment value. Returns
// (0, false) when neither is configured.
func (s *Store) OrderGroup() (int64, bool) {
	if id := s.Load().OrderGroupID; id != 0 {
		return id, true
	}
	if id := config.OrderGroupID(); id != 0 {
		return id, true
	}
	return 0, false
}

// SetOrderGroup durably records the notification group.
func (s *Store) SetOrderGroup(id int64) error {
	return s.update(func(st *Settings) {
		st.OrderGroupID = id
	})
}

// UserLocale returns the stored locale for a chat, or "" when none is set.
func (s *Store) UserLocale(chatID int64) string {
	return s.Load().UserLocales[strconv.FormatInt(chatID, 10)]
}

// SetUserLocale records a chat's language choice.
func (s *Store) SetUserLocale(chatID int64, lang string) error {
	return s.update(func(st *Settings) {
		if st.UserLocales == nil {
			st.UserLocales = make(map[string]string)
		}
		st.UserLocales[strconv.FormatInt(chatID, 10)] = lang
	})
}

// FindAdmin looks up a panel account by username.
func (s *Store) FindAdmin(username string) (Admin, bool) {
	for _, a := range s.Load().Admins {
		if a.Username == username {
			return a, true
		}
	}
	return Admin{}, false
}

// SeedAdmins writes accounts only when the document has none yet.
func (s *Store) SeedAdmins(admins []Admin) error {
	return s.file.Update(func() error {
		var st Settings
		if _, err := s.file.Read(&st); err != nil && !errors.Is(err, jsondb.ErrCorrupt) {
			return fmt.Errorf("settings: load before seed: %w", err)
		}
		if len(st.Admins) > 0 {
			return nil
		}
		st.Admins = admins
		return s.file.Write(st)
	})
}

func (s *Store) update(mutate func(*Settings)) error {
	return s.file.Update(func() error {
		var st Settings
		if _, err := s.file.Read(&st); err != nil {
			if !errors.Is(err, jsondb.ErrCorrupt) {
				return fmt.Errorf("settings: load: %w", err)
			}
			logger.Warn("settings: document corrupt, rewriting", "error", err)
			st = Settings{}
		}
		mutate(&st)
		return s.file.Write(st)
	})
}
