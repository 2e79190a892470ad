package storage

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	gameKeyPrefix  = "game:"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z0-9 ]{1,20}$`)
	colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidName reports whether s is acceptable as a player name: letters,
// digits and spaces, at most 20 characters.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// ValidColor reports whether s is a #RGB or #RRGGBB hex color.
func ValidColor(s string) bool {
	return colorPattern.MatchString(s)
}

// Preferences stores user settings.
type Preferences struct {
	PlayerName     string    `json:"player_name"`
	OpponentName   string    `json:"opponent_name"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	SoundEnabled   bool      `json:"sound_enabled"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() *Preferences {
	return &Preferences{
		PlayerName:     "Player 1",
		OpponentName:   "Player 2",
		PrimaryColor:   "#573D11",
		SecondaryColor: "#DCB167",
		SoundEnabled:   true,
		LastPlayed:     time.Now(),
	}
}

// SetPlayerName updates the player name, rejecting invalid input and
// leaving the current value untouched.
func (p *Preferences) SetPlayerName(s string) bool {
	if !ValidName(s) {
		return false
	}
	p.PlayerName = s
	return true
}

// SetOpponentName updates the opponent name, rejecting invalid input.
func (p *Preferences) SetOpponentName(s string) bool {
	if !ValidName(s) {
		return false
	}
	p.OpponentName = s
	return true
}

// SetPrimaryColor updates the primary board color, rejecting invalid input.
func (p *Preferences) SetPrimaryColor(s string) bool {
	if !ValidColor(s) {
		return false
	}
	p.PrimaryColor = s
	return true
}

// SetSecondaryColor updates the secondary board color, rejecting invalid
// input.
func (p *Preferences) SetSecondaryColor(s string) bool {
	if !ValidColor(s) {
		return false
	}
	p.SecondaryColor = s
	return true
}

// SavedGame is a persisted game: the notation string of every position
// reached plus the textual move history.
type SavedGame struct {
	Name    string    `json:"name"`
	FENs    []string  `json:"fens"`
	History []string  `json:"history"`
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens the store at the platform data directory.
func Open() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the store at an explicit directory. Tests and tools use it
// to avoid touching the real data directory.
func OpenAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if none were
// saved yet.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveGame stores a game under its name, overwriting any previous save
// with the same name.
func (s *Storage) SaveGame(g *SavedGame) error {
	if g.Name == "" || strings.ContainsRune(g.Name, ':') {
		return fmt.Errorf("invalid game name %q", g.Name)
	}
	g.SavedAt = time.Now()

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+g.Name), data)
	})
}

// LoadGame retrieves a saved game by name.
func (s *Storage) LoadGame(name string) (*SavedGame, error) {
	var g SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no saved game named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// ListGames returns the names of all saved games, sorted.
func (s *Storage) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// DeleteGame removes a saved game. Deleting a missing game is not an
// error.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + name))
	})
}
