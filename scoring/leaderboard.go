package scoring

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/quasilyte/gdata"
)

// DefaultLeaderboardSize is used when a non-positive size is requested.
const DefaultLeaderboardSize = 10

const leaderboardKey = "leaderboard"

// Store persists opaque items by key. *gdata.Manager implements it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var _ Store = (*gdata.Manager)(nil)

// OpenStore opens the on-disk store for appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", appName, err)
	}
	return m, nil
}

// Entry is one leaderboard row. Lower times rank higher.
type Entry struct {
	Name string  `json:"name"`
	Time float64 `json:"time"`
}

// Leaderboard keeps the best race times, fastest first.
type Leaderboard struct {
	store   Store
	size    int
	entries []Entry
}

// OpenLeaderboard loads the leaderboard from store. A missing or unreadable
// item starts an empty board.
func OpenLeaderboard(store Store, size int) *Leaderboard {
	if size <= 0 {
		size = DefaultLeaderboardSize
	}
	lb := &Leaderboard{store: store, size: size}
	if store == nil {
		return lb
	}

	data, err := store.LoadItem(leaderboardKey)
	if err != nil {
		log.Printf("Warning: Could not load leaderboard: %v", err)
		return lb
	}
	if len(data) == 0 {
		return lb
	}
	if err := json.Unmarshal(data, &lb.entries); err != nil {
		log.Printf("Warning: Could not parse saved leaderboard: %v", err)
		lb.entries = nil
		return lb
	}
	lb.sortAndTrim()
	return lb
}

// Eligible reports whether a race time would make the board.
func (lb *Leaderboard) Eligible(time float64) bool {
	if len(lb.entries) < lb.size {
		return true
	}
	return time < lb.entries[len(lb.entries)-1].Time
}

// Add records a race time and saves the board. It returns the 1-based rank,
// or 0 when the time did not make the board.
func (lb *Leaderboard) Add(name string, time float64) (int, error) {
	if !lb.Eligible(time) {
		return 0, nil
	}
	if strings.TrimSpace(name) == "" {
		name = "Anonymous"
	}

	lb.entries = append(lb.entries, Entry{Name: name, Time: time})
	lb.sortAndTrim()

	rank := 0
	for i, e := range lb.entries {
		if e.Name == name && e.Time == time {
			rank = i + 1
			break
		}
	}
	return rank, lb.save()
}

// Entries returns a copy of the board, fastest first.
func (lb *Leaderboard) Entries() []Entry {
	return append([]Entry(nil), lb.entries...)
}

func (lb *Leaderboard) sortAndTrim() {
	sort.SliceStable(lb.entries, func(i, j int) bool {
		return lb.entries[i].Time < lb.entries[j].Time
	})
	if len(lb.entries) > lb.size {
		lb.entries = lb.entries[:lb.size]
	}
}

func (lb *Leaderboard) save() error {
	if lb.store == nil {
		return nil
	}
	data, err := json.Marshal(lb.entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := lb.store.SaveItem(leaderboardKey, data); err != nil {
		log.Printf("Warning: Could not save leaderboard: %v", err)
		return err
	}
	return nil
}
