package favorites

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/log"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/storage"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Store is the ordered favorites collection. Every mutation rewrites the whole slot.
type Store struct {
	kv    storage.KV
	clock func() time.Time
	items []Favorite
	// lastID is the highest id issued or loaded; new ids are strictly greater.
	lastID int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, which drives ids and creation dates.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// Open reads the favorites slot once.
// An absent slot yields an empty store; so does unreadable or malformed data, which is logged.
func Open(kv storage.KV, options ...Option) *Store {
	s := &Store{kv: kv, clock: time.Now}
	for _, option := range options {
		option(s)
	}

	items, err := s.read()
	if err != nil {
		log.With("slot", storage.FavoritesKey).Warnf("ignoring persisted favorites: %s", err)
		items = nil
	}

	s.items = items
	for _, f := range items {
		s.lastID = max(s.lastID, f.ID)
	}
	return s
}

func (s *Store) read() ([]Favorite, error) {
	raw, ok, err := s.kv.Get(storage.FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("read slot: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var decoded []struct {
		Favorite
		Palette []string `json:"palette"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	items := make([]Favorite, 0, len(decoded))
	seen := make(map[int64]bool, len(decoded))
	for _, d := range decoded {
		p, err := palette.FromStrings(d.Palette)
		if err != nil {
			return nil, fmt.Errorf("favorite %d: %w", d.ID, err)
		}

		f := d.Favorite
		f.Palette = p
		if err := f.validate(); err != nil {
			return nil, err
		}

		if seen[f.ID] {
			log.With("id", f.ID).Warnf("dropping favorite with duplicate id")
			continue
		}
		seen[f.ID] = true
		items = append(items, f)
	}
	return items, nil
}

func (s *Store) persist() error {
	data, err := json.Marshal(lo.Ternary(s.items == nil, []Favorite{}, s.items))
	if err != nil {
		return err
	}

	if err := s.kv.Set(storage.FavoritesKey, string(data)); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Save snapshots p and f as a new favorite at the front of the list and persists the store.
// The favorite stays in memory even when persisting fails; the error is returned for reporting.
func (s *Store) Save(p palette.Palette, f font.Pair) (Favorite, error) {
	now := s.clock()
	fav := Favorite{
		ID:        s.nextID(now),
		Palette:   p,
		Fonts:     f,
		CreatedAt: now.Format(DateLayout),
	}

	s.items = append([]Favorite{fav}, s.items...)
	return fav, s.persist()
}

// Delete removes the favorite with id. Unknown ids are ignored; the store is persisted either way.
func (s *Store) Delete(id int64) error {
	if i := slices.IndexFunc(s.items, func(f Favorite) bool { return f.ID == id }); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	return s.persist()
}

// Get looks a favorite up by id.
func (s *Store) Get(id int64) mo.Option[Favorite] {
	fav, ok := lo.Find(s.items, func(f Favorite) bool { return f.ID == id })
	if !ok {
		return mo.None[Favorite]()
	}
	return mo.Some(fav)
}

// List returns a copy of the favorites, newest first.
func (s *Store) List() []Favorite {
	return append([]Favorite{}, s.items...)
}

// Len is the number of favorites held.
func (s *Store) Len() int {
	return len(s.items)
}
