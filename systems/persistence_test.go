package systems

import (
	"errors"
	"testing"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
)

type memStore struct {
	items map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func TestSavedGame_MarshalText(t *testing.T) {
	saved := SavedGame{
		Positions: [2]components.Vector{{X: 1300, Y: 500}, {X: 100.5, Y: 480}},
		Lives:     [2]int{3, 1},
	}
	data, err := saved.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	want := "Player1: 1300 500\nPlayer2: 100.5 480\nPlayer1Lives: 3\nPlayer2Lives: 1\n"
	if string(data) != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, data)
	}
}

func TestSavedGame_UnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing record", "Player1: 1 2\nPlayer2: 3 4\nPlayer1Lives: 3\n"},
		{"extra record", "Player1: 1 2\nPlayer2: 3 4\nPlayer1Lives: 3\nPlayer2Lives: 3\nPlayer3: 0 0\n"},
		{"wrong order", "Player2: 3 4\nPlayer1: 1 2\nPlayer1Lives: 3\nPlayer2Lives: 3\n"},
		{"missing y", "Player1: 1\nPlayer2: 3 4\nPlayer1Lives: 3\nPlayer2Lives: 3\n"},
		{"bad number", "Player1: 1 abc\nPlayer2: 3 4\nPlayer1Lives: 3\nPlayer2Lives: 3\n"},
		{"negative lives", "Player1: 1 2\nPlayer2: 3 4\nPlayer1Lives: -1\nPlayer2Lives: 3\n"},
		{"fractional lives", "Player1: 1 2\nPlayer2: 3 4\nPlayer1Lives: 2.5\nPlayer2Lives: 3\n"},
		{"garbage", "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SavedGame
			if err := s.UnmarshalText([]byte(tt.data)); err == nil {
				t.Errorf("Expected an error for %q", tt.data)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	e := newTestMatch(t)
	players := testPlayers(t, e)
	store := newMemStore()

	placeAt(players[0], 900, 300)
	placeAt(players[1], 200, 650)
	components.Lives.Get(players[0]).Lives = 2
	components.Lives.Get(players[1]).Lives = 1

	if err := SaveGame(e, store); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	if _, ok := store.items[cfg.Save.Item]; !ok {
		t.Fatalf("Expected the save under %q", cfg.Save.Item)
	}

	// Scramble the match, then restore it
	for _, p := range players {
		s := components.Sprite.Get(p)
		s.Position = components.Vector{X: 10, Y: 10}
		s.Velocity = components.Vector{X: 6, Y: -3}
		components.Lives.Get(p).Lives = 3
	}

	if err := LoadGame(e, store); err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}

	want := [2]components.Vector{{X: 900, Y: 300}, {X: 200, Y: 650}}
	wantLives := [2]int{2, 1}
	for i, p := range players {
		s := components.Sprite.Get(p)
		if s.Position != want[i] {
			t.Errorf("Player %d: expected %v, got %v", i+1, want[i], s.Position)
		}
		if s.Velocity != (components.Vector{}) {
			t.Errorf("Player %d: load should zero velocity, got %v", i+1, s.Velocity)
		}
		if got := components.Lives.Get(p).Lives; got != wantLives[i] {
			t.Errorf("Player %d: expected %d lives, got %d", i+1, wantLives[i], got)
		}
	}
}

func TestLoadGame_FailsClosed(t *testing.T) {
	e := newTestMatch(t)
	players := testPlayers(t, e)
	store := newMemStore()

	if err := LoadGame(e, store); !errors.Is(err, ErrNoSave) {
		t.Errorf("Expected ErrNoSave from an empty slot, got %v", err)
	}

	store.items[cfg.Save.Item] = []byte("Player1: 5 5\nPlayer2: oops\n")
	components.Sprite.Get(players[0]).Velocity = components.Vector{X: 3}

	if err := LoadGame(e, store); err == nil {
		t.Fatal("Expected a malformed save to be rejected")
	}
	if pos := components.Sprite.Get(players[0]).Position; pos != (components.Vector{X: 1300, Y: 500}) {
		t.Errorf("Rejected load must keep positions, got %v", pos)
	}
	if v := components.Sprite.Get(players[0]).Velocity; v != (components.Vector{X: 3}) {
		t.Errorf("Rejected load must keep velocity, got %v", v)
	}

	if err := LoadGame(e, nil); err == nil {
		t.Error("Expected an error without storage")
	}
}
