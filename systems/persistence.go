package systems

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SaveStore is the key/value storage behind the save slot. *gdata.Manager
// satisfies it.
type SaveStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var saveStore SaveStore

// ErrNoSave is returned by LoadGame when the slot is empty.
var ErrNoSave = errors.New("no saved game")

// InitPersistence opens the gdata manager backing the save slot
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		return fmt.Errorf("failed to open save storage: %w", err)
	}
	saveStore = m
	return nil
}

// SavedGame is the persisted match state: both plane positions and lives.
type SavedGame struct {
	Positions [2]components.Vector
	Lives     [2]int
}

var saveLabels = [4]string{"Player1:", "Player2:", "Player1Lives:", "Player2Lives:"}

// MarshalText writes the four-record text form. Each plane's own lives are
// written.
func (s SavedGame) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for i, pos := range s.Positions {
		fmt.Fprintf(&buf, "%s %s %s\n", saveLabels[i],
			strconv.FormatFloat(pos.X, 'f', -1, 64),
			strconv.FormatFloat(pos.Y, 'f', -1, 64))
	}
	for i, lives := range s.Lives {
		fmt.Fprintf(&buf, "%s %d\n", saveLabels[2+i], lives)
	}
	return buf.Bytes(), nil
}

// UnmarshalText parses the four-record text form. Anything else, including
// missing records, extra values or negative lives, is rejected.
func (s *SavedGame) UnmarshalText(data []byte) error {
	var records [][]string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		records = append(records, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if len(records) != len(saveLabels) {
		return fmt.Errorf("expected %d records, got %d", len(saveLabels), len(records))
	}

	var out SavedGame
	for i, rec := range records {
		if rec[0] != saveLabels[i] {
			return fmt.Errorf("record %d: expected %q, got %q", i+1, saveLabels[i], rec[0])
		}

		if i < 2 {
			if len(rec) != 3 {
				return fmt.Errorf("record %d: expected x and y", i+1)
			}
			x, err := strconv.ParseFloat(rec[1], 64)
			if err != nil {
				return fmt.Errorf("record %d: bad x: %w", i+1, err)
			}
			y, err := strconv.ParseFloat(rec[2], 64)
			if err != nil {
				return fmt.Errorf("record %d: bad y: %w", i+1, err)
			}
			out.Positions[i] = components.Vector{X: x, Y: y}
			continue
		}

		if len(rec) != 2 {
			return fmt.Errorf("record %d: expected a lives count", i+1)
		}
		lives, err := strconv.Atoi(rec[1])
		if err != nil {
			return fmt.Errorf("record %d: bad lives: %w", i+1, err)
		}
		if lives < 0 {
			return fmt.Errorf("record %d: negative lives %d", i+1, lives)
		}
		out.Lives[i-2] = lives
	}

	*s = out
	return nil
}

// SaveGame writes both planes' positions and lives to the save slot.
func SaveGame(e *ecs.ECS, store SaveStore) error {
	if store == nil {
		return errors.New("save storage unavailable")
	}

	var saved SavedGame
	for i, p := range Players(e) {
		if p == nil {
			return fmt.Errorf("player %d missing", i+1)
		}
		saved.Positions[i] = components.Sprite.Get(p).Position
		saved.Lives[i] = components.Lives.Get(p).Lives
	}

	data, err := saved.MarshalText()
	if err != nil {
		return err
	}
	if err := store.SaveItem(cfg.Save.Item, data); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	log.Printf("Game saved")
	return nil
}

// LoadGame restores positions and lives from the save slot and brings both
// planes to rest. On any error the current state is left untouched.
func LoadGame(e *ecs.ECS, store SaveStore) error {
	if store == nil {
		return errors.New("save storage unavailable")
	}

	data, err := store.LoadItem(cfg.Save.Item)
	if err != nil {
		return fmt.Errorf("failed to read save: %w", err)
	}
	if len(data) == 0 {
		return ErrNoSave
	}

	var saved SavedGame
	if err := saved.UnmarshalText(data); err != nil {
		return fmt.Errorf("failed to parse save: %w", err)
	}

	players := Players(e)
	for i, p := range players {
		if p == nil {
			return fmt.Errorf("player %d missing", i+1)
		}
	}
	for i, p := range players {
		sprite := components.Sprite.Get(p)
		sprite.Position = saved.Positions[i]
		sprite.Velocity = components.Vector{}
		components.Lives.Get(p).Lives = saved.Lives[i]
		SyncHitbox(p)
	}
	log.Printf("Game loaded")
	return nil
}
