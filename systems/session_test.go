package systems

import (
	"testing"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/systems/factory"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdateLives_Outcome(t *testing.T) {
	tests := []struct {
		name       string
		lives      [2]int
		wantOver   bool
		wantWinner int
		wantText   string
	}{
		{"both alive", [2]int{1, 2}, false, 0, ""},
		{"player 1 out", [2]int{0, 2}, true, 1, "Player 2 wins"},
		{"player 2 out", [2]int{3, 0}, true, 0, "Player 1 wins"},
		{"both out checks player 1 first", [2]int{0, 0}, true, 1, "Player 2 wins"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestMatch(t)
			for i, p := range testPlayers(t, e) {
				components.Lives.Get(p).Lives = tt.lives[i]
			}

			UpdateLives(e)

			session := GetSession(e)
			if session.Over != tt.wantOver {
				t.Fatalf("Expected over=%v, got %v", tt.wantOver, session.Over)
			}
			if !tt.wantOver {
				return
			}
			if session.Winner != tt.wantWinner || session.Outcome != tt.wantText {
				t.Errorf("Expected winner %d %q, got %d %q",
					tt.wantWinner, tt.wantText, session.Winner, session.Outcome)
			}
		})
	}
}

func TestWithActiveSession_SkipsWhenDecided(t *testing.T) {
	e := newTestMatch(t)
	calls := 0
	system := WithActiveSession(func(*ecs.ECS) { calls++ })

	system(e)
	if calls != 1 {
		t.Fatalf("Expected the system to run, got %d calls", calls)
	}

	session := GetSession(e)
	session.Active = false
	system(e)
	if calls != 1 {
		t.Error("System must not run while the session is inactive")
	}

	session.Active = true
	session.Over = true
	system(e)
	if calls != 1 {
		t.Error("System must not run once the match is decided")
	}
}

func TestPrune_RemovesOutOfBounds(t *testing.T) {
	e := newTestMatch(t)

	gone := factory.CreateEnemy(e, cfg.EnemySpawnConfig{X: 1301, Y: 100})
	kept := factory.CreateEnemy(e, cfg.EnemySpawnConfig{X: 1299, Y: 100})
	lowBullet := factory.CreateBullet(e, components.BulletEnemy, components.Vector{X: 300, Y: 701})
	highBullet := factory.CreateBullet(e, components.BulletEnemy, components.Vector{X: 300, Y: 699})
	lowOne := factory.CreateBullet(e, components.BulletPlayerOne, components.Vector{X: 300, Y: 760})
	lowTwo := factory.CreateBullet(e, components.BulletPlayerTwo, components.Vector{X: 900, Y: 760})

	UpdatePrune(e)

	if gone.Valid() {
		t.Error("Enemy past x=1300 should be pruned")
	}
	if !kept.Valid() {
		t.Error("Enemy before x=1300 should be kept")
	}
	if lowBullet.Valid() {
		t.Error("Enemy bullet past y=700 should be pruned")
	}
	if !highBullet.Valid() {
		t.Error("Enemy bullet above y=700 should be kept")
	}
	if !lowOne.Valid() || !lowTwo.Valid() {
		t.Error("Player bullets are not pruned by the enemy bullet line")
	}
}

func TestOffField_RemovesStrayPlayerBullets(t *testing.T) {
	e := newTestMatch(t)

	left := factory.CreateBullet(e, components.BulletPlayerOne, components.Vector{X: -100, Y: 300})
	right := factory.CreateBullet(e, components.BulletPlayerTwo, components.Vector{X: 1600, Y: 300})
	inside := factory.CreateBullet(e, components.BulletPlayerTwo, components.Vector{X: 700, Y: 300})

	UpdateOffField(e)

	if left.Valid() || right.Valid() {
		t.Error("Bullets outside the field margin should be pruned")
	}
	if !inside.Valid() {
		t.Error("Bullets inside the field should be kept")
	}
	if n := countTagged(e, tags.PlayerTwoBullet.Each); n != 1 {
		t.Errorf("Expected 1 remaining player two bullet, got %d", n)
	}
}

func TestWindowTitle(t *testing.T) {
	if got := WindowTitle(60, 3, 2); got != "Game : 60 FPS  Lives: 2 - 3" {
		t.Errorf("Unexpected title %q", got)
	}
}
