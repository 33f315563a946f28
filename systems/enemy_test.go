package systems

import (
	"testing"

	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/geom"
	"github.com/automoto/punkpark/systems/factory"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPatrolIdlesThenTurns(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Enemy.WalkSpeed = 2
	cfg.Enemy.WalkRange = 10
	cfg.Enemy.IdleTimeout = 3

	enemy := &components.EnemyData{Direction: components.Vector{X: 1}}
	physics := &components.PhysicsData{}
	state := &components.StateData{CurrentState: cfg.Walk}

	for i := 0; i < 5; i++ {
		patrol(enemy, physics, state)
	}
	if enemy.Walked != 10 || physics.SpeedX != 2 || state.CurrentState != cfg.Walk {
		t.Fatalf("after walking: walked=%v speed=%v state=%v", enemy.Walked, physics.SpeedX, state.CurrentState)
	}

	for i := 0; i < 2; i++ {
		patrol(enemy, physics, state)
		if physics.SpeedX != 0 || state.CurrentState != cfg.Idle {
			t.Fatalf("idle tick %d: speed=%v state=%v", i, physics.SpeedX, state.CurrentState)
		}
	}
	if enemy.Direction.X != 1 {
		t.Fatal("turned before the idle timeout")
	}

	patrol(enemy, physics, state)
	if enemy.Direction.X != -1 {
		t.Errorf("Direction = %v, want -1", enemy.Direction.X)
	}
	if physics.SpeedX != -2 {
		t.Errorf("SpeedX = %v, want -2", physics.SpeedX)
	}
	if enemy.Walked != 2 || enemy.IdleTimer != 0 {
		t.Errorf("walked=%v idle=%v, want 2 and 0", enemy.Walked, enemy.IdleTimer)
	}
	if state.CurrentState != cfg.Walk {
		t.Errorf("state = %v, want walk", state.CurrentState)
	}
}

func TestFOVFlipsWithFacing(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	enemy := &components.EnemyData{Direction: components.Vector{X: 1}}
	body := geom.NewRect(400, 448, 48, 96)

	enemy.UpdateFOV(body)
	right := enemy.FOV
	if right.X != 200 || right.W != 424 || right.Y != 325 || right.H != 300 {
		t.Errorf("FOV facing right = %+v", right)
	}
	if ahead, behind := right.Right()-body.Right(), body.X-right.X; ahead != 176 || behind != 200 {
		t.Errorf("facing right reach ahead=%v behind=%v, want 176 and 200", ahead, behind)
	}

	enemy.Direction.X = -1
	enemy.UpdateFOV(body)
	if enemy.FOV.X != right.X-24 || enemy.FOV.W != right.W {
		t.Errorf("FOV facing left = %+v, want shifted by half a body", enemy.FOV)
	}
}

func TestEnemySpotsPlayer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	w := newTestWorld(t, nil)
	enemyEntry := factory.CreateEnemy(w, 400, 448, 2)
	player := factory.CreatePlayer(w, 500, 448)

	UpdateEnemies(w)
	enemy := components.Enemy.Get(enemyEntry)
	if !enemy.Spotted {
		t.Fatal("player inside the field of vision was not spotted")
	}

	// Still inside, no second log entry
	UpdateEnemies(w)

	components.Object.Get(player).X = 700
	UpdateEnemies(w)
	if enemy.Spotted {
		t.Error("player outside the field of vision is still spotted")
	}

	if n := logs.FilterMessage("enemy spotted player").Len(); n != 1 {
		t.Errorf("spotted logged %d times, want 1", n)
	}
	if n := logs.FilterMessage("enemy lost player").Len(); n != 1 {
		t.Errorf("lost logged %d times, want 1", n)
	}
}
