package systems

import (
	"testing"

	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/systems/factory"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestJumpOnlyFromGround(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	input := &components.InputData{Jump: true}
	player := &components.PlayerData{Direction: components.Vector{X: 1}}

	grounded := &components.PhysicsData{OnGround: true}
	handlePlayerInput(input, player, grounded)
	if grounded.SpeedY != -cfg.Player.JumpSpeed {
		t.Errorf("grounded jump SpeedY = %v, want %v", grounded.SpeedY, -cfg.Player.JumpSpeed)
	}
	if grounded.OnGround {
		t.Error("jump should leave the ground")
	}

	airborne := &components.PhysicsData{SpeedY: 2}
	handlePlayerInput(input, player, airborne)
	if airborne.SpeedY != 2 {
		t.Errorf("airborne jump changed SpeedY to %v", airborne.SpeedY)
	}
}

func TestFacingFollowsInput(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	player := &components.PlayerData{Direction: components.Vector{X: 1}}
	physics := &components.PhysicsData{}

	handlePlayerInput(&components.InputData{Direction: -1}, player, physics)
	if player.Direction.X != -1 {
		t.Errorf("Direction = %v, want -1", player.Direction.X)
	}
	if physics.SpeedX != -cfg.Player.Acceleration {
		t.Errorf("SpeedX = %v, want %v", physics.SpeedX, -cfg.Player.Acceleration)
	}

	handlePlayerInput(&components.InputData{}, player, physics)
	if player.Direction.X != -1 {
		t.Errorf("facing changed without input: %v", player.Direction.X)
	}
}

func TestPlayerState(t *testing.T) {
	tests := []struct {
		name    string
		physics components.PhysicsData
		input   components.InputData
		want    cfg.StateID
	}{
		{"idle", components.PhysicsData{OnGround: true}, components.InputData{}, cfg.Idle},
		{"running", components.PhysicsData{OnGround: true, SpeedX: 2}, components.InputData{}, cfg.Running},
		{"attack", components.PhysicsData{OnGround: true, SpeedX: 2}, components.InputData{Attack: true}, cfg.Attack},
		{"jumping", components.PhysicsData{SpeedY: -4}, components.InputData{}, cfg.Jumping},
		{"falling", components.PhysicsData{SpeedY: 4}, components.InputData{Attack: true}, cfg.Falling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := playerState(&tt.physics, &tt.input); got != tt.want {
				t.Errorf("playerState = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateTimer(t *testing.T) {
	s := components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.StateNone}
	s.Set(cfg.Idle)
	s.Set(cfg.Idle)
	if s.StateTimer != 2 {
		t.Errorf("StateTimer = %d, want 2", s.StateTimer)
	}

	s.Set(cfg.Running)
	if s.StateTimer != 0 || s.PreviousState != cfg.Idle || s.CurrentState != cfg.Running {
		t.Errorf("after change: %+v", s)
	}
}

func TestPhysicsCapsFallSpeed(t *testing.T) {
	w := newTestWorld(t, nil)
	player := factory.CreatePlayer(w, 100, 0)

	for i := 0; i < 100; i++ {
		UpdatePhysics(w)
	}

	physics := components.Physics.Get(player)
	if physics.SpeedY != cfg.Physics.MaxFallSpeed {
		t.Errorf("SpeedY = %v, want %v", physics.SpeedY, cfg.Physics.MaxFallSpeed)
	}
	if !physics.Falling {
		t.Error("expected Falling while airborne")
	}
}

func TestPlayerRespawnsAfterFallingOut(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	w := newTestWorld(t, nil)
	player := factory.CreatePlayer(w, 100, 0)

	step(w, 100)

	obj := components.Object.Get(player)
	if obj.Y > levelH || obj.X != 100 {
		t.Errorf("player at (%v,%v), want back inside the level", obj.X, obj.Y)
	}
	if logs.FilterMessage("player fell out of level").Len() == 0 {
		t.Error("expected a respawn to be logged")
	}
}
