package engine

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/skill/catalog"
	"github.com/tmdict/stargazer-sub002/pkg/api"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := Config{
		Addr:        ":0",
		ArenaPreset: hexmap.PresetSkirmish,
		SaveDir:     t.TempDir(),
	}
	s, err := NewService(cfg, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustPayload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

// drain reads every pending message and returns the last one.
func drain(t *testing.T, ch chan api.ServerResponse) api.ServerResponse {
	t.Helper()
	var last api.ServerResponse
	got := false
	for {
		select {
		case msg := <-ch:
			last = msg
			got = true
		default:
			if !got {
				t.Fatal("no message received")
			}
			return last
		}
	}
}

func TestPlaceBroadcastsSnapshot(t *testing.T) {
	s := newTestService(t)
	ch := s.Hub.Register("viewer")
	defer s.Hub.Unregister("viewer")

	hexID := s.grid.AvailableTiles(domain.TeamAlly)[0]
	s.ProcessCommand(api.ClientCommand{
		Action:  "PLACE",
		Session: "viewer",
		Payload: mustPayload(t, api.PlacePayload{HexID: hexID, CharacterID: 7, Team: "ALLY"}),
	})

	msg := drain(t, ch)
	if msg.Type != api.ResponseUpdate {
		t.Fatalf("type = %s, want UPDATE", msg.Type)
	}
	found := false
	for _, tile := range msg.Tiles {
		if tile.HexID == hexID {
			found = true
			if tile.CharacterID != 7 || tile.Team != "ALLY" {
				t.Errorf("tile = %+v", tile)
			}
		}
	}
	if !found {
		t.Error("placed tile missing from the snapshot")
	}
	if msg.Arena == nil || msg.Arena.Name != hexmap.PresetSkirmish {
		t.Errorf("arena meta = %+v", msg.Arena)
	}
}

func TestRejectedCommandGoesToSenderOnly(t *testing.T) {
	s := newTestService(t)
	sender := s.Hub.Register("sender")
	other := s.Hub.Register("other")
	defer s.Hub.Unregister("sender")
	defer s.Hub.Unregister("other")

	// Center-row tile is DEFAULT, not placeable.
	centerHex, _ := s.grid.Arena().IDOf(hexmap.New(0, 0))
	s.ProcessCommand(api.ClientCommand{
		Action:  "PLACE",
		Session: "sender",
		Payload: mustPayload(t, api.PlacePayload{HexID: centerHex, CharacterID: 7, Team: "ALLY"}),
	})

	msg := drain(t, sender)
	if msg.Type != api.ResponseError || msg.Reason != domain.ReasonNotAvailable {
		t.Errorf("response = %+v", msg)
	}
	select {
	case stray := <-other:
		t.Errorf("other session received %+v", stray)
	default:
	}
}

func TestUnknownAction(t *testing.T) {
	s := newTestService(t)
	ch := s.Hub.Register("sess")
	defer s.Hub.Unregister("sess")

	s.ProcessCommand(api.ClientCommand{Action: "DANCE", Session: "sess"})

	msg := drain(t, ch)
	if msg.Type != api.ResponseError || msg.Reason != reasonUnknownAction {
		t.Errorf("response = %+v", msg)
	}
}

func TestMalformedPayload(t *testing.T) {
	s := newTestService(t)
	ch := s.Hub.Register("sess")
	defer s.Hub.Unregister("sess")

	s.ProcessCommand(api.ClientCommand{
		Action:  "PLACE",
		Session: "sess",
		Payload: json.RawMessage(`{"hexId": "not a number"}`),
	})

	msg := drain(t, ch)
	if msg.Type != api.ResponseError {
		t.Errorf("response = %+v", msg)
	}
}

func TestSaveLoadThroughHandlers(t *testing.T) {
	s := newTestService(t)
	ch := s.Hub.Register("sess")
	defer s.Hub.Unregister("sess")

	hexID := s.grid.AvailableTiles(domain.TeamAlly)[0]
	s.ProcessCommand(api.ClientCommand{
		Action:  "PLACE",
		Session: "sess",
		Payload: mustPayload(t, api.PlacePayload{HexID: hexID, CharacterID: 7, Team: "ALLY"}),
	})
	s.ProcessCommand(api.ClientCommand{
		Action:  "SAVE",
		Session: "sess",
		Payload: mustPayload(t, api.SavePayload{Name: "lineup"}),
	})
	s.ProcessCommand(api.ClientCommand{Action: "CLEAR", Session: "sess"})

	if _, _, ok := s.grid.OccupantAt(hexID); ok {
		t.Fatal("clear must empty the grid")
	}

	s.ProcessCommand(api.ClientCommand{
		Action:  "LOAD",
		Session: "sess",
		Payload: mustPayload(t, api.LoadPayload{Name: "lineup"}),
	})

	if char, team, ok := s.grid.OccupantAt(hexID); !ok || char != 7 || team != domain.TeamAlly {
		t.Errorf("occupant after load = (%d, %s, %v)", char, team, ok)
	}
	msg := drain(t, ch)
	if msg.Type != api.ResponseUpdate {
		t.Errorf("final message = %+v", msg)
	}
}

func TestStateIncludesTargets(t *testing.T) {
	s := newTestService(t)

	enemyHex := s.grid.AvailableTiles(domain.TeamEnemy)[0]
	allyHex := s.grid.AvailableTiles(domain.TeamAlly)[0]
	s.Execute(domain.InternalCommand{
		Action:  domain.ActionPlace,
		Payload: mustPayload(t, api.PlacePayload{HexID: enemyHex, CharacterID: 201, Team: "ENEMY"}),
	})
	s.Execute(domain.InternalCommand{
		Action:  domain.ActionPlace,
		Payload: mustPayload(t, api.PlacePayload{HexID: allyHex, CharacterID: int(catalog.CharSeeker), Team: "ALLY"}),
	})

	state := s.State()
	if len(state.Targets) != 1 {
		t.Fatalf("targets = %+v, want one entry", state.Targets)
	}
	tv := state.Targets[0]
	if tv.CharacterID != int(catalog.CharSeeker) || tv.TargetHexID != enemyHex {
		t.Errorf("target view = %+v", tv)
	}
	if state.TargetsVersion == 0 {
		t.Error("targets version must have been bumped")
	}
}
