package agent

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/internal/engine"
	"github.com/tmdict/stargazer-sub002/internal/skill/catalog"
	"github.com/tmdict/stargazer-sub002/pkg/api"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
	"github.com/tmdict/stargazer-sub002/pkg/utils"
)

// Agent — headless-клиент, прогоняющий демонстрационную расстановку.
// Этот код является примером ВНЕШНЕГО клиента: он регистрируется в хабе
// как обычная сессия, шлет команды через тот же ProcessCommand и читает
// те же снимки, что и WebSocket-клиент. Используется флагом -demo и
// ручной проверкой индикации целей.
type Agent struct {
	Session string
	Service *engine.Service
	Inbox   chan api.ServerResponse

	log *logrus.Entry
}

func NewAgent(service *engine.Service) *Agent {
	session := "agent_" + utils.GenerateID()
	return &Agent{
		Session: session,
		Service: service,
		Inbox:   service.Hub.Register(session),
		log:     logger.Log.WithField("component", "agent"),
	}
}

// Run отправляет сценарий и дочитывает подтверждения. Синхронно:
// движок исполняет команды в вызывающей горутине.
func (a *Agent) Run() {
	defer a.Service.Hub.Unregister(a.Session)

	for _, cmd := range a.script() {
		cmd.Session = a.Session
		a.Service.ProcessCommand(cmd)
	}

	updates, errors := 0, 0
	for {
		select {
		case msg := <-a.Inbox:
			if msg.Type == api.ResponseError {
				errors++
				a.log.WithFields(logrus.Fields{
					"reason": msg.Reason,
					"detail": msg.Detail,
				}).Warn("Demo command rejected.")
			} else {
				updates++
			}
		default:
			a.log.WithFields(logrus.Fields{
				"updates": updates,
				"errors":  errors,
			}).Info("Demo lineup finished.")
			return
		}
	}
}

// script собирает сценарий по текущему снимку: полный состав навыков
// на своей стороне, три болванки на вражеской, перестановки, сохранение.
func (a *Agent) script() []api.ClientCommand {
	state := a.Service.State()

	var ally, enemy []int
	for _, t := range state.Tiles {
		switch t.State {
		case "AVAILABLE_ALLY":
			ally = append(ally, t.HexID)
		case "AVAILABLE_ENEMY":
			enemy = append(enemy, t.HexID)
		}
	}

	roster := []int{
		int(catalog.CharSeeker),
		int(catalog.CharMirror),
		int(catalog.CharFlanker),
		int(catalog.CharSniper),
		int(catalog.CharVolley),
		int(catalog.CharWarden),
	}
	if len(ally) < len(roster)+2 || len(enemy) < 3 {
		a.log.Warn("Arena too small for the demo lineup.")
		return nil
	}

	var cmds []api.ClientCommand
	for i, char := range roster {
		cmds = append(cmds, command("PLACE", api.PlacePayload{
			HexID: ally[i], CharacterID: char, Team: "ALLY",
		}))
	}
	for i := 0; i < 3; i++ {
		cmds = append(cmds, command("PLACE", api.PlacePayload{
			HexID: enemy[i], CharacterID: 201 + i, Team: "ENEMY",
		}))
	}

	// Пара перестановок, чтобы цели пересчитались на глазах у клиента.
	cmds = append(cmds,
		command("MOVE", api.MovePayload{
			FromHexID: ally[0], ToHexID: ally[len(roster)], CharacterID: roster[0],
		}),
		command("SWAP", api.SwapPayload{HexA: ally[1], HexB: ally[2]}),
		command("SAVE", api.SavePayload{Name: "demo"}),
	)
	return cmds
}

func command(action string, payload any) api.ClientCommand {
	raw, _ := json.Marshal(payload)
	return api.ClientCommand{Action: action, Payload: raw}
}
