package engine

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/internal/companion"
	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/internal/engine/handlers/actions"
	"github.com/tmdict/stargazer-sub002/internal/grid"
	"github.com/tmdict/stargazer-sub002/internal/network"
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/storage"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
	"github.com/tmdict/stargazer-sub002/pkg/api"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

// Коды причин отказа, не покрытые валидацией.
const (
	reasonNoAvailableTile = "NO_AVAILABLE_TILE"
	reasonUnknownAction   = "UNKNOWN_ACTION"
	reasonFailed          = "COMMAND_FAILED"
)

// Service — сервис расстановки: одна арена, одна сетка, один менеджер
// навыков. Все команды исполняются синхронно под одним мьютексом —
// транзакционному ядру не нужна внутренняя конкурентность, а клиентов
// на фазе расстановки единицы.
type Service struct {
	mu sync.Mutex

	cfg    Config
	grid   *grid.Grid
	comps  *companion.Registry
	skills *skill.Manager
	store  *storage.Store

	Hub *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

// NewService собирает полный стек: арена по пресету, сетка, реестр
// компаньонов, менеджер навыков с переданной таблицей способностей.
func NewService(cfg Config, registry *skill.Registry) (*Service, error) {
	preset, err := hexmap.LookupPreset(cfg.ArenaPreset)
	if err != nil {
		return nil, err
	}
	arena, err := hexmap.NewArena(preset)
	if err != nil {
		return nil, err
	}

	g := grid.New(arena, preset)
	comps := companion.NewRegistry(g)
	mgr := skill.NewManager(registry, g, comps)
	g.BindSkills(mgr)

	s := &Service{
		cfg:      cfg,
		grid:     g,
		comps:    comps,
		skills:   mgr,
		store:    storage.NewStore(cfg.SaveDir),
		Hub:      network.NewBroadcaster(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		log:      logger.Log.WithField("component", "engine"),
	}

	s.registerHandlers()
	return s, nil
}

func (s *Service) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionPlace] = handlers.WithPayload(actions.HandlePlace)
	s.handlers[domain.ActionRemove] = handlers.WithPayload(actions.HandleRemove)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionSwap] = handlers.WithPayload(actions.HandleSwap)
	s.handlers[domain.ActionClear] = handlers.WithEmptyPayload(actions.HandleClear)
	s.handlers[domain.ActionSave] = handlers.WithPayload(actions.HandleSave)
	s.handlers[domain.ActionLoad] = handlers.WithPayload(actions.HandleLoad)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket или
// headless-агент), парсит тип действия и исполняет её.
func (s *Service) ProcessCommand(external api.ClientCommand) {
	actionType := domain.ParseAction(external.Action)
	if actionType == domain.ActionUnknown {
		s.log.WithField("action", external.Action).Warn("Unknown action rejected.")
		s.Hub.SendTo(external.Session, api.ServerResponse{
			Type:   api.ResponseError,
			Reason: reasonUnknownAction,
			Detail: external.Action,
		})
		return
	}

	s.Execute(domain.InternalCommand{
		Action:  actionType,
		Session: external.Session,
		Payload: external.Payload,
	})
}

// Execute исполняет команду: хендлер, затем рассылка. Успешная мутация
// рассылает полный снимок всем сессиям; отказ уходит адресным ответом
// отправителю, снимок не меняется (сетка гарантированно не тронута).
func (s *Service) Execute(cmd domain.InternalCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Grid:       s.grid,
		Companions: s.comps,
		Skills:     s.skills,
		Store:      s.store,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action":  cmd.Action,
			"session": cmd.Session,
		}).WithError(err).Debug("Command rejected.")
		s.Hub.SendTo(cmd.Session, errorResponse(err))
		return
	}

	if result.Msg != "" {
		s.log.WithField("action", cmd.Action).Info(result.Msg)
	}
	s.Hub.Broadcast(s.buildState())
}

// State возвращает текущий снимок (для новых подписчиков и отладки).
func (s *Service) State() api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildState()
}

// Symmetry возвращает зеркальную карту арены (для отладочных маршрутов).
func (s *Service) Symmetry() *targeting.Symmetry {
	return s.skills.Symmetry()
}

// Arena возвращает геометрию арены.
func (s *Service) Arena() *hexmap.Arena {
	return s.grid.Arena()
}

// buildState собирает полный снимок: все ячейки плюс кэш целей.
// Вызывается под мьютексом.
func (s *Service) buildState() api.ServerResponse {
	arena := s.grid.Arena()

	tiles := s.grid.Snapshot()
	tileViews := make([]api.TileView, 0, len(tiles))
	for _, t := range tiles {
		view := api.TileView{
			HexID: t.ID,
			Q:     t.Hex.Q,
			R:     t.Hex.R,
			State: t.State.String(),
		}
		if t.Occupied() {
			view.CharacterID = int(t.Character)
			view.Team = t.Team.String()
		}
		tileViews = append(tileViews, view)
	}

	entries := s.skills.Targets()
	targetViews := make([]api.TargetView, 0, len(entries))
	for _, e := range entries {
		view := api.TargetView{
			CharacterID:       int(e.Key.Character()),
			Slot:              e.Key.Slot(),
			Team:              e.Key.Team().String(),
			TargetHexID:       e.Info.TargetHexID,
			TargetCharacterID: int(e.Info.TargetCharacter),
			DirectMirror:      e.Info.Meta.DirectMirror,
			Trace:             e.Info.Meta.Trace,
		}
		for _, a := range e.Info.Meta.Arrows {
			view.Arrows = append(view.Arrows, api.ArrowView{From: a.FromHexID, To: a.ToHexID})
		}
		targetViews = append(targetViews, view)
	}

	return api.ServerResponse{
		Type: api.ResponseUpdate,
		Arena: &api.ArenaMeta{
			Name:      arena.Name(),
			Tiles:     arena.Size(),
			Rows:      arena.RowCount(),
			CenterRow: arena.CenterRow(),
		},
		Tiles:          tileViews,
		Targets:        targetViews,
		TargetsVersion: s.skills.Version(),
	}
}

// errorResponse переводит ошибку ядра в адресный ответ с кодом причины.
func errorResponse(err error) api.ServerResponse {
	resp := api.ServerResponse{
		Type:   api.ResponseError,
		Reason: reasonFailed,
		Detail: err.Error(),
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Reason = ve.Reason
		return resp
	}
	if domain.IsNoAvailableTile(err) {
		resp.Reason = reasonNoAvailableTile
	}
	return resp
}
