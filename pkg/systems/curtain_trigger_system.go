package systems

import (
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/entities"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/rs/zerolog"
)

// MergeCutsceneName 合并想法过场的名称
const MergeCutsceneName = "merge"

// CurtainTriggerSystem 点击合并按钮时拉上帘幕
//
// 生成两片帘幕并按 CurtainCall 登台，导演带上 CutsceneComponent 和 AudioCueComponent。
// 过场进行中再次点击会被忽略。
type CurtainTriggerSystem struct {
	entityManager *ecs.EntityManager
	reader        *event.Reader[event.ButtonPressed]
	params        choreography.CurtainParams
	cabinHeight   float64
	cue           components.AudioCueComponent
	current       ecs.EntityID
	log           zerolog.Logger
}

// NewCurtainTriggerSystem 创建帘幕触发系统
func NewCurtainTriggerSystem(
	em *ecs.EntityManager,
	buttons *event.Bus[event.ButtonPressed],
	params choreography.CurtainParams,
	cabinHeight float64,
	cue components.AudioCueComponent,
) *CurtainTriggerSystem {
	return &CurtainTriggerSystem{
		entityManager: em,
		reader:        buttons.NewReader(),
		params:        params,
		cabinHeight:   cabinHeight,
		cue:           cue,
		log:           logging.For("CurtainTrigger"),
	}
}

// Running 合并过场是否仍在进行（导演尚未被清理）
func (s *CurtainTriggerSystem) Running() bool {
	if s.current == 0 {
		return false
	}
	return s.entityManager.EntityExists(s.current) && !s.entityManager.IsMarkedForDestroy(s.current)
}

// Current 当前合并过场的导演，没有时返回 0
func (s *CurtainTriggerSystem) Current() ecs.EntityID {
	if !s.Running() {
		return 0
	}
	return s.current
}

// Update 处理本帧的按钮信号
func (s *CurtainTriggerSystem) Update(deltaTime float64) {
	for _, press := range s.reader.Read() {
		if press.Type != components.ButtonTypeMergeThoughts {
			continue
		}
		if s.Running() {
			s.log.Debug().Uint64("director", uint64(s.current)).Msg("merge already running, press ignored")
			continue
		}
		s.current = s.stage()
	}
}

func (s *CurtainTriggerSystem) stage() ecs.EntityID {
	leftOpen, rightOpen := choreography.CurtainOpenPositions(s.params)
	left := entities.NewCurtainEntity(s.entityManager, leftOpen, s.params.CabinWidth, s.cabinHeight)
	right := entities.NewCurtainEntity(s.entityManager, rightOpen, s.params.CabinWidth, s.cabinHeight)

	director := entities.OrganizePlay(s.entityManager, choreography.CurtainCall(s.params), []ecs.EntityID{left, right})

	ecs.AddComponent(s.entityManager, director, &components.CutsceneComponent{Name: MergeCutsceneName})
	cue := s.cue
	ecs.AddComponent(s.entityManager, director, &cue)

	s.log.Info().Uint64("director", uint64(director)).Msg("merge cutscene staged")
	return director
}
