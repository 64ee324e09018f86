package game

import (
	"fmt"
	"time"

	"github.com/decker502/cabin/pkg/logging"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ScoreRecord 持久化的分数记录
type ScoreRecord struct {
	Best      int       `yaml:"best"`      // 历史最高分
	Cutscenes int       `yaml:"cutscenes"` // 累计完成的过场次数
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// ScoreManager 当前分数与历史最高分
//
// 当前分数只存在于内存中；最高分和累计次数通过 gdata 持久化。
// gdataManager 为 nil 时为降级模式：一切照常，只是不落盘。
type ScoreManager struct {
	gdataManager *gdata.Manager
	score        int
	record       ScoreRecord
	dirty        bool
	log          zerolog.Logger
}

const (
	scoreObject   = "score"
	scoreProperty = "record"
)

// NewScoreManager 创建分数管理器并尝试加载记录
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{
		gdataManager: gdataManager,
		log:          logging.For("ScoreManager"),
	}
	if err := sm.Load(); err != nil {
		sm.log.Warn().Err(err).Msg("failed to load score record")
	}
	return sm
}

// Load 加载持久化的记录
func (sm *ScoreManager) Load() error {
	sm.record = ScoreRecord{}
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load score: %w", err)
	}

	var record ScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal score: %w", err)
	}
	sm.record = record
	return nil
}

// Save 保存记录；没有变化或降级模式时直接返回
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil || !sm.dirty {
		return nil
	}

	sm.record.UpdatedAt = time.Now().UTC()
	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	sm.dirty = false
	sm.log.Debug().Int("best", sm.record.Best).Msg("score saved")
	return nil
}

// AddScore 加分并更新最高分
func (sm *ScoreManager) AddScore(points int) {
	sm.score += points
	sm.record.Cutscenes++
	if sm.score > sm.record.Best {
		sm.record.Best = sm.score
	}
	sm.dirty = true
}

// ResetScore 清零当前分数（最高分保留）
func (sm *ScoreManager) ResetScore() {
	sm.score = 0
}

// Score 当前分数
func (sm *ScoreManager) Score() int {
	return sm.score
}

// Best 历史最高分
func (sm *ScoreManager) Best() int {
	return sm.record.Best
}

// Record 返回记录副本
func (sm *ScoreManager) Record() ScoreRecord {
	return sm.record
}
