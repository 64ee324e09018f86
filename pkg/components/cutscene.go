package components

// CutsceneComponent 标记导演实体为具名过场（如 "merge"）
// 过场结束时计分系统据此加分
type CutsceneComponent struct {
	Name string
}

// AudioCueComponent 导演结束时播放的提示音
type AudioCueComponent struct {
	Frequency float64 // Hz
	Duration  float64 // 秒
}
