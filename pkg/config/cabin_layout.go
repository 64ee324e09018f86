package config

// 舱室布局常量
// 舱室坐标系：原点在舱室中心，X 向右，Y 向上，单位为"舱室单位"
// Z 只用于绘制层级，越大越靠前

const (
	// CabinWidth 舱室宽度（舱室单位）
	CabinWidth = 16.0

	// CabinHeight 舱室高度（舱室单位）
	CabinHeight = 9.0

	// DefaultScreenWidth 默认窗口宽度（像素），与舱室保持 16:9
	DefaultScreenWidth = 1280

	// DefaultScreenHeight 默认窗口高度（像素）
	DefaultScreenHeight = 720
)

// 帘幕
const (
	// CurtainDepth 帘幕的绘制层级，位于所有想法之前
	CurtainDepth = 100.0

	// CurtainHalfTime 帘幕从打开到合拢的时间（秒）
	CurtainHalfTime = 1.0

	// CurtainHold 合拢后停留的时间（秒）
	CurtainHold = 0.5

	// CurtainTail 重新打开后到编排结束的余量（秒）
	CurtainTail = 0.1
)

// 按钮
const (
	// MergeButtonX 合并按钮中心 X（舱室右下角）
	MergeButtonX = CabinWidth*0.5 - 1.5

	// MergeButtonY 合并按钮中心 Y
	MergeButtonY = -CabinHeight*0.5 + 0.75

	// ResetButtonX 重置按钮中心 X（舱室左下角）
	ResetButtonX = -MergeButtonX

	// ResetButtonY 重置按钮中心 Y
	ResetButtonY = MergeButtonY

	// ButtonHalfWidth 按钮点击区域半宽
	ButtonHalfWidth = 1.25

	// ButtonHalfHeight 按钮点击区域半高
	ButtonHalfHeight = 0.5

	// ButtonDepth 按钮绘制层级（在帘幕之上，过场期间仍可见）
	ButtonDepth = 200.0
)

// 想法（演示用演员）
const (
	// ThoughtCount 场景中漂浮的想法数量
	ThoughtCount = 3

	// ThoughtOrbitRadius 想法环绕半径
	ThoughtOrbitRadius = 2.5

	// ThoughtOrbitFrequency 想法环绕频率（圈/秒）
	ThoughtOrbitFrequency = 0.1

	// ThoughtSize 想法方块边长
	ThoughtSize = 0.8
)

// 计分与提示音
const (
	// CutsceneScoreBonus 每次完成过场获得的分数
	CutsceneScoreBonus = 100000

	// CueFrequency 过场结束提示音频率（Hz）
	CueFrequency = 660.0

	// CueDuration 提示音时长（秒）
	CueDuration = 0.25

	// CueSampleRate 提示音采样率
	CueSampleRate = 44100
)
