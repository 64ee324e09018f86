package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/entities"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/systems"
	"github.com/decker502/cabin/pkg/utils"
)

// 可选的演出
const (
	PlayCurtain = "curtain"
	PlayOrbit   = "orbit"
)

// maxLogLines 信号日志保留的行数
const maxLogLines = 8

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	signalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// TraceOptions 追踪器参数
type TraceOptions struct {
	Play     string                     // curtain 或 orbit
	Step     float64                    // 每帧的 dt（秒）
	Interval time.Duration              // 播放时两帧之间的真实时间
	Curtain  choreography.CurtainParams // 帘幕参数
}

type tickMsg time.Time

// TraceUI 逐帧运行一场演出并显示导演和演员状态
type TraceUI struct {
	opts TraceOptions

	entityManager *ecs.EntityManager
	pipeline      *systems.ChoreographyPipeline
	finished      *event.Reader[event.ChoreographyFinished]

	director ecs.EntityID
	actors   []ecs.EntityID

	playing bool
	frame   int
	elapsed float64
	logs    []string

	width, height int
}

// NewTraceUI 创建追踪器并让演出登台
func NewTraceUI(opts TraceOptions) *TraceUI {
	if opts.Step <= 0 {
		opts.Step = 0.1
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	m := &TraceUI{opts: opts}
	m.restart()
	return m
}

// restart 重建世界并重新登台
func (m *TraceUI) restart() {
	em := ecs.NewEntityManager()
	signals := event.NewSignals()
	m.entityManager = em
	m.pipeline = systems.NewChoreographyPipeline(em, signals)
	m.finished = signals.Finished.NewReader()
	m.frame = 0
	m.elapsed = 0
	m.logs = nil

	var c *choreography.Choreography
	switch m.opts.Play {
	case PlayOrbit:
		c = choreography.Orbit(utils.NewVec3(0, 0, 10), 2.5, 0.25, 8)
	default:
		m.opts.Play = PlayCurtain
		c = choreography.CurtainCall(m.opts.Curtain)
	}

	m.actors = make([]ecs.EntityID, c.NActors())
	for i := range m.actors {
		m.actors[i] = entities.NewActorEntity(em, c.InitialPosition(), utils.Vec2{X: 1, Y: 1}, entities.ThoughtColor, fmt.Sprintf("actor%d", i))
	}
	m.director = entities.OrganizePlay(em, c, m.actors)
	m.appendLog(fmt.Sprintf("staged %s: director #%d, %d actors, %d events", m.opts.Play, m.director, len(m.actors), c.Len()))
}

// step 推进一帧
func (m *TraceUI) step() {
	m.pipeline.Update(m.opts.Step)
	m.frame++
	m.elapsed += m.opts.Step

	for _, sig := range m.finished.Read() {
		m.appendLog(signalStyle.Render(fmt.Sprintf("frame %d: finished director #%d play %s", m.frame, sig.Director, sig.PlayID.String()[:8])))
	}
	if !m.entityManager.EntityExists(m.director) && m.playing {
		m.playing = false
		m.appendLog("play cleaned up, paused")
	}
}

func (m *TraceUI) appendLog(line string) {
	m.logs = append(m.logs, line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}

func (m *TraceUI) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init 实现 tea.Model
func (m *TraceUI) Init() tea.Cmd {
	return m.tick()
}

// Update 实现 tea.Model
func (m *TraceUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tickMsg:
		if m.playing {
			m.step()
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.playing = !m.playing
		case "n":
			m.playing = false
			m.step()
		case "r":
			m.restart()
		case "c":
			if m.opts.Play == PlayCurtain {
				m.opts.Play = PlayOrbit
			} else {
				m.opts.Play = PlayCurtain
			}
			m.restart()
		case "+", "=":
			m.opts.Step *= 2
		case "-":
			m.opts.Step /= 2
		}
	}
	return m, nil
}

// View 实现 tea.Model
func (m *TraceUI) View() string {
	state := "paused"
	if m.playing {
		state = "playing"
	}
	header := titleStyle.Render("choreo-trace") +
		fmt.Sprintf("  %s  frame %d  elapsed %.3fs  dt %.4fs  [%s]", m.opts.Play, m.frame, m.elapsed, m.opts.Step, state)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(m.renderDirector()),
		panelStyle.Render(m.renderActors()),
		panelStyle.Render(m.renderLogs()),
		helpStyle.Render("space play/pause · n step · r restart · c switch play · +/- dt · q quit"),
	)
}

func (m *TraceUI) renderDirector() string {
	director, err := ecs.LookupComponent[*components.DirectorComponent](m.entityManager, m.director)
	if err != nil {
		return inactiveStyle.Render(fmt.Sprintf("director #%d removed", m.director))
	}

	line := fmt.Sprintf("director #%d  t=%.3f  play %s", m.director, director.Time, director.PlayID.String()[:8])
	if end, ok := director.Choreography.Duration(); ok {
		line += fmt.Sprintf("  end at %.3f", end)
	}
	if director.Active {
		return activeStyle.Render(line + "  active")
	}
	return inactiveStyle.Render(line + "  inactive")
}

func (m *TraceUI) renderActors() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-4s %-6s %-8s %-8s %s\n", "idx", "entity", "state", "time", "position"))
	for i, id := range m.actors {
		actor, err := ecs.LookupComponent[*components.AnimatedActorComponent](m.entityManager, id)
		if err != nil {
			b.WriteString(inactiveStyle.Render(fmt.Sprintf("%-4d #%-5d removed", i, id)))
			b.WriteString("\n")
			continue
		}

		pos := actor.CurrentPoint()
		if transform, err := ecs.LookupComponent[*components.TransformComponent](m.entityManager, id); err == nil {
			pos = transform.Position
		}
		row := fmt.Sprintf("%-4d #%-5d %-8s %-8.3f (%.3f, %.3f, %.3f)", i, id, activeLabel(actor.Active), actor.Time, pos.X, pos.Y, pos.Z)
		if actor.Active {
			b.WriteString(activeStyle.Render(row))
		} else {
			b.WriteString(inactiveStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *TraceUI) renderLogs() string {
	if len(m.logs) == 0 {
		return helpStyle.Render("no signals yet")
	}
	return strings.Join(m.logs, "\n")
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
