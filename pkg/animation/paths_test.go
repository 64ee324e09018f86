package animation

import (
	"math"
	"sync"
	"testing"

	"github.com/decker502/cabin/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

var sampleTimes = []float64{-3, -0.5, 0, 0.1, 0.25, 0.5, 1, 1.75, 2, 3.3, 10, 123.456}

// TestStationary 静止路径在任意时刻都是零向量
func TestStationary(t *testing.T) {
	for _, tt := range sampleTimes {
		assert.Equal(t, utils.Vec3Zero, Stationary{}.GetPoint(tt), "t=%v", tt)
	}
}

// TestEllipseFormula 椭圆路径与公式逐点一致
func TestEllipseFormula(t *testing.T) {
	e := Ellipse{
		MajorSemiaxis: utils.NewVec3(3, 0, 1),
		MinorSemiaxis: utils.NewVec3(0, 2, -1),
		Frequency:     0.7,
	}

	for _, tt := range sampleTimes {
		p := 2 * math.Pi * e.Frequency * tt
		want := e.MajorSemiaxis.Scale(math.Cos(p)).Add(e.MinorSemiaxis.Scale(math.Sin(p)))
		got := e.GetPoint(tt)
		assert.True(t, want.ApproxEqual(got, epsilon), "t=%v want %v got %v", tt, want, got)
	}
}

// TestCircle 圆形路径位于 X-Y 平面、半径恒定
func TestCircle(t *testing.T) {
	c := Circle(2.5, 1)

	tests := []struct {
		name string
		t    float64
		want utils.Vec3
	}{
		{"起点", 0, utils.NewVec3(2.5, 0, 0)},
		{"四分之一圈", 0.25, utils.NewVec3(0, 2.5, 0)},
		{"半圈", 0.5, utils.NewVec3(-2.5, 0, 0)},
		{"一整圈", 1, utils.NewVec3(2.5, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.GetPoint(tt.t)
			assert.True(t, tt.want.ApproxEqual(got, epsilon), "got %v", got)
		})
	}

	for _, tt := range sampleTimes {
		p := c.GetPoint(tt)
		assert.InDelta(t, 2.5, p.Length(), epsilon)
		assert.Zero(t, p.Z)
	}
}

// TestSine 正弦路径
func TestSine(t *testing.T) {
	s := Sine{Direction: utils.NewVec3(0, 1, 0), AngularFrequency: math.Pi}

	assert.True(t, utils.Vec3Zero.ApproxEqual(s.GetPoint(0), epsilon))
	assert.True(t, utils.NewVec3(0, 1, 0).ApproxEqual(s.GetPoint(0.5), epsilon))
	assert.True(t, utils.Vec3Zero.ApproxEqual(s.GetPoint(1), epsilon))
	assert.True(t, utils.NewVec3(0, -1, 0).ApproxEqual(s.GetPoint(1.5), epsilon))

	for _, tt := range sampleTimes {
		want := s.Direction.Scale(math.Sin(s.AngularFrequency * tt))
		assert.True(t, want.ApproxEqual(s.GetPoint(tt), epsilon), "t=%v", tt)
	}
}

// TestCurtainEndpoints 帘幕路径的端点与中点
func TestCurtainEndpoints(t *testing.T) {
	m := utils.NewVec3(-8, 0, 0)
	h := 1.5
	c := Curtain{Movement: m, HalfTime: h}

	t.Run("t<=0 完全打开", func(t *testing.T) {
		for _, tt := range []float64{-100, -1, -1e-9, 0} {
			assert.Equal(t, m, c.GetPoint(tt), "t=%v", tt)
		}
	})

	t.Run("t>=2h 完全打开", func(t *testing.T) {
		for _, tt := range []float64{2 * h, 2*h + 1e-9, 10, 1e6} {
			assert.Equal(t, m, c.GetPoint(tt), "t=%v", tt)
		}
	})

	t.Run("t=h 完全合拢", func(t *testing.T) {
		assert.True(t, utils.Vec3Zero.ApproxEqual(c.GetPoint(h), epsilon))
	})

	t.Run("关于 h 对称", func(t *testing.T) {
		for _, d := range []float64{0.1, 0.5, 1.0, 1.4} {
			assert.True(t, c.GetPoint(h-d).ApproxEqual(c.GetPoint(h+d), epsilon), "d=%v", d)
		}
	})

	t.Run("抛物线缓动", func(t *testing.T) {
		tt := 0.75
		k := tt/h - 1
		assert.True(t, m.Scale(k*k).ApproxEqual(c.GetPoint(tt), epsilon))
	})
}

// TestCurtainDegenerate HalfTime<=0 时始终停在端点
func TestCurtainDegenerate(t *testing.T) {
	m := utils.NewVec3(1, 2, 3)
	for _, h := range []float64{0, -1} {
		c := Curtain{Movement: m, HalfTime: h}
		for _, tt := range sampleTimes {
			assert.Equal(t, m, c.GetPoint(tt))
		}
	}
}

// TestSumComposition Sum 等于两条子路径逐点相加
func TestSumComposition(t *testing.T) {
	a := Circle(1, 0.5)
	b := Sine{Direction: utils.NewVec3(0, 0, 2), AngularFrequency: 3}
	nested := NewSum(NewSum(a, b), Curtain{Movement: utils.NewVec3(4, 0, 0), HalfTime: 2})

	for _, tt := range sampleTimes {
		want := a.GetPoint(tt).Add(b.GetPoint(tt))
		assert.True(t, want.ApproxEqual(NewSum(a, b).GetPoint(tt), epsilon), "t=%v", tt)

		wantNested := want.Add(Curtain{Movement: utils.NewVec3(4, 0, 0), HalfTime: 2}.GetPoint(tt))
		assert.True(t, wantNested.ApproxEqual(nested.GetPoint(tt), epsilon), "t=%v", tt)
	}
}

// TestSumNilChildren nil 子路径按静止处理
func TestSumNilChildren(t *testing.T) {
	a := Circle(1, 1)
	assert.Equal(t, a.GetPoint(0.3), NewSum(a, nil).GetPoint(0.3))
	assert.Equal(t, a.GetPoint(0.3), NewSum(nil, a).GetPoint(0.3))
	assert.Equal(t, utils.Vec3Zero, NewSum(nil, nil).GetPoint(0.3))
}

// TestCloneDeepCopiesSumTree 克隆得到的是独立的树
func TestCloneDeepCopiesSumTree(t *testing.T) {
	inner := NewSum(Circle(1, 1), Stationary{})
	original := NewSum(inner, Sine{Direction: utils.NewVec3(1, 0, 0), AngularFrequency: 2})

	cloned := Clone(original)
	clonedSum, ok := cloned.(*Sum)
	require.True(t, ok)
	require.NotSame(t, original, clonedSum)

	clonedInner, ok := clonedSum.A.(*Sum)
	require.True(t, ok)
	assert.NotSame(t, inner, clonedInner, "嵌套 Sum 也必须被复制")

	for _, tt := range sampleTimes {
		assert.Equal(t, original.GetPoint(tt), cloned.GetPoint(tt))
	}

	// 修改原树不影响克隆
	inner.A = Circle(100, 1)
	assert.NotEqual(t, original.GetPoint(0), cloned.GetPoint(0))
	assert.True(t, Circle(1, 1).GetPoint(0).Add(Sine{Direction: utils.NewVec3(1, 0, 0), AngularFrequency: 2}.GetPoint(0)).ApproxEqual(cloned.GetPoint(0), epsilon))
}

// TestCloneLeaves 叶子路径与 nil 的克隆
func TestCloneLeaves(t *testing.T) {
	assert.Nil(t, Clone(nil))
	assert.Equal(t, Path(Stationary{}), Clone(Stationary{}))
	assert.Equal(t, Path(Circle(2, 3)), Clone(Circle(2, 3)))
	c := Curtain{Movement: utils.NewVec3(1, 1, 1), HalfTime: 1}
	assert.Equal(t, Path(c), Clone(c))
	var nilSum *Sum
	assert.Nil(t, Clone(nilSum))
}

// TestConcurrentReaders 多个读者并发求值同一路径
func TestConcurrentReaders(t *testing.T) {
	p := NewSum(Circle(1, 0.25), Curtain{Movement: utils.NewVec3(2, 0, 0), HalfTime: 1})
	want := p.GetPoint(0.6)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := p.GetPoint(0.6); got != want {
					t.Errorf("concurrent read mismatch: %v != %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestDescribe 路径描述
func TestDescribe(t *testing.T) {
	assert.Equal(t, "Stationary", Describe(Stationary{}))
	assert.Equal(t, "<nil>", Describe(nil))
	assert.Equal(t, "Sum(Stationary, Curtain(h=1.5))", Describe(NewSum(Stationary{}, Curtain{HalfTime: 1.5})))
	assert.Contains(t, Describe(Circle(1, 2)), "Ellipse")
}
