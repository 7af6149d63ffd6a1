// Package mockdata 產生網站與儀表板用的假資料。
//
// 亂數來源與時鐘都可注入，固定 seed 加上固定時鐘時輸出完全可重現。
// Generator 不是 goroutine-safe，每個請求應建立自己的 Generator。
package mockdata

import (
	"math"
	"math/rand/v2"
	"time"
)

// Clock 提供目前時間
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系統時間
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock 永遠回傳同一個時間點，測試用
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

type Option func(*Generator)

// WithSeed 以固定 seed 建立亂數來源
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithSource 直接注入亂數來源
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

func WithClock(c Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

type Generator struct {
	src   rand.Source
	rnd   *rand.Rand
	clock Clock
}

func New(opts ...Option) *Generator {
	g := &Generator{clock: SystemClock{}}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	g.rnd = rand.New(g.src)
	return g
}

// Now 回傳注入時鐘的時間
func (g *Generator) Now() time.Time {
	return g.clock.Now()
}

// Read 以同一個亂數流填滿 p，讓 uuid 與地址也能被 seed 固定
func (g *Generator) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := g.rnd.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// between 回傳 [lo, hi] 之間的整數，以 uint64 計算跨距避免溢位
func (g *Generator) between(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// 整個 int 範圍
		return int(g.rnd.Uint64())
	}
	return lo + int(g.rnd.Uint64N(span))
}

func (g *Generator) pick(list []string) string {
	return list[g.rnd.IntN(len(list))]
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
