package service

import (
	"math/rand"
	"sync"
	"time"
)

// Synthesizer 缺省值合成策略。线索在阶段间移动时，缺失的业务字段
// （评分、金额、转化耗时等）按固定范围补一个占位值；测试注入确定性实现。
type Synthesizer interface {
	// IntBetween 返回[min, max]区间内的整数
	IntBetween(min, max int) int
	// Location 返回一个客户所在地
	Location() string
}

// synthRange 合成值区间（闭区间）
type synthRange struct {
	Min int
	Max int
}

func (r synthRange) pick(s Synthesizer) int {
	return s.IntBetween(r.Min, r.Max)
}

// 各字段的缺省合成范围
var (
	defaultMofuLeadScore        = synthRange{70, 99}
	defaultMofuConvertingTime   = synthRange{48, 167}
	defaultBofuDealValue        = synthRange{50000, 149999}
	defaultBofuLeadScore        = synthRange{80, 99}
	defaultBofuCloseProbability = synthRange{60, 99}
	defaultBofuConvertingTime   = synthRange{96, 295}
	defaultColdValue            = synthRange{20000, 99999}
)

// 重新激活回MOFU时的固定评分缺省值
const reactivatedMofuLeadScore = 75

var synthLocations = []string{
	"San Francisco, CA",
	"New York, NY",
	"Austin, TX",
	"Seattle, WA",
	"Chicago, IL",
	"Boston, MA",
}

// RandomSynthesizer 随机缺省值合成器（生产默认实现）
type RandomSynthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSynthesizer 创建随机合成器
func NewRandomSynthesizer() *RandomSynthesizer {
	return &RandomSynthesizer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// IntBetween 返回[min, max]区间内的随机整数
func (r *RandomSynthesizer) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Intn(max-min+1)
}

// Location 返回一个随机城市
func (r *RandomSynthesizer) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return synthLocations[r.rng.Intn(len(synthLocations))]
}

// FixedSynthesizer 确定性合成器，始终返回区间下界，供测试使用
type FixedSynthesizer struct {
	Loc string
}

// IntBetween 返回区间下界
func (f FixedSynthesizer) IntBetween(min, max int) int {
	return min
}

// Location 返回固定城市
func (f FixedSynthesizer) Location() string {
	if f.Loc == "" {
		return "San Francisco, CA"
	}
	return f.Loc
}

// clampPercent 百分比类字段裁剪到[0, 100]
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
