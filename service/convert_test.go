package service

import (
	"strings"
	"testing"
	"time"

	"github.com/BerniceZTT/cdp_end/models"
	"github.com/BerniceZTT/cdp_end/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
	}{
		{"Sarah Johnson", "Sarah", "Johnson"},
		{"Ana Maria Oliveira", "Ana", "Maria Oliveira"},
		{"Prince", "Prince", ""},
		{"  Robert Kim  ", "Robert", "Kim"},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := splitName(tt.name)
		assert.Equal(t, tt.firstName, first, "name=%q", tt.name)
		assert.Equal(t, tt.lastName, last, "name=%q", tt.name)
	}
}

func TestConversionTags(t *testing.T) {
	tags := conversionTags("Fintech")
	assert.Equal(t, []string{"New Customer", "Converted Lead", "Fintech"}, tags)

	// 行业为空时不追加空标签
	tags = conversionTags("")
	assert.Equal(t, []string{"New Customer", "Converted Lead"}, tags)
}

func TestCustomerIDFormat(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	require.NoError(t, store.MoveLead(201, "bofu", "customer", ""))

	customers := store.Customers()
	converted := customers[len(customers)-1]
	assert.True(t, strings.HasPrefix(converted.ID, "CUST-201"), "id=%s", converted.ID)
}

func TestConversionFromColdUsesCarriedValue(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	// 冷线索302携带value=98000
	require.NoError(t, store.MoveLead(302, "cold", "customer", ""))

	customers := store.Customers()
	converted := customers[len(customers)-1]
	assert.Equal(t, 98000, converted.LifetimeValue)
	assert.Equal(t, models.TierGold, converted.Tier)
	assert.Equal(t, models.SegmentHighValue, converted.Segment)
	assert.Equal(t, 29400, converted.TotalSpent)
}

func TestConversionFromTofuSynthesizesDealValue(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	require.NoError(t, store.MoveLead(1, "tofu", "customer", ""))

	customers := store.Customers()
	converted := customers[len(customers)-1]

	// TOFU线索没有金额，按BOFU缺省范围合成
	assert.GreaterOrEqual(t, converted.LifetimeValue, defaultBofuDealValue.Min)
	assert.LessOrEqual(t, converted.LifetimeValue, defaultBofuDealValue.Max)
	assert.Equal(t, "2024-02-01", converted.RegistrationDate)
	assert.Equal(t, converted.RegistrationDate, converted.LastLogin)
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0, clampPercent(-5))
	assert.Equal(t, 100, clampPercent(250))
	assert.Equal(t, 85, clampPercent(85))
}

func TestRandomSynthesizerRanges(t *testing.T) {
	synth := NewRandomSynthesizer()
	for i := 0; i < 100; i++ {
		v := synth.IntBetween(48, 167)
		assert.GreaterOrEqual(t, v, 48)
		assert.LessOrEqual(t, v, 167)
	}
	assert.Equal(t, 7, synth.IntBetween(7, 7))
	assert.NotEmpty(t, synth.Location())
}

func TestScheduledAgingRuns(t *testing.T) {
	store := NewLifecycleStore(repository.NewMemoryStore(),
		WithSynthesizer(FixedSynthesizer{}),
		WithClock(func() time.Time { return testNow }),
	)

	before := store.Leads().Cold[0].DaysInactive
	RunColdLeadAging(store)
	assert.Equal(t, before+1, store.Leads().Cold[0].DaysInactive)
}
