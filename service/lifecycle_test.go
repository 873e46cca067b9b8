package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BerniceZTT/cdp_end/models"
	"github.com/BerniceZTT/cdp_end/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, kv repository.KVStore) *LifecycleStore {
	t.Helper()
	return NewLifecycleStore(kv,
		WithSynthesizer(FixedSynthesizer{}),
		WithClock(func() time.Time { return testNow }),
	)
}

func TestNewStoreSeedsWhenEmpty(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	leads := store.Leads()
	seed := models.SeedLeads()
	require.Equal(t, seed, leads)
	require.Equal(t, models.SeedCustomers(), store.Customers())
	assert.Empty(t, store.RecentMovements())
}

func TestMoveTofuToMofu(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	err := store.MoveLead(1, "tofu", "mofu", "qualified")
	require.NoError(t, err)

	leads := store.Leads()

	// 来源阶段不再包含该线索
	for _, lead := range leads.Tofu {
		assert.NotEqual(t, 1, lead.ID)
	}

	// 目标阶段最新在前
	require.NotEmpty(t, leads.Mofu)
	moved := leads.Mofu[0]
	require.Equal(t, 1, moved.ID)
	assert.Equal(t, models.MofuStatusMQL, moved.Status)
	assert.Equal(t, "Digital Marketing Guide", moved.ContentConsumed)
	assert.GreaterOrEqual(t, moved.ConvertingTime, 48)
	assert.LessOrEqual(t, moved.ConvertingTime, 167)
	assert.Equal(t, "Moved from tofu", moved.LastActivity)
	assert.Equal(t, "2024-02-01", moved.MovedDate)
	assert.Equal(t, "qualified", moved.Notes)

	// 移动历史
	movements := store.RecentMovements()
	require.Len(t, movements, 1)
	assert.Equal(t, 1, movements[0].LeadID)
	assert.Equal(t, "tofu", movements[0].FromStage)
	assert.Equal(t, "mofu", movements[0].ToStage)
	assert.Equal(t, "qualified", movements[0].Notes)
	assert.Equal(t, testNow, movements[0].Timestamp)
}

func TestMoveLeadNotFound(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	err := store.MoveLead(9999, "tofu", "mofu", "")
	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.Empty(t, store.RecentMovements())
}

func TestMoveLeadUnknownStage(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	assert.ErrorIs(t, store.MoveLead(1, "basement", "mofu", ""), ErrUnknownStage)
	// tofu不是合法的直接目标
	assert.ErrorIs(t, store.MoveLead(101, "mofu", "tofu", ""), ErrUnknownStage)
}

func TestMoveLeadUnknownTransition(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	// 逆向移动不在规则表中
	err := store.MoveLead(201, "bofu", "mofu", "")
	assert.ErrorIs(t, err, ErrUnknownTransition)

	// 未触及任何集合
	leads := store.Leads()
	require.Equal(t, models.SeedLeads(), leads)
	assert.Empty(t, store.RecentMovements())
}

func TestActiveFunnelOnlyFromCold(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	err := store.MoveLead(1, "tofu", "active funnel", "")
	assert.ErrorIs(t, err, ErrUnknownTransition)
}

func TestStageExclusivity(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	require.NoError(t, store.MoveLead(1, "tofu", "mofu", ""))
	require.NoError(t, store.MoveLead(1, "mofu", "bofu", ""))
	require.NoError(t, store.MoveLead(1, "bofu", "cold", ""))
	require.NoError(t, store.MoveLead(1, "cold", "active funnel", ""))

	leads := store.Leads()
	count := 0
	for _, lead := range leads.Tofu {
		if lead.ID == 1 {
			count++
		}
	}
	for _, lead := range leads.Mofu {
		if lead.ID == 1 {
			count++
		}
	}
	for _, lead := range leads.Bofu {
		if lead.ID == 1 {
			count++
		}
	}
	for _, lead := range leads.Cold {
		if lead.ID == 1 {
			count++
		}
	}
	assert.Equal(t, 1, count, "线索只能出现在一个阶段集合中")
}

func TestMovementHistoryBound(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	// 在mofu和冷线索池之间往返，制造超过10次移动
	for i := 0; i < 6; i++ {
		require.NoError(t, store.MoveLead(101, "mofu", "cold", ""))
		require.NoError(t, store.MoveLead(101, "cold", "active funnel", ""))
	}

	movements := store.RecentMovements()
	assert.Len(t, movements, models.MaxRecentMovements)

	// 最新在前
	assert.Equal(t, "cold", movements[0].FromStage)
	assert.Equal(t, string(models.StageActiveFunnel), movements[0].ToStage)
}

func TestMoveToColdBucketAlias(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	require.NoError(t, store.MoveLead(201, "BOFU", "Cold Bucket", "no response"))

	leads := store.Leads()
	require.NotEmpty(t, leads.Cold)
	cold := leads.Cold[0]
	require.Equal(t, 201, cold.ID)
	assert.Equal(t, models.ColdStatusDefault, cold.Status)
	assert.Equal(t, "BOFU", cold.Stage)
	assert.Equal(t, "BOFU", cold.OriginalStage)
	assert.Equal(t, 145500, cold.Value)
	assert.Equal(t, 0, cold.DaysInactive)
}

func TestConvertBofuLeadToCustomer(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())
	before := len(store.Customers())

	require.NoError(t, store.MoveLead(201, "bofu", "customer", "signed"))

	customers := store.Customers()
	require.Len(t, customers, before+1)

	converted := customers[len(customers)-1]
	assert.Equal(t, models.TierPremium, converted.Tier)
	assert.Equal(t, models.SegmentHighValue, converted.Segment)
	assert.Equal(t, 145500, converted.LifetimeValue)
	assert.Equal(t, 43650, converted.TotalSpent)
	assert.Equal(t, 1, converted.OrderCount)
	assert.Equal(t, 201, converted.OriginalLeadID)
	assert.Equal(t, "BOFU", converted.MovedFromStage)
	assert.Equal(t, "Robert", converted.FirstName)
	assert.Equal(t, "Kim", converted.LastName)
	assert.Equal(t, models.CustomerStatusActive, converted.Status)
	assert.Equal(t, "signed", converted.ConversionNotes)
	assert.Contains(t, converted.Tags, "New Customer")
	assert.Contains(t, converted.Tags, "Converted Lead")
	assert.Contains(t, converted.Tags, "Enterprise Software")
}

func TestConversionIdempotence(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	require.NoError(t, store.MoveLead(201, "bofu", "customer", ""))
	count := len(store.Customers())

	// 已转化的线索不在bofu中，第二次移动报告未找到且不产生新客户
	err := store.MoveLead(201, "bofu", "customer", "")
	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.Len(t, store.Customers(), count)
}

func TestConversionDeduplicatesByEmail(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	// 预先存在同邮箱客户
	store.AddCustomer(models.Customer{
		ID:    "CUST-777001",
		Email: "s.martin@brightwave.fr",
	})
	count := len(store.Customers())

	// 转化为客户被去重跳过，但移动本身完成
	require.NoError(t, store.MoveLead(202, "bofu", "customer", ""))

	assert.Len(t, store.Customers(), count)
	for _, lead := range store.Leads().Bofu {
		assert.NotEqual(t, 202, lead.ID)
	}
	require.NotEmpty(t, store.RecentMovements())
	assert.Equal(t, 202, store.RecentMovements()[0].LeadID)
}

func TestAddCustomerDoesNotDeduplicate(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())
	before := len(store.Customers())

	customer := models.Customer{ID: "CUST-555001", Email: "dup@example.com"}
	store.AddCustomer(customer)
	store.AddCustomer(customer)

	// 直接添加路径不做去重，保持与转化路径的既有差异
	assert.Len(t, store.Customers(), before+2)
}

func TestColdReactivationToBofu(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	// 种子冷线索302原阶段为BOFU
	require.NoError(t, store.MoveLead(302, "cold", "active funnel", "re-engaged"))

	leads := store.Leads()
	require.NotEmpty(t, leads.Bofu)
	lead := leads.Bofu[0]
	require.Equal(t, 302, lead.ID)
	assert.Equal(t, 98000, lead.DealValue)
	assert.Equal(t, 80, lead.LeadScore)
	assert.Equal(t, "Re-engagement", lead.SalesStage)
	assert.Equal(t, 50, lead.CloseProbability)
	assert.Equal(t, "Re-engagement materials", lead.ContentConsumed)
	assert.Equal(t, models.BofuStatusOpportunity, lead.Status)
}

func TestColdReactivationToMofu(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	// 种子冷线索301原阶段为MOFU
	require.NoError(t, store.MoveLead(301, "cold", "active funnel", ""))

	leads := store.Leads()
	require.NotEmpty(t, leads.Mofu)
	lead := leads.Mofu[0]
	require.Equal(t, 301, lead.ID)
	assert.Equal(t, models.MofuStatusMQL, lead.Status)
	assert.Equal(t, reactivatedMofuLeadScore, lead.LeadScore)
}

func TestResetRestoresSeedData(t *testing.T) {
	kv := repository.NewMemoryStore()
	store := newTestStore(t, kv)

	require.NoError(t, store.MoveLead(1, "tofu", "mofu", ""))
	require.NoError(t, store.MoveLead(201, "bofu", "customer", ""))
	store.AddCustomer(models.Customer{ID: "CUST-123456", Email: "x@y.com"})

	store.ResetToOriginalData()

	require.Equal(t, models.SeedLeads(), store.Leads())
	require.Equal(t, models.SeedCustomers(), store.Customers())
	assert.Empty(t, store.RecentMovements())

	// 所有持久化键被删除
	for _, key := range []string{leadsStorageKey, leadsVersionKey, movementsStorageKey, customersStorageKey} {
		_, ok, err := kv.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "键 %s 应已删除", key)
	}
}

func TestRehydrationAcrossRestart(t *testing.T) {
	kv := repository.NewMemoryStore()
	store := newTestStore(t, kv)

	require.NoError(t, store.MoveLead(1, "tofu", "mofu", "persisted"))
	require.NoError(t, store.MoveLead(201, "bofu", "customer", ""))

	// 同一键值存储上重建，状态应完整恢复
	restored := newTestStore(t, kv)
	require.Equal(t, store.Leads(), restored.Leads())
	require.Equal(t, store.Customers(), restored.Customers())
	require.Equal(t, store.RecentMovements(), restored.RecentMovements())
}

func TestVersionGuardDiscardsStalePayload(t *testing.T) {
	kv := repository.NewMemoryStore()

	// 模拟旧版本写入的数据
	stale := models.LeadsByStage{
		Tofu: []models.TofuLead{{LeadBase: models.LeadBase{ID: 42, Name: "Stale Lead"}}},
	}
	payload, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, kv.Set(leadsStorageKey, string(payload)))
	require.NoError(t, kv.Set(leadsVersionKey, "v3"))

	store := newTestStore(t, kv)

	// 旧数据被丢弃，使用种子数据
	require.Equal(t, models.SeedLeads(), store.Leads())

	// 版本标记已更新
	version, ok, err := kv.Get(leadsVersionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, LeadsSchemaVersion, version)
}

func TestMalformedPayloadFallsBackToSeed(t *testing.T) {
	kv := repository.NewMemoryStore()
	require.NoError(t, kv.Set(leadsStorageKey, "{not json"))
	require.NoError(t, kv.Set(leadsVersionKey, LeadsSchemaVersion))

	store := newTestStore(t, kv)
	require.Equal(t, models.SeedLeads(), store.Leads())
}

func TestRehydrationBackfillsConvertingTime(t *testing.T) {
	kv := repository.NewMemoryStore()

	leads := models.SeedLeads()
	leads.Mofu[0].ConvertingTime = 0
	leads.Bofu[0].ConvertingTime = 0
	payload, err := json.Marshal(leads)
	require.NoError(t, err)
	require.NoError(t, kv.Set(leadsStorageKey, string(payload)))
	require.NoError(t, kv.Set(leadsVersionKey, LeadsSchemaVersion))

	store := newTestStore(t, kv)
	restored := store.Leads()

	// FixedSynthesizer返回区间下界
	assert.Equal(t, defaultMofuConvertingTime.Min, restored.Mofu[0].ConvertingTime)
	assert.Equal(t, defaultBofuConvertingTime.Min, restored.Bofu[0].ConvertingTime)
}

func TestMovementHistoryNotVersionGuarded(t *testing.T) {
	kv := repository.NewMemoryStore()

	movements := []models.LeadMovement{{LeadID: 7, FromStage: "tofu", ToStage: "mofu", Timestamp: testNow}}
	payload, err := json.Marshal(movements)
	require.NoError(t, err)
	require.NoError(t, kv.Set(movementsStorageKey, string(payload)))

	// 版本标记缺失只影响线索数据，移动历史照常恢复
	store := newTestStore(t, kv)
	require.Len(t, store.RecentMovements(), 1)
	assert.Equal(t, 7, store.RecentMovements()[0].LeadID)
}

func TestAgeColdLeads(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	before := store.Leads().Cold
	count := store.AgeColdLeads()
	assert.Equal(t, len(before), count)

	after := store.Leads().Cold
	for i := range after {
		assert.Equal(t, before[i].DaysInactive+1, after[i].DaysInactive)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := newTestStore(t, repository.NewMemoryStore())

	leads := store.Leads()
	require.NotEmpty(t, leads.Tofu)
	leads.Tofu[0].Name = "mutated"

	assert.NotEqual(t, "mutated", store.Leads().Tofu[0].Name)

	customers := store.Customers()
	require.NotEmpty(t, customers)
	customers[0].Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", store.Customers()[0].Tags[0])
}
