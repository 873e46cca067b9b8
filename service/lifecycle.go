package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BerniceZTT/cdp_end/models"
	"github.com/BerniceZTT/cdp_end/repository"

	"github.com/rs/zerolog"
)

// 持久化键
const (
	leadsStorageKey     = "cdp:leads_by_stage"
	leadsVersionKey     = "cdp:leads_schema_version"
	movementsStorageKey = "cdp:lead_movements"
	customersStorageKey = "cdp:customers"

	// LeadsSchemaVersion 线索数据结构版本，版本不一致时丢弃已存数据
	LeadsSchemaVersion = "v4"
)

var (
	// ErrLeadNotFound 来源阶段中不存在该线索
	ErrLeadNotFound = errors.New("来源阶段中未找到该线索")
	// ErrUnknownStage 无法识别的阶段名
	ErrUnknownStage = errors.New("无法识别的漏斗阶段")
	// ErrUnknownTransition 转换规则表中没有该迁移
	ErrUnknownTransition = errors.New("不支持的阶段迁移")
)

// LifecycleStore 线索生命周期存储。持有四个阶段集合、客户集合与移动历史，
// 所有变更必须经过 MoveLead / AddCustomer / ResetToOriginalData，
// 每次变更后尽力写回键值存储（失败只记日志，不向调用方抛出）。
type LifecycleStore struct {
	mu     sync.Mutex
	kv     repository.KVStore
	logger zerolog.Logger
	synth  Synthesizer
	now    func() time.Time

	leads     models.LeadsByStage
	customers []models.Customer
	movements []models.LeadMovement
}

// Option 存储构造选项
type Option func(*LifecycleStore)

// WithLogger 注入日志器
func WithLogger(logger zerolog.Logger) Option {
	return func(s *LifecycleStore) { s.logger = logger }
}

// WithSynthesizer 注入缺省值合成策略
func WithSynthesizer(synth Synthesizer) Option {
	return func(s *LifecycleStore) { s.synth = synth }
}

// WithClock 注入时钟
func WithClock(now func() time.Time) Option {
	return func(s *LifecycleStore) { s.now = now }
}

// NewLifecycleStore 创建生命周期存储并从键值存储恢复状态
func NewLifecycleStore(kv repository.KVStore, opts ...Option) *LifecycleStore {
	s := &LifecycleStore{
		kv:    kv,
		synth: NewRandomSynthesizer(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// load 启动时恢复持久化状态，失败时回退到种子数据
func (s *LifecycleStore) load() {
	s.loadLeads()
	s.loadMovements()
	s.loadCustomers()
}

// loadLeads 恢复线索数据，带版本校验：版本不一致时丢弃存储并重新播种
func (s *LifecycleStore) loadLeads() {
	version, hasVersion, err := s.kv.Get(leadsVersionKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("读取线索数据版本失败")
		hasVersion = false
	}

	payload, hasPayload, err := s.kv.Get(leadsStorageKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("读取线索数据失败")
		hasPayload = false
	}

	if hasPayload && hasVersion && version == LeadsSchemaVersion {
		var stored models.LeadsByStage
		if err := json.Unmarshal([]byte(payload), &stored); err != nil {
			s.logger.Error().Err(err).Msg("解析线索数据失败，使用种子数据")
			s.leads = models.SeedLeads()
		} else {
			s.leads = stored
			s.repairConvertingTimes()
		}
	} else {
		if hasPayload {
			// 版本不匹配，丢弃旧数据
			s.logger.Warn().
				Str("storedVersion", version).
				Str("expectedVersion", LeadsSchemaVersion).
				Msg("线索数据版本不匹配，丢弃已存数据")
			if err := s.kv.Remove(leadsStorageKey); err != nil {
				s.logger.Error().Err(err).Msg("删除过期线索数据失败")
			}
		}
		s.leads = models.SeedLeads()
	}

	// 更新版本标记
	if err := s.kv.Set(leadsVersionKey, LeadsSchemaVersion); err != nil {
		s.logger.Error().Err(err).Msg("写入线索数据版本失败")
	}
}

// repairConvertingTimes 修补早期版本写入的缺失converting_time字段
func (s *LifecycleStore) repairConvertingTimes() {
	for i := range s.leads.Mofu {
		if s.leads.Mofu[i].ConvertingTime == 0 {
			s.leads.Mofu[i].ConvertingTime = defaultMofuConvertingTime.pick(s.synth)
		}
	}
	for i := range s.leads.Bofu {
		if s.leads.Bofu[i].ConvertingTime == 0 {
			s.leads.Bofu[i].ConvertingTime = defaultBofuConvertingTime.pick(s.synth)
		}
	}
}

// loadMovements 恢复移动历史（无版本校验）
func (s *LifecycleStore) loadMovements() {
	payload, ok, err := s.kv.Get(movementsStorageKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("读取移动历史失败")
		return
	}
	if !ok {
		return
	}

	var stored []models.LeadMovement
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		s.logger.Error().Err(err).Msg("解析移动历史失败")
		return
	}
	if len(stored) > models.MaxRecentMovements {
		stored = stored[:models.MaxRecentMovements]
	}
	s.movements = stored
}

// loadCustomers 恢复客户数据（无版本校验），没有存储时使用种子客户
func (s *LifecycleStore) loadCustomers() {
	payload, ok, err := s.kv.Get(customersStorageKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("读取客户数据失败")
	}
	if err != nil || !ok {
		s.customers = models.SeedCustomers()
		return
	}

	var stored []models.Customer
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		s.logger.Error().Err(err).Msg("解析客户数据失败，使用种子数据")
		s.customers = models.SeedCustomers()
		return
	}
	s.customers = stored
}

// Leads 返回按阶段分组的线索快照
func (s *LifecycleStore) Leads() models.LeadsByStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLeads(s.leads)
}

// Customers 返回客户快照
func (s *LifecycleStore) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCustomers(s.customers)
}

// RecentMovements 返回最近的移动历史（最新在前）
func (s *LifecycleStore) RecentMovements() []models.LeadMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LeadMovement, len(s.movements))
	copy(out, s.movements)
	return out
}

// MoveLead 将线索从一个阶段移动到另一个阶段。
// 实际语义是从来源集合删除，按目标阶段的转换规则生成新记录插入目标集合；
// 目标为customer时执行客户转化（按邮箱/原线索ID去重）。
func (s *LifecycleStore) MoveLead(leadID int, fromStage, toStage, notes string) error {
	from, err := models.NormalizeStage(fromStage)
	if err != nil || !from.IsSourceStage() {
		s.logger.Warn().Str("fromStage", fromStage).Msg("无法识别的来源阶段")
		return ErrUnknownStage
	}

	// tofu只能通过active funnel重新进入，不是合法的直接目标
	to, err := models.NormalizeStage(toStage)
	if err != nil || to == models.StageTofu {
		s.logger.Warn().Str("toStage", toStage).Msg("无法识别的目标阶段")
		return ErrUnknownStage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.findLead(from, leadID)
	if !ok {
		s.logger.Warn().
			Int("leadId", leadID).
			Str("fromStage", string(from)).
			Msg("来源阶段中未找到线索")
		return ErrLeadNotFound
	}

	transform, ok := transitionTable[transitionKey{From: from, To: to}]
	if !ok {
		s.logger.Warn().
			Str("fromStage", string(from)).
			Str("toStage", string(to)).
			Msg("转换规则表中没有该迁移")
		return ErrUnknownTransition
	}

	// 重新激活必须能解析出原阶段，校验先于删除
	if to == models.StageActiveFunnel {
		if _, err := reactivationTarget(snap); err != nil {
			s.logger.Warn().
				Int("leadId", leadID).
				Str("originalStage", snap.base.OriginalStage).
				Msg("冷线索缺少可识别的原阶段")
			return ErrUnknownTransition
		}
	}

	s.removeLead(from, leadID)
	transform(s, snap, from, notes)

	s.recordMovement(models.LeadMovement{
		LeadID:    leadID,
		FromStage: string(from),
		ToStage:   string(to),
		Notes:     notes,
		Timestamp: s.now(),
	})

	s.persistLeads()
	s.persistMovements()
	if to == models.StageCustomer {
		s.persistCustomers()
	}

	s.logger.Info().
		Int("leadId", leadID).
		Str("fromStage", string(from)).
		Str("toStage", string(to)).
		Msg("线索移动完成")
	return nil
}

// AddCustomer 直接添加客户。此路径不做去重（与转化路径不同，保持原有行为）。
func (s *LifecycleStore) AddCustomer(customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, customer)
	s.persistCustomers()

	s.logger.Info().Str("customerId", customer.ID).Msg("已添加客户")
}

// ResetToOriginalData 恢复所有集合到种子数据，清空移动历史并删除全部持久化键。
// 破坏性操作，确认逻辑属于上层调用方。
func (s *LifecycleStore) ResetToOriginalData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = models.SeedLeads()
	s.customers = models.SeedCustomers()
	s.movements = nil

	for _, key := range []string{leadsStorageKey, leadsVersionKey, movementsStorageKey, customersStorageKey} {
		if err := s.kv.Remove(key); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("删除持久化键失败")
		}
	}

	s.logger.Info().Msg("已重置为初始数据")
}

// AgeColdLeads 冷线索老化：所有冷线索的未活跃天数加一。每日任务调用。
func (s *LifecycleStore) AgeColdLeads() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads.Cold {
		s.leads.Cold[i].DaysInactive++
	}
	if len(s.leads.Cold) > 0 {
		s.persistLeads()
	}
	return len(s.leads.Cold)
}

// recordMovement 记录移动审计，保留最近10条，最新在前
func (s *LifecycleStore) recordMovement(m models.LeadMovement) {
	s.movements = append([]models.LeadMovement{m}, s.movements...)
	if len(s.movements) > models.MaxRecentMovements {
		s.movements = s.movements[:models.MaxRecentMovements]
	}
}

// findLead 在来源集合中查找线索并提取快照（不删除）
func (s *LifecycleStore) findLead(stage models.FunnelStage, leadID int) (leadSnapshot, bool) {
	switch stage {
	case models.StageTofu:
		for _, lead := range s.leads.Tofu {
			if lead.ID == leadID {
				return snapshotFromTofu(lead), true
			}
		}
	case models.StageMofu:
		for _, lead := range s.leads.Mofu {
			if lead.ID == leadID {
				return snapshotFromMofu(lead), true
			}
		}
	case models.StageBofu:
		for _, lead := range s.leads.Bofu {
			if lead.ID == leadID {
				return snapshotFromBofu(lead), true
			}
		}
	case models.StageCold:
		for _, lead := range s.leads.Cold {
			if lead.ID == leadID {
				return snapshotFromCold(lead), true
			}
		}
	}
	return leadSnapshot{}, false
}

// removeLead 从来源集合删除线索
func (s *LifecycleStore) removeLead(stage models.FunnelStage, leadID int) {
	switch stage {
	case models.StageTofu:
		for i, lead := range s.leads.Tofu {
			if lead.ID == leadID {
				s.leads.Tofu = append(s.leads.Tofu[:i], s.leads.Tofu[i+1:]...)
				return
			}
		}
	case models.StageMofu:
		for i, lead := range s.leads.Mofu {
			if lead.ID == leadID {
				s.leads.Mofu = append(s.leads.Mofu[:i], s.leads.Mofu[i+1:]...)
				return
			}
		}
	case models.StageBofu:
		for i, lead := range s.leads.Bofu {
			if lead.ID == leadID {
				s.leads.Bofu = append(s.leads.Bofu[:i], s.leads.Bofu[i+1:]...)
				return
			}
		}
	case models.StageCold:
		for i, lead := range s.leads.Cold {
			if lead.ID == leadID {
				s.leads.Cold = append(s.leads.Cold[:i], s.leads.Cold[i+1:]...)
				return
			}
		}
	}
}

// todayString 当前日期的展示格式
func (s *LifecycleStore) todayString() string {
	return s.now().Format("2006-01-02")
}

// 持久化辅助函数。写入失败只记日志，不影响内存状态（尽力而为，非事务）。

func (s *LifecycleStore) persistLeads() {
	s.persistJSON(leadsStorageKey, s.leads, "线索数据")
}

func (s *LifecycleStore) persistMovements() {
	s.persistJSON(movementsStorageKey, s.movements, "移动历史")
}

func (s *LifecycleStore) persistCustomers() {
	s.persistJSON(customersStorageKey, s.customers, "客户数据")
}

func (s *LifecycleStore) persistJSON(key string, value interface{}, label string) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Msg(fmt.Sprintf("序列化%s失败", label))
		return
	}
	if err := s.kv.Set(key, string(payload)); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg(fmt.Sprintf("持久化%s失败", label))
	}
}

// copyLeads 深拷贝线索集合
func copyLeads(leads models.LeadsByStage) models.LeadsByStage {
	out := models.LeadsByStage{
		Tofu: make([]models.TofuLead, len(leads.Tofu)),
		Mofu: make([]models.MofuLead, len(leads.Mofu)),
		Bofu: make([]models.BofuLead, len(leads.Bofu)),
		Cold: make([]models.ColdLead, len(leads.Cold)),
	}
	copy(out.Tofu, leads.Tofu)
	copy(out.Mofu, leads.Mofu)
	copy(out.Bofu, leads.Bofu)
	copy(out.Cold, leads.Cold)
	return out
}

// copyCustomers 深拷贝客户集合
func copyCustomers(customers []models.Customer) []models.Customer {
	out := make([]models.Customer, len(customers))
	copy(out, customers)
	for i := range out {
		if out[i].Tags != nil {
			tags := make([]string, len(out[i].Tags))
			copy(tags, out[i].Tags)
			out[i].Tags = tags
		}
	}
	return out
}
