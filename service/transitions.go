package service

import (
	"fmt"

	"github.com/BerniceZTT/cdp_end/models"
)

// leadSnapshot 线索在阶段间移动时携带的字段集合。
// 从来源记录提取，转换函数据此生成目标阶段记录。
type leadSnapshot struct {
	base models.LeadBase

	contentDownloaded string
	contentConsumed   string
	leadScore         int
	dealValue         int
	coldValue         int
	convertingTime    int
	closeProbability  int
	salesStage        string
	daysInactive      int
}

func snapshotFromTofu(lead models.TofuLead) leadSnapshot {
	return leadSnapshot{
		base:              lead.LeadBase,
		contentDownloaded: lead.ContentDownloaded,
	}
}

func snapshotFromMofu(lead models.MofuLead) leadSnapshot {
	return leadSnapshot{
		base:            lead.LeadBase,
		contentConsumed: lead.ContentConsumed,
		leadScore:       lead.LeadScore,
		convertingTime:  lead.ConvertingTime,
	}
}

func snapshotFromBofu(lead models.BofuLead) leadSnapshot {
	return leadSnapshot{
		base:             lead.LeadBase,
		contentConsumed:  lead.ContentConsumed,
		leadScore:        lead.LeadScore,
		dealValue:        lead.DealValue,
		convertingTime:   lead.ConvertingTime,
		closeProbability: lead.CloseProbability,
		salesStage:       lead.SalesStage,
	}
}

func snapshotFromCold(lead models.ColdLead) leadSnapshot {
	return leadSnapshot{
		base:         lead.LeadBase,
		coldValue:    lead.Value,
		daysInactive: lead.DaysInactive,
	}
}

// sourceContent 来源记录的内容字段（进入MOFU时继承）
func (snap leadSnapshot) sourceContent() string {
	if snap.contentDownloaded != "" {
		return snap.contentDownloaded
	}
	return snap.contentConsumed
}

// transitionKey 迁移规则表的键
type transitionKey struct {
	From models.FunnelStage
	To   models.FunnelStage
}

// transitionFunc 迁移转换函数：根据快照生成目标阶段记录并插入目标集合
type transitionFunc func(s *LifecycleStore, snap leadSnapshot, from models.FunnelStage, notes string)

// transitionTable 显式迁移规则表。不在表中的组合返回ErrUnknownTransition，
// 不再沿用原实现的静默透传。
var transitionTable = map[transitionKey]transitionFunc{
	{From: models.StageTofu, To: models.StageMofu}:     (*LifecycleStore).enterMofu,
	{From: models.StageTofu, To: models.StageBofu}:     (*LifecycleStore).enterBofu,
	{From: models.StageTofu, To: models.StageCold}:     (*LifecycleStore).enterCold,
	{From: models.StageTofu, To: models.StageCustomer}: (*LifecycleStore).enterCustomer,

	{From: models.StageMofu, To: models.StageBofu}:     (*LifecycleStore).enterBofu,
	{From: models.StageMofu, To: models.StageCold}:     (*LifecycleStore).enterCold,
	{From: models.StageMofu, To: models.StageCustomer}: (*LifecycleStore).enterCustomer,

	{From: models.StageBofu, To: models.StageCold}:     (*LifecycleStore).enterCold,
	{From: models.StageBofu, To: models.StageCustomer}: (*LifecycleStore).enterCustomer,

	{From: models.StageCold, To: models.StageActiveFunnel}: (*LifecycleStore).reenterActiveFunnel,
	{From: models.StageCold, To: models.StageCustomer}:     (*LifecycleStore).enterCustomer,
}

// movedBase 迁移后的基础字段：记录移动日期、活动说明与备注
func (s *LifecycleStore) movedBase(snap leadSnapshot, from models.FunnelStage, notes string) models.LeadBase {
	base := snap.base
	base.MovedDate = s.todayString()
	base.LastActivity = fmt.Sprintf("Moved from %s", from)
	if notes != "" {
		base.Notes = notes
	}
	return base
}

// enterMofu 进入MOFU的转换规则
func (s *LifecycleStore) enterMofu(snap leadSnapshot, from models.FunnelStage, notes string) {
	score := snap.leadScore
	if score == 0 {
		score = defaultMofuLeadScore.pick(s.synth)
	}

	content := snap.sourceContent()
	if content == "" {
		content = "Email Campaign"
	}

	converting := snap.convertingTime
	if converting == 0 {
		converting = defaultMofuConvertingTime.pick(s.synth)
	}

	base := s.movedBase(snap, from, notes)
	base.Status = models.MofuStatusMQL

	lead := models.MofuLead{
		LeadBase:        base,
		LeadScore:       clampPercent(score),
		ContentConsumed: content,
		ConvertingTime:  converting,
	}
	s.leads.Mofu = append([]models.MofuLead{lead}, s.leads.Mofu...)
}

// enterBofu 进入BOFU的转换规则
func (s *LifecycleStore) enterBofu(snap leadSnapshot, from models.FunnelStage, notes string) {
	dealValue := snap.dealValue
	if dealValue == 0 {
		dealValue = defaultBofuDealValue.pick(s.synth)
	}

	score := snap.leadScore
	if score == 0 {
		score = defaultBofuLeadScore.pick(s.synth)
	}

	probability := snap.closeProbability
	if probability == 0 {
		probability = defaultBofuCloseProbability.pick(s.synth)
	}

	content := snap.contentConsumed
	if content == "" {
		content = "Demo, Proposal"
	}

	converting := snap.convertingTime
	if converting == 0 {
		converting = defaultBofuConvertingTime.pick(s.synth)
	}

	base := s.movedBase(snap, from, notes)
	base.Status = models.BofuStatusOpportunity

	lead := models.BofuLead{
		LeadBase:         base,
		DealValue:        dealValue,
		LeadScore:        clampPercent(score),
		SalesStage:       "Qualification",
		CloseProbability: clampPercent(probability),
		ContentConsumed:  content,
		ConvertingTime:   converting,
	}
	s.leads.Bofu = append([]models.BofuLead{lead}, s.leads.Bofu...)
}

// enterCold 进入冷线索池的转换规则
func (s *LifecycleStore) enterCold(snap leadSnapshot, from models.FunnelStage, notes string) {
	value := snap.dealValue
	if value == 0 {
		value = snap.coldValue
	}
	if value == 0 {
		value = defaultColdValue.pick(s.synth)
	}

	base := s.movedBase(snap, from, notes)
	base.Status = models.ColdStatusDefault
	base.OriginalStage = from.Upper()

	lead := models.ColdLead{
		LeadBase:     base,
		Value:        value,
		Stage:        from.Upper(),
		DaysInactive: 0,
	}
	s.leads.Cold = append([]models.ColdLead{lead}, s.leads.Cold...)
}

// enterCustomer 转化为客户（去重后插入客户集合）
func (s *LifecycleStore) enterCustomer(snap leadSnapshot, from models.FunnelStage, notes string) {
	s.convertLeadToCustomer(snap, from, notes)
}

// reactivationTarget 解析冷线索重新激活后应回到的阶段
func reactivationTarget(snap leadSnapshot) (models.FunnelStage, error) {
	stage, err := models.NormalizeStage(snap.base.OriginalStage)
	if err != nil {
		return "", err
	}
	switch stage {
	case models.StageTofu, models.StageMofu, models.StageBofu:
		return stage, nil
	}
	return "", fmt.Errorf("原阶段不可重新激活: %s", snap.base.OriginalStage)
}

// reenterActiveFunnel 冷线索重新激活：按original_stage回到对应阶段
func (s *LifecycleStore) reenterActiveFunnel(snap leadSnapshot, from models.FunnelStage, notes string) {
	target, err := reactivationTarget(snap)
	if err != nil {
		// MoveLead在删除前已校验过，这里不应到达
		s.logger.Error().Err(err).Int("leadId", snap.base.ID).Msg("重新激活目标解析失败")
		return
	}

	switch target {
	case models.StageTofu:
		base := s.movedBase(snap, from, notes)
		base.Status = models.TofuStatusEngaged
		lead := models.TofuLead{
			LeadBase:          base,
			ContentDownloaded: "Re-engagement Guide",
		}
		s.leads.Tofu = append([]models.TofuLead{lead}, s.leads.Tofu...)

	case models.StageMofu:
		score := snap.leadScore
		if score == 0 {
			score = reactivatedMofuLeadScore
		}
		converting := snap.convertingTime
		if converting == 0 {
			converting = defaultMofuConvertingTime.pick(s.synth)
		}
		content := snap.sourceContent()
		if content == "" {
			content = "Email Campaign"
		}

		base := s.movedBase(snap, from, notes)
		base.Status = models.MofuStatusMQL
		lead := models.MofuLead{
			LeadBase:        base,
			LeadScore:       clampPercent(score),
			ContentConsumed: content,
			ConvertingTime:  converting,
		}
		s.leads.Mofu = append([]models.MofuLead{lead}, s.leads.Mofu...)

	case models.StageBofu:
		converting := snap.convertingTime
		if converting == 0 {
			converting = defaultBofuConvertingTime.pick(s.synth)
		}

		base := s.movedBase(snap, from, notes)
		base.Status = models.BofuStatusOpportunity
		lead := models.BofuLead{
			LeadBase:         base,
			DealValue:        snap.coldValue,
			LeadScore:        80,
			SalesStage:       "Re-engagement",
			CloseProbability: 50,
			ContentConsumed:  "Re-engagement materials",
			ConvertingTime:   converting,
		}
		s.leads.Bofu = append([]models.BofuLead{lead}, s.leads.Bofu...)
	}
}
