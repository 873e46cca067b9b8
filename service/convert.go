package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/BerniceZTT/cdp_end/models"
)

// convertLeadToCustomer 将线索快照转化为客户记录。
// 已存在相同邮箱或相同原线索ID的客户时跳过插入（记告警），避免重复转化。
func (s *LifecycleStore) convertLeadToCustomer(snap leadSnapshot, from models.FunnelStage, notes string) {
	for _, existing := range s.customers {
		if existing.Email == snap.base.Email ||
			(existing.OriginalLeadID != 0 && existing.OriginalLeadID == snap.base.ID) {
			s.logger.Warn().
				Int("leadId", snap.base.ID).
				Str("email", snap.base.Email).
				Str("customerId", existing.ID).
				Msg("客户已存在，跳过重复转化")
			return
		}
	}

	dealValue := snap.dealValue
	if dealValue == 0 {
		dealValue = snap.coldValue
	}
	if dealValue == 0 {
		dealValue = defaultBofuDealValue.pick(s.synth)
	}

	firstName, lastName := splitName(snap.base.Name)
	today := s.todayString()

	customer := models.Customer{
		ID:               fmt.Sprintf("CUST-%d%d", snap.base.ID, s.now().UnixMilli()%100000),
		FirstName:        firstName,
		LastName:         lastName,
		Email:            snap.base.Email,
		Phone:            snap.base.Phone,
		Status:           models.CustomerStatusActive,
		Tier:             models.TierForDealValue(dealValue),
		RegistrationDate: today,
		LastLogin:        today,
		TotalSpent:       int(math.Round(float64(dealValue) * 0.3)),
		OrderCount:       1,
		LifetimeValue:    dealValue,
		Location:         s.synth.Location(),
		Source:           snap.base.Source,
		Segment:          models.SegmentForDealValue(dealValue),
		Tags:             conversionTags(snap.base.Industry),

		OriginalLeadID:  snap.base.ID,
		MovedFromStage:  from.Upper(),
		MovedDate:       today,
		ConversionNotes: notes,
	}

	s.customers = append(s.customers, customer)

	s.logger.Info().
		Int("leadId", snap.base.ID).
		Str("customerId", customer.ID).
		Str("tier", string(customer.Tier)).
		Msg("线索已转化为客户")
}

// splitName 拆分姓名为firstName/lastName（按第一个空格）
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// conversionTags 转化客户的默认标签
func conversionTags(industry string) []string {
	tags := []string{"New Customer", "Converted Lead"}
	if industry != "" {
		tags = append(tags, industry)
	}
	return tags
}
