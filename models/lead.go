package models

import (
	"fmt"
	"strings"
)

// FunnelStage 漏斗阶段枚举
type FunnelStage string

const (
	StageTofu         FunnelStage = "tofu"          // 漏斗顶部
	StageMofu         FunnelStage = "mofu"          // 漏斗中部
	StageBofu         FunnelStage = "bofu"          // 漏斗底部
	StageCold         FunnelStage = "cold"          // 冷线索池
	StageCustomer     FunnelStage = "customer"      // 转化为客户
	StageActiveFunnel FunnelStage = "active funnel" // 重新激活，回到原阶段
)

// TOFU线索状态枚举
const (
	TofuStatusNew     = "new"
	TofuStatusEngaged = "engaged"
	TofuStatusCold    = "cold"
	TofuStatusHot     = "hot"
	TofuStatusWarm    = "warm"
)

// MOFU线索状态枚举
const (
	MofuStatusMQL         = "mql"
	MofuStatusSQL         = "sql"
	MofuStatusOpportunity = "opportunity"
)

// BOFU线索状态枚举
const (
	BofuStatusOpportunity = "opportunity"
	BofuStatusProposal    = "proposal"
	BofuStatusNegotiation = "negotiation"
	BofuStatusClosedWon   = "closed_won"
	BofuStatusClosedLost  = "closed_lost"
)

// ColdStatusDefault 冷线索固定状态
const ColdStatusDefault = "cold"

// LeadBase 线索基础字段，所有阶段共享
type LeadBase struct {
	ID            int    `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name"`
	Email         string `json:"email" bson:"email"`
	Company       string `json:"company" bson:"company"`
	Title         string `json:"title" bson:"title"`
	Source        string `json:"source" bson:"source"`
	Status        string `json:"status" bson:"status"`
	LastActivity  string `json:"last_activity" bson:"lastActivity"`
	CreatedDate   string `json:"created_date" bson:"createdDate"`
	Phone         string `json:"phone" bson:"phone"`
	Industry      string `json:"industry" bson:"industry"`
	CompanySize   string `json:"company_size" bson:"companySize"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
	MovedDate     string `json:"moved_date,omitempty" bson:"movedDate,omitempty"`
	OriginalStage string `json:"original_stage,omitempty" bson:"originalStage,omitempty"`
}

// TofuLead 漏斗顶部线索
type TofuLead struct {
	LeadBase          `bson:",inline"`
	ContentDownloaded string `json:"content_downloaded" bson:"contentDownloaded"`
}

// MofuLead 漏斗中部线索
type MofuLead struct {
	LeadBase        `bson:",inline"`
	LeadScore       int    `json:"lead_score" bson:"leadScore"`
	ContentConsumed string `json:"content_consumed" bson:"contentConsumed"`
	ConvertingTime  int    `json:"converting_time" bson:"convertingTime"` // 转化耗时（小时）
}

// BofuLead 漏斗底部线索
type BofuLead struct {
	LeadBase         `bson:",inline"`
	DealValue        int    `json:"deal_value" bson:"dealValue"`
	LeadScore        int    `json:"lead_score" bson:"leadScore"`
	SalesStage       string `json:"sales_stage" bson:"salesStage"`
	CloseProbability int    `json:"close_probability" bson:"closeProbability"`
	ContentConsumed  string `json:"content_consumed" bson:"contentConsumed"`
	ConvertingTime   int    `json:"converting_time" bson:"convertingTime"`
}

// ColdLead 冷线索，保留原阶段信息以便重新激活
type ColdLead struct {
	LeadBase     `bson:",inline"`
	Value        int    `json:"value" bson:"value"` // 离开活跃漏斗时携带的金额
	Stage        string `json:"stage" bson:"stage"` // 原阶段名（大写）
	DaysInactive int    `json:"days_inactive" bson:"daysInactive"`
}

// LeadsByStage 按阶段分组的线索集合
type LeadsByStage struct {
	Tofu []TofuLead `json:"tofu" bson:"tofu"`
	Mofu []MofuLead `json:"mofu" bson:"mofu"`
	Bofu []BofuLead `json:"bofu" bson:"bofu"`
	Cold []ColdLead `json:"cold" bson:"cold"`
}

// NormalizeStage 解析阶段名称（忽略大小写，"cold bucket"视为cold）
func NormalizeStage(name string) (FunnelStage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tofu":
		return StageTofu, nil
	case "mofu":
		return StageMofu, nil
	case "bofu":
		return StageBofu, nil
	case "cold", "cold bucket":
		return StageCold, nil
	case "customer":
		return StageCustomer, nil
	case "active funnel":
		return StageActiveFunnel, nil
	}
	return "", fmt.Errorf("未知的漏斗阶段: %s", name)
}

// IsSourceStage 判断是否为可作为移动来源的阶段
func (s FunnelStage) IsSourceStage() bool {
	switch s {
	case StageTofu, StageMofu, StageBofu, StageCold:
		return true
	}
	return false
}

// Upper 阶段名大写形式（冷线索的stage/original_stage字段使用）
func (s FunnelStage) Upper() string {
	return strings.ToUpper(string(s))
}
