package models

import "time"

// MaxRecentMovements 移动历史保留的最大条数
const MaxRecentMovements = 10

// LeadMovement 线索移动审计记录
type LeadMovement struct {
	LeadID    int       `json:"leadId" bson:"leadId"`
	FromStage string    `json:"fromStage" bson:"fromStage"`
	ToStage   string    `json:"toStage" bson:"toStage"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
