package models

// CustomerTier 客户等级枚举
type CustomerTier string

const (
	TierPremium CustomerTier = "premium"
	TierGold    CustomerTier = "gold"
	TierSilver  CustomerTier = "silver"
	TierBronze  CustomerTier = "bronze"
)

// 客户分群
const (
	SegmentHighValue = "High-Value Customers"
	SegmentRegular   = "Regular Customers"
)

// CustomerStatusActive 新建客户的初始状态
const CustomerStatusActive = "active"

// Customer 客户模型，仅通过线索转化或直接添加产生
type Customer struct {
	ID               string       `json:"id" bson:"id"`
	FirstName        string       `json:"firstName" bson:"firstName"`
	LastName         string       `json:"lastName" bson:"lastName"`
	Email            string       `json:"email" bson:"email"`
	Phone            string       `json:"phone" bson:"phone"`
	Status           string       `json:"status" bson:"status"`
	Tier             CustomerTier `json:"tier" bson:"tier"`
	RegistrationDate string       `json:"registrationDate" bson:"registrationDate"`
	LastLogin        string       `json:"lastLogin" bson:"lastLogin"`
	TotalSpent       int          `json:"totalSpent" bson:"totalSpent"`
	OrderCount       int          `json:"orderCount" bson:"orderCount"`
	LifetimeValue    int          `json:"lifetimeValue" bson:"lifetimeValue"`
	Location         string       `json:"location" bson:"location"`
	Source           string       `json:"source" bson:"source"`
	Segment          string       `json:"segment" bson:"segment"`
	Tags             []string     `json:"tags" bson:"tags"`

	// 转化来源信息
	OriginalLeadID  int    `json:"originalLeadId,omitempty" bson:"originalLeadId,omitempty"`
	MovedFromStage  string `json:"movedFromStage,omitempty" bson:"movedFromStage,omitempty"`
	MovedDate       string `json:"movedDate,omitempty" bson:"movedDate,omitempty"`
	ConversionNotes string `json:"conversionNotes,omitempty" bson:"conversionNotes,omitempty"`
}

// TierForDealValue 根据成交金额推导客户等级
func TierForDealValue(dealValue int) CustomerTier {
	switch {
	case dealValue > 100000:
		return TierPremium
	case dealValue > 50000:
		return TierGold
	case dealValue > 25000:
		return TierSilver
	}
	return TierBronze
}

// SegmentForDealValue 根据成交金额推导客户分群
func SegmentForDealValue(dealValue int) string {
	if dealValue > 75000 {
		return SegmentHighValue
	}
	return SegmentRegular
}
