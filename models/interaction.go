package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interaction 互动记录，创建后不可修改
// 产品规则：每条互动必须关联一个联系人
type Interaction struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AccountId string             `json:"accountId" bson:"accountId"`
	ContactId string             `json:"contactId" bson:"contactId"`

	Channel      ContactChannel `json:"channel" bson:"channel"`
	Summary      string         `json:"summary" bson:"summary"`
	NextStep     string         `json:"nextStep" bson:"nextStep"`
	NextStepDate string         `json:"nextStepDate" bson:"nextStepDate"`

	ObjectionTag string   `json:"objectionTag,omitempty" bson:"objectionTag,omitempty"`
	TargetPrice  *float64 `json:"targetPrice,omitempty" bson:"targetPrice,omitempty"`

	// 风险标记
	RiskTechnical  bool `json:"riskTechnical" bson:"riskTechnical"`
	RiskRegulatory bool `json:"riskRegulatory" bson:"riskRegulatory"`
	RiskCommercial bool `json:"riskCommercial" bson:"riskCommercial"`

	CreatorId   string    `json:"creatorId" bson:"creatorId"`
	CreatorName string    `json:"creatorName" bson:"creatorName"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// InteractionCreateRequest 创建互动记录请求
type InteractionCreateRequest struct {
	AccountId    string   `json:"accountId" binding:"required"`
	ContactId    string   `json:"contactId" binding:"required"`
	Channel      string   `json:"channel" binding:"required"`
	Summary      string   `json:"summary" binding:"required"`
	NextStep     string   `json:"nextStep" binding:"required"`
	NextStepDate string   `json:"nextStepDate" binding:"required"`
	ObjectionTag string   `json:"objectionTag"`
	TargetPrice  *float64 `json:"targetPrice" binding:"omitempty,gte=0"`

	RiskTechnical  bool `json:"riskTechnical"`
	RiskRegulatory bool `json:"riskRegulatory"`
	RiskCommercial bool `json:"riskCommercial"`
}

// ValidateNextStepDate 校验下一步日期格式（YYYY-MM-DD）
func ValidateNextStepDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return NewValidationError("nextStepDate", date)
	}
	return nil
}
