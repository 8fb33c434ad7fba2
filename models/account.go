package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountTier 客户分级枚举，决定期望联系节奏
type AccountTier string

const (
	AccountTierA AccountTier = "A" // 战略客户，7天节奏
	AccountTierB AccountTier = "B" // 重点客户，14天节奏
	AccountTierC AccountTier = "C" // 普通客户，30天节奏
)

// Validate 校验客户分级取值
func (t AccountTier) Validate() error {
	switch t {
	case AccountTierA, AccountTierB, AccountTierC:
		return nil
	}
	return NewValidationError("tier", string(t))
}

// Account 客户模型
type Account struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Tier     AccountTier        `json:"tier" bson:"tier"`
	Country  string             `json:"country,omitempty" bson:"country,omitempty"`
	ValueUsd float64            `json:"valueUsd,omitempty" bson:"valueUsd,omitempty"`

	// 最近一次互动时间（冗余字段，记录互动时同步更新）
	// 为空表示从未联系过，不等于零点时间
	LastInteractionAt *time.Time `json:"lastInteractionAt,omitempty" bson:"lastInteractionAt,omitempty"`

	// 归属人信息
	OwnerID   string `json:"ownerId" bson:"ownerId"`
	OwnerName string `json:"ownerName" bson:"ownerName"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// AccountCreateRequest 创建客户请求
type AccountCreateRequest struct {
	Name     string  `json:"name" binding:"required"`
	Tier     string  `json:"tier" binding:"required"`
	Country  string  `json:"country"`
	ValueUsd float64 `json:"valueUsd" binding:"omitempty,gte=0"`
}

// AccountUpdateRequest 更新客户请求
type AccountUpdateRequest struct {
	Name     string   `json:"name" binding:"omitempty"`
	Tier     string   `json:"tier" binding:"omitempty"`
	Country  *string  `json:"country"`
	ValueUsd *float64 `json:"valueUsd" binding:"omitempty,gte=0"`
}
