package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessArea 业务线枚举，联系人必须归属其中之一
type BusinessArea string

const (
	BusinessAreaMarketing   BusinessArea = "Marketing"
	BusinessAreaRnD         BusinessArea = "R&D"
	BusinessAreaProcurement BusinessArea = "Procurement"
	BusinessAreaCommercial  BusinessArea = "Commercial"
	BusinessAreaDirectors   BusinessArea = "Directors"
)

// AllBusinessAreas 固定业务线列表，覆盖率按此枚举计算
var AllBusinessAreas = []BusinessArea{
	BusinessAreaMarketing,
	BusinessAreaRnD,
	BusinessAreaProcurement,
	BusinessAreaCommercial,
	BusinessAreaDirectors,
}

// Validate 校验业务线取值，不允许为空或默认兜底
func (a BusinessArea) Validate() error {
	for _, area := range AllBusinessAreas {
		if a == area {
			return nil
		}
	}
	return NewValidationError("area", string(a))
}

// ContactChannel 联系渠道枚举
type ContactChannel string

const (
	ContactChannelCall     ContactChannel = "call"
	ContactChannelWhatsapp ContactChannel = "whatsapp"
	ContactChannelEmail    ContactChannel = "email"
)

// Validate 校验联系渠道取值
func (ch ContactChannel) Validate() error {
	switch ch {
	case ContactChannelCall, ContactChannelWhatsapp, ContactChannelEmail:
		return nil
	}
	return NewValidationError("channel", string(ch))
}

// Contact 联系人模型，归属唯一客户和唯一业务线
type Contact struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AccountId string             `json:"accountId" bson:"accountId"`
	Name      string             `json:"name" bson:"name"`
	Area      BusinessArea       `json:"area" bson:"area"`

	PreferredChannel ContactChannel `json:"preferredChannel,omitempty" bson:"preferredChannel,omitempty"`
	PersonalHook     string         `json:"personalHook,omitempty" bson:"personalHook,omitempty"`

	// 最近一次触达该联系人的时间（与客户级时间戳独立维护）
	LastTouchAt *time.Time `json:"lastTouchAt,omitempty" bson:"lastTouchAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ContactCreateRequest 创建联系人请求
type ContactCreateRequest struct {
	AccountId        string `json:"accountId" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Area             string `json:"area" binding:"required"`
	PreferredChannel string `json:"preferredChannel"`
	PersonalHook     string `json:"personalHook"`
}

// ContactUpdateRequest 更新联系人请求
type ContactUpdateRequest struct {
	Name             string `json:"name" binding:"omitempty"`
	Area             string `json:"area" binding:"omitempty"`
	PreferredChannel string `json:"preferredChannel"`
	PersonalHook     string `json:"personalHook"`
}
