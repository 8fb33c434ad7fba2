package utils

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/BerniceZTT/intimacy_crm/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidPhone 验证手机号是否有效
func IsValidPhone(phone string) bool {
	pattern := `^1[3-9]\d{9}$`
	matched, _ := regexp.MatchString(pattern, phone)
	return matched
}

// ParseObjectID 校验外部传入的ID格式并转换
// 所有路由参数里的ID在查库前必须经过这里
func ParseObjectID(id string, field string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.NewValidationError(field, id)
	}
	return objID, nil
}

// LoginUser 当前登录用户信息
type LoginUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"name"`
}

// GetUser 从请求上下文提取当前用户
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("GetUser 未授权访问")
	}

	claims, ok := currentUser.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("无法解析用户信息")
	}

	// 获取用户信息字段
	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("无效的用户ID")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("无效的用户角色")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("无效的用户名")
	}

	return &LoginUser{
		ID:       id,
		Role:     role,
		Username: username,
	}, nil
}

// IsAdmin 是否超级管理员
func (u *LoginUser) IsAdmin() bool {
	return u.Role == string(models.UserRoleSUPER_ADMIN)
}

// CanAccess 是否有权访问归属于指定负责人的客户数据
// 联系人和互动记录的权限跟随其归属客户，统一走这一个判断
func (u *LoginUser) CanAccess(ownerId string) bool {
	return u.IsAdmin() || u.ID == ownerId
}

// PaginatedResponse 分页响应
func PaginatedResponse(c *gin.Context, data interface{}, total int64, page int64, limit int64) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
			"pages": (total + limit - 1) / limit,
		},
	})
}
