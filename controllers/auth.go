package controllers

import (
	"net/http"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login 用户登录
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.Logger.Info().
		Str("username", req.Username).
		Msg("登录尝试")

	// 查询用户
	usersCollection := repository.Collection(repository.UsersCollection)
	var user models.User
	err := usersCollection.FindOne(repository.GetContext(), bson.M{"username": req.Username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 用户名不存在")
			utils.ErrorResponse(c, "用户名不存在，请检查用户名或注册新账号", http.StatusUnauthorized)
			return
		}
		utils.Logger.Error().Err(err).Msg("查询用户出错")
		utils.ErrorResponse(c, "登录失败: 数据库错误", http.StatusInternalServerError)
		return
	}

	// 检查用户状态
	if user.Status == models.UserStatusPENDING {
		utils.ErrorResponse(c, "账户正在审核中，请等待审核通过", http.StatusForbidden)
		return
	}
	if user.Status == models.UserStatusREJECTED {
		utils.ErrorResponse(c, "账户已被拒绝", http.StatusForbidden)
		return
	}

	// 验证密码
	if !utils.VerifyPassword(req.Password, user.Password) {
		utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 密码错误")
		utils.ErrorResponse(c, "用户名或密码错误", http.StatusUnauthorized)
		return
	}

	// 生成JWT令牌
	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("生成token失败")
		utils.ErrorResponse(c, "生成登录令牌失败，请重试", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().Str("username", user.Username).Msg("登录成功")
	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user":  user,
	}, "")
}

// Register 销售注册
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	if !utils.IsValidPhone(req.Phone) {
		utils.ErrorResponse(c, "手机号格式不正确", http.StatusBadRequest)
		return
	}

	ctx := repository.GetContext()
	usersCollection := repository.Collection(repository.UsersCollection)

	// 检查用户名是否已存在
	count, err := usersCollection.CountDocuments(ctx, bson.M{"username": req.Username})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if count > 0 {
		utils.ErrorResponse(c, "用户名已存在", http.StatusBadRequest)
		return
	}

	now := time.Now()
	newUser := models.User{
		Username:  req.Username,
		Password:  utils.HashPassword(req.Password),
		Phone:     req.Phone,
		Role:      models.UserRoleSALES,
		Status:    models.UserStatusPENDING,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := usersCollection.InsertOne(ctx, newUser)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	newUser.ID = result.InsertedID.(primitive.ObjectID)

	utils.Logger.Info().Str("username", newUser.Username).Msg("用户注册成功，等待审核")
	utils.SuccessResponse(c, newUser, "注册成功，请等待管理员审核", http.StatusCreated)
}

// GetProfile 获取当前登录用户信息
func GetProfile(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	objID, err := utils.ParseObjectID(user.ID, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	usersCollection := repository.Collection(repository.UsersCollection)
	var fullUser models.User
	if err := usersCollection.FindOne(repository.GetContext(), bson.M{"_id": objID}).Decode(&fullUser); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("用户"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, fullUser, "")
}
