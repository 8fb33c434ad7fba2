package controllers

import (
	"net/http"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/scoring"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAccountList 获取客户列表
// 销售只能看到归属自己的客户，管理员可以看到全部
func GetAccountList(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx := repository.GetContext()
	query := bson.M{}
	if !user.IsAdmin() {
		query["ownerId"] = user.ID
	}

	accountsCollection := repository.Collection(repository.AccountsCollection)
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := accountsCollection.Find(ctx, query, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err = cursor.All(ctx, &accounts); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"accounts": accounts}, "")
}

// CreateAccount 创建客户
func CreateAccount(c *gin.Context) {
	var input models.AccountCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "无效的请求数据: "+err.Error(), http.StatusBadRequest)
		return
	}

	// 名称不允许纯空白
	name, err := models.RequireNonBlank("name", input.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// 分级必须是合法枚举，不做静默兜底
	tier := models.AccountTier(input.Tier)
	if err := tier.Validate(); err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx := repository.GetContext()
	accountsCollection := repository.Collection(repository.AccountsCollection)

	now := time.Now()
	newAccount := models.Account{
		Name:      name,
		Tier:      tier,
		Country:   input.Country,
		ValueUsd:  input.ValueUsd,
		OwnerID:   user.ID,
		OwnerName: user.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := accountsCollection.InsertOne(ctx, newAccount)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	newAccount.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"accountId": newAccount.ID.Hex(),
		"name":      newAccount.Name,
	}, "创建客户成功")

	utils.SuccessResponse(c, newAccount, "创建客户成功", http.StatusCreated)
}

// GetAccountDetail 获取客户详情
// 返回客户、联系人、最近互动和实时计算的亲密度评分
func GetAccountDetail(c *gin.Context) {
	id := c.Param("id")
	objID, err := utils.ParseObjectID(id, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx := repository.GetContext()
	accountsCollection := repository.Collection(repository.AccountsCollection)

	var account models.Account
	if err := accountsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !user.CanAccess(account.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权查看该客户"})
		return
	}

	// 加载联系人
	contactsCollection := repository.Collection(repository.ContactsCollection)
	contactsCursor, err := contactsCollection.Find(ctx, bson.M{"accountId": id})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer contactsCursor.Close(ctx)

	var contacts []models.Contact
	if err = contactsCursor.All(ctx, &contacts); err != nil {
		utils.HandleError(c, err)
		return
	}

	// 实时计算评分，不缓存
	now := time.Now()
	score, err := scoring.ComputeIntimacyScore(account, contacts, now)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// 最近互动记录
	interactionsCollection := repository.Collection(repository.InteractionsCollection)
	interactionOpts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(20)
	interactionsCursor, err := interactionsCollection.Find(ctx, bson.M{"accountId": id}, interactionOpts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer interactionsCursor.Close(ctx)

	var interactions []models.Interaction
	if err = interactionsCursor.All(ctx, &interactions); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"account":            account,
		"contacts":           contacts,
		"interactions":       interactions,
		"score":              score,
		"recommendedContact": scoring.PickRecommendedContact(contacts, now),
	}, "")
}

// UpdateAccount 更新客户
func UpdateAccount(c *gin.Context) {
	id := c.Param("id")
	objID, err := utils.ParseObjectID(id, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var input models.AccountUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "无效的请求数据: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx := repository.GetContext()
	accountsCollection := repository.Collection(repository.AccountsCollection)

	var account models.Account
	if err := accountsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !user.CanAccess(account.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权修改该客户"})
		return
	}

	updateData := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		updateData["name"] = input.Name
	}
	if input.Tier != "" {
		tier := models.AccountTier(input.Tier)
		if err := tier.Validate(); err != nil {
			utils.HandleError(c, err)
			return
		}
		updateData["tier"] = tier
	}
	if input.Country != nil {
		updateData["country"] = *input.Country
	}
	if input.ValueUsd != nil {
		updateData["valueUsd"] = *input.ValueUsd
	}

	if _, err := accountsCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": updateData}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{"accountId": id}, "更新客户成功")
	utils.SuccessResponse(c, nil, "更新客户成功")
}

// DeleteAccount 删除客户
// 客户是聚合根，联系人和互动记录一并级联删除
func DeleteAccount(c *gin.Context) {
	id := c.Param("id")
	objID, err := utils.ParseObjectID(id, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx := repository.GetContext()
	accountsCollection := repository.Collection(repository.AccountsCollection)

	var account models.Account
	if err := accountsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !user.CanAccess(account.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权删除该客户"})
		return
	}

	if _, err := accountsCollection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		utils.HandleError(c, err)
		return
	}

	// 级联删除联系人和互动记录
	if _, err := repository.Collection(repository.ContactsCollection).DeleteMany(ctx, bson.M{"accountId": id}); err != nil {
		utils.LogError(err, map[string]interface{}{"accountId": id}, "级联删除联系人失败")
	}
	if _, err := repository.Collection(repository.InteractionsCollection).DeleteMany(ctx, bson.M{"accountId": id}); err != nil {
		utils.LogError(err, map[string]interface{}{"accountId": id}, "级联删除互动记录失败")
	}

	utils.LogInfo(map[string]interface{}{"accountId": id}, "删除客户成功")
	utils.SuccessResponse(c, nil, "删除客户成功")
}
