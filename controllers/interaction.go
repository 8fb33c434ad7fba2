package controllers

import (
	"net/http"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/service"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAccountInteractions 获取某个客户的互动记录列表
func GetAccountInteractions(c *gin.Context) {
	accountId := c.Param("accountId")
	if _, ok := requireAccountAccess(c, accountId); !ok {
		return
	}

	ctx := repository.GetContext()

	// 按创建时间倒序
	interactionsCollection := repository.Collection(repository.InteractionsCollection)
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := interactionsCollection.Find(ctx, bson.M{"accountId": accountId}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var interactions []models.Interaction
	if err = cursor.All(ctx, &interactions); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"interactions": interactions}, "")
}

// CreateInteraction 创建互动记录
// 三个写入（互动、客户时间戳、联系人时间戳）统一走service层
func CreateInteraction(c *gin.Context) {
	var input models.InteractionCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "无效的请求数据: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	interaction, err := service.RecordInteraction(repository.GetContext(), input, user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, interaction, "创建互动记录成功", http.StatusCreated)
}

// DeleteInteraction 删除互动记录
// 互动记录不可修改，只有创建者和超级管理员可以删除误录的记录
func DeleteInteraction(c *gin.Context) {
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
	interactionsCollection := repository.Collection(repository.InteractionsCollection)

	var interaction models.Interaction
	if err := interactionsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&interaction); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "互动记录不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	// 检查权限：只有创建者和超级管理员可以删除
	if interaction.CreatorId != user.ID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权删除该互动记录"})
		return
	}

	result, err := interactionsCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "互动记录不存在或已被删除"})
		return
	}

	utils.LogInfo(map[string]interface{}{
		"interactionId": id,
		"accountId":     interaction.AccountId,
	}, "删除互动记录成功")

	utils.SuccessResponse(c, nil, "删除互动记录成功")
}
