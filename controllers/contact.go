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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAccountContacts 获取某个客户的联系人列表
func GetAccountContacts(c *gin.Context) {
	accountId := c.Param("accountId")
	if _, ok := requireAccountAccess(c, accountId); !ok {
		return
	}

	ctx := repository.GetContext()
	contactsCollection := repository.Collection(repository.ContactsCollection)
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := contactsCollection.Find(ctx, bson.M{"accountId": accountId}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err = cursor.All(ctx, &contacts); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"contacts": contacts}, "")
}

// CreateContact 创建联系人
func CreateContact(c *gin.Context) {
	var input models.ContactCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "无效的请求数据: "+err.Error(), http.StatusBadRequest)
		return
	}

	// 姓名不允许纯空白
	name, err := models.RequireNonBlank("name", input.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// 业务线是必填的闭合枚举，拒绝非法值而不是兜底
	area := models.BusinessArea(input.Area)
	if err := area.Validate(); err != nil {
		utils.HandleError(c, err)
		return
	}

	// 联系渠道可选，填了就必须合法
	var channel models.ContactChannel
	if input.PreferredChannel != "" {
		channel = models.ContactChannel(input.PreferredChannel)
		if err := channel.Validate(); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	// 验证客户存在且归当前用户管
	if _, ok := requireAccountAccess(c, input.AccountId); !ok {
		return
	}

	ctx := repository.GetContext()
	contactsCollection := repository.Collection(repository.ContactsCollection)
	now := time.Now()
	newContact := models.Contact{
		AccountId:        input.AccountId,
		Name:             name,
		Area:             area,
		PreferredChannel: channel,
		PersonalHook:     input.PersonalHook,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	result, err := contactsCollection.InsertOne(ctx, newContact)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	newContact.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"contactId": newContact.ID.Hex(),
		"accountId": input.AccountId,
	}, "创建联系人成功")

	utils.SuccessResponse(c, newContact, "创建联系人成功", http.StatusCreated)
}

// UpdateContact 更新联系人
func UpdateContact(c *gin.Context) {
	id := c.Param("id")
	objID, err := utils.ParseObjectID(id, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var input models.ContactUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "无效的请求数据: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx := repository.GetContext()
	contactsCollection := repository.Collection(repository.ContactsCollection)

	var contact models.Contact
	if err := contactsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "联系人不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	// 权限跟随归属客户
	if _, ok := requireAccountAccess(c, contact.AccountId); !ok {
		return
	}

	updateData := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		name, err := models.RequireNonBlank("name", input.Name)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		updateData["name"] = name
	}
	if input.Area != "" {
		area := models.BusinessArea(input.Area)
		if err := area.Validate(); err != nil {
			utils.HandleError(c, err)
			return
		}
		updateData["area"] = area
	}
	if input.PreferredChannel != "" {
		channel := models.ContactChannel(input.PreferredChannel)
		if err := channel.Validate(); err != nil {
			utils.HandleError(c, err)
			return
		}
		updateData["preferredChannel"] = channel
	}
	if input.PersonalHook != "" {
		updateData["personalHook"] = input.PersonalHook
	}

	if _, err := contactsCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": updateData}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{"contactId": id}, "更新联系人成功")
	utils.SuccessResponse(c, nil, "更新联系人成功")
}

// DeleteContact 删除联系人
func DeleteContact(c *gin.Context) {
	id := c.Param("id")
	objID, err := utils.ParseObjectID(id, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	contactsCollection := repository.Collection(repository.ContactsCollection)

	var contact models.Contact
	if err := contactsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "联系人不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	// 权限跟随归属客户
	if _, ok := requireAccountAccess(c, contact.AccountId); !ok {
		return
	}

	result, err := contactsCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "联系人不存在或已被删除"})
		return
	}

	utils.LogInfo(map[string]interface{}{"contactId": id}, "删除联系人成功")
	utils.SuccessResponse(c, nil, "删除联系人成功")
}
