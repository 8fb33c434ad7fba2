package controllers

import (
	"net/http"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// requireAccountAccess 加载客户并校验当前用户对它的归属权限
// 返回false时已写入响应，调用方直接return即可
func requireAccountAccess(c *gin.Context, accountId string) (*models.Account, bool) {
	accountObjID, err := utils.ParseObjectID(accountId, "accountId")
	if err != nil {
		utils.HandleError(c, err)
		return nil, false
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}

	ctx := repository.GetContext()
	accountsCollection := repository.Collection(repository.AccountsCollection)

	var account models.Account
	if err := accountsCollection.FindOne(ctx, bson.M{"_id": accountObjID}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
			return nil, false
		}
		utils.HandleError(c, err)
		return nil, false
	}

	if !user.CanAccess(account.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权访问该客户"})
		return nil, false
	}

	return &account, true
}
