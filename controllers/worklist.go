package controllers

import (
	"net/http"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/scoring"
	"github.com/BerniceZTT/intimacy_crm/service"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// loadWorklistSnapshot 加载当前用户可见的客户和联系人快照
// 联系人按accountId分组返回，工作清单从同一快照计算
func loadWorklistSnapshot(c *gin.Context, user *utils.LoginUser) ([]models.Account, map[string][]models.Contact, bool) {
	ctx := repository.GetContext()

	query := bson.M{}
	if !user.IsAdmin() {
		query["ownerId"] = user.ID
	}

	accountsCollection := repository.Collection(repository.AccountsCollection)
	accountsCursor, err := accountsCollection.Find(ctx, query)
	if err != nil {
		utils.HandleError(c, err)
		return nil, nil, false
	}
	defer accountsCursor.Close(ctx)

	var accounts []models.Account
	if err = accountsCursor.All(ctx, &accounts); err != nil {
		utils.HandleError(c, err)
		return nil, nil, false
	}

	// 只加载可见客户的联系人
	accountIds := make([]string, 0, len(accounts))
	for _, account := range accounts {
		accountIds = append(accountIds, account.ID.Hex())
	}

	contactsByAccount := make(map[string][]models.Contact)
	if len(accountIds) > 0 {
		contactsCollection := repository.Collection(repository.ContactsCollection)
		contactsCursor, err := contactsCollection.Find(ctx, bson.M{"accountId": bson.M{"$in": accountIds}})
		if err != nil {
			utils.HandleError(c, err)
			return nil, nil, false
		}
		defer contactsCursor.Close(ctx)

		var contacts []models.Contact
		if err = contactsCursor.All(ctx, &contacts); err != nil {
			utils.HandleError(c, err)
			return nil, nil, false
		}

		for _, contact := range contacts {
			contactsByAccount[contact.AccountId] = append(contactsByAccount[contact.AccountId], contact)
		}
	}

	return accounts, contactsByAccount, true
}

// GetWorklist 获取今日跟进工作清单
// 每次请求从快照全量重算，查询参数: search（名称/国家子串）、tier（all/A/B/C）
func GetWorklist(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	filter := scoring.WorklistFilter{
		SearchText: c.Query("search"),
		Tier:       c.DefaultQuery("tier", "all"),
	}

	accounts, contactsByAccount, ok := loadWorklistSnapshot(c, user)
	if !ok {
		return
	}

	// 整个清单用同一个now评估
	now := time.Now()
	worklist, err := scoring.BuildWorklist(accounts, contactsByAccount, filter, now)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"username":     user.Username,
		"accountCount": len(worklist.All),
		"dueCount":     len(worklist.MustContact),
	}, "获取工作清单成功")

	utils.SuccessResponse(c, worklist, "")
}

// GetWeeklyPack 导出本周跟进清单纯文本
func GetWeeklyPack(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	accounts, contactsByAccount, ok := loadWorklistSnapshot(c, user)
	if !ok {
		return
	}

	now := time.Now()
	worklist, err := scoring.BuildWorklist(accounts, contactsByAccount, scoring.WorklistFilter{Tier: "all"}, now)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	pack := service.FormatWeeklyPack(worklist, now)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(pack))
}
