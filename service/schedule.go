package service

import (
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/scoring"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ScheduleDailyTaskAt 每天指定时间执行任务
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			duration := next.Sub(now)
			time.Sleep(duration)
			task()
		}
	}()
}

// ProcessDueAccounts 每日到期客户巡检
// 重新计算全量工作清单并记录到期数量，只记日志不发通知
func ProcessDueAccounts() {
	// 整个巡检用同一个now评估所有客户
	now := time.Now()
	utils.LogInfo(map[string]interface{}{
		"time": now.Format(time.RFC3339),
	}, "开始每日到期客户巡检")

	ctx := repository.GetContext()

	// 1. 加载全部客户
	accountsCollection := repository.Collection(repository.AccountsCollection)
	accountsCursor, err := accountsCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.LogError(err, nil, "查询客户失败")
		return
	}
	defer accountsCursor.Close(ctx)

	var accounts []models.Account
	if err := accountsCursor.All(ctx, &accounts); err != nil {
		utils.LogError(err, nil, "解析客户数据失败")
		return
	}

	// 2. 加载全部联系人并按客户分组
	contactsCollection := repository.Collection(repository.ContactsCollection)
	contactsCursor, err := contactsCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.LogError(err, nil, "查询联系人失败")
		return
	}
	defer contactsCursor.Close(ctx)

	var contacts []models.Contact
	if err := contactsCursor.All(ctx, &contacts); err != nil {
		utils.LogError(err, nil, "解析联系人数据失败")
		return
	}

	contactsByAccount := make(map[string][]models.Contact)
	for _, contact := range contacts {
		contactsByAccount[contact.AccountId] = append(contactsByAccount[contact.AccountId], contact)
	}

	// 3. 按归属人分组重算工作清单
	accountsByOwner := make(map[string][]models.Account)
	for _, account := range accounts {
		accountsByOwner[account.OwnerID] = append(accountsByOwner[account.OwnerID], account)
	}

	for ownerID, ownerAccounts := range accountsByOwner {
		worklist, err := scoring.BuildWorklist(ownerAccounts, contactsByAccount, scoring.WorklistFilter{Tier: "all"}, now)
		if err != nil {
			utils.LogError(err, map[string]interface{}{
				"ownerId": ownerID,
			}, "构建工作清单失败")
			continue
		}

		utils.LogInfo(map[string]interface{}{
			"ownerId":      ownerID,
			"accountCount": len(ownerAccounts),
			"dueCount":     len(worklist.MustContact),
		}, "每日到期客户统计")
	}

	utils.LogInfo(map[string]interface{}{
		"accountCount": len(accounts),
	}, "每日到期客户巡检完成")
}
