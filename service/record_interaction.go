package service

import (
	"context"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
	"github.com/BerniceZTT/intimacy_crm/repository"
	"github.com/BerniceZTT/intimacy_crm/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordInteraction 记录一次互动
// 三个写入必须一起发生：插入互动记录、更新客户lastInteractionAt、更新联系人lastTouchAt
// 冗余时间戳只在这里维护，任何调用方不得自行更新
func RecordInteraction(ctx context.Context, input models.InteractionCreateRequest, user *utils.LoginUser) (*models.Interaction, error) {
	// 校验枚举、日期和必填文本，计算前报错，不静默兜底
	channel := models.ContactChannel(input.Channel)
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateNextStepDate(input.NextStepDate); err != nil {
		return nil, err
	}
	summary, err := models.RequireNonBlank("summary", input.Summary)
	if err != nil {
		return nil, err
	}
	nextStep, err := models.RequireNonBlank("nextStep", input.NextStep)
	if err != nil {
		return nil, err
	}

	accountObjID, err := utils.ParseObjectID(input.AccountId, "accountId")
	if err != nil {
		return nil, err
	}
	contactObjID, err := utils.ParseObjectID(input.ContactId, "contactId")
	if err != nil {
		return nil, err
	}

	accountsCollection := repository.Collection(repository.AccountsCollection)
	contactsCollection := repository.Collection(repository.ContactsCollection)
	interactionsCollection := repository.Collection(repository.InteractionsCollection)

	// 验证客户存在且归当前用户管
	var account models.Account
	if err := accountsCollection.FindOne(ctx, bson.M{"_id": accountObjID}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("客户")
		}
		return nil, err
	}
	if !user.CanAccess(account.OwnerID) {
		return nil, utils.CreateForbiddenError()
	}

	// 验证联系人存在且归属该客户
	var contact models.Contact
	if err := contactsCollection.FindOne(ctx, bson.M{"_id": contactObjID}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("联系人")
		}
		return nil, err
	}
	if contact.AccountId != input.AccountId {
		return nil, utils.CreateBadRequestError("联系人不属于该客户")
	}

	now := time.Now()
	interaction := models.Interaction{
		AccountId:      input.AccountId,
		ContactId:      input.ContactId,
		Channel:        channel,
		Summary:        summary,
		NextStep:       nextStep,
		NextStepDate:   input.NextStepDate,
		ObjectionTag:   input.ObjectionTag,
		TargetPrice:    input.TargetPrice,
		RiskTechnical:  input.RiskTechnical,
		RiskRegulatory: input.RiskRegulatory,
		RiskCommercial: input.RiskCommercial,
		CreatorId:      user.ID,
		CreatorName:    user.Username,
		CreatedAt:      now,
	}

	// 三个写入都走重试包装，瞬时网络错误不应丢互动记录
	result, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return interactionsCollection.InsertOne(ctx, interaction)
	}, 3)
	if err != nil {
		return nil, err
	}
	interaction.ID = result.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)

	// 互动落库后同步两个冗余时间戳，失败记日志并继续
	// 评分在下一次全量加载前会短暂偏旧，可接受
	if _, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return accountsCollection.UpdateOne(
			ctx,
			bson.M{"_id": accountObjID},
			bson.M{"$set": bson.M{"lastInteractionAt": now, "updatedAt": now}},
		)
	}, 3); err != nil {
		utils.LogError(err, map[string]interface{}{
			"accountId": input.AccountId,
		}, "更新客户最近互动时间失败")
	}

	if _, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return contactsCollection.UpdateOne(
			ctx,
			bson.M{"_id": contactObjID},
			bson.M{"$set": bson.M{"lastTouchAt": now, "updatedAt": now}},
		)
	}, 3); err != nil {
		utils.LogError(err, map[string]interface{}{
			"contactId": input.ContactId,
		}, "更新联系人最近触达时间失败")
	}

	utils.LogInfo(map[string]interface{}{
		"interactionId": interaction.ID.Hex(),
		"accountId":     input.AccountId,
		"contactId":     input.ContactId,
	}, "互动记录创建成功")

	return &interaction, nil
}
