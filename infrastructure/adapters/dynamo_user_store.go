package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/config"
	"github.com/Nikshey/TWINSKILL/domain"
)

type dynamoUserItem struct {
	Email             string `dynamodbav:"email"`
	Name              string `dynamodbav:"name"`
	Phone             string `dynamodbav:"phone"`
	PasswordHash      string `dynamodbav:"password_hash"`
	PhotoPath         string `dynamodbav:"photo_path,omitempty"`
	AvatarURL         string `dynamodbav:"avatar_url,omitempty"`
	AvatarData        string `dynamodbav:"avatar_data,omitempty"`
	AvatarGeneratedAt int64  `dynamodbav:"avatar_generated_at,omitempty"`
	Gender            string `dynamodbav:"gender"`
}

type dynamoUserStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoUserStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.UserStorePort {
	return &dynamoUserStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoUserStore) State() string {
	return "connected"
}

func (s *dynamoUserStore) Find(ctx context.Context, email string) (*domain.User, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.UsersTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"email": {S: aws.String(email)},
		},
	}

	out, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to read user item", map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	if out.Item == nil {
		return nil, outbound.ErrUserNotFound
	}

	var item dynamoUserItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.Error(err, "Failed to unmarshal user item")
		return nil, err
	}

	return item.toUser(), nil
}

func (s *dynamoUserStore) Insert(ctx context.Context, user domain.User) error {
	av, err := dynamodbattribute.MarshalMap(toDynamoUserItem(user))
	if err != nil {
		s.logger.Error(err, "Failed to marshal user item")
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:                av,
		TableName:           aws.String(s.dynamoConfig.UsersTableName),
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	}

	if _, err := s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return outbound.ErrEmailTaken
		}
		s.logger.ErrorWithFields(err, "Failed to save user item", map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	return nil
}

func (s *dynamoUserStore) Update(ctx context.Context, user domain.User) error {
	av, err := dynamodbattribute.MarshalMap(toDynamoUserItem(user))
	if err != nil {
		s.logger.Error(err, "Failed to marshal user item")
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.UsersTableName),
	}

	if _, err := s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "Failed to update user item", map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	return nil
}

func (s *dynamoUserStore) Delete(ctx context.Context, email string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(s.dynamoConfig.UsersTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"email": {S: aws.String(email)},
		},
	}

	if _, err := s.dynamoSvc.DeleteItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "Failed to delete user item", map[string]interface{}{
			"email": email,
		})
		return err
	}

	return nil
}

func isConditionalCheckFailed(err error) bool {
	if aerr, ok := err.(interface{ Code() string }); ok {
		return aerr.Code() == dynamodb.ErrCodeConditionalCheckFailedException
	}
	return false
}

func toDynamoUserItem(user domain.User) dynamoUserItem {
	item := dynamoUserItem{
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		PhotoPath:    user.PhotoPath,
		AvatarURL:    user.AvatarURL,
		AvatarData:   user.AvatarData,
		Gender:       string(user.Gender),
	}
	if user.AvatarGeneratedAt != nil {
		item.AvatarGeneratedAt = user.AvatarGeneratedAt.Unix()
	}
	return item
}

func (item dynamoUserItem) toUser() *domain.User {
	user := &domain.User{
		Email:        item.Email,
		Name:         item.Name,
		Phone:        item.Phone,
		PasswordHash: item.PasswordHash,
		PhotoPath:    item.PhotoPath,
		AvatarURL:    item.AvatarURL,
		AvatarData:   item.AvatarData,
		Gender:       domain.GenderPreference(item.Gender),
	}
	if item.AvatarGeneratedAt != 0 {
		generatedAt := time.Unix(item.AvatarGeneratedAt, 0)
		user.AvatarGeneratedAt = &generatedAt
	}
	return user
}
