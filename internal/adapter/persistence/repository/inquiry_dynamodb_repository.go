package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInquiriesTableName = "inquiries"

type inquiryItem struct {
	ID              string `dynamodbav:"id"`
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerEmail   string `dynamodbav:"customer_email"`
	CustomerPhone   string `dynamodbav:"customer_phone,omitempty"`
	MaterialID      int64  `dynamodbav:"material_id"`
	MaterialName    string `dynamodbav:"material_name,omitempty"`
	WidthMM         string `dynamodbav:"width_mm"`
	HeightMM        string `dynamodbav:"height_mm"`
	ModelType       string `dynamodbav:"model_type"`
	HasLED          bool   `dynamodbav:"has_led"`
	LEDType         string `dynamodbav:"led_type,omitempty"`
	CalculatedPrice string `dynamodbav:"calculated_price"`
	Message         string `dynamodbav:"message,omitempty"`
	AttachmentURL   string `dynamodbav:"attachment_url,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InquiryDynamoRepository persists inquiries in DynamoDB
// (INQUIRY_STORE=dynamodb).
//
// Table requirements:
//   - PK: id (string)
//
// The material name is denormalized into the item at creation time since
// there is no join to resolve it later.
type InquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client, tableName string) *InquiryDynamoRepository {
	if tableName == "" {
		tableName = defaultInquiriesTableName
	}
	return &InquiryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	av, err := attributevalue.MarshalMap(toInquiryItem(i))
	if err != nil {
		return entities.Inquiry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	return i, nil
}

func (r *InquiryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

// List scans the table. Inquiry volume for a single studio is small enough
// that a status index is not worth it.
func (r *InquiryDynamoRepository) List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	out := []entities.Inquiry{}
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []inquiryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromInquiryItem(it))
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

func (r *InquiryDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) (entities.Inquiry, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Inquiry{}, nil
		}
		return entities.Inquiry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:              i.ID,
		CustomerName:    i.CustomerName,
		CustomerEmail:   i.CustomerEmail,
		CustomerPhone:   i.CustomerPhone,
		MaterialID:      i.MaterialID,
		MaterialName:    i.MaterialName,
		WidthMM:         floatToString(i.WidthMM),
		HeightMM:        floatToString(i.HeightMM),
		ModelType:       string(i.ModelType),
		HasLED:          i.HasLED,
		LEDType:         string(i.LEDType),
		CalculatedPrice: floatToString(i.CalculatedPrice),
		Message:         i.Message,
		AttachmentURL:   i.AttachmentURL,
		Status:          string(i.Status),
		CreatedAt:       i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	width, _ := strconv.ParseFloat(it.WidthMM, 64)
	height, _ := strconv.ParseFloat(it.HeightMM, 64)
	price, _ := strconv.ParseFloat(it.CalculatedPrice, 64)
	return entities.Inquiry{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		CustomerEmail:   it.CustomerEmail,
		CustomerPhone:   it.CustomerPhone,
		MaterialID:      it.MaterialID,
		MaterialName:    it.MaterialName,
		WidthMM:         width,
		HeightMM:        height,
		ModelType:       entities.ModelType(it.ModelType),
		HasLED:          it.HasLED,
		LEDType:         entities.LEDType(it.LEDType),
		CalculatedPrice: price,
		Message:         it.Message,
		AttachmentURL:   it.AttachmentURL,
		Status:          entities.InquiryStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
