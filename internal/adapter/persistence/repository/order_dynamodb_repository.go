package repository

import (
	"context"
	"errors"
	"time"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

// DynamoAPI is the subset of *dynamodb.Client the repository uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type orderItem struct {
	ID          string          `dynamodbav:"id"`
	FullName    string          `dynamodbav:"full_name"`
	Email       string          `dynamodbav:"email"`
	Phone       string          `dynamodbav:"phone"`
	Address     string          `dynamodbav:"address"`
	Location    string          `dynamodbav:"location"`
	Notes       string          `dynamodbav:"notes,omitempty"`
	Services    []string        `dynamodbav:"services"`
	Language    string          `dynamodbav:"language"`
	Status      string          `dynamodbav:"status"`
	CreatedAt   string          `dynamodbav:"created_at"`
	Quote       *entities.Quote `dynamodbav:"quote,omitempty"`
	QuoteTotal  float64         `dynamodbav:"quote_total,omitempty"`
	QuoteSentAt string          `dynamodbav:"quote_sent_at,omitempty"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List is a full Scan sorted in memory; order volume for a single shop is
// small enough that a created_at GSI is not worth the extra table config.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}
	}
	sortNewestFirst(orders)
	logging.L().Debugf("[order][repository] dynamodb list count=%d", len(orders))
	return orders, nil
}

func (r *OrderDynamoRepository) SaveQuote(ctx context.Context, id string, q entities.Quote) (entities.Order, error) {
	quoteAV, err := attributevalue.Marshal(q)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #quote = :quote, #quote_total = :quote_total, #quote_sent_at = :quote_sent_at"
		vals := map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(entities.OrderStatusQuoted)},
			":quote":         quoteAV,
			":quote_total":   &types.AttributeValueMemberN{Value: floatToString(q.Total)},
			":quote_sent_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":        "status",
			"#quote":         "quote",
			"#quote_total":   "quote_total",
			"#quote_sent_at": "quote_sent_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build(formatTime(r.now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:        o.ID,
		FullName:  o.FullName,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		Location:  o.Location,
		Notes:     o.Notes,
		Services:  o.Services,
		Language:  o.Language,
		Status:    string(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
		Quote:     o.Quote,
	}
	if o.Quote != nil {
		it.QuoteTotal = o.Quote.Total
	}
	if o.QuoteSentAt != nil {
		it.QuoteSentAt = formatTime(*o.QuoteSentAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := parseTimeString(it.CreatedAt)
	o := entities.Order{
		ID:        it.ID,
		FullName:  it.FullName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		Location:  it.Location,
		Notes:     it.Notes,
		Services:  it.Services,
		Language:  it.Language,
		Status:    entities.OrderStatus(it.Status),
		CreatedAt: createdAt,
		Quote:     it.Quote,
	}
	if o.Services == nil {
		o.Services = []string{}
	}
	if sentAt, ok := parseTimeString(it.QuoteSentAt); ok {
		o.QuoteSentAt = &sentAt
	}
	return o
}
