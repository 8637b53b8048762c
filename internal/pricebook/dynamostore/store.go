package dynamostore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrJamesThe3rd/fenestra/internal/dynamo"
	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

// Table requirements:
//   - PK: window_type (string)
type item struct {
	WindowType string  `dynamodbav:"window_type"`
	BasePrice  float64 `dynamodbav:"base_price"`
	SqFtPrice  float64 `dynamodbav:"sqft_price"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

type Store struct {
	ddb   dynamo.API
	table string
}

var _ pricebook.Repository = (*Store)(nil)

func New(ddb dynamo.API, table string) *Store {
	return &Store{ddb: ddb, table: table}
}

func (s *Store) FindRates(ctx context.Context, t window.Type) (pricebook.Rates, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"window_type": &types.AttributeValueMemberS{Value: string(t)},
		},
	})
	if err != nil {
		return pricebook.Rates{}, false, fmt.Errorf("finding rates: %w", err)
	}

	if len(out.Item) == 0 {
		return pricebook.Rates{}, false, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return pricebook.Rates{}, false, fmt.Errorf("unmarshalling rates: %w", err)
	}

	return pricebook.Rates{BasePrice: it.BasePrice, SqFtPrice: it.SqFtPrice}, true, nil
}

// SaveRates replaces the stored entry for the window type.
func (s *Store) SaveRates(ctx context.Context, t window.Type, rates pricebook.Rates) error {
	av, err := attributevalue.MarshalMap(item{
		WindowType: string(t),
		BasePrice:  rates.BasePrice,
		SqFtPrice:  rates.SqFtPrice,
		UpdatedAt:  dynamo.FormatTime(time.Now()),
	})
	if err != nil {
		return fmt.Errorf("marshalling rates: %w", err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("saving rates: %w", err)
	}

	return nil
}
