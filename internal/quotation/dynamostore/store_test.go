package dynamostore_test

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/dynamo"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation/dynamostore"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

var tables = dynamostore.Tables{Quotations: "quotations", Sequences: "sequences"}

func TestStore_NextNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	api.EXPECT().
		UpdateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "sequences", aws.ToString(in.TableName))
			assert.Equal(t, "ADD #value :one", aws.ToString(in.UpdateExpression))

			return &dynamodb.UpdateItemOutput{
				Attributes: map[string]types.AttributeValue{
					"value": &types.AttributeValueMemberN{Value: "42"},
				},
			}, nil
		})

	got, err := dynamostore.New(api, tables).NextNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestStore_CreateThenGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	store := dynamostore.New(api, tables)

	var stored map[string]types.AttributeValue

	api.EXPECT().
		PutItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		})

	q := &quotation.Quotation{
		Number:  "QT-2026-0001",
		Status:  quotation.StatusDraft,
		Client:  quotation.Client{Name: "Meera Rao"},
		Company: quotation.Company{Name: "Acme Windows"},
		Specs: []window.Specification{
			window.Resolve(window.Draft{Type: new(string(window.TypeSliding)), Width: new(1200.0), Height: new(1500.0)}),
		},
		Charges: quotation.Charges{Transport: 1500},
		GSTRate: 0.18,
	}

	require.NoError(t, store.CreateQuotation(context.Background(), q))
	assert.NotEqual(t, uuid.Nil, q.ID)

	var search string
	require.NoError(t, attributevalue.Unmarshal(stored["search"], &search))
	assert.Equal(t, "qt-2026-0001 meera rao", search)

	api.EXPECT().
		GetItem(gomock.Any(), gomock.Any()).
		Return(&dynamodb.GetItemOutput{Item: stored}, nil)

	got, err := store.GetQuotation(context.Background(), q.ID)
	require.NoError(t, err)

	assert.Equal(t, q.ID, got.ID)
	assert.Equal(t, "Meera Rao", got.Client.Name)
	assert.Equal(t, window.TypeSliding, got.Specs[0].Type)
	assert.InDelta(t, 1500, got.Charges.Transport, 1e-9)
	assert.WithinDuration(t, q.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestStore_GetQuotation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	api.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

	_, err := dynamostore.New(api, tables).GetQuotation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, quotation.ErrNotFound)
}

func TestStore_UpdateStatus_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	api.EXPECT().
		UpdateItem(gomock.Any(), gomock.Any()).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")})

	err := dynamostore.New(api, tables).UpdateStatus(context.Background(), uuid.New(), quotation.StatusApproved)
	assert.ErrorIs(t, err, quotation.ErrNotFound)
}

func TestStore_ListQuotations_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	status := quotation.StatusSubmitted

	api.EXPECT().
		Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Equal(t,
				"attribute_not_exists(#deleted_at) AND #status = :status AND contains(#search, :q)",
				aws.ToString(in.FilterExpression))

			var q string
			require.NoError(t, attributevalue.Unmarshal(in.ExpressionAttributeValues[":q"], &q))
			assert.Equal(t, "sharma", q)

			return &dynamodb.ScanOutput{}, nil
		})

	got, err := dynamostore.New(api, tables).ListQuotations(context.Background(), quotation.ListFilter{
		Status: &status,
		Query:  "Sharma",
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
