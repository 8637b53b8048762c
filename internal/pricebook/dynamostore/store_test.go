package dynamostore_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/dynamo"
	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/pricebook/dynamostore"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func TestStore_SaveThenFind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	store := dynamostore.New(api, "pricebook")

	var stored map[string]types.AttributeValue

	api.EXPECT().
		PutItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		})
	api.EXPECT().
		GetItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, &types.AttributeValueMemberS{Value: "casement"}, in.Key["window_type"])
			return &dynamodb.GetItemOutput{Item: stored}, nil
		})

	want := pricebook.Rates{BasePrice: 4200, SqFtPrice: 275.5}
	require.NoError(t, store.SaveRates(context.Background(), window.TypeCasement, want))

	got, ok, err := store.FindRates(context.Background(), window.TypeCasement)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStore_FindRates_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := dynamo.NewMockAPI(ctrl)
	api.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

	_, ok, err := dynamostore.New(api, "pricebook").FindRates(context.Background(), window.TypeBay)
	require.NoError(t, err)
	assert.False(t, ok)
}
