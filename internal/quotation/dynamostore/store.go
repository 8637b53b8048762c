package dynamostore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/dynamo"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const sequenceName = "quotation"

// item is the DynamoDB shape of a quotation.
//
// Table requirements:
//   - quotations PK: id (string)
//   - sequences PK: name (string)
type item struct {
	ID        string  `dynamodbav:"id"`
	Number    string  `dynamodbav:"number"`
	Status    string  `dynamodbav:"status"`
	Search    string  `dynamodbav:"search"`
	Client    string  `dynamodbav:"client"`
	Company   string  `dynamodbav:"company"`
	Specs     string  `dynamodbav:"window_specs"`
	Transport float64 `dynamodbav:"transport_cost"`
	Loading   float64 `dynamodbav:"loading_cost"`
	GSTRate   float64 `dynamodbav:"gst_rate"`
	Notes     string  `dynamodbav:"notes,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at,omitempty"`
	DeletedAt string  `dynamodbav:"deleted_at,omitempty"`
}

type Tables struct {
	Quotations string
	Sequences  string
}

type Store struct {
	ddb    dynamo.API
	tables Tables
	now    func() time.Time
}

var _ quotation.Repository = (*Store)(nil)

func New(ddb dynamo.API, tables Tables) *Store {
	return &Store{ddb: ddb, tables: tables, now: time.Now}
}

// NextNumber uses an atomic ADD on the sequence item.
func (s *Store) NextNumber(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tables.Sequences),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: sequenceName},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("incrementing sequence: %w", err)
	}

	var next int64
	if err := attributevalue.Unmarshal(out.Attributes["value"], &next); err != nil {
		return 0, fmt.Errorf("decoding sequence value: %w", err)
	}

	return next, nil
}

func (s *Store) CreateQuotation(ctx context.Context, q *quotation.Quotation) error {
	q.ID = uuid.New()
	q.CreatedAt = s.now().UTC()
	q.UpdatedAt = &q.CreatedAt

	it, err := toItem(q)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshalling quotation: %w", err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.tables.Quotations),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return fmt.Errorf("creating quotation: %w", err)
	}

	return nil
}

func (s *Store) GetQuotation(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tables.Quotations),
		Key:            key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, quotation.ErrNotFound
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshalling quotation: %w", err)
	}

	if it.DeletedAt != "" {
		return nil, quotation.ErrNotFound
	}

	return fromItem(it)
}

func (s *Store) ListQuotations(ctx context.Context, filter quotation.ListFilter) ([]*quotation.Quotation, error) {
	conds := []string{"attribute_not_exists(#deleted_at)"}
	names := map[string]string{"#deleted_at": "deleted_at"}
	values := map[string]types.AttributeValue{}

	if filter.Status != nil {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*filter.Status)}
	}

	if filter.Query != "" {
		conds = append(conds, "contains(#search, :q)")
		names["#search"] = "search"
		values[":q"] = &types.AttributeValueMemberS{Value: strings.ToLower(filter.Query)}
	}

	if filter.StartDate != nil {
		conds = append(conds, "#created_at >= :start")
		names["#created_at"] = "created_at"
		values[":start"] = &types.AttributeValueMemberS{Value: dynamo.FormatTime(*filter.StartDate)}
	}

	if filter.EndDate != nil {
		conds = append(conds, "#created_at <= :end")
		names["#created_at"] = "created_at"
		values[":end"] = &types.AttributeValueMemberS{Value: dynamo.FormatTime(*filter.EndDate)}
	}

	input := &dynamodb.ScanInput{
		TableName:                aws.String(s.tables.Quotations),
		FilterExpression:         aws.String(strings.Join(conds, " AND ")),
		ExpressionAttributeNames: names,
	}

	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}

	var qs []*quotation.Quotation

	paginator := dynamodb.NewScanPaginator(s.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing quotations: %w", err)
		}

		var items []item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshalling quotations: %w", err)
		}

		for _, it := range items {
			q, err := fromItem(it)
			if err != nil {
				return nil, err
			}

			qs = append(qs, q)
		}
	}

	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].CreatedAt.After(qs[j].CreatedAt)
	})

	return qs, nil
}

func (s *Store) UpdateQuotation(ctx context.Context, q *quotation.Quotation) error {
	it, err := toItem(q)
	if err != nil {
		return err
	}

	return s.update(ctx, q.ID,
		"SET #status = :status, #search = :search, #client = :client, #company = :company, "+
			"#specs = :specs, #transport = :transport, #loading = :loading, #gst = :gst, #notes = :notes",
		map[string]string{
			"#status":    "status",
			"#search":    "search",
			"#client":    "client",
			"#company":   "company",
			"#specs":     "window_specs",
			"#transport": "transport_cost",
			"#loading":   "loading_cost",
			"#gst":       "gst_rate",
			"#notes":     "notes",
		},
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: it.Status},
			":search":    &types.AttributeValueMemberS{Value: it.Search},
			":client":    &types.AttributeValueMemberS{Value: it.Client},
			":company":   &types.AttributeValueMemberS{Value: it.Company},
			":specs":     &types.AttributeValueMemberS{Value: it.Specs},
			":transport": number(it.Transport),
			":loading":   number(it.Loading),
			":gst":       number(it.GSTRate),
			":notes":     &types.AttributeValueMemberS{Value: it.Notes},
		},
	)
}

// UpdateStatus overwrites the status unconditionally; the last write wins.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status quotation.Status) error {
	return s.update(ctx, id,
		"SET #status = :status",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	)
}

func (s *Store) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	return s.update(ctx, id,
		"SET #deleted_at = :deleted_at",
		nil,
		map[string]types.AttributeValue{
			":deleted_at": &types.AttributeValueMemberS{Value: dynamo.FormatTime(s.now())},
		},
	)
}

// update applies a SET expression to a live quotation and stamps updated_at.
// A missing or deleted quotation yields quotation.ErrNotFound.
func (s *Store) update(
	ctx context.Context,
	id uuid.UUID,
	expr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) error {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: dynamo.FormatTime(s.now())}

	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tables.Quotations),
		Key:                 key(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at)"),
		UpdateExpression:    aws.String(expr + ", #updated_at = :updated_at"),
		ExpressionAttributeNames: dynamo.MergeNames(names, map[string]string{
			"#id":         "id",
			"#deleted_at": "deleted_at",
			"#updated_at": "updated_at",
		}),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if dynamo.IsConditionFailed(err) {
			return quotation.ErrNotFound
		}

		return fmt.Errorf("updating quotation: %w", err)
	}

	return nil
}

func key(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id.String()},
	}
}

func number(v float64) types.AttributeValue {
	av, _ := attributevalue.Marshal(v)
	return av
}

func toItem(q *quotation.Quotation) (item, error) {
	client, err := json.Marshal(q.Client)
	if err != nil {
		return item{}, fmt.Errorf("encoding client: %w", err)
	}

	company, err := json.Marshal(q.Company)
	if err != nil {
		return item{}, fmt.Errorf("encoding company: %w", err)
	}

	specs := q.Specs
	if specs == nil {
		specs = []window.Specification{}
	}

	specJSON, err := json.Marshal(specs)
	if err != nil {
		return item{}, fmt.Errorf("encoding window specs: %w", err)
	}

	it := item{
		ID:        q.ID.String(),
		Number:    q.Number,
		Status:    string(q.Status),
		Search:    strings.ToLower(q.Number + " " + q.Client.Name),
		Client:    string(client),
		Company:   string(company),
		Specs:     string(specJSON),
		Transport: q.Charges.Transport,
		Loading:   q.Charges.Loading,
		GSTRate:   q.GSTRate,
		Notes:     q.Notes,
		CreatedAt: dynamo.FormatTime(q.CreatedAt),
	}

	if q.UpdatedAt != nil {
		it.UpdatedAt = dynamo.FormatTime(*q.UpdatedAt)
	}

	return it, nil
}

func fromItem(it item) (*quotation.Quotation, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing quotation id %q: %w", it.ID, err)
	}

	q := &quotation.Quotation{
		ID:        id,
		Number:    it.Number,
		Status:    quotation.Status(it.Status),
		Charges:   quotation.Charges{Transport: it.Transport, Loading: it.Loading},
		GSTRate:   it.GSTRate,
		Notes:     it.Notes,
		CreatedAt: dynamo.ParseTime(it.CreatedAt),
	}

	if it.UpdatedAt != "" {
		q.UpdatedAt = new(dynamo.ParseTime(it.UpdatedAt))
	}

	if err := json.Unmarshal([]byte(it.Client), &q.Client); err != nil {
		return nil, fmt.Errorf("decoding client: %w", err)
	}

	if err := json.Unmarshal([]byte(it.Company), &q.Company); err != nil {
		return nil, fmt.Errorf("decoding company: %w", err)
	}

	if err := json.Unmarshal([]byte(it.Specs), &q.Specs); err != nil {
		return nil, fmt.Errorf("decoding window specs: %w", err)
	}

	return q, nil
}
