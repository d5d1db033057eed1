package repository

import (
	"context"
	"time"

	"helio_sync/internal/domain/entities"
	"helio_sync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSyncEventsTableName = "sync_events"

type syncEventItem struct {
	ID         string `dynamodbav:"id"`
	DesignID   string `dynamodbav:"design_id"`
	ProjectID  string `dynamodbav:"project_id"`
	Status     string `dynamodbav:"status"`
	SnapshotID string `dynamodbav:"snapshot_id,omitempty"`
	ReceivedAt string `dynamodbav:"received_at"`
}

// SyncEventDynamoRepository records one audit row per processed webhook.
//
// Table requirements:
//   - PK: id (string)

type SyncEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventLogRepository = (*SyncEventDynamoRepository)(nil)

func NewSyncEventDynamoRepository(ddb *dynamodb.Client, tableName string) *SyncEventDynamoRepository {
	if tableName == "" {
		tableName = defaultSyncEventsTableName
	}
	return &SyncEventDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SyncEventDynamoRepository) Record(ctx context.Context, ev entities.SyncEvent) error {
	it := toSyncEventItem(ev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toSyncEventItem(ev entities.SyncEvent) syncEventItem {
	return syncEventItem{
		ID:         ev.ID,
		DesignID:   ev.DesignID,
		ProjectID:  ev.ProjectID,
		Status:     ev.Status,
		SnapshotID: ev.SnapshotID,
		ReceivedAt: ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
}
