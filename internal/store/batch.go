package store

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jaekwang-park/todo-cloud/internal/model"
)

// MaxBatchSize is DynamoDB's per-call BatchWriteItem ceiling.
const MaxBatchSize = 25

// BatchDelete removes the given todos in groups of at most MaxBatchSize,
// reconciling partial failures per group. Ids the store reports as
// unprocessed go to Failed; when a whole group call errors, every id in
// that group goes to Failed. Groups run sequentially with no retry — the
// caller surfaces the split as-is, and a fully failed batch is still a
// normal result, not an error.
func (s *DynamoStore) BatchDelete(ctx context.Context, userID string, todoIDs []string) (model.BatchResult, error) {
	result := model.BatchResult{
		Deleted: []string{},
		Failed:  []string{},
	}

	for start := 0; start < len(todoIDs); start += MaxBatchSize {
		group := todoIDs[start:min(start+MaxBatchSize, len(todoIDs))]

		writes := make([]types.WriteRequest, 0, len(group))
		for _, todoID := range group {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: s.key(userID, todoID)},
			})
		}

		out, err := s.api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{s.table: writes},
		})
		if err != nil {
			slog.ErrorContext(ctx, "batch delete group failed", "error", err, "group_size", len(group))
			result.Failed = append(result.Failed, group...)
			continue
		}

		unprocessed := make(map[string]bool)
		for _, wr := range out.UnprocessedItems[s.table] {
			if wr.DeleteRequest == nil {
				continue
			}
			if v, ok := wr.DeleteRequest.Key[attrTodoID].(*types.AttributeValueMemberS); ok {
				unprocessed[v.Value] = true
			}
		}

		for _, todoID := range group {
			if unprocessed[todoID] {
				result.Failed = append(result.Failed, todoID)
			} else {
				result.Deleted = append(result.Deleted, todoID)
			}
		}
	}

	return result, nil
}
