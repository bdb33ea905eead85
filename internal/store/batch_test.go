package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jaekwang-park/todo-cloud/internal/store"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("todo-%d", i)
	}
	return out
}

func requestIDs(t *testing.T, params *dynamodb.BatchWriteItemInput, table string) []string {
	t.Helper()
	var out []string
	for _, wr := range params.RequestItems[table] {
		if wr.DeleteRequest == nil {
			t.Fatal("expected delete requests only")
		}
		v, ok := wr.DeleteRequest.Key["todoId"].(*types.AttributeValueMemberS)
		if !ok {
			t.Fatal("expected string todoId key")
		}
		out = append(out, v.Value)
	}
	return out
}

func unprocessedFor(table string, todoIDs ...string) map[string][]types.WriteRequest {
	var writes []types.WriteRequest
	for _, id := range todoIDs {
		writes = append(writes, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"userId": &types.AttributeValueMemberS{Value: "user-1"},
					"todoId": &types.AttributeValueMemberS{Value: id},
				},
			},
		})
	}
	return map[string][]types.WriteRequest{table: writes}
}

func checkInvariants(t *testing.T, input []string, deleted, failed []string) {
	t.Helper()
	if len(deleted)+len(failed) != len(input) {
		t.Errorf("deleted (%d) + failed (%d) != input (%d)", len(deleted), len(failed), len(input))
	}
	seen := make(map[string]int)
	for _, id := range deleted {
		seen[id]++
	}
	for _, id := range failed {
		seen[id]++
	}
	for _, id := range input {
		if seen[id] != 1 {
			t.Errorf("id %q appeared %d times across deleted+failed, want exactly 1", id, seen[id])
		}
	}
}

func TestBatchDelete_Partitioning(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		wantCalls  int
		wantGroups []int
	}{
		{"single id", 1, 1, []int{1}},
		{"exactly one group", 25, 1, []int{25}},
		{"one over the ceiling", 26, 2, []int{25, 1}},
		{"thirty ids", 30, 2, []int{25, 5}},
		{"three groups", 60, 3, []int{25, 25, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var groupSizes []int
			var submitted []string
			fake := &fakeDynamo{
				batchWriteItemFn: func(ctx context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
					group := requestIDs(t, params, "todos")
					groupSizes = append(groupSizes, len(group))
					submitted = append(submitted, group...)
					return &dynamodb.BatchWriteItemOutput{}, nil
				},
			}
			s := store.NewDynamoStore(fake, "todos")
			input := ids(tt.n)

			result, err := s.BatchDelete(context.Background(), "user-1", input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(groupSizes) != tt.wantCalls {
				t.Errorf("expected %d underlying calls, got %d", tt.wantCalls, len(groupSizes))
			}
			for i, want := range tt.wantGroups {
				if i < len(groupSizes) && groupSizes[i] != want {
					t.Errorf("group %d: expected size %d, got %d", i, want, groupSizes[i])
				}
			}
			if len(result.Deleted) != tt.n || len(result.Failed) != 0 {
				t.Errorf("expected all %d deleted, got deleted=%d failed=%d", tt.n, len(result.Deleted), len(result.Failed))
			}
			// Groups are contiguous slices of the input in order.
			if fmt.Sprint(submitted) != fmt.Sprint(input) {
				t.Errorf("submitted ids %v do not match input %v", submitted, input)
			}
			checkInvariants(t, input, result.Deleted, result.Failed)
		})
	}
}

func TestBatchDelete_UnprocessedItems(t *testing.T) {
	fake := &fakeDynamo{
		batchWriteItemFn: func(ctx context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
			return &dynamodb.BatchWriteItemOutput{
				UnprocessedItems: unprocessedFor("todos", "todo-1", "todo-3"),
			}, nil
		},
	}
	s := store.NewDynamoStore(fake, "todos")
	input := []string{"todo-0", "todo-1", "todo-2", "todo-3"}

	result, err := s.BatchDelete(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDeleted := []string{"todo-0", "todo-2"}
	wantFailed := []string{"todo-1", "todo-3"}
	if fmt.Sprint(result.Deleted) != fmt.Sprint(wantDeleted) {
		t.Errorf("deleted: got %v, want %v", result.Deleted, wantDeleted)
	}
	if fmt.Sprint(result.Failed) != fmt.Sprint(wantFailed) {
		t.Errorf("failed: got %v, want %v", result.Failed, wantFailed)
	}
	checkInvariants(t, input, result.Deleted, result.Failed)
}

func TestBatchDelete_GroupFailure(t *testing.T) {
	// First group errors outright, second group succeeds. The failed group
	// contributes every id to Failed with no partial credit and no retry.
	calls := 0
	fake := &fakeDynamo{
		batchWriteItemFn: func(ctx context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
			calls++
			if calls == 1 {
				return nil, fmt.Errorf("throttled")
			}
			return &dynamodb.BatchWriteItemOutput{}, nil
		},
	}
	s := store.NewDynamoStore(fake, "todos")
	input := ids(30)

	result, err := s.BatchDelete(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("a failed group must not fail the whole batch: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected 2 calls with no retry, got %d", calls)
	}
	if len(result.Failed) != 25 {
		t.Errorf("expected 25 failed ids from the errored group, got %d", len(result.Failed))
	}
	if len(result.Deleted) != 5 {
		t.Errorf("expected 5 deleted ids from the surviving group, got %d", len(result.Deleted))
	}
	checkInvariants(t, input, result.Deleted, result.Failed)
}

func TestBatchDelete_AllGroupsFail(t *testing.T) {
	fake := &fakeDynamo{
		batchWriteItemFn: func(ctx context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
			return nil, fmt.Errorf("unavailable")
		},
	}
	s := store.NewDynamoStore(fake, "todos")
	input := ids(10)

	result, err := s.BatchDelete(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("a fully failed batch is a zero-success result, not an error: %v", err)
	}
	if len(result.Deleted) != 0 || len(result.Failed) != 10 {
		t.Errorf("expected deleted=0 failed=10, got deleted=%d failed=%d", len(result.Deleted), len(result.Failed))
	}
	checkInvariants(t, input, result.Deleted, result.Failed)
}

func TestBatchDelete_KeysScopedToOwner(t *testing.T) {
	fake := &fakeDynamo{
		batchWriteItemFn: func(ctx context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
			for _, wr := range params.RequestItems["todos"] {
				owner := wr.DeleteRequest.Key["userId"].(*types.AttributeValueMemberS).Value
				if owner != "user-1" {
					t.Errorf("delete key scoped to %q, want user-1", owner)
				}
			}
			return &dynamodb.BatchWriteItemOutput{}, nil
		},
	}
	s := store.NewDynamoStore(fake, "todos")

	result, err := s.BatchDelete(context.Background(), "user-1", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariants(t, []string{"a", "b"}, result.Deleted, result.Failed)
}
