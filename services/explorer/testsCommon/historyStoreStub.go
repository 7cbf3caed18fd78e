package testsCommon

import (
	"context"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
)

// HistoryStoreStub -
type HistoryStoreStub struct {
	SaveQueryHandler func(ctx context.Context, kind string, params string, recordCount int) (string, error)
	GetRecentHandler func(ctx context.Context, limit int) ([]common.HistoryEntry, error)
	DeleteHandler    func(ctx context.Context, id string) error
	CloseHandler     func() error
}

// SaveQuery -
func (stub *HistoryStoreStub) SaveQuery(ctx context.Context, kind string, params string, recordCount int) (string, error) {
	if stub.SaveQueryHandler != nil {
		return stub.SaveQueryHandler(ctx, kind, params, recordCount)
	}

	return "", nil
}

// GetRecent -
func (stub *HistoryStoreStub) GetRecent(ctx context.Context, limit int) ([]common.HistoryEntry, error) {
	if stub.GetRecentHandler != nil {
		return stub.GetRecentHandler(ctx, limit)
	}

	return make([]common.HistoryEntry, 0), nil
}

// Delete -
func (stub *HistoryStoreStub) Delete(ctx context.Context, id string) error {
	if stub.DeleteHandler != nil {
		return stub.DeleteHandler(ctx, id)
	}

	return nil
}

// Close -
func (stub *HistoryStoreStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *HistoryStoreStub) IsInterfaceNil() bool {
	return stub == nil
}
