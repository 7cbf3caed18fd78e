package testsCommon

import (
	"context"
	"net/url"
)

// HTTPCallerStub -
type HTTPCallerStub struct {
	GetHandler      func(ctx context.Context, path string, params url.Values) ([]byte, error)
	PostJSONHandler func(ctx context.Context, path string, payload any) ([]byte, error)
}

// Get -
func (stub *HTTPCallerStub) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if stub.GetHandler != nil {
		return stub.GetHandler(ctx, path, params)
	}

	return []byte("{}"), nil
}

// PostJSON -
func (stub *HTTPCallerStub) PostJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	if stub.PostJSONHandler != nil {
		return stub.PostJSONHandler(ctx, path, payload)
	}

	return []byte("{}"), nil
}

// IsInterfaceNil -
func (stub *HTTPCallerStub) IsInterfaceNil() bool {
	return stub == nil
}
