package testsCommon

// CacherStub -
type CacherStub struct {
	GetHandler   func(key string) (any, bool)
	PutHandler   func(key string, payload any)
	ResetHandler func()
	PurgeHandler func()
}

// Get -
func (stub *CacherStub) Get(key string) (any, bool) {
	if stub.GetHandler != nil {
		return stub.GetHandler(key)
	}

	return nil, false
}

// Put -
func (stub *CacherStub) Put(key string, payload any) {
	if stub.PutHandler != nil {
		stub.PutHandler(key, payload)
	}
}

// Reset -
func (stub *CacherStub) Reset() {
	if stub.ResetHandler != nil {
		stub.ResetHandler()
	}
}

// Purge -
func (stub *CacherStub) Purge() {
	if stub.PurgeHandler != nil {
		stub.PurgeHandler()
	}
}

// IsInterfaceNil -
func (stub *CacherStub) IsInterfaceNil() bool {
	return stub == nil
}
