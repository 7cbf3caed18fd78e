package testsCommon

// NameDecoderStub -
type NameDecoderStub struct {
	DecodeIndicatorNameHandler func(indicatorID string, rawName string) string
	DatabaseNameHandler        func(databaseID string) string
}

// DecodeIndicatorName -
func (stub *NameDecoderStub) DecodeIndicatorName(indicatorID string, rawName string) string {
	if stub.DecodeIndicatorNameHandler != nil {
		return stub.DecodeIndicatorNameHandler(indicatorID, rawName)
	}

	if rawName != "" {
		return rawName
	}

	return indicatorID
}

// DatabaseName -
func (stub *NameDecoderStub) DatabaseName(databaseID string) string {
	if stub.DatabaseNameHandler != nil {
		return stub.DatabaseNameHandler(databaseID)
	}

	return databaseID
}

// IsInterfaceNil -
func (stub *NameDecoderStub) IsInterfaceNil() bool {
	return stub == nil
}
