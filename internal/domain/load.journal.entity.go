package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResourceOperation string

const (
	OperationLoadComplex      ResourceOperation = "load_complex"
	OperationLoadBasic        ResourceOperation = "load_basic"
	OperationDelete           ResourceOperation = "delete"
	OperationPersistentDelete ResourceOperation = "persistent_delete"
	OperationInsertProperties ResourceOperation = "insert_properties"
	OperationDeleteProperties ResourceOperation = "delete_properties"
	OperationModifyProperties ResourceOperation = "modify_properties"
)

// ResourceLoadRecord is the journaled outcome of one item of a batch.
type ResourceLoadRecord struct {
	LoadID     string
	ResourceID uuid.UUID
	Operation  ResourceOperation
	Succeeded  bool
	Attempts   int
	Error      string
	RecordedAt time.Time
}
