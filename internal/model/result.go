package model

// InsertResult reports the identity assigned to a new record.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports how many records matched a write and how many
// actually changed. Matched=0 is a zero-effect write, not an error.
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// RegisterResult is the outcome of joining a camp.
type RegisterResult struct {
	Registration InsertResult `json:"registration"`
	Counter      UpdateResult `json:"counter"`
}

// PayResult combines the registration update with the ledger append.
type PayResult struct {
	Result        UpdateResult `json:"result"`
	PaymentResult InsertResult `json:"paymentResult"`
}

// ConfirmResult combines the registration update with the ledger update.
type ConfirmResult struct {
	Result              UpdateResult `json:"result"`
	PaymentConfirmation UpdateResult `json:"paymentConfirmation"`
}

// CancelResult combines the registration delete with the ledger delete.
type CancelResult struct {
	Result    DeleteResult `json:"result"`
	PayDelete DeleteResult `json:"payDelete"`
}

// UserCreateResult reports whether POST /users inserted a new user.
type UserCreateResult struct {
	InsertResult
	Message string `json:"message,omitempty"`
}
