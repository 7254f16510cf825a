package model

// BaseModel carries the sequential identifier shared by every persisted
// record. The store assigns it on insert; it is immutable afterwards.
type BaseModel struct {
	ID int
}
