package domain

import "github.com/google/uuid"

// UserID identifies an account. Products hold it as a weak reference and
// operator tokens carry it as their subject.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }
