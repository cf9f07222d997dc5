package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusPending is assigned to every new complaint. Status is free text
// afterwards; admins may set any value.
const StatusPending = "Pending"

// externalIDPrefix precedes the zero-padded numeric id in the public form.
const externalIDPrefix = "CMP"

// Complaint is the aggregate for user-submitted complaints.
type Complaint struct {
	ID          int64
	Owner       string
	Name        string
	Email       string
	Phone       string
	Category    string
	Title       string
	Description string
	Status      string
}

// ExternalID renders the public identifier, e.g. id=3 -> "CMP003".
// Ids beyond 999 simply grow past three digits.
func (c *Complaint) ExternalID() string {
	return FormatComplaintID(c.ID)
}

// FormatComplaintID renders an internal id in the "CMP###" form.
func FormatComplaintID(id int64) string {
	return fmt.Sprintf("%s%03d", externalIDPrefix, id)
}

// ParseComplaintID strips the "CMP" prefix and parses the remainder as an
// integer. The prefix is optional so bare numeric ids are also accepted.
func ParseComplaintID(external string) (int64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(external), externalIDPrefix)
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse complaint id %q: %w", external, err)
	}
	return id, nil
}
