package models

import (
	"time"

	"github.com/shishobooks/nameparser/pkg/nameparser"
	"github.com/uptrace/bun"
)

type Contact struct {
	bun.BaseModel `bun:"table:contacts,alias:c"`

	ID             string    `bun:",pk" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	FullName       string    `bun:",notnull" json:"full_name"`
	Salutation     string    `bun:",notnull" json:"salutation"`
	FirstName      string    `bun:",notnull" json:"first_name"`
	MiddleInitials string    `bun:",notnull" json:"middle_initials"`
	LastName       string    `bun:",notnull" json:"last_name"`
	Suffix         string    `bun:",notnull" json:"suffix"`
	SortName       string    `bun:",notnull" json:"sort_name"`
}

// ParsedName returns the stored name components.
func (c *Contact) ParsedName() nameparser.ParsedName {
	return nameparser.ParsedName{
		Salutation:     c.Salutation,
		FirstName:      c.FirstName,
		MiddleInitials: c.MiddleInitials,
		LastName:       c.LastName,
		Suffix:         c.Suffix,
	}
}

// SetParsedName overwrites the stored name components with p.
func (c *Contact) SetParsedName(p nameparser.ParsedName) {
	c.Salutation = p.Salutation
	c.FirstName = p.FirstName
	c.MiddleInitials = p.MiddleInitials
	c.LastName = p.LastName
	c.Suffix = p.Suffix
}

// ParsedNameColumns are the columns written by SetParsedName, plus the sort
// name that is derived from them.
var ParsedNameColumns = []string{"salutation", "first_name", "middle_initials", "last_name", "suffix", "sort_name"}
