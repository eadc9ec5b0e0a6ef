package contacts

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shishobooks/nameparser/pkg/database"
	"github.com/shishobooks/nameparser/pkg/errcodes"
	"github.com/shishobooks/nameparser/pkg/models"
	"github.com/shishobooks/nameparser/pkg/nameparser"
	"github.com/shishobooks/nameparser/pkg/sortname"
	"github.com/uptrace/bun"
)

// likeEscaper makes search terms match literally inside a LIKE pattern that
// uses "!" as its escape character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type RetrieveContactOptions struct {
	ID *string
}

type ListContactsOptions struct {
	Limit  *int
	Offset *int
	Search *string

	includeTotal bool
}

type Service struct {
	db         *bun.DB
	maxRetries int
}

func NewService(db *bun.DB, maxRetries int) *Service {
	return &Service{db, maxRetries}
}

// CreateContact parses fullName and stores it along with its components and
// sort name.
func (svc *Service) CreateContact(ctx context.Context, fullName string) (*models.Contact, error) {
	parsed, err := nameparser.Parse(fullName)
	if err != nil {
		return nil, errcodes.FromParseError(err)
	}

	now := time.Now()
	contact := &models.Contact{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		FullName:  strings.TrimSpace(fullName),
		SortName:  sortname.ForParsed(parsed),
	}
	contact.SetParsedName(parsed)

	err = database.Retry(ctx, svc.maxRetries, func(ctx context.Context) error {
		_, err := svc.db.
			NewInsert().
			Model(contact).
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return contact, nil
}

func (svc *Service) RetrieveContact(ctx context.Context, opts RetrieveContactOptions) (*models.Contact, error) {
	contact := &models.Contact{}

	q := svc.db.
		NewSelect().
		Model(contact)

	if opts.ID != nil {
		q = q.Where("c.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Contact")
		}
		return nil, errors.WithStack(err)
	}

	return contact, nil
}

func (svc *Service) ListContacts(ctx context.Context, opts ListContactsOptions) ([]*models.Contact, error) {
	c, _, err := svc.listContactsWithTotal(ctx, opts)
	return c, errors.WithStack(err)
}

func (svc *Service) ListContactsWithTotal(ctx context.Context, opts ListContactsOptions) ([]*models.Contact, int, error) {
	opts.includeTotal = true
	return svc.listContactsWithTotal(ctx, opts)
}

func (svc *Service) listContactsWithTotal(ctx context.Context, opts ListContactsOptions) ([]*models.Contact, int, error) {
	contacts := []*models.Contact{}
	var total int
	var err error

	q := svc.db.
		NewSelect().
		Model(&contacts).
		OrderExpr("LOWER(c.last_name) ASC, LOWER(c.first_name) ASC, LOWER(c.middle_initials) ASC, c.created_at ASC")

	if opts.Search != nil && strings.TrimSpace(*opts.Search) != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(*opts.Search))) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("LOWER(c.full_name) LIKE ? ESCAPE '!'", pattern).
				WhereOr("LOWER(c.sort_name) LIKE ? ESCAPE '!'", pattern)
		})
	}
	if opts.Limit != nil {
		q = q.Limit(*opts.Limit)
	}
	if opts.Offset != nil {
		q = q.Offset(*opts.Offset)
	}

	if opts.includeTotal {
		total, err = q.ScanAndCount(ctx)
	} else {
		err = q.Scan(ctx)
	}
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return contacts, total, nil
}

// ReparseContact runs the stored full name through the parser again and
// updates the components and sort name if they changed. It reports whether
// anything was written.
func (svc *Service) ReparseContact(ctx context.Context, contact *models.Contact) (bool, error) {
	parsed, err := nameparser.Parse(contact.FullName)
	if err != nil {
		return false, errcodes.FromParseError(err)
	}

	sortName := sortname.ForParsed(parsed)
	if parsed == contact.ParsedName() && sortName == contact.SortName {
		return false, nil
	}

	contact.SetParsedName(parsed)
	contact.SortName = sortName
	contact.UpdatedAt = time.Now()
	columns := append(append([]string{}, models.ParsedNameColumns...), "updated_at")

	err = database.Retry(ctx, svc.maxRetries, func(ctx context.Context) error {
		_, err := svc.db.
			NewUpdate().
			Model(contact).
			Column(columns...).
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}

func (svc *Service) DeleteContact(ctx context.Context, id string) error {
	var res sql.Result
	err := database.Retry(ctx, svc.maxRetries, func(ctx context.Context) error {
		var err error
		res, err = svc.db.
			NewDelete().
			Model((*models.Contact)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errcodes.NotFound("Contact")
	}

	return nil
}
