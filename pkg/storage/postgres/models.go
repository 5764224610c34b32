package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"pricewatch/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgProduct struct {
	ID uuid.UUID `db:"id"`

	ProductName           string          `db:"product_name"`
	URL                   string          `db:"url"`
	CSSSelector           string          `db:"css_selector"`
	ExpectedPrice         decimal.Decimal `db:"expected_price"`
	ExpectedPriceCurrency string          `db:"expected_price_currency"`
	EmailNotification     json.RawMessage `db:"email_notification"`
	OwningUser            sql.NullString  `db:"owning_user"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProduct) ToDomain() (*domain.TrackedProduct, error) {
	var emails []string
	if len(p.EmailNotification) > 0 {
		if err := json.Unmarshal(p.EmailNotification, &emails); err != nil {
			return nil, fmt.Errorf("could not unmarshal email notification list: %w", err)
		}
	}

	return &domain.TrackedProduct{
		ID:                    domain.ProductID(p.ID),
		ProductName:           p.ProductName,
		URL:                   p.URL,
		CSSSelector:           p.CSSSelector,
		ExpectedPrice:         p.ExpectedPrice,
		ExpectedPriceCurrency: p.ExpectedPriceCurrency,
		EmailNotification:     emails,
		OwningUser:            p.OwningUser.String,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt.Time,
	}, nil
}

func (p *PgProduct) FromDomain(product domain.TrackedProduct) error {
	emails, err := json.Marshal(nonNil(domain.NormalizeRecipients(product.EmailNotification)))
	if err != nil {
		return fmt.Errorf("could not marshal email notification list: %w", err)
	}

	id := uuid.UUID(product.ID)
	if id == uuid.Nil {
		id = uuid.New()
	}

	*p = PgProduct{
		ID:                    id,
		ProductName:           product.ProductName,
		URL:                   product.URL,
		CSSSelector:           product.CSSSelector,
		ExpectedPrice:         product.ExpectedPrice,
		ExpectedPriceCurrency: product.ExpectedPriceCurrency,
		EmailNotification:     emails,
		OwningUser:            nullString(product.OwningUser),
	}

	return nil
}

type PgRun struct {
	ID uuid.UUID `db:"id"`

	Trigger       string          `db:"trigger"`
	Status        string          `db:"status"`
	ProductFilter json.RawMessage `db:"product_filter"`

	StartedAt      sql.NullTime   `db:"started_at"`
	FinishedAt     sql.NullTime   `db:"finished_at"`
	SucceededCount int            `db:"succeeded_count"`
	FailedCount    int            `db:"failed_count"`
	LastError      sql.NullString `db:"last_error"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRun) ToDomain() (*domain.BatchRun, error) {
	var filter []uuid.UUID
	if len(p.ProductFilter) > 0 {
		if err := json.Unmarshal(p.ProductFilter, &filter); err != nil {
			return nil, fmt.Errorf("could not unmarshal product filter: %w", err)
		}
	}

	run := &domain.BatchRun{
		ID:             domain.RunID(p.ID),
		Trigger:        domain.RunTrigger(p.Trigger),
		Status:         domain.RunStatus(p.Status),
		StartedAt:      p.StartedAt.Time,
		FinishedAt:     p.FinishedAt.Time,
		SucceededCount: p.SucceededCount,
		FailedCount:    p.FailedCount,
		LastError:      p.LastError.String,
		CreatedAt:      p.CreatedAt,
	}
	for _, id := range filter {
		run.ProductFilter = append(run.ProductFilter, domain.ProductID(id))
	}

	return run, nil
}

func (p *PgRun) FromDomain(run domain.BatchRun) error {
	filter := make([]uuid.UUID, 0, len(run.ProductFilter))
	for _, id := range run.ProductFilter {
		filter = append(filter, uuid.UUID(id))
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("could not marshal product filter: %w", err)
	}

	id := uuid.UUID(run.ID)
	if id == uuid.Nil {
		id = uuid.New()
	}

	*p = PgRun{
		ID:             id,
		Trigger:        string(run.Trigger),
		Status:         string(run.Status),
		ProductFilter:  b,
		StartedAt:      nullTime(run.StartedAt),
		FinishedAt:     nullTime(run.FinishedAt),
		SucceededCount: run.SucceededCount,
		FailedCount:    run.FailedCount,
		LastError:      nullString(run.LastError),
	}

	return nil
}

type PgCheckResult struct {
	RunID     uuid.UUID `db:"run_id"`
	ProductID uuid.UUID `db:"product_id"`

	ObservedPriceRaw string              `db:"observed_price_raw"`
	ObservedPrice    decimal.NullDecimal `db:"observed_price"`
	CurrencyAssumed  sql.NullString      `db:"currency_assumed"`
	ExtraMatches     json.RawMessage     `db:"extra_matches"`

	Decision sql.NullString `db:"decision"`
	Matched  bool           `db:"matched"`
	Notified bool           `db:"notified"`

	ErrorKind    sql.NullString `db:"error_kind"`
	ErrorMessage sql.NullString `db:"error_message"`

	CheckedAt time.Time `db:"checked_at"`
}

// resultColumns are overwritten when a result for the same run and product is
// stored again.
var resultColumns = []string{ //nolint: gochecknoglobals
	"observed_price_raw", "observed_price", "currency_assumed", "extra_matches",
	"decision", "matched", "notified", "error_kind", "error_message", "checked_at",
}

func (p *PgCheckResult) ToDomain() (*domain.CheckResult, error) {
	var extra []string
	if len(p.ExtraMatches) > 0 {
		if err := json.Unmarshal(p.ExtraMatches, &extra); err != nil {
			return nil, fmt.Errorf("could not unmarshal extra matches: %w", err)
		}
	}

	res := &domain.CheckResult{
		RunID:            domain.RunID(p.RunID),
		ProductID:        domain.ProductID(p.ProductID),
		ObservedPriceRaw: p.ObservedPriceRaw,
		CurrencyAssumed:  p.CurrencyAssumed.String,
		ExtraMatches:     extra,
		Decision:         domain.Decision(p.Decision.String),
		Matched:          p.Matched,
		Notified:         p.Notified,
		ErrorKind:        domain.ErrorKind(p.ErrorKind.String),
		ErrorMessage:     p.ErrorMessage.String,
		CheckedAt:        p.CheckedAt,
	}
	if p.ObservedPrice.Valid {
		price := p.ObservedPrice.Decimal
		res.ObservedPrice = &price
	}

	return res, nil
}

func (p *PgCheckResult) FromDomain(result domain.CheckResult) error {
	extra, err := json.Marshal(nonNil(result.ExtraMatches))
	if err != nil {
		return fmt.Errorf("could not marshal extra matches: %w", err)
	}

	*p = PgCheckResult{
		RunID:            uuid.UUID(result.RunID),
		ProductID:        uuid.UUID(result.ProductID),
		ObservedPriceRaw: result.ObservedPriceRaw,
		CurrencyAssumed:  nullString(result.CurrencyAssumed),
		ExtraMatches:     extra,
		Decision:         nullString(string(result.Decision)),
		Matched:          result.Matched,
		Notified:         result.Notified,
		ErrorKind:        nullString(string(result.ErrorKind)),
		ErrorMessage:     nullString(result.ErrorMessage),
		CheckedAt:        result.CheckedAt,
	}
	if result.ObservedPrice != nil {
		p.ObservedPrice = decimal.NewNullDecimal(*result.ObservedPrice)
	}
	if p.CheckedAt.IsZero() {
		p.CheckedAt = time.Now()
	}

	return nil
}

func toDomain[P any, D any, PP interface {
	*P
	ToDomain() (*D, error)
}](rows []P) ([]D, error) {
	out := make([]D, 0, len(rows))
	for i := range rows {
		d, err := PP(&rows[i]).ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
