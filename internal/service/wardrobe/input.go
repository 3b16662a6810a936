package wardrobe

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

const maxNameLength = 200

// AddInput holds the parameters for recording a new item.
type AddInput struct {
	Name         string
	MainCategory string
	SubCategory  string
	Season       string
	PurchaseDate string
	Price        *float64
	Frequency    string
	Color        string
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validatePrice(errs, i.Price)
	errs = validatePurchaseDate(errs, i.PurchaseDate)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for editing an item. Nil fields are
// left unchanged.
type UpdateInput struct {
	ID           string
	Name         *string
	MainCategory *string
	SubCategory  *string
	Season       *string
	PurchaseDate *string
	Price        *float64
	ClearPrice   bool
	Frequency    *string
	Color        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validatePrice(errs, i.Price)
	if i.Price != nil && i.ClearPrice {
		errs = append(errs, domain.FieldError{Field: "price", Message: "cannot set and clear at once"})
	}
	if i.PurchaseDate != nil {
		errs = validatePurchaseDate(errs, *i.PurchaseDate)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RetireInput holds the parameters for retiring an item.
type RetireInput struct {
	ID     string
	Reason string
	Date   *time.Time
}

// Validate checks all fields and collects all errors.
func (i RetireInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !domain.IsValidEndReason(i.Reason) {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "must be one of " + strings.Join(domain.EndReasons, ", ")})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validatePrice(errs []domain.FieldError, p *float64) []domain.FieldError {
	if p == nil {
		return errs
	}
	if math.IsNaN(*p) || math.IsInf(*p, 0) || *p < 0 {
		return append(errs, domain.FieldError{Field: "price", Message: "must be a non-negative number"})
	}
	return errs
}

func validatePurchaseDate(errs []domain.FieldError, d string) []domain.FieldError {
	d = strings.TrimSpace(d)
	if d == "" {
		return errs
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if _, err := time.Parse(layout, d); err == nil {
			return errs
		}
	}
	return append(errs, domain.FieldError{Field: "purchaseDate", Message: "must be YYYY-MM or YYYY-MM-DD"})
}
