package forms

import (
	"net/url"
	"strconv"
	"strings"

	"go-ishop-backend/internal/domain"
	"go-ishop-backend/pkg/validation"
)

const (
	msgNameRequired  = "The product name is required."
	msgNameTooShort  = "The name must be at least 3 characters long."
	msgNameNoUpper   = "The name must start with a capital letter."
	msgNameNoSpace   = "The name must contain at least one space (e.g. 'Mac Book')."
	msgPriceRequired = "The price is required."
	msgPriceInvalid  = "The price must be a valid number."
	msgPriceTooLow   = "The price must be at least 10."
	msgInvalidNumber = "Enter a valid number."
	msgDiscountRange = "The discount must be between 0 and 100."
	msgStockNegative = "The extra stock cannot be negative."
)

// ParseProductForm validates a raw product-creation submission and returns
// either a ProductDraft ready for the derived-field computation or the full
// field-keyed error set. As with the contact form, every check runs and all
// failures are collected.
func ParseProductForm(values url.Values) (*domain.ProductDraft, Errors) {
	errs := Errors{}

	name := strings.TrimSpace(values.Get("name"))
	rawPrice := strings.TrimSpace(values.Get("price"))
	rawDiscount := strings.TrimSpace(values.Get("discount_percentage"))
	rawExtraStock := strings.TrimSpace(values.Get("extra_stock"))

	if name == "" {
		errs.Add("name", msgNameRequired)
	} else {
		if len([]rune(name)) < 3 {
			errs.Add("name", msgNameTooShort)
		}
		if !validation.StartsWithUpper(name) {
			errs.Add("name", msgNameNoUpper)
		}
		if !strings.Contains(name, " ") {
			errs.Add("name", msgNameNoSpace)
		}
	}

	price := 0.0
	if rawPrice == "" {
		errs.Add("price", msgPriceRequired)
	} else if p, err := strconv.ParseFloat(rawPrice, 64); err != nil {
		errs.Add("price", msgPriceInvalid)
	} else if p < 10 {
		errs.Add("price", msgPriceTooLow)
	} else {
		price = p
	}

	discount := 0.0
	if rawDiscount != "" {
		if d, err := strconv.ParseFloat(rawDiscount, 64); err != nil {
			errs.Add("discount_percentage", msgInvalidNumber)
		} else if d < 0 || d > 100 {
			errs.Add("discount_percentage", msgDiscountRange)
		} else {
			discount = d
		}
	}

	extraStock := 0
	if rawExtraStock != "" {
		if n, err := strconv.Atoi(rawExtraStock); err != nil {
			errs.Add("extra_stock", msgInvalidInteger)
		} else if n < 0 {
			errs.Add("extra_stock", msgStockNegative)
		} else {
			extraStock = n
		}
	}

	if !errs.Empty() {
		return nil, errs
	}

	return &domain.ProductDraft{
		Name:               name,
		Price:              price,
		DiscountPercentage: discount,
		ExtraStock:         extraStock,
	}, nil
}
