package company

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company not found")

type Company struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhotoID     *uuid.UUID `json:"photo_id,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Phone       string     `json:"phone"`
	City        string     `json:"city"`
	TaxCode     string     `json:"tax_code"`
	FacebookURL string     `json:"facebook_url,omitempty"`
	LinkedinURL string     `json:"linkedin_url,omitempty"`
	TwitterURL  string     `json:"twitter_url,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
}
