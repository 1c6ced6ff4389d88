package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFields() Fields {
	return Fields{
		Title:    "Bike",
		Price:    "150",
		Email:    "a@b.com",
		Category: "vehicles",
	}
}

func TestCheck_AllValid(t *testing.T) {
	result := Check(validFields())
	assert.True(t, result.Valid())
	for field, msg := range result.Errors {
		assert.Empty(t, msg, "unexpected error for %s", field)
	}
}

func TestCheck_TitleRequired(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		f := validFields()
		f.Title = title
		result := Check(f)
		assert.False(t, result.Valid())
		assert.Equal(t, MsgTitleRequired, result.Errors["title"], "title=%q", title)
	}
}

func TestCheck_PriceRules(t *testing.T) {
	invalid := []string{"", "abc", "0", "-5", "-0.01", "1e999"}
	for _, price := range invalid {
		f := validFields()
		f.Price = price
		result := Check(f)
		assert.False(t, result.Valid(), "price=%q should fail", price)
		assert.Equal(t, MsgInvalidPrice, result.Errors["price"], "price=%q", price)
	}

	valid := []string{"150", "0.01", "99.99", "1e3"}
	for _, price := range valid {
		f := validFields()
		f.Price = price
		result := Check(f)
		assert.Empty(t, result.Errors["price"], "price=%q should pass", price)
	}
}

func TestCheck_EmailShape(t *testing.T) {
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@b.com", "a@.com"}
	for _, email := range invalid {
		f := validFields()
		f.Email = email
		result := Check(f)
		assert.Equal(t, MsgInvalidEmail, result.Errors["email"], "email=%q", email)
	}

	// Well-formed shapes pass regardless of domain existence.
	valid := []string{"a@b.com", "x@y.z", "someone@nowhere.invalid"}
	for _, email := range valid {
		f := validFields()
		f.Email = email
		result := Check(f)
		assert.Empty(t, result.Errors["email"], "email=%q", email)
	}
}

func TestCheck_CategoryRequired(t *testing.T) {
	f := validFields()
	f.Category = ""
	result := Check(f)
	assert.False(t, result.Valid())
	assert.Equal(t, MsgCategoryRequired, result.Errors["category"])
}

func TestCheck_Idempotent(t *testing.T) {
	f := Fields{Title: "", Price: "-5", Email: "nope", Category: ""}
	first := Check(f)
	second := Check(f)
	assert.Equal(t, first.Errors, second.Errors)
	assert.False(t, second.Valid())
}
