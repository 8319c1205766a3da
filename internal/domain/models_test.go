package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStatus(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Status
	}{
		{"no tags", nil, StatusActive},
		{"pending tag", []string{"Boxes", "pending"}, StatusPending},
		{"no pending tag", []string{"Boxes", "customdesign"}, StatusActive},
		{"pending is exact match", []string{"pending_review"}, StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Tags: tt.tags}
			assert.Equal(t, tt.want, p.Status())
		})
	}
}

func TestIsCustomerTemplate(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want bool
	}{
		{"email tag", []string{"email_user@example.com"}, true},
		{"email tag among others", []string{"Boxes", "email_a@b.c", "pending"}, true},
		{"no email tag", []string{"Boxes", "pending"}, false},
		{"empty", nil, false},
		{"prefix must match", []string{"e-mail_user"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Tags: tt.tags}
			assert.Equal(t, tt.want, p.IsCustomerTemplate())
		})
	}
}

func TestCustomerEmails(t *testing.T) {
	p := Product{Tags: []string{"Boxes", "email_a@b.c", "pending", "email_x@y.z"}}
	assert.Equal(t, []string{"a@b.c", "x@y.z"}, p.CustomerEmails())

	empty := Product{Tags: []string{"Boxes"}}
	assert.Empty(t, empty.CustomerEmails())
}

func TestMetafieldCarriesImages(t *testing.T) {
	assert.True(t, (&Metafield{Key: "custom_image"}).CarriesImages())
	assert.True(t, (&Metafield{Key: "builder_images"}).CarriesImages())
	assert.False(t, (&Metafield{Key: "notes"}).CarriesImages())
}

func TestActionTypeIsValid(t *testing.T) {
	valid := []ActionType{ActionAddPending, ActionRemovePending, ActionRemoveProduct, ActionCreate, ActionEdit}
	for _, a := range valid {
		assert.True(t, a.IsValid(), string(a))
	}
	assert.False(t, ActionType("").IsValid())
	assert.False(t, ActionType("publish").IsValid())
}

func TestActionTypeMutatesTagsOnly(t *testing.T) {
	assert.True(t, ActionAddPending.MutatesTagsOnly())
	assert.True(t, ActionRemovePending.MutatesTagsOnly())
	assert.False(t, ActionRemoveProduct.MutatesTagsOnly())
	assert.False(t, ActionCreate.MutatesTagsOnly())
}
