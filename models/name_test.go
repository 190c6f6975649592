package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeFullName(t *testing.T) {
	assert.Equal(t, "Ada Shelton", ComposeFullName("Ada", "", "Shelton"))
	assert.Equal(t, "Ada Marie Shelton", ComposeFullName("Ada", "Marie", "Shelton"))
	assert.Equal(t, "Ada Shelton", ComposeFullName("  Ada ", "", "Shelton"))
	assert.Equal(t, "Ada Shelton", ComposeFullName("Ada", "   ", " Shelton  "))
	assert.Equal(t, "", ComposeFullName("", "", ""))
}

func TestCustomerFullName(t *testing.T) {
	middle := "Marie"
	customer := Customer{FirstName: "Ada", MiddleName: &middle, LastName: "Shelton"}
	assert.Equal(t, "Ada Marie Shelton", customer.FullName())

	customer.MiddleName = nil
	assert.Equal(t, "Ada Shelton", customer.FullName())
}

func TestNewCustomerView(t *testing.T) {
	customer := Customer{ID: 7, FirstName: "John", LastName: "Marsh"}
	view := NewCustomerView(customer)

	assert.Equal(t, "John Marsh", view.DisplayName)
	assert.Equal(t, uint(7), view.ID)
	// entity aslinya tidak boleh ikut berubah
	assert.Equal(t, "John", customer.FirstName)
	assert.Equal(t, "Marsh", customer.LastName)
}

func TestNewCustomerViewsKeepsOrder(t *testing.T) {
	customers := []Customer{
		{ID: 1, FirstName: "Ada", LastName: "Shelton"},
		{ID: 2, FirstName: "John", LastName: "Marsh"},
	}

	views := NewCustomerViews(customers)
	assert.Len(t, views, 2)
	assert.Equal(t, "Ada Shelton", views[0].DisplayName)
	assert.Equal(t, "John Marsh", views[1].DisplayName)
}
