package models

import "github.com/shopspring/decimal"

// MenuItem represents a dish or drink on the hotel menu
type MenuItem struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description" yaml:"description"`
	Price         decimal.Decimal `json:"price" yaml:"price"`
	Category      string          `json:"category" yaml:"category"`
	Image         string          `json:"image" yaml:"image"`
	IsRecommended bool            `json:"isRecommended" yaml:"isRecommended"`
	IsSpecial     bool            `json:"isSpecial" yaml:"isSpecial"`
	Available     bool            `json:"available" yaml:"available"`
	PrepTime      int             `json:"prepTime" yaml:"prepTime"` // minutes
}

// Category groups menu items for display
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	SortOrder   int    `json:"sortOrder" yaml:"sortOrder"`
}

// Admin is a staff credential record.
// Passwords are stored and compared in plain text.
type Admin struct {
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
}
