package model

import "time"

type RenewalTask struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	LicenseID      uint       `json:"license_id" gorm:"index"`
	Status         string     `json:"status" gorm:"not null"` // Pending, QuoteRequested, Approved
	AssignedTo     string     `json:"assigned_to"`
	DueDate        *time.Time `json:"due_date"`
	CostEstimate   float64    `json:"cost_estimate"`
	QuoteReference string     `json:"quote_reference"`
	CreatedAt      time.Time  `json:"created_at"`
}
