package repository

import (
	"carbontrack-api/internal/model"
	"carbontrack-api/pkg/paginator"
)

type CreateRecordOption struct {
	OwnerID        string
	SourceCategory model.SourceCategory
	CO2Kg          float64
	DeviceType     string
	PowerRating    float64
	UsageHours     float64
	Efficiency     int
	CPULoad        float64
	BatteryPercent float64
}

type ListRecordOption struct {
	OwnerID       string
	Category      model.SourceCategory
	PaginateQuery paginator.PaginateQuery
}
