package services

import (
	"github.com/legendiguess/mercury-trade-bot/domain"
)

type orderRecordsStorage interface {
	NewOrderRecord(orderRecord *domain.OrderRecord)
	GetOrderRecords() []domain.OrderRecord
}

type OrderRecordsService struct {
	storage orderRecordsStorage
}

func NewOrderRecordsService(orderRecordsStorage orderRecordsStorage) *OrderRecordsService {
	return &OrderRecordsService{storage: orderRecordsStorage}
}

func (orderRecordsService *OrderRecordsService) NewOrderRecord(orderRecord *domain.OrderRecord) {
	orderRecordsService.storage.NewOrderRecord(orderRecord)
}

func (orderRecordsService *OrderRecordsService) GetOrderRecords() []domain.OrderRecord {
	return orderRecordsService.storage.GetOrderRecords()
}
