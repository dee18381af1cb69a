package storage

import (
	"errors"

	"github.com/legendiguess/mercury-trade-bot/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type databaseDSNStorage interface {
	GetDatabaseDSN() string
}

type storageLogger interface {
	Panicf(format string, args ...interface{})
}

type Storage struct {
	dataBase *gorm.DB
	logger   storageLogger
}

func New(databaseDSNStorage databaseDSNStorage, storageLogger storageLogger) *Storage {
	return NewWithDialector(postgres.New(
		postgres.Config{
			DSN:                  databaseDSNStorage.GetDatabaseDSN(),
			PreferSimpleProtocol: true,
		}), storageLogger)
}

func NewWithDialector(dialector gorm.Dialector, storageLogger storageLogger) *Storage {
	dataBase, err := gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		storageLogger.Panicf("%v", err)
	}

	storage := Storage{dataBase: dataBase, logger: storageLogger}
	storage.dataBase.AutoMigrate(&domain.OrderRecord{}, &domain.User{})

	return &storage
}

func (storage *Storage) NewOrderRecord(orderRecord *domain.OrderRecord) {
	result := storage.dataBase.Create(orderRecord)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}
}

func (storage *Storage) GetOrderRecords() []domain.OrderRecord {
	var orderRecords []domain.OrderRecord

	result := storage.dataBase.Find(&orderRecords)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return orderRecords
}

func (storage *Storage) NewUser(newUser *domain.User) {
	result := storage.dataBase.Create(&newUser)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}
}

func (storage *Storage) FindUser(findUser *domain.User) (domain.User, bool) {
	var user domain.User

	result := storage.dataBase.Where(findUser).Take(&user)

	isFound := !errors.Is(result.Error, gorm.ErrRecordNotFound)
	if isFound && result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return user, isFound
}

func (storage *Storage) GetUsers() []domain.User {
	var users []domain.User

	result := storage.dataBase.Find(&users)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return users
}
