package service

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CardService interface {
	CreateCard(card *model.Card) error
	GetAllCards() ([]model.Card, error)
	GetCardByID(id uuid.UUID) (*model.Card, error)
	UpdateCard(id uuid.UUID, req *model.Card) (*model.Card, error)

	// AddProduct records intent on the card's running tab. No stock check
	// happens here; stock is only validated and decremented at sale time.
	AddProduct(cardID uuid.UUID, req *model.AddCardProductRequest) (*model.CardProduct, error)
	GetCardProducts(cardID uuid.UUID) ([]model.CardProduct, error)
}

type cardService struct {
	cardRepo        repository.CardRepository
	cardProductRepo repository.CardProductRepository
	productRepo     repository.ProductRepository
	txm             repository.TxManager
	logger          *zap.Logger
}

func NewCardService(
	cardRepo repository.CardRepository,
	cardProductRepo repository.CardProductRepository,
	productRepo repository.ProductRepository,
	txm repository.TxManager,
	logger *zap.Logger,
) CardService {
	return &cardService{
		cardRepo:        cardRepo,
		cardProductRepo: cardProductRepo,
		productRepo:     productRepo,
		txm:             txm,
		logger:          logger,
	}
}

func (s *cardService) CreateCard(card *model.Card) error {
	if errs := validator.ValidateStruct(card); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'",
			model.ErrInvalidInput, first.FailedField, first.Tag)
	}
	card.IsActive = true
	return s.cardRepo.Create(card)
}

func (s *cardService) GetAllCards() ([]model.Card, error) {
	return s.cardRepo.FindAll()
}

func (s *cardService) GetCardByID(id uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("card", id)
		}
		return nil, err
	}
	return card, nil
}

func (s *cardService) UpdateCard(id uuid.UUID, req *model.Card) (*model.Card, error) {
	card, err := s.GetCardByID(id)
	if err != nil {
		return nil, err
	}

	card.Name = req.Name
	card.IsActive = req.IsActive
	if err := s.cardRepo.Update(card); err != nil {
		return nil, err
	}
	return card, nil
}

// AddProduct accumulates: a second add for the same (card, product) pair
// increments the existing row's quantity instead of inserting a duplicate.
func (s *cardService) AddProduct(cardID uuid.UUID, req *model.AddCardProductRequest) (*model.CardProduct, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'",
			model.ErrInvalidInput, first.FailedField, first.Tag)
	}

	if _, err := s.cardRepo.FindByID(cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("card", cardID)
		}
		return nil, err
	}
	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("product", req.ProductID)
		}
		return nil, err
	}

	var itemID uuid.UUID
	err := s.txm.Do(func(tx *gorm.DB) error {
		existing, err := s.cardProductRepo.FindForUpdate(tx, cardID, req.ProductID)
		if err == nil {
			itemID = existing.ID
			return s.cardProductRepo.UpdateQuantity(tx, existing.ID, existing.Quantity+req.Quantity)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item := &model.CardProduct{
			CardID:    cardID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := s.cardProductRepo.Create(tx, item); err != nil {
			return err
		}
		itemID = item.ID
		return nil
	})
	if err != nil {
		s.logger.Error("failed to add product to card",
			zap.String("card_id", cardID.String()),
			zap.String("product_id", req.ProductID.String()),
			zap.Error(err))
		return nil, err
	}

	return s.cardProductRepo.FindByID(itemID)
}

func (s *cardService) GetCardProducts(cardID uuid.UUID) ([]model.CardProduct, error) {
	if _, err := s.cardRepo.FindByID(cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("card", cardID)
		}
		return nil, err
	}
	return s.cardProductRepo.FindByCard(cardID)
}
