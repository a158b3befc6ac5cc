package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AppointmentService/pkg/phone"
)

// история записей в карточке клиента
const historyLimit = 50

// Service сервис для работы с клиентами салона
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateInput данные для создания клиента
type CreateInput struct {
	BusinessID string
	Name       string
	Phone      string
	Email      *string
	Notes      *string
}

// Create создает клиента. Телефон нормализуется к E.164,
// дубликат в рамках салона отклоняется
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Client, error) {
	normalized, err := normalizePhone(in.Phone)
	if err != nil {
		s.logger.Warn("Create: invalid phone %q for business=%s", in.Phone, in.BusinessID)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		BusinessID: in.BusinessID,
		Name:       strings.TrimSpace(in.Name),
		Phone:      normalized,
		Email:      in.Email,
		Notes:      in.Notes,
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrPhoneExists) {
			s.logger.Warn("Create: phone %s already registered in business=%s", normalized, in.BusinessID)
			return nil, ErrPhoneExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: client=%s created in business=%s", created.ID, in.BusinessID)
	return created, nil
}

// ClientDetails карточка клиента с историей записей
type ClientDetails struct {
	Client  *domain.Client
	History []*domain.AppointmentDetails
}

// GetByID возвращает карточку клиента с историей записей
func (s *Service) GetByID(ctx context.Context, id string) (*ClientDetails, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	history, err := s.appointmentRepo.ListDetailsByClient(ctx, id, historyLimit)
	if err != nil {
		s.logger.Error("GetByID: history error for client=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - history error: %v", ErrInternal, err)
	}

	return &ClientDetails{Client: c, History: history}, nil
}

// UpdateInput частичное обновление клиента
type UpdateInput struct {
	Name  *string
	Phone *string
	Email *string
	Notes *string
}

// Update применяет частичное обновление. Новый телефон нормализуется к E.164
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Client, error) {
	fields := clientRepo.UpdateFields{
		Name:  in.Name,
		Email: in.Email,
		Notes: in.Notes,
	}

	if in.Phone != nil {
		normalized, err := normalizePhone(*in.Phone)
		if err != nil {
			s.logger.Warn("Update: invalid phone %q for client=%s", *in.Phone, id)
			return nil, err
		}
		fields.Phone = &normalized
	}

	updated, err := s.clientRepo.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, clientRepo.ErrClientNotFound):
			return nil, ErrClientNotFound
		case errors.Is(err, clientRepo.ErrPhoneExists):
			return nil, ErrPhoneExists
		}
		s.logger.Error("Update: repository error for client=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: client=%s updated", id)
	return updated, nil
}

// SearchResult страница результатов поиска клиентов
type SearchResult struct {
	Clients []*domain.Client
	Total   int64
	Page    int
	Limit   int
}

// Search ищет клиентов по имени, телефону или email с пагинацией
func (s *Service) Search(ctx context.Context, businessID, query string, page, limit int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	list, total, err := s.clientRepo.Search(ctx, businessID, strings.TrimSpace(query), (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("Search: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return &SearchResult{Clients: list, Total: total, Page: page, Limit: limit}, nil
}

// Delete удаляет клиента. Клиент с будущими активными записями не удаляется
func (s *Service) Delete(ctx context.Context, id string) error {
	hasFuture, err := s.appointmentRepo.HasFutureActiveByClient(ctx, id, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Delete: future appointments check for client=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - future appointments check: %v", ErrInternal, err)
	}
	if hasFuture {
		s.logger.Warn("Delete: client=%s has future appointments", id)
		return ErrHasFutureAppointments
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: client=%s deleted", id)
	return nil
}

// normalizePhone приводит телефон к E.164 и отклоняет слишком короткие номера
func normalizePhone(raw string) (string, error) {
	normalized := phone.Normalize(raw, phone.DefaultCountryCode)
	if !strings.HasPrefix(normalized, "+") || len(normalized) < 9 {
		return "", ErrInvalidPhone
	}
	return normalized, nil
}
