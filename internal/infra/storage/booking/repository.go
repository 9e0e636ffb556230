package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/infra/storage/document"
)

// Repository репозиторий бронирований поверх одного документа "bookings"
//
// Каждая операция читает всю последовательность, меняет её в памяти и записывает целиком.
// Внутри процесса операции сериализуются мьютексом. Два процесса с общим хранилищем
// по-прежнему могут перезаписать изменения друг друга.
type Repository struct {
	store   DocumentStore
	logger  Logger
	metrics Metrics
	newID   func() string
	mu      sync.Mutex
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store DocumentStore, logger Logger, metrics Metrics) *Repository {
	return &Repository{
		store:   store,
		logger:  logger,
		metrics: metrics,
		newID:   uuid.NewString,
	}
}

// ListAll возвращает все бронирования в порядке хранения
// Отсутствующий или повреждённый документ даёт пустой список
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Search фильтрует бронирования по подстроке имени без учёта регистра
// Пустая строка возвращает все бронирования. Позиции - в полной последовательности
func (r *Repository) Search(ctx context.Context, query string) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(bookings))
	for i, b := range bookings {
		if b.MatchesName(query) {
			entries = append(entries, Entry{Position: i, Booking: b})
		}
	}
	return entries, nil
}

// GetAt получает бронирование по позиции (с нуля)
func (r *Repository) GetAt(ctx context.Context, position int) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(bookings) {
		return nil, ErrBookingNotFound
	}
	return bookings[position], nil
}

// GetByID получает бронирование и его текущую позицию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, -1, err
	}
	i := indexOf(bookings, id)
	if i < 0 {
		return nil, -1, ErrBookingNotFound
	}
	return bookings[i], i, nil
}

// PositionOf возвращает текущую позицию бронирования с указанным ID
func (r *Repository) PositionOf(ctx context.Context, id string) (int, error) {
	_, position, err := r.GetByID(ctx, id)
	return position, err
}

// Append добавляет бронирование в конец последовательности
// Если ID не задан, генерируется новый
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if booking.ID == "" {
		booking.ID = r.newID()
	}
	bookings = append(bookings, booking)

	if err := r.save(ctx, bookings); err != nil {
		return nil, err
	}
	return booking, nil
}

// RemoveAt удаляет бронирование по позиции; последующие позиции сдвигаются на одну вниз
// Вне границ возвращает ErrOutOfRange и ничего не записывает
func (r *Repository) RemoveAt(ctx context.Context, position int) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(bookings) {
		return nil, fmt.Errorf("%w: RemoveAt - position %d, length %d", ErrOutOfRange, position, len(bookings))
	}

	return r.removeAndSave(ctx, bookings, position)
}

// RemoveByID удаляет бронирование по ID
func (r *Repository) RemoveByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(bookings, id)
	if i < 0 {
		return nil, ErrBookingNotFound
	}

	return r.removeAndSave(ctx, bookings, i)
}

// ReplaceByID заменяет бронирование на месте, сохраняя его ID и позицию
func (r *Repository) ReplaceByID(ctx context.Context, id string, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(bookings, id)
	if i < 0 {
		return nil, ErrBookingNotFound
	}

	booking.ID = id
	bookings[i] = booking

	if err := r.save(ctx, bookings); err != nil {
		return nil, err
	}
	return booking, nil
}

// Вспомогательные методы (вызываются под мьютексом)

func (r *Repository) removeAndSave(ctx context.Context, bookings []*domain.Booking, i int) (*domain.Booking, error) {
	removed := bookings[i]
	bookings = append(bookings[:i], bookings[i+1:]...)

	if err := r.save(ctx, bookings); err != nil {
		return nil, err
	}
	return removed, nil
}

// load читает и разбирает документ. Документы без ID (записанные старой версией)
// получают ID, и последовательность сразу записывается обратно
func (r *Repository) load(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.store.Load(ctx, domain.BookingsKey)
	if errors.Is(err, document.ErrDocumentNotFound) {
		return make([]*domain.Booking, 0), nil
	}
	if errors.Is(err, document.ErrCorrupted) {
		r.reportCorruption(err)
		return make([]*domain.Booking, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var raw []*domain.Booking
	if err := json.Unmarshal(data, &raw); err != nil {
		r.reportCorruption(err)
		return make([]*domain.Booking, 0), nil
	}

	bookings := make([]*domain.Booking, 0, len(raw))
	backfilled := 0
	for _, b := range raw {
		if b == nil {
			continue
		}
		if b.ID == "" {
			b.ID = r.newID()
			backfilled++
		}
		bookings = append(bookings, b)
	}

	if backfilled > 0 {
		if err := r.save(ctx, bookings); err != nil {
			r.logger.Warn("BookingRepository: failed to persist %d backfilled ids: %v", backfilled, err)
		} else {
			r.logger.Info("BookingRepository: backfilled ids for %d bookings", backfilled)
		}
	}

	return bookings, nil
}

func (r *Repository) save(ctx context.Context, bookings []*domain.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	if err := r.store.Save(ctx, domain.BookingsKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

func (r *Repository) reportCorruption(err error) {
	r.logger.Warn("BookingRepository: bookings document is unreadable, treating as empty: %v", err)
	r.metrics.StoreCorrupted()
}

func indexOf(bookings []*domain.Booking, id string) int {
	if id == "" {
		return -1
	}
	for i, b := range bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}
