package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/infra/storage/document"
)

// Service хранилище учётных записей и глобальный флаг входа
// Операции с бронированиями флаг не проверяют, доступ ограничивает только HTTP middleware
type Service struct {
	store  DocumentStore
	logger Logger
	cost   int
	mu     sync.Mutex
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		cost:   bcrypt.DefaultCost,
	}
}

// EnsureUsers создает учётную запись admin/admin123, если список пользователей отсутствует
func (s *Service) EnsureUsers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, found, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	if found && users != nil {
		return nil
	}

	_, err = s.seedDefault(ctx)
	return err
}

// Register добавляет пользователя; логин должен быть уникальным
func (s *Service) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, found, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	if !found {
		if users, err = s.seedDefault(ctx); err != nil {
			return err
		}
	}
	for _, u := range users {
		if u.Username == username {
			s.logger.Warn("Register: username %q already exists", username)
			return ErrUserExists
		}
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	users = append(users, user{Username: username, Password: hash})
	if err := s.saveUsers(ctx, users); err != nil {
		return err
	}

	s.logger.Info("Register: registered user %q", username)
	return nil
}

// Login проверяет пару логин/пароль и выставляет loggedIn=true
// Пароль в открытом виде (старый формат) при успешном входе заменяется хешем
func (s *Service) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, found, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	// документ пользователей мог пропасть после замены повреждённого хранилища
	if !found {
		if users, err = s.seedDefault(ctx); err != nil {
			return err
		}
	}

	idx := -1
	for i, u := range users {
		if u.Username == username && s.verify(u.Password, password) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("Login: invalid credentials for %q", username)
		return ErrInvalidCredentials
	}

	if !isHash(users[idx].Password) {
		if hash, err := s.hash(password); err == nil {
			users[idx].Password = hash
			if err := s.saveUsers(ctx, users); err != nil {
				s.logger.Warn("Login: failed to rehash legacy password for %q: %v", username, err)
			}
		}
	}

	if err := s.setLoggedIn(ctx, true); err != nil {
		return err
	}

	s.logger.Info("Login: user %q logged in", username)
	return nil
}

// Logout спрашивает подтверждение и сбрасывает флаг входа
// Возвращает false, если пользователь отказался
func (s *Service) Logout(ctx context.Context, confirmer Confirmer) (bool, error) {
	if confirmer == nil {
		return false, fmt.Errorf("%w: confirmer is required", ErrInvalidInput)
	}
	if !confirmer.Confirm(domain.PromptLogout) {
		s.logger.Info("Logout: confirmation declined")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setLoggedIn(ctx, false); err != nil {
		return false, err
	}

	s.logger.Info("Logout: logged out")
	return true, nil
}

// IsAuthenticated читает флаг loggedIn; отсутствующий или нечитаемый флаг - false
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	data, err := s.store.Load(ctx, domain.LoggedInKey)
	if err != nil {
		if !errors.Is(err, document.ErrDocumentNotFound) {
			s.logger.Warn("IsAuthenticated: failed to load flag: %v", err)
		}
		return false
	}

	var loggedIn bool
	if err := json.Unmarshal(data, &loggedIn); err != nil {
		s.logger.Warn("IsAuthenticated: unreadable flag: %v", err)
		return false
	}
	return loggedIn
}

// Вспомогательные методы (вызываются под мьютексом)

// seedDefault записывает список из одного пользователя admin/admin123
func (s *Service) seedDefault(ctx context.Context) ([]user, error) {
	hash, err := s.hash(DefaultPassword)
	if err != nil {
		return nil, err
	}
	users := []user{{Username: DefaultUsername, Password: hash}}
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.logger.Info("Auth: seeded default user %q", DefaultUsername)
	return users, nil
}

// loadUsers читает список пользователей; found=false, если документа нет или он повреждён
func (s *Service) loadUsers(ctx context.Context) ([]user, bool, error) {
	data, err := s.store.Load(ctx, domain.UsersKey)
	if errors.Is(err, document.ErrDocumentNotFound) {
		return nil, false, nil
	}
	if errors.Is(err, document.ErrCorrupted) {
		s.logger.Warn("Auth: users document is unreadable, treating as absent: %v", err)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to load users: %v", ErrInternal, err)
	}

	var users []user
	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.Warn("Auth: users document is unreadable, treating as absent: %v", err)
		return nil, false, nil
	}
	return users, true, nil
}

func (s *Service) saveUsers(ctx context.Context, users []user) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal users: %v", ErrInternal, err)
	}
	if err := s.store.Save(ctx, domain.UsersKey, data); err != nil {
		return fmt.Errorf("%w: failed to save users: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) setLoggedIn(ctx context.Context, loggedIn bool) error {
	data, _ := json.Marshal(loggedIn)
	if err := s.store.Save(ctx, domain.LoggedInKey, data); err != nil {
		return fmt.Errorf("%w: failed to save login flag: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}
	return string(hash), nil
}

func (s *Service) verify(stored, password string) bool {
	if isHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func isHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}
