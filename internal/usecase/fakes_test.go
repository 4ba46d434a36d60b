package usecase

import (
	"context"
	"strings"
	"time"

	"game-ghor/internal/data/entity"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories mirroring the SQL semantics, so services can
// be exercised without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return copyUser(u), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (r *fakeUserRepo) CountActiveAdmins(ctx context.Context) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == entity.RoleAdmin && u.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = copyUser(user)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	c := *session
	r.sessions[session.Token.String()] = &c
	return nil
}

func (r *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil || s.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if s, ok := r.sessions[token]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, s := range r.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

type fakeResetRepo struct {
	resets map[string]*entity.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{resets: make(map[string]*entity.PasswordReset)}
}

func (r *fakeResetRepo) Replace(ctx context.Context, reset *entity.PasswordReset) error {
	c := *reset
	c.Used = false
	r.resets[reset.Email] = &c
	return nil
}

func (r *fakeResetRepo) Consume(ctx context.Context, email, code string) (bool, error) {
	reset, ok := r.resets[email]
	if !ok || reset.Used || reset.Code != code || reset.ExpiresAt.Before(time.Now()) {
		return false, nil
	}
	reset.Used = true
	return true, nil
}

type fakeGameRepo struct {
	games map[uuid.UUID]*entity.Game
	order []uuid.UUID
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[uuid.UUID]*entity.Game)}
}

func copyGame(g *entity.Game) *entity.Game {
	c := *g
	c.Platforms = append([]string(nil), g.Platforms...)
	c.Categories = append([]string(nil), g.Categories...)
	c.PaymentMethods = append([]entity.PaymentMethod(nil), g.PaymentMethods...)
	c.PaymentModes = append([]entity.PaymentMode(nil), g.PaymentModes...)
	return &c
}

func (r *fakeGameRepo) Create(ctx context.Context, game *entity.Game) error {
	r.games[game.ID] = copyGame(game)
	r.order = append(r.order, game.ID)
	return nil
}

func (r *fakeGameRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	if g, ok := r.games[id]; ok {
		return copyGame(g), nil
	}
	return nil, nil
}

func (r *fakeGameRepo) FindAll(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, error) {
	var out []*entity.Game
	for _, id := range r.order {
		g, ok := r.games[id]
		if !ok {
			continue
		}
		if filter.ActiveOnly && !g.IsActive {
			continue
		}
		if filter.Platform != "" && !g.HasPlatform(filter.Platform) {
			continue
		}
		if filter.Text != "" {
			text := strings.ToLower(filter.Text)
			if !strings.Contains(strings.ToLower(g.Title), text) &&
				!strings.Contains(strings.ToLower(g.Description), text) {
				continue
			}
		}
		out = append(out, copyGame(g))
	}
	return out, nil
}

func (r *fakeGameRepo) Update(ctx context.Context, game *entity.Game) error {
	r.games[game.ID] = copyGame(game)
	return nil
}

func (r *fakeGameRepo) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	g := r.games[id]
	g.IsActive = !g.IsActive
	return g.IsActive, nil
}

func (r *fakeGameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.games, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	c := *order
	r.orders[order.ID] = &c
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		c := *o
		return &c, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Text != "" &&
			!strings.Contains(o.DeliveryEmail, filter.Text) &&
			!strings.Contains(o.TransactionID, filter.Text) {
			continue
		}
		c := *o
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (bool, error) {
	o, ok := r.orders[id]
	if !ok || o.Status != entity.OrderStatusPending {
		return false, nil
	}
	o.Status = status
	return true, nil
}

type fakeMailer struct {
	resetCodes    []string
	confirmations []uuid.UUID
}

func (m *fakeMailer) SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	m.resetCodes = append(m.resetCodes, code)
	return nil
}

func (m *fakeMailer) SendOrderConfirmation(ctx context.Context, order *entity.Order) error {
	m.confirmations = append(m.confirmations, order.ID)
	return nil
}

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:          newFakeUserRepo(),
		Session:       newFakeSessionRepo(),
		PasswordReset: newFakeResetRepo(),
		Game:          newFakeGameRepo(),
		Order:         newFakeOrderRepo(),
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:  "game-ghor-test",
			Debug: true,
		},
		Session:   utils.SessionConfig{ExpiryHours: 24},
		ResetCode: utils.ResetCodeConfig{ExpiryMinutes: 15, Length: 6},
	}
}

type testEnv struct {
	repo    *repository.Repository
	mail    *fakeMailer
	service *Service
}

func newTestEnv() *testEnv {
	repo := newTestRepo()
	mail := &fakeMailer{}
	return &testEnv{
		repo:    repo,
		mail:    mail,
		service: NewService(repo, testConfig(), mail, zap.NewNop()),
	}
}
