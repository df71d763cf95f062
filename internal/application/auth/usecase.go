package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/domain"
	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
	"github.com/Rive3FY/magazzino-app/pkg/jwt"
)

// JWTConfig configurazione per la generazione dei token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TokenRevoker denylist di revoca dei token (logout lato server).
// Un'implementazione nil-safe che non revoca mai è ammessa quando Redis
// non è configurato.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// UseCase casi d'uso di autenticazione: registrazione, login e logout.
type UseCase struct {
	userRepo repository.UserRepository
	revoker  TokenRevoker
	jwtCfg   JWTConfig
}

// NewUseCase costruisce il caso d'uso di auth.
func NewUseCase(userRepo repository.UserRepository, revoker TokenRevoker, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg}
}

// Register crea un utente con ruolo operatore: hash bcrypt della password e
// persistenza. ErrEmailAlreadyExists se l'email è già registrata.
// Gli admin si creano solo via seed o direttamente sul DB.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleOperatore,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera il JWT e restituisce token + utente.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout revoca il token corrente inserendo il suo jti nella denylist fino
// alla scadenza naturale. Dopo il logout il middleware rifiuta il token.
func (uc *UseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.ErrUnauthorized
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // già scaduto, niente da revocare
	}
	return uc.revoker.Revoke(ctx, claims.ID, ttl)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
