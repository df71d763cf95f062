package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/auth"
	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/pkg/jwt"
)

// Chiavi Locals per i dati dell'utente autenticato in Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalLabel  = "label"
	LocalClaims = "claims"
)

// AuthMiddleware valida il Bearer Token JWT, verifica la denylist di revoca
// ed estrae UserID, ruolo ed etichetta in c.Locals.
func AuthMiddleware(jwtSecret string, revoker auth.TokenRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization richiesto"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vuoto"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token non valido o scaduto"})
		}
		revoked, err := revoker.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "servizio momentaneamente non disponibile"})
		}
		if revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "REVOKED_TOKEN", Message: "token revocato"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalLabel, claims.Label)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole autorizza solo gli utenti con uno dei ruoli indicati.
// Va montato dopo AuthMiddleware: un'unica verifica per operazione protetta.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token non valido"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operazione riservata all'admin"})
	}
}

// RequireAdmin è la verifica riusata da import anagrafica ed eliminazione movimenti.
func RequireAdmin() fiber.Handler {
	return RequireRole(entity.RoleAdmin)
}

// GetUserID restituisce lo UserID dal contesto (dopo il middleware di auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole restituisce il ruolo dal contesto.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetLabel restituisce l'etichetta utente (email) dal contesto.
func GetLabel(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalLabel).(string)
	return s
}

// GetClaims restituisce i claims JWT completi dal contesto.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}
