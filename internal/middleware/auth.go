package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rentbook/internal/config"
	"rentbook/internal/models"
)

const principalKey = "principal"

// Role discriminates the two kinds of authenticated subjects.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleRenter Role = "renter"
)

// Principal is the authenticated identity decoded once from a verified
// token and passed explicitly to handlers. HouseID is set for renters only.
type Principal struct {
	Role    Role
	ID      uint
	Name    string
	HouseID uint
}

// Claims is the JWT payload. Admin tokens carry "type", renter tokens carry
// "houseId"; the presence of one or the other discriminates the role.
type Claims struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Type    *int   `json:"type,omitempty"`
	HouseID *uint  `json:"houseId,omitempty"`
	jwt.RegisteredClaims
}

func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

func registeredClaims(subject uint) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    "rentbook-api",
		Subject:   fmt.Sprintf("%d", subject),
	}
}

// GenerateAdminToken issues a signed bearer token for an admin.
func GenerateAdminToken(admin *models.Admin) (string, error) {
	adminType := admin.Type
	claims := &Claims{
		ID:               admin.ID,
		Name:             admin.Username,
		Type:             &adminType,
		RegisteredClaims: registeredClaims(admin.ID),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// GenerateRenterToken issues a signed bearer token for a renter.
func GenerateRenterToken(renter *models.Renter) (string, error) {
	houseID := renter.HouseID
	claims := &Claims{
		ID:               renter.ID,
		Name:             renter.Name,
		HouseID:          &houseID,
		RegisteredClaims: registeredClaims(renter.ID),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// VerifyToken parses and validates a bearer token string, returning the
// decoded principal. Garbage, unsigned, or expired tokens return an error
// rather than panicking.
func VerifyToken(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	p := &Principal{ID: claims.ID, Name: claims.Name}
	if claims.HouseID != nil {
		p.Role = RoleRenter
		p.HouseID = *claims.HouseID
	} else {
		p.Role = RoleAdmin
	}
	return p, nil
}

// AuthMiddleware verifies the Authorization header and stores the decoded
// principal on the context. Missing or invalid credentials abort with 401
// before any protected data is touched.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		principal, err := VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole aborts with 403 when the authenticated principal does not
// have the given role. It must run after AuthMiddleware.
func RequireRole(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || p.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal from the context.
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// SetPrincipal stores a principal on the context; exported for tests.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}
