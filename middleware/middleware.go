package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/util"
)

// Context keys set by the middleware chain.
const (
	DBKey           = "db"
	AccountIDKey    = "account_id"
	NationalCodeKey = "national_code"
)

// Token types carried in the JWT claims.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// DatabaseMiddleware injects the shared gorm DB into the request context.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DBKey, db)
		c.Next()
	}
}

// GetDB retrieves the gorm DB set by DatabaseMiddleware, or nil.
func GetDB(c *gin.Context) *gorm.DB {
	val, exists := c.Get(DBKey)
	if !exists {
		return nil
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// RequireAuth validates the bearer access token and stores the caller's
// account identity in the context. Refresh tokens are rejected here; they are
// only good for the refresh endpoint.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Missing or malformed Authorization header",
				Err: fmt.Errorf("bearer token required"),
			})
			c.Abort()
			return
		}

		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid or expired token",
				Err: err,
			})
			c.Abort()
			return
		}
		if claims.TokenType != TokenTypeAccess {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "A refresh token cannot be used to access resources",
				Err: fmt.Errorf("wrong token type %q", claims.TokenType),
			})
			c.Abort()
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(NationalCodeKey, claims.NationalCode)
		c.Next()
	}
}

// TokenClaims are the JWT claims carried by both access and refresh tokens.
type TokenClaims struct {
	AccountID    uint   `json:"account_id"`
	NationalCode string `json:"national_code"`
	TokenType    string `json:"token_type"`
	jwt.RegisteredClaims
}

// ParseToken verifies the token signature and expiry and returns its claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return util.GetJWTSecretByte(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// GetAccountID returns the authenticated caller's account ID from the context.
func GetAccountID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(AccountIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
