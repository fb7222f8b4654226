package endpoint

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/middleware"
	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type tokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

func signToken(account *model.Account, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := middleware.TokenClaims{
		AccountID:    account.ID,
		NationalCode: account.NationalCode,
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(util.GetJWTSecretByte())
}

func issueTokenPair(account *model.Account) (*tokenPair, error) {
	access, err := signToken(account, middleware.TokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := signToken(account, middleware.TokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &tokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// SignIn authenticates by username and password and returns an access and
// refresh token pair. Failures are reported uniformly so the response does
// not leak whether the username exists.
func SignIn(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if errs := util.ValidateStruct(&req); len(errs) > 0 {
		util.CallValidationError(c, "Validation failed", errs)
		return
	}

	denied := func(err error) {
		util.LogAuditEvent(util.AuditEvent{
			EventType: util.EventSignInFailure,
			AccountID: req.Username,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   "sign in rejected",
		})
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid username or password",
			Err: err,
		})
	}

	var account model.Account
	if err := db.Where("username = ?", req.Username).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			denied(err)
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to look up account", Err: err})
		return
	}

	match, err := util.VerifyPassword(req.Password, account.Password, account.PasswordSalt)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to verify password", Err: err})
		return
	}
	if !match {
		denied(fmt.Errorf("password mismatch"))
		return
	}

	pair, err := issueTokenPair(&account)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to issue tokens", Err: err})
		return
	}

	util.LogAuditEvent(util.AuditEvent{
		EventType: util.EventSignInSuccess,
		AccountID: account.NationalCode,
		Email:     account.Email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "sign in succeeded",
	})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Signed in",
		Data: pair,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh token pair. The
// account is reloaded so revoked or deleted accounts stop refreshing.
func RefreshToken(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if errs := util.ValidateStruct(&req); len(errs) > 0 {
		util.CallValidationError(c, "Validation failed", errs)
		return
	}

	claims, err := middleware.ParseToken(req.Refresh)
	if err != nil {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Invalid or expired refresh token", Err: err})
		return
	}
	if claims.TokenType != middleware.TokenTypeRefresh {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "An access token cannot be used to refresh",
			Err: fmt.Errorf("wrong token type %q", claims.TokenType),
		})
		return
	}

	var account model.Account
	if err := db.First(&account, claims.AccountID).Error; err != nil {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Account no longer exists", Err: err})
		return
	}

	pair, err := issueTokenPair(&account)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to issue tokens", Err: err})
		return
	}

	util.LogAuditEvent(util.AuditEvent{
		EventType: util.EventTokenRefresh,
		AccountID: account.NationalCode,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "token pair refreshed",
	})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Token refreshed",
		Data: pair,
	})
}

// Hello is an authenticated liveness check.
func Hello(c *gin.Context) {
	accountID, _ := middleware.GetAccountID(c)
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "hello",
		Data: gin.H{"account_id": accountID},
	})
}
