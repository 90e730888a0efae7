package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/flash"
	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/render"
	"geministore.com/app/internal/http/sessioncookie"
	"geministore.com/app/internal/http/validation"
	"geministore.com/app/internal/modules/accounts"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/pkg/view"
)

type AuthHandler struct {
	Accounts *accounts.Service
	Cookie   *sessioncookie.Codec
	Flash    *flash.Codec
}

func NewAuthHandler(svc *accounts.Service, cookie *sessioncookie.Codec, fl *flash.Codec) *AuthHandler {
	return &AuthHandler{Accounts: svc, Cookie: cookie, Flash: fl}
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. The admin email switches to the OTP
// branch without touching the password.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Email is required.", errs))
		return
	}

	res, err := h.Accounts.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if res.AwaitingOTP {
		render.JSON(c, http.StatusOK, gin.H{
			"awaitingOtp": true,
			"challengeId": res.ChallengeID,
		})
		return
	}

	h.Cookie.Set(c, res.Session.ID)
	render.JSONWithFlash(c, http.StatusOK,
		gin.H{"user": userPayload(res.Session)},
		view.FlashSuccess, fmt.Sprintf("Welcome back, %s!", res.Session.FirstName()))
}

type otpInput struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// VerifyOTP handles POST /api/auth/otp, the second step of admin login.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var in otpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("OTP is required.", errs))
		return
	}

	sess, err := h.Accounts.VerifyOTP(c.Request.Context(), in.ChallengeID, in.OTP)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	h.Cookie.Set(c, sess.ID)
	render.JSONWithFlash(c, http.StatusOK,
		gin.H{"user": userPayload(sess)},
		view.FlashSuccess, "Admin login successful!")
}

type registerInput struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,password"`
	RePassword string `json:"rePassword" binding:"required,eqfield=Password"`
}

// Register handles POST /api/auth/register and logs the new account in.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid registration data.", errs))
		return
	}

	sess, err := h.Accounts.Register(c.Request.Context(), in.FullName, in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	h.Cookie.Set(c, sess.ID)
	render.JSONWithFlash(c, http.StatusCreated,
		gin.H{"user": userPayload(sess)},
		view.FlashSuccess, fmt.Sprintf("Account created for %s! You are logged in.", sess.FirstName()))
}

// Logout handles POST /api/auth/logout. Safe to call without a session.
// The goodbye rides a flash cookie: the client reloads after logout, and
// the next response it renders carries the message.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		h.Accounts.Logout(sess.ID)
	}
	h.Cookie.Clear(c)
	middleware.SetFlashCookie(c, h.Flash, view.Flash{Kind: view.FlashInfo, Message: "You have been logged out."})
	render.JSON(c, http.StatusOK, gin.H{})
}

func userPayload(sess *accounts.Session) gin.H {
	return gin.H{
		"fullName": sess.FullName,
		"email":    sess.Email,
		"role":     sess.Role,
	}
}
