package handler

import (
	"net/http"
	"strings"
	"time"

	"strata-be-svc/internal/auth"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait    = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// newStreamUpgrader accepts the same browser origins as the CORS middleware.
// An empty list allows every origin; requests without an Origin header are not from a browser and pass.
func newStreamUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if len(allowed) == 0 || allowed["*"] || origin == "" {
				return true
			}
			return allowed[origin]
		},
	}
}

// SignInRequest represents the request for signing in
type SignInRequest struct {
	Email    string `json:"email" example:"ahmad@example.com"`
	Password string `json:"password" example:"rahsia123"`
}

// PasswordResetRequest represents the request for a password reset token
type PasswordResetRequest struct {
	Email string `json:"email" example:"ahmad@example.com"`
}

// PasswordResetConfirmRequest represents the request for setting a new password
type PasswordResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ClaimAccountRequest represents the request for claiming an account of a registered member
type ClaimAccountRequest struct {
	Email           string `json:"email" example:"ahmad@example.com"`
	Password        string `json:"password" example:"rahsia123"`
	ConfirmPassword string `json:"confirm_password" example:"rahsia123"`
}

// AuthHandler handles identity-related HTTP requests
type AuthHandler struct {
	authService service.AuthService
	upgrader    websocket.Upgrader
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, allowedOrigins []string, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		upgrader:    newStreamUpgrader(allowedOrigins),
		logger:      logger,
	}
}

// SignIn signs a member or admin in
// @Summary Sign in
// @Description Sign in with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=service.Session} "Signed in"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Wrong credentials"
// @Failure 403 {object} utils.APIResponse "Account disabled"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to sign in")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Log masuk berjaya", session)
}

// SignOut revokes the current session
// @Summary Sign out
// @Description Revoke the bearer token of the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse "Signed out"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), identity); err != nil {
		h.logger.WithError(err).WithField("identity_id", identity.ID).Error("Failed to sign out")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Log keluar berjaya", nil)
}

// Me returns the current identity
// @Summary Current identity
// @Description Get the identity bound to the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=service.Identity} "Current identity"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, "Identiti semasa", identity)
}

// RequestPasswordReset issues a password reset token
// @Summary Request password reset
// @Description Create a one-time reset token and deliver it to the account owner
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Account email"
// @Success 200 {object} utils.APIResponse "Reset token delivered"
// @Failure 400 {object} utils.APIResponse "Invalid email"
// @Failure 404 {object} utils.APIResponse "Unknown email"
// @Router /api/v1/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to request password reset")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pautan set semula kata laluan telah dihantar", nil)
}

// ConfirmPasswordReset sets a new password using a reset token
// @Summary Confirm password reset
// @Description Consume a reset token and set a new password (minimum 8 characters)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetConfirmRequest true "Token and new password"
// @Success 200 {object} utils.APIResponse "Password changed"
// @Failure 400 {object} utils.APIResponse "Invalid or expired token"
// @Router /api/v1/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.logger.WithError(err).Error("Failed to reset password")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Kata laluan telah ditukar", nil)
}

// ClaimAccount creates a sign-in identity for a member already in the register
// @Summary Claim account
// @Description Create an identity for an existing member profile (cipta akaun) and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ClaimAccountRequest true "Email and new password"
// @Success 201 {object} utils.APIResponse{data=service.Session} "Account created"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 404 {object} utils.APIResponse "Member not registered"
// @Failure 409 {object} utils.APIResponse "Account already exists"
// @Router /api/v1/auth/claim [post]
func (h *AuthHandler) ClaimAccount(c *gin.Context) {
	var req ClaimAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	session, err := h.authService.ClaimAccount(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to claim account")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithField("identity_id", session.Identity.ID).Info("Account claimed successfully")
	utils.CreatedResponse(c, "Akaun berjaya dicipta", session)
}

// Stream upgrades to a websocket that carries identity-change events
// @Summary Identity-change stream
// @Description Websocket. The first message is the current identity, then every signed_in, signed_out, password_changed and profile_status_changed event. Pass the token as ?token= when headers cannot be set.
// @Tags auth
// @Security BearerAuth
// @Param token query string false "Bearer token"
// @Success 101 {object} auth.Event "Switching protocols"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/auth/stream [get]
func (h *AuthHandler) Stream(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade identity stream")
		return
	}
	defer conn.Close()

	events, unsubscribe := h.authService.Subscribe(identity.ID)
	defer unsubscribe()

	log := h.logger.WithField("identity_id", identity.ID)
	log.Info("Identity stream opened")
	defer log.Info("Identity stream closed")

	current := auth.Event{
		Type:       auth.EventCurrent,
		IdentityID: identity.ID,
		Email:      identity.Email,
		Role:       string(identity.Role),
		At:         time.Now(),
	}
	if err := writeEvent(conn, current); err != nil {
		return
	}

	// The read loop only exists to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(streamPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case ev, open := <-events:
			if !open {
				return
			}
			if err := writeEvent(conn, ev); err != nil {
				log.WithError(err).Error("Failed to write identity event")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, ev auth.Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(ev)
}
