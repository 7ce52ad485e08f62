package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/internal/utils"
	"github.com/urbandrive/urbandrive/services/user"
)

// UserHandler handles HTTP requests for account and membership operations
type UserHandler struct {
	userUC user.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC user.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// CreateUser registers an account. Posting an already-registered email
// is not an error; the existing account comes back unchanged.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var u models.User
	if err := c.Bind(&u); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	account, err := h.userUC.CreateUser(c.Request().Context(), &u)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, account)
}

// GetUser returns a single account
func (h *UserHandler) GetUser(c echo.Context) error {
	account, err := h.userUC.GetUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, account)
}

// ListUsers returns all accounts
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateUser merges the recognized mutable fields into an account
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var update models.UserUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.UpdateUser(c.Request().Context(), c.Param("email"), &update); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", nil)
}

// SendVerificationCode issues a fresh verification code
func (h *UserHandler) SendVerificationCode(c echo.Context) error {
	var req models.VerificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.SendVerificationCode(c.Request().Context(), req.Email); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifyCode checks a submitted verification code
func (h *UserHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.VerifyCode(c.Request().Context(), req.Email, req.Code); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified successfully", nil)
}

// IssueChatToken signs a short-lived chat token
func (h *UserHandler) IssueChatToken(c echo.Context) error {
	var req models.ChatTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	token, err := h.userUC.IssueChatToken(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, token)
}

// ChatSession returns the identity carried by a validated chat token.
// The bearer-auth middleware has already parsed the claims.
func (h *UserHandler) ChatSession(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"email": c.Get("user_email"),
		"role":  c.Get("user_role"),
	})
}

// ListMembershipPlans returns the purchasable tiers
func (h *UserHandler) ListMembershipPlans(c echo.Context) error {
	plans, err := h.userUC.ListMembershipPlans(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, plans)
}

// ListEnrollments returns active enrollments, optionally for one account
func (h *UserHandler) ListEnrollments(c echo.Context) error {
	memberships, err := h.userUC.ListEnrollments(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, memberships)
}
