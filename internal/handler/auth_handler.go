package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cjpowerhouse-backend/config"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/internal/service"
)

type AuthHandler struct {
	staffRepo repository.StaffRepository
	userRepo  repository.UserRepository
	logRepo   repository.StaffLogRepository
	duty      *service.DutyService
}

func NewAuthHandler(staffRepo repository.StaffRepository, userRepo repository.UserRepository, logRepo repository.StaffLogRepository, duty *service.DutyService) *AuthHandler {
	return &AuthHandler{staffRepo: staffRepo, userRepo: userRepo, logRepo: logRepo, duty: duty}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	Action   string `json:"action"` // verify_password / confirm_logout
	Password string `json:"password"`
}

// StaffLogin authenticates against the three staff tables, opens a duty
// session, and returns a JWT.
func (h *AuthHandler) StaffLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	staff, err := h.staffRepo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect email or password"})
	}
	if !staff.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is deactivated"})
	}

	// Open the duty session; the log row is the source of truth for the
	// online badge and the day's duty accounting.
	if _, err := h.logRepo.Open(staff.ID, staff.Role, "login", time.Now()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record duty session"})
	}

	claims := jwt.MapClaims{
		"user_id": staff.ID,
		"role":    staff.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   signed,
		"user": fiber.Map{
			"id":         staff.ID,
			"role":       staff.Role,
			"first_name": staff.FirstName,
			"last_name":  staff.LastName,
		},
	})
}

// CustomerLogin authenticates a customer and starts a tracked session.
// Staff emails are rejected here; staff sign in through the staff portal so
// their duty sessions get recorded.
func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if staff, err := h.staffRepo.FindByEmail(req.Email); err == nil && staff != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please use the staff portal to sign in"})
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect email or password"})
	}

	session := model.UserSession{
		UserID:       user.ID,
		SessionID:    uuid.NewString(),
		IPAddress:    c.IP(),
		UserAgent:    c.Get("User-Agent"),
		LoginTime:    time.Now(),
		LastActivity: time.Now(),
		IsActive:     true,
	}
	if err := h.userRepo.StartSession(&session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start session"})
	}
	h.userRepo.TouchLastLogin(user.ID)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    "Customer",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      signed,
		"session_id": session.SessionID,
		"user": fiber.Map{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
		},
	})
}

// LogoutStatus returns the open-session duty picture the logout dialog
// needs: whether the requirement is met and how much time is missing.
func (h *AuthHandler) LogoutStatus(c *fiber.Ctx) error {
	staffID := uint(c.Locals("user_id").(float64))
	role := c.Locals("role").(string)

	if !model.IsAccountedRole(role) {
		// Customers have no duty accounting; they can just log out.
		return c.JSON(fiber.Map{
			"duty_status": nil,
			"role":        role,
		})
	}

	status, err := h.duty.StatusForLogout(staffID, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read duty status"})
	}

	return c.JSON(fiber.Map{
		"duty_status": status,
		"is_cashier":  role == model.RoleCashier,
		"role":        role,
	})
}

// Logout closes the staff member's open duty session. Leaving before the
// requirement is met needs a password confirmation (action verify_password);
// a met requirement or an explicit confirm_logout closes directly. The
// stored duration is uncapped here; only the sweeper caps.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	staffID := uint(c.Locals("user_id").(float64))
	role := c.Locals("role").(string)

	if !model.IsAccountedRole(role) {
		return c.JSON(fiber.Map{"message": "Logged out"})
	}

	var req LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	switch req.Action {
	case "verify_password":
		if req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password is required"})
		}
		staff, err := h.staffRepo.FindByID(staffID, role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "User not found"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect password"})
		}
	case "confirm_logout":
		// No extra check; either the requirement is met or the caller
		// already confirmed.
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown action"})
	}

	if err := h.logRepo.CloseLatestOpen(staffID, role); err != nil {
		// Leave the session for the sweeper; logout still proceeds.
		return c.JSON(fiber.Map{"message": "Logged out (session close pending)"})
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
