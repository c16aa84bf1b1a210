package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pulse-api/models"
	"pulse-api/repositories"
	"pulse-api/utils"
)

type AuthController struct {
	db        *gorm.DB
	jwtSecret string
	users     *repositories.UserRepository
	resolver  *repositories.Resolver
}

func NewAuthController(db *gorm.DB, jwtSecret string, users *repositories.UserRepository, resolver *repositories.Resolver) *AuthController {
	return &AuthController{
		db:        db,
		jwtSecret: jwtSecret,
		users:     users,
		resolver:  resolver,
	}
}

type SignupRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates the auth identity and its directory profile in one go.
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var existing models.Account
	if err := ac.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendStoreError(c, "Error creating user", err)
		return
	}

	account := models.Account{
		ID:       uuid.New().String(),
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := ac.db.Create(&account).Error; err != nil {
		utils.SendStoreError(c, "Error creating user", err)
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = models.DefaultDisplayName(req.Email)
	}

	// The account already exists at this point, so a failed profile insert
	// is logged and repaired later by the lazy backfill on sign-in.
	profile, _, err := ac.users.CreateProfile(account.ID, displayName)
	if err != nil {
		log.Printf("Error creating profile for account %s: %v", account.ID, err)
	}

	account.Password = ""
	utils.SendCreated(c, "User created successfully", gin.H{
		"user":     account,
		"userData": profile,
	})
}

// Signin verifies credentials, backfills a missing profile and issues
// session tokens.
func (ac *AuthController) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var account models.Account
	if err := ac.db.Where("email = ?", req.Email).First(&account).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if _, err := ac.resolver.ResolveOrCreate(account.ID, models.DefaultDisplayName(account.Email)); err != nil {
		log.Printf("Error backfilling profile for account %s: %v", account.ID, err)
	}

	accessToken, err := ac.generateToken(account.ID, account.Email, 24*time.Hour)
	if err != nil {
		utils.SendStoreError(c, "Error signing in", err)
		return
	}
	refreshToken, err := ac.generateToken(account.ID, account.Email, 7*24*time.Hour)
	if err != nil {
		utils.SendStoreError(c, "Error signing in", err)
		return
	}

	account.Password = ""
	utils.SendSuccess(c, "Sign in successful", gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         account,
	})
}

// CurrentUser returns the caller's account joined with its profile,
// creating the profile on the fly when the directory record is missing.
func (ac *AuthController) CurrentUser(c *gin.Context) {
	accountID := c.GetString("account_id")

	var account models.Account
	if err := ac.db.First(&account, "id = ?", accountID).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	profile, err := ac.users.GetProfile(accountID)
	if errors.Is(err, repositories.ErrProfileNotFound) {
		profile, _, err = ac.users.CreateProfile(accountID, models.DefaultDisplayName(account.Email))
	}
	if err != nil {
		utils.SendStoreError(c, "Error fetching user data", err)
		return
	}

	account.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":         account.ID,
			"email":      account.Email,
			"created_at": account.CreatedAt,
			"userData":   profile,
		},
	})
}

func (ac *AuthController) generateToken(accountID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   accountID,
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
