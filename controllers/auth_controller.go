package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var user models.User
	if err := a.DB.Where("username = ?", in.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if !user.IsActive {
		utils.Error(c, http.StatusForbidden, "account is disabled", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.FullName, string(user.Role))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not issue token", err)
		return
	}

	now := time.Now()
	a.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login_at", now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (a *AuthController) CreateUser(c *gin.Context) {
	var in CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	role := models.Role(in.Role)
	switch role {
	case models.RoleAdmin, models.RoleCashier, models.RoleAttendant:
	default:
		utils.Error(c, http.StatusBadRequest, "invalid role", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user := models.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := a.DB.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusConflict, "username already taken", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

func (a *AuthController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := a.DB.Order("id ASC").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

type SetActiveInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (a *AuthController) SetUserActive(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var in SetActiveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	res := a.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", *in.IsActive)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update user", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	utils.Success(c, "user updated", nil)
}
