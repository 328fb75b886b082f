package usersapi

import (
	"errors"
	"net/http"
	"time"

	"blockcms/database"
	"blockcms/internal/domain/rbac"
	"blockcms/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserInput struct {
	Email    string   `json:"email" binding:"required,email"`
	Name     string   `json:"name" binding:"required"`
	Password string   `json:"password" binding:"required,min=8"`
	RoleIDs  []string `json:"roleIds"`
}

type UpdateUserInput struct {
	Email    string   `json:"email" binding:"required,email"`
	Name     string   `json:"name" binding:"required"`
	Password string   `json:"password" binding:"omitempty,min=8"`
	RoleIDs  []string `json:"roleIds"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     u.RoleNames(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// GET /admin/api/users
func ListUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.
		Preload("UserRoles.Role").
		Order("created_at DESC").
		Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]UserDTO, 0, len(all))
	for _, u := range all {
		out = append(out, toUserDTO(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// GET /admin/api/users/:id
func GetUser(c *gin.Context) {
	var user users.User
	err := database.DB.
		Preload("UserRoles.Role").
		First(&user, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserDTO(user)})
}

// POST /admin/api/users
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hash)

	var user users.User
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		user = users.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: &hashed,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return assignRoles(tx, user.ID, input.RoleIDs)
	})
	if txErr != nil {
		if errors.Is(txErr, errUnknownRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more role ids do not exist"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		return
	}

	reloadUser(c, user.ID, http.StatusCreated)
}

// PUT /admin/api/users/:id
//
// The role set is replaced wholesale with the submitted list. Password is
// only changed when a new one is supplied.
func UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var user users.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		user.Email = input.Email
		user.Name = input.Name
		if input.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			hashed := string(hash)
			user.PasswordHash = &hashed
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&rbac.UserRole{}).Error; err != nil {
			return err
		}
		return assignRoles(tx, user.ID, input.RoleIDs)
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(txErr, errUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more role ids do not exist"})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		}
		return
	}

	reloadUser(c, id, http.StatusOK)
}

// DELETE /admin/api/users/:id
func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == c.GetString("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	res := database.DB.Delete(&users.User{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var errUnknownRole = errors.New("unknown role id")

func assignRoles(tx *gorm.DB, userID string, roleIDs []string) error {
	for _, rid := range roleIDs {
		var role rbac.Role
		if err := tx.First(&role, "id = ?", rid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errUnknownRole
			}
			return err
		}
		ur := rbac.UserRole{UserID: userID, RoleID: rid}
		if err := tx.Create(&ur).Error; err != nil {
			return err
		}
	}
	return nil
}

func reloadUser(c *gin.Context, id string, status int) {
	var user users.User
	err := database.DB.
		Preload("UserRoles.Role").
		First(&user, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(status, gin.H{"user": toUserDTO(user)})
}
