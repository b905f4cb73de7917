package seedcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kacper-olenkiewicz/SneakerHub/models"
)

var seedWorkers = []models.User{
	{Name: "Admin", Email: "admin@sneakerhub.com", Role: models.RoleWorker},
	{Name: "Worker Admin", Email: "admin@wp.pl", Role: models.RoleWorker},
}

// SeedWorkers idempotently creates the worker panel accounts with the
// configured password. Existing accounts are reported, not touched.
func SeedWorkers(db *gorm.DB, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin users"})
			return
		}

		results := make([]gin.H, 0, len(seedWorkers))
		for _, worker := range seedWorkers {
			var existing models.User
			err := db.Where("email = ?", worker.Email).First(&existing).Error
			if err == nil {
				results = append(results, gin.H{"email": worker.Email, "status": "already-exists"})
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin users"})
				return
			}

			user := worker
			user.PasswordHash = string(hash)
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin users"})
				return
			}
			results = append(results, gin.H{"email": user.Email, "status": "created"})
		}

		c.JSON(http.StatusOK, gin.H{"message": "Seed complete", "results": results})
	}
}
