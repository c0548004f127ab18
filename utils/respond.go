package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RespondWithError writes the uniform error body. Every failure the API
// reports, whatever the status, is {"message": "..."}.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// IsDuplicateKey reports whether err is a unique-constraint violation from
// the store. The explicit existence pre-checks in the controllers are
// best-effort; this catches the insert that loses the race.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx surfaces SQLSTATE 23505 as "duplicate key value violates unique constraint"
	return strings.Contains(err.Error(), "duplicate key")
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure, e.g. deleting a car that still has service records.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "foreign key")
}
