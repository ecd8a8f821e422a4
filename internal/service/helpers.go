package service

import (
	"errors"

	"github.com/worldme/worldme/internal/models"
)

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
