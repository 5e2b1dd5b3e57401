package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/climacurat/climacurat/internal/db/controller/service"
)

// SaveService handles the save-service form submission.
func (s *Service) SaveService(c *fiber.Ctx) error {
	id, hasID, err := formID(c)
	if err != nil {
		return c.Redirect(RedirectTarget)
	}

	var (
		icon        = c.FormValue("icon")
		title       = c.FormValue("title")
		description = c.FormValue("description")
	)

	switch {
	case c.FormValue("action") == ActionDelete:
		if !hasID {
			log.Warn().Msg("delete service requested without id")
			break
		}

		if err := service.Delete(s.db, id); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to delete service")
		}
	case hasID:
		if _, err := service.Update(s.db, id, icon, title, description); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to update service")
		}
	default:
		if _, err := service.Create(s.db, icon, title, description); err != nil {
			log.Error().Err(err).Msg("failed to create service")
		}
	}

	return c.Redirect(RedirectTarget)
}
